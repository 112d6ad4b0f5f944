package arguments

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned when building arguments and containers.
var (
	ErrDuplicate = errors.New("duplicate argument")
	ErrMalformed = errors.New("malformed argument")
)

const defaultQuestion = "Put the '{value}' value"

// Spec is the manifest form of an argument. Required defaults to true
// when omitted.
type Spec struct {
	Name        string `json:"name" yaml:"name"`
	Required    *bool  `json:"required,omitempty" yaml:"required,omitempty"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
	Question    string `json:"question,omitempty" yaml:"question,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Argument is a single named template value.
type Argument struct {
	key         string
	required    bool
	def         string
	question    string
	description string
	value       *string
}

// New creates an argument. Empty question and description fall back to
// generated text.
func New(name string, required bool, def, question, description string) *Argument {
	if question == "" {
		question = defaultQuestion
	}
	if description == "" {
		description = fmt.Sprintf("Value of '%s'", name)
	}
	if def != "" {
		description = fmt.Sprintf("%s (default: %s)", description, def)
	}
	return &Argument{
		key:         strings.ToLower(name),
		required:    required,
		def:         def,
		question:    question,
		description: description,
	}
}

// FromSpec builds an argument from its manifest form.
func FromSpec(s Spec) (*Argument, error) {
	if strings.TrimSpace(s.Name) == "" {
		return nil, fmt.Errorf("%w: missing name", ErrMalformed)
	}
	required := true
	if s.Required != nil {
		required = *s.Required
	}
	return New(s.Name, required, s.Default, s.Question, s.Description), nil
}

// Key returns the lowercase lookup key.
func (a *Argument) Key() string { return a.key }

// Name returns the canonical uppercase token name.
func (a *Argument) Name() string { return strings.ToUpper(a.key) }

// Required reports whether the argument must be given a value.
func (a *Argument) Required() bool { return a.required }

// Default returns the fallback value.
func (a *Argument) Default() string { return a.def }

// Description returns the human readable description.
func (a *Argument) Description() string { return a.description }

// Question returns the prompt shown when asking for the value.
func (a *Argument) Question() string {
	return strings.ReplaceAll(a.question, "{value}", a.Name())
}

// Value returns the explicit value if one was set, the default otherwise.
func (a *Argument) Value() string {
	if a.value == nil {
		return a.def
	}
	return *a.value
}

// SetValue sets an explicit value. An empty string still counts as set.
func (a *Argument) SetValue(v string) { a.value = &v }

// IsSet reports whether the argument is usable: optional arguments always
// are, required ones only after SetValue.
func (a *Argument) IsSet() bool {
	return !a.required || a.value != nil
}

func (a *Argument) String() string { return a.key }
