package arguments

import (
	"fmt"
	"sort"
	"strings"
)

// Container is a case-insensitive collection of arguments that remembers
// insertion order.
type Container struct {
	keys []string
	args map[string]*Argument
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{args: make(map[string]*Argument)}
}

// FromSpecs builds a container from manifest argument specs.
func FromSpecs(specs []Spec) (*Container, error) {
	c := NewContainer()
	for _, s := range specs {
		a, err := FromSpec(s)
		if err != nil {
			return nil, err
		}
		if err := c.Add(a); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add inserts a new argument. Adding a name that is already present
// (case-insensitively) fails with ErrDuplicate.
func (c *Container) Add(a *Argument) error {
	if _, ok := c.args[a.key]; ok {
		return fmt.Errorf("%w: cannot add %s twice", ErrDuplicate, a.Name())
	}
	c.put(a)
	return nil
}

func (c *Container) put(a *Argument) {
	if _, ok := c.args[a.key]; !ok {
		c.keys = append(c.keys, a.key)
	}
	c.args[a.key] = a
}

// Get returns the argument stored under key, matched case-insensitively.
func (c *Container) Get(key string) (*Argument, bool) {
	a, ok := c.args[strings.ToLower(key)]
	return a, ok
}

// Len returns the number of arguments.
func (c *Container) Len() int { return len(c.keys) }

// All returns the arguments in insertion order.
func (c *Container) All() []*Argument {
	out := make([]*Argument, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.args[k])
	}
	return out
}

// Missing returns every argument that is not set, in insertion order.
func (c *Container) Missing() []*Argument {
	var out []*Argument
	for _, k := range c.keys {
		if a := c.args[k]; !a.IsSet() {
			out = append(out, a)
		}
	}
	return out
}

// SetValue sets the value of key, creating a required argument when the
// key is unknown.
func (c *Container) SetValue(key, value string) {
	a, ok := c.Get(key)
	if !ok {
		a = New(key, true, "", "", "")
		c.put(a)
	}
	a.SetValue(value)
}

// AddValues applies SetValue for every entry. Keys are processed in sorted
// order so newly created arguments land deterministically.
func (c *Container) AddValues(values map[string]string) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.SetValue(k, values[k])
	}
}

// Update merges other into c. Keys already present keep their local
// argument and only backfill an empty default; unknown keys adopt other's
// argument by reference.
func (c *Container) Update(other *Container) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		theirs := other.args[k]
		if mine, ok := c.args[k]; ok {
			if mine.def == "" {
				mine.def = theirs.def
			}
			continue
		}
		c.put(theirs)
	}
}

// Clone returns a container holding copies of every argument.
func (c *Container) Clone() *Container {
	out := NewContainer()
	for _, k := range c.keys {
		cp := *c.args[k]
		out.put(&cp)
	}
	return out
}

// InputMissing asks for every missing argument through ask and stores the
// answers.
func (c *Container) InputMissing(ask func(*Argument) (string, error)) error {
	for _, a := range c.Missing() {
		v, err := ask(a)
		if err != nil {
			return fmt.Errorf("reading value for %s: %w", a.Name(), err)
		}
		a.SetValue(v)
	}
	return nil
}
