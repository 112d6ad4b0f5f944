package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/templateme/templateme/internal/arguments"
)

// FileName is the conventional manifest name inside a template directory.
const FileName = "manifest.json"

// NoDescription is used when a manifest omits a description field.
const NoDescription = "No description"

// Manifest is the parsed, immutable description of a template.
type Manifest struct {
	ShortDescription string
	Description      string
	Include          []string
	Ignore           []string
	Version          *semver.Version
	Args             *arguments.Container
}

// document is the on-disk JSON shape of a manifest.
type document struct {
	ShortDescription *string          `json:"short-description"`
	Description      *string          `json:"description"`
	Include          stringList       `json:"include"`
	Ignore           stringList       `json:"ignore"`
	Version          string           `json:"version"`
	Args             []arguments.Spec `json:"args"`
}

// stringList accepts either a single JSON string or an array of strings.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = stringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected string or array of strings: %w", err)
	}
	*l = many
	return nil
}
