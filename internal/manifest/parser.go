package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/jsonc"

	"github.com/templateme/templateme/internal/arguments"
)

// ErrManifest marks a manifest that is absent or cannot be parsed. Callers
// treat it as "no manifest" rather than a hard failure.
var ErrManifest = errors.New("manifest error")

// Parse builds a Manifest from document text. Structural problems wrap
// ErrManifest; invalid argument entries return the arguments package error.
func Parse(data []byte) (*Manifest, error) {
	var doc document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifest, err)
	}

	m := &Manifest{
		ShortDescription: NoDescription,
		Description:      NoDescription,
		Include:          []string(doc.Include),
		Ignore:           []string(doc.Ignore),
	}
	if doc.ShortDescription != nil {
		m.ShortDescription = *doc.ShortDescription
	}
	if doc.Description != nil {
		m.Description = *doc.Description
	}
	if doc.Version != "" {
		v, err := semver.NewVersion(doc.Version)
		if err != nil {
			return nil, fmt.Errorf("%w: version %q: %v", ErrManifest, doc.Version, err)
		}
		m.Version = v
	}

	args, err := arguments.FromSpecs(doc.Args)
	if err != nil {
		return nil, fmt.Errorf("manifest arguments: %w", err)
	}
	m.Args = args
	return m, nil
}

// ReadFile parses the manifest at path. A missing file wraps ErrManifest;
// other read failures (permissions) are returned unwrapped from ErrManifest
// so callers can tell them apart.
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	return parseRead(path, data, err)
}

// ReadFS parses the manifest stored at name inside fsys.
func ReadFS(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	return parseRead(name, data, err)
}

func parseRead(path string, data []byte, err error) (*Manifest, error) {
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrManifest, err)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
