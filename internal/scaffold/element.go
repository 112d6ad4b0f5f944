package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/templateme/templateme/internal/platform"
)

// Loader returns the raw, unsubstituted text of one template file.
type Loader interface {
	Load() (string, error)
}

// modeLoader is implemented by loaders that know the source file mode.
type modeLoader interface {
	Mode() (fs.FileMode, error)
}

// PathLoader reads a file from the local filesystem.
type PathLoader struct {
	File string
}

// Load implements Loader.
func (l PathLoader) Load() (string, error) {
	data, err := os.ReadFile(l.File)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", l.File, err)
	}
	return string(data), nil
}

// Mode returns the permission bits of the source file.
func (l PathLoader) Mode() (fs.FileMode, error) {
	info, err := os.Stat(l.File)
	if err != nil {
		return 0, err
	}
	return info.Mode(), nil
}

// ResourceLoader reads a file from an embedded or otherwise bundled
// filesystem.
type ResourceLoader struct {
	FS   fs.FS
	Name string
}

// Load implements Loader.
func (l ResourceLoader) Load() (string, error) {
	data, err := fs.ReadFile(l.FS, l.Name)
	if err != nil {
		return "", fmt.Errorf("reading resource %s: %w", l.Name, err)
	}
	return string(data), nil
}

// Mode returns the permission bits recorded in the bundled filesystem.
func (l ResourceLoader) Mode() (fs.FileMode, error) {
	info, err := fs.Stat(l.FS, l.Name)
	if err != nil {
		return 0, err
	}
	return info.Mode(), nil
}

// Element is one output file of a template. An element belongs to exactly
// one template at a time; when a template includes another, the included
// template's elements are created afresh and owned by the including one.
type Element struct {
	path     string // slash separated, relative to the template root
	template *Template
	loader   Loader

	rawOnce sync.Once
	raw     string
	rawErr  error

	textOnce sync.Once
	text     string
	textErr  error
}

// NewElement creates an element at rel (slash separated) owned by t.
func NewElement(rel string, t *Template, loader Loader) *Element {
	return &Element{path: rel, template: t, loader: loader}
}

// Path returns the declared relative path, before substitution.
func (e *Element) Path() string { return e.path }

// Template returns the owning template.
func (e *Element) Template() *Template { return e.template }

// LoadText returns the raw source text, read once.
func (e *Element) LoadText() (string, error) {
	e.rawOnce.Do(func() {
		e.raw, e.rawErr = e.loader.Load()
	})
	return e.raw, e.rawErr
}

// Text returns the source text after token substitution, computed once.
func (e *Element) Text() (string, error) {
	e.textOnce.Do(func() {
		raw, err := e.LoadText()
		if err != nil {
			e.textErr = err
			return
		}
		e.text = e.template.manager.Render(raw, e.template)
	})
	return e.text, e.textErr
}

// SavePath returns the destination path relative to the output directory,
// with tokens substituted.
func (e *Element) SavePath() string {
	return e.template.manager.Render(e.path, e.template)
}

// destination maps the save path into the project: a leading directory
// named after the owning template is renamed to the project name.
func (e *Element) destination(projectName string) string {
	rel := e.SavePath()
	if projectName == "" || projectName == e.template.name {
		return rel
	}
	prefix := e.template.name + "/"
	if strings.HasPrefix(rel, prefix) {
		rel = path.Join(projectName, strings.TrimPrefix(rel, prefix))
	}
	return rel
}

// localDestination returns the destination in slash and OS form, rejecting
// paths that would leave the output directory.
func (e *Element) localDestination(projectName string) (string, string, error) {
	rel := e.destination(projectName)
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", "", fmt.Errorf("%w: element path %q escapes the output directory", ErrTemplate, rel)
	}
	return rel, local, nil
}

// Save writes the rendered text below base, creating intermediate
// directories. Existing files are overwritten. Executable source files
// produce executable output. It returns the relative destination path.
func (e *Element) Save(base, projectName string) (string, error) {
	rel, local, err := e.localDestination(projectName)
	if err != nil {
		return "", err
	}

	text, err := e.Text()
	if err != nil {
		return "", err
	}

	dest := filepath.Join(base, local)
	if err := os.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", dest, err)
	}
	if err := os.WriteFile(dest, []byte(text), filePerm); err != nil {
		return "", fmt.Errorf("writing %s: %w", dest, err)
	}
	if ml, ok := e.loader.(modeLoader); ok {
		if mode, err := ml.Mode(); err == nil && platform.IsExecutable(mode) {
			if err := platform.Chmod(dest, filePerm|0o111); err != nil {
				return "", fmt.Errorf("setting mode of %s: %w", dest, err)
			}
		}
	}
	fmt.Fprintf(e.template.manager.out, "save file: %s\n", dest)
	return rel, nil
}

// Print writes the destination path and rendered text to w.
func (e *Element) Print(w io.Writer) error {
	text, err := e.Text()
	if err != nil {
		return err
	}
	const selector = "--------"
	_, err = fmt.Fprintf(w, "%s\n%s\n%s\n%s\n%s\n\n", selector, e.SavePath(), selector, text, selector)
	return err
}
