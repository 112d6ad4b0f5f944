package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/templateme/templateme/internal/arguments"
	"github.com/templateme/templateme/internal/manifest"
	"github.com/templateme/templateme/internal/userdata"
)

const (
	dirPerm  = userdata.DirPermNormal
	filePerm = userdata.FilePermNormal
)

// DefaultIgnored are the glob patterns excluded from element discovery.
var DefaultIgnored = []string{manifest.FileName, "*.swp", "__pycache__", "*.pyc"}

// ElementLister discovers the files a template owns. PathTemplate and
// ResourceTemplate differ only in their lister.
type ElementLister interface {
	ListElements(t *Template) ([]*Element, error)
}

// Template is a named bundle of elements with optional manifest metadata.
type Template struct {
	name     string
	source   string
	manager  *Manager
	manifest *manifest.Manifest
	includes []string
	ignored  []string
	own      *arguments.Container
	lister   ElementLister

	argsOnce sync.Once
	args     *arguments.Container

	elemOnce sync.Once
	elements []*Element
	elemErr  error
}

// SaveOptions controls Template.Save.
type SaveOptions struct {
	// ProjectName replaces a leading directory named after the template.
	// Empty means the template's own name.
	ProjectName string
	// DryRun prints every element instead of writing files.
	DryRun bool
	// Force allows writing into an existing directory.
	Force bool
}

// Result holds the outcome of saving a template.
type Result struct {
	OutputDir string
	Files     []string
}

// NewTemplate creates a template. mf may be nil.
func NewTemplate(name string, m *Manager, mf *manifest.Manifest, lister ElementLister) *Template {
	t := &Template{
		name:     name,
		manager:  m,
		manifest: mf,
		ignored:  append([]string(nil), DefaultIgnored...),
		own:      arguments.NewContainer(),
		lister:   lister,
	}
	if mf != nil {
		t.includes = append(t.includes, mf.Include...)
		t.ignored = append(t.ignored, mf.Ignore...)
		t.own = mf.Args.Clone()
	}
	return t
}

// NewPathTemplate creates the template stored in root/name on disk.
func NewPathTemplate(m *Manager, root, name string) (*Template, error) {
	dir := filepath.Join(root, name)
	mf, err := loadManifest(name, func() (*manifest.Manifest, error) {
		return manifest.ReadFile(filepath.Join(dir, manifest.FileName))
	})
	if err != nil {
		return nil, err
	}
	return NewTemplate(name, m, mf, pathLister{dir: dir}), nil
}

// NewResourceTemplate creates the template stored in dir/name inside fsys.
func NewResourceTemplate(m *Manager, fsys fs.FS, dir, name string) (*Template, error) {
	root := path.Join(dir, name)
	mf, err := loadManifest(name, func() (*manifest.Manifest, error) {
		return manifest.ReadFS(fsys, path.Join(root, manifest.FileName))
	})
	if err != nil {
		return nil, err
	}
	return NewTemplate(name, m, mf, resourceLister{fsys: fsys, dir: root}), nil
}

// loadManifest reads a manifest, treating an absent or malformed one as no
// manifest. Any other failure aborts template construction.
func loadManifest(name string, read func() (*manifest.Manifest, error)) (*manifest.Manifest, error) {
	mf, err := read()
	switch {
	case err == nil:
		return mf, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case errors.Is(err, manifest.ErrManifest):
		log.Warn().Str("template", name).Err(err).Msg("ignoring malformed manifest")
		return nil, nil
	case errors.Is(err, fs.ErrPermission):
		log.Warn().Str("template", name).Err(err).Msg("cannot read manifest file, please try changing permissions")
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplate, name, err)
	default:
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplate, name, err)
	}
}

// Name returns the template name.
func (t *Template) Name() string { return t.name }

// Source returns the label of the source that discovered the template.
func (t *Template) Source() string { return t.source }

// Manifest returns the parsed manifest, or nil.
func (t *Template) Manifest() *manifest.Manifest { return t.manifest }

// manifestLocator is implemented by listers that know where the
// template's manifest file lives.
type manifestLocator interface {
	manifestLocation() (fs.FS, string)
}

// ManifestLocation returns the filesystem holding the template and the
// path of its manifest file inside it. ok is false when the template's
// lister cannot tell.
func (t *Template) ManifestLocation() (fsys fs.FS, name string, ok bool) {
	ml, ok := t.lister.(manifestLocator)
	if !ok {
		return nil, "", false
	}
	fsys, name = ml.manifestLocation()
	return fsys, name, true
}

// Includes returns the names of included templates.
func (t *Template) Includes() []string { return append([]string(nil), t.includes...) }

func (t *Template) String() string { return t.name }

// ShortDescription returns the manifest short description.
func (t *Template) ShortDescription() string {
	if t.manifest != nil {
		return t.manifest.ShortDescription
	}
	return "no description"
}

// Description returns the manifest long description.
func (t *Template) Description() string {
	if t.manifest != nil {
		return t.manifest.Description
	}
	return "no description"
}

// AddIgnored appends glob patterns excluded from element discovery.
func (t *Template) AddIgnored(patterns ...string) {
	t.ignored = append(t.ignored, patterns...)
}

// isIgnored matches rel (slash separated) against the ignore patterns. A
// pattern matches the whole path or any single component of it.
func (t *Template) isIgnored(rel string) bool {
	parts := strings.Split(rel, "/")
	for _, pattern := range t.ignored {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}
		for _, part := range parts {
			if ok, _ := path.Match(pattern, part); ok {
				return true
			}
		}
	}
	return false
}

// IncludeTemplates resolves include names through the manager. Names that
// resolve to nothing are skipped.
func (t *Template) IncludeTemplates() []*Template {
	var out []*Template
	for _, name := range t.includes {
		if inc, ok := t.manager.GetTemplate(name); ok {
			out = append(out, inc)
		}
	}
	return out
}

// Args returns the template's own arguments merged with the arguments of
// every include. Local arguments win; an include only backfills an empty
// default. Computed once.
func (t *Template) Args() *arguments.Container {
	t.argsOnce.Do(func() {
		t.args = arguments.NewContainer()
		t.collectArgs(t.args, map[string]bool{})
	})
	return t.args
}

func (t *Template) collectArgs(dst *arguments.Container, seen map[string]bool) {
	if seen[t.name] {
		return
	}
	seen[t.name] = true
	dst.Update(t.own)
	for _, inc := range t.IncludeTemplates() {
		log.Debug().Str("template", t.name).Str("include", inc.name).Msg("merging arguments")
		inc.collectArgs(dst, seen)
	}
}

// Elements returns the template's own elements followed by the elements of
// every include, all owned by t. Computed once.
func (t *Template) Elements() ([]*Element, error) {
	t.elemOnce.Do(func() {
		t.elements, t.elemErr = t.collectElements(t, map[string]bool{})
	})
	return t.elements, t.elemErr
}

func (t *Template) collectElements(owner *Template, seen map[string]bool) ([]*Element, error) {
	if seen[t.name] {
		return nil, nil
	}
	seen[t.name] = true

	result, err := t.lister.ListElements(t)
	if err != nil {
		return nil, fmt.Errorf("listing elements of %s: %w", t.name, err)
	}
	for _, e := range result {
		e.template = owner
	}
	for _, inc := range t.IncludeTemplates() {
		more, err := inc.collectElements(owner, seen)
		if err != nil {
			return nil, err
		}
		result = append(result, more...)
	}
	return result, nil
}

// ExamineSave checks that dst can be written. Unless force is set, an
// existing directory is refused.
func (t *Template) ExamineSave(dst string, force bool) error {
	if force {
		return nil
	}
	if info, err := os.Stat(dst); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, dst)
	}
	return nil
}

// PrintElements writes every element's destination path and rendered text.
func (t *Template) PrintElements(w io.Writer) error {
	elements, err := t.Elements()
	if err != nil {
		return err
	}
	for _, e := range elements {
		if err := e.Print(w); err != nil {
			return err
		}
	}
	return nil
}

// Save renders every element into dst. It fails before writing anything
// when required arguments are unset or when dst exists and Force is off.
func (t *Template) Save(dst string, opts SaveOptions) (*Result, error) {
	if missing := t.Args().Missing(); len(missing) > 0 {
		return nil, &MissingArgumentsError{Count: len(missing), First: missing[0].Name()}
	}

	projectName := opts.ProjectName
	if projectName == "" {
		projectName = t.name
	}

	if opts.DryRun {
		return &Result{OutputDir: dst}, t.PrintElements(t.manager.out)
	}

	if err := t.ExamineSave(dst, opts.Force); err != nil {
		return nil, err
	}

	elements, err := t.Elements()
	if err != nil {
		return nil, err
	}
	for _, e := range elements {
		if _, err := e.Text(); err != nil {
			return nil, err
		}
		if _, _, err := e.localDestination(projectName); err != nil {
			return nil, err
		}
	}

	result := &Result{OutputDir: dst}
	for _, e := range elements {
		rel, err := e.Save(dst, projectName)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, rel)
	}
	return result, nil
}

// pathLister walks a template directory on disk.
type pathLister struct {
	dir string
}

func (l pathLister) manifestLocation() (fs.FS, string) {
	return os.DirFS(l.dir), manifest.FileName
}

func (l pathLister) ListElements(t *Template) ([]*Element, error) {
	var elements []*Element
	err := filepath.WalkDir(l.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == l.dir {
			return nil
		}
		rel, err := filepath.Rel(l.dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if t.isIgnored(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		elements = append(elements, NewElement(rel, t, PathLoader{File: p}))
		return nil
	})
	return elements, err
}

// resourceLister walks a template directory inside an fs.FS.
type resourceLister struct {
	fsys fs.FS
	dir  string
}

func (l resourceLister) manifestLocation() (fs.FS, string) {
	return l.fsys, path.Join(l.dir, manifest.FileName)
}

func (l resourceLister) ListElements(t *Template) ([]*Element, error) {
	var elements []*Element
	prefix := l.dir + "/"
	err := fs.WalkDir(l.fsys, l.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == l.dir {
			return nil
		}
		rel := strings.TrimPrefix(p, prefix)
		if t.isIgnored(rel) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		elements = append(elements, NewElement(rel, t, ResourceLoader{FS: l.fsys, Name: p}))
		return nil
	})
	return elements, err
}
