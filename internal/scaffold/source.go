package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

// Source enumerates the templates found at one location.
type Source interface {
	// Name is a label used in listings (a directory path or "bundled").
	Name() string
	// Templates returns every template the source provides. The result is
	// computed once.
	Templates() ([]*Template, error)
}

// Lookup returns the template called name from src.
func Lookup(src Source, name string) (*Template, bool) {
	templates, err := src.Templates()
	if err != nil {
		return nil, false
	}
	for _, t := range templates {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// templateSet memoizes a source's discovery.
type templateSet struct {
	once      sync.Once
	templates []*Template
	err       error
}

func (s *templateSet) load(label string, discover func() ([]*Template, error)) ([]*Template, error) {
	s.once.Do(func() {
		s.templates, s.err = discover()
		for _, t := range s.templates {
			t.source = label
		}
	})
	return s.templates, s.err
}

// PathSource provides one template per subdirectory of a directory on disk.
type PathSource struct {
	manager *Manager
	dir     string
	set     templateSet
}

// NewPathSource creates a source rooted at dir.
func NewPathSource(m *Manager, dir string) *PathSource {
	return &PathSource{manager: m, dir: dir}
}

// Name implements Source.
func (s *PathSource) Name() string { return s.dir }

// Templates implements Source. A template whose construction fails is
// skipped with a warning; its siblings are still returned.
func (s *PathSource) Templates() ([]*Template, error) {
	return s.set.load(s.dir, func() ([]*Template, error) {
		log.Debug().Str("path", s.dir).Msg("discovering templates")
		entries, err := os.ReadDir(s.dir)
		if err != nil {
			return nil, fmt.Errorf("reading template directory %s: %w", s.dir, err)
		}
		var templates []*Template
		for _, entry := range entries {
			if !isDir(filepath.Join(s.dir, entry.Name()), entry) {
				continue
			}
			t, err := NewPathTemplate(s.manager, s.dir, entry.Name())
			if err != nil {
				log.Warn().Str("path", filepath.Join(s.dir, entry.Name())).Err(err).Msg("skipping template")
				continue
			}
			templates = append(templates, t)
		}
		return templates, nil
	})
}

// isDir follows symlinks so linked template directories are picked up.
func isDir(full string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}

// ResourceSource provides one template per subdirectory of dir inside a
// bundled filesystem, typically an embed.FS.
type ResourceSource struct {
	manager *Manager
	fsys    fs.FS
	dir     string
	set     templateSet
}

// NewResourceSource creates a source over fsys. dir is the directory
// holding the templates; use "." for the root.
func NewResourceSource(m *Manager, fsys fs.FS, dir string) *ResourceSource {
	return &ResourceSource{manager: m, fsys: fsys, dir: dir}
}

// Name implements Source.
func (s *ResourceSource) Name() string { return "bundled" }

// Templates implements Source.
func (s *ResourceSource) Templates() ([]*Template, error) {
	return s.set.load(s.Name(), func() ([]*Template, error) {
		entries, err := fs.ReadDir(s.fsys, s.dir)
		if err != nil {
			return nil, fmt.Errorf("reading bundled templates: %w", err)
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
		var templates []*Template
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			t, err := NewResourceTemplate(s.manager, s.fsys, s.dir, entry.Name())
			if err != nil {
				log.Warn().Str("template", entry.Name()).Err(err).Msg("skipping bundled template")
				continue
			}
			templates = append(templates, t)
		}
		return templates, nil
	})
}
