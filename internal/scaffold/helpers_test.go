package scaffold

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"
)

var fixedNow = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

// newTestManager builds a manager over an in-memory bundled filesystem.
func newTestManager(t *testing.T, fsys fstest.MapFS, opts Options) (*Manager, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	if fsys != nil {
		opts.Bundled = fsys
	}
	opts.Out = &out
	if opts.Now == nil {
		opts.Now = fixedNow
	}
	return NewManager(opts), &out
}

func mustTemplate(t *testing.T, m *Manager, name string) *Template {
	t.Helper()
	tpl, err := m.Template(name)
	if err != nil {
		t.Fatalf("Template(%q) error: %v", name, err)
	}
	return tpl
}

// writeTree creates files below dir from a path to content map.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func file(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }
