//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	SystemDir  string // TEMPLATEME_SYSTEM_DIR: machine-wide templates and config
	ConfigDir  string // TEMPLATEME_CONFIG_DIR: per-user templates and config
	ExtraDir   string // an extra search path added through the config file
	ProjectDir string // where projects get created
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so all templateme operations are sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		SystemDir:  t.TempDir(),
		ConfigDir:  t.TempDir(),
		ExtraDir:   t.TempDir(),
		ProjectDir: t.TempDir(),
	}

	t.Setenv("TEMPLATEME_SYSTEM_DIR", env.SystemDir)
	t.Setenv("TEMPLATEME_CONFIG_DIR", env.ConfigDir)
	t.Setenv("TEMPLATEME_AUTHOR", "")
	t.Setenv("TEMPLATEME_EMAIL", "")

	return env
}

// setupTemplates lays out templates across the system, user and extra
// directories.
func setupTemplates(t *testing.T, env *testEnv) {
	t.Helper()

	// --- System: shared base with a required argument ---
	writeManifest(t, env.SystemDir, "go-base", `{
  // shared by every Go template
  "short-description": "Go module skeleton",
  "version": "0.3.0",
  "include": "license-mit",
  "args": [
    {"name": "module", "question": "Go module path"},
    {"name": "goversion", "required": false, "default": "1.25"}
  ]
}`)
	writeFile(t, filepath.Join(env.SystemDir, "go-base", "go.mod"), "module %MODULE%\n\ngo %GOVERSION%\n")

	// --- User: a service that builds on the base ---
	writeManifest(t, env.ConfigDir, "go-service", `{
  "short-description": "Go HTTP service",
  "include": ["go-base"],
  "ignore": "*.orig",
  "args": [{"name": "port", "required": false, "default": "8080"}]
}`)
	writeFile(t, filepath.Join(env.ConfigDir, "go-service", "go-service", "main.go"),
		"package main\n\n// %NAME% listens on :%PORT%\nfunc main() {}\n")
	writeFile(t, filepath.Join(env.ConfigDir, "go-service", "main.go.orig"), "stale\n")

	// --- User: shadowed by the system template of the same name ---
	writeFile(t, filepath.Join(env.ConfigDir, "go-base", "SHADOWED"), "never used\n")

	// --- Extra path ---
	writeFile(t, filepath.Join(env.ExtraDir, "notes", "%NAME%.md"), "# %NAME%\n\nby %AUTHOR% <%EMAIL%>\n")
}

// writeManifest creates a manifest.json at root/<name>/manifest.json.
func writeManifest(t *testing.T, root, name, content string) {
	t.Helper()
	writeFile(t, filepath.Join(root, name, "manifest.json"), content)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
