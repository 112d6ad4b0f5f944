package manifest

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{"valid-full.json", "valid-minimal.json", "valid-include-string.json"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile error: %v", err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got issues: %v", result.Issues)
			}
		})
	}
}

func TestValidateFile_MissingName(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-arg-no-name.json"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Keyword == "required" && strings.HasPrefix(issue.Path, "/args/0") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a required issue under /args/0, got %v", result.Issues)
	}
}

func TestValidateFile_WrongTypes(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-include-type.json"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	var paths []string
	for _, issue := range result.Issues {
		paths = append(paths, issue.Path)
	}
	joined := strings.Join(paths, ",")
	if !strings.Contains(joined, "/include") {
		t.Errorf("expected an issue at /include, got %v", paths)
	}
	if !strings.Contains(joined, "/args/0/required") {
		t.Errorf("expected an issue at /args/0/required, got %v", paths)
	}
}

func TestValidateFile_NotJSON(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-json.json"))
	if !errors.Is(err, ErrManifest) {
		t.Errorf("err = %v, want ErrManifest", err)
	}
}

func TestValidateFile_Missing(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.json"))
	if !errors.Is(err, ErrManifest) {
		t.Errorf("err = %v, want ErrManifest", err)
	}
}

func TestValidationIssueString(t *testing.T) {
	i := ValidationIssue{Path: "/args/0", Message: "missing property 'name'"}
	if i.String() != "/args/0: missing property 'name'" {
		t.Errorf("String() = %q", i.String())
	}
	if (ValidationIssue{Message: "x"}).String() != "x" {
		t.Error("String() without path should be the message")
	}
}

func TestValidateFS(t *testing.T) {
	fsys := fstest.MapFS{
		"cpp/manifest.json": &fstest.MapFile{Data: []byte(`{"args": [{"question": "no name"}]}`)},
	}

	result, err := ValidateFS(fsys, "cpp/manifest.json")
	if err != nil {
		t.Fatalf("ValidateFS error: %v", err)
	}
	if result.Valid {
		t.Error("argument without a name should be invalid")
	}

	_, err = ValidateFS(fsys, "missing/manifest.json")
	if !errors.Is(err, ErrManifest) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrManifest wrapping fs.ErrNotExist", err)
	}
}
