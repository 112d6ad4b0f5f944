package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVersion(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2024-06-01"

	out, err := executeCommand(t, nil, "version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "templateme version 1.2.3 (commit: abc123, built: 2024-06-01)\n"; out != want {
		t.Errorf("version = %q, want %q", out, want)
	}

	out, _ = executeCommand(t, nil, "version", "--short")
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("short version = %q", out)
	}

	out, _ = executeCommand(t, nil, "version", "--json")
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := map[string]string{"version": "1.2.3", "commit": "abc123", "date": "2024-06-01"}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Errorf("version info mismatch (-want +got):\n%s", diff)
	}
}

func TestLogLevelFlag(t *testing.T) {
	isolate(t)
	if _, err := executeCommand(t, nil, "--log-level", "loud", "version"); err == nil {
		t.Error("expected error for invalid log level")
	}
	if _, err := executeCommand(t, nil, "--log-level", "debug", "version", "--short"); err != nil {
		t.Errorf("debug level: %v", err)
	}
}
