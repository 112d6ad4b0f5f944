package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/templateme/templateme/internal/logging"
	"github.com/templateme/templateme/internal/prompt"
)

// scriptedDriver answers prompts from canned responses and records the
// questions it was asked.
type scriptedDriver struct {
	inputs   []string
	confirms []bool
	asked    []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if len(d.inputs) == 0 {
		return "", errors.New("unexpected input prompt: " + cfg.Message)
	}
	v := d.inputs[0]
	d.inputs = d.inputs[1:]
	return v, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, cfg.Message)
	if len(d.confirms) == 0 {
		return false, errors.New("unexpected confirm prompt: " + cfg.Message)
	}
	v := d.confirms[0]
	d.confirms = d.confirms[1:]
	return v, nil
}

// isolate points every config and template location at temp directories
// and returns the user config directory.
func isolate(t *testing.T) string {
	t.Helper()
	userDir := t.TempDir()
	t.Setenv("TEMPLATEME_SYSTEM_DIR", t.TempDir())
	t.Setenv("TEMPLATEME_CONFIG_DIR", userDir)
	t.Setenv("TEMPLATEME_AUTHOR", "")
	t.Setenv("TEMPLATEME_EMAIL", "")
	return userDir
}

func resetFlags() {
	logLevel = logging.DefaultLevel
	listShort, listJSON = false, false
	searchShort, searchJSON = false, false
	showYAML, showCheck = false, false
	createOutputDir, createForce, createQuiet, createDryRun = "", false, false, false
	createArgs = nil
	versionShort, versionJSON = false, false
	checkUserdata, checkTemplates, doctorFix = false, false, false
}

// executeCommand runs the root command with args and returns everything
// written to stdout and stderr.
func executeCommand(t *testing.T, driver prompt.Driver, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	prevDriver, prevNow := promptDriver, now
	if driver == nil {
		driver = &scriptedDriver{}
	}
	promptDriver = driver
	now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		promptDriver, now = prevDriver, prevNow
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func exitCode(err error) int {
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	if err != nil {
		return 1
	}
	return 0
}
