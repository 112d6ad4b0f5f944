package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/templateme/templateme/internal/branding"
)

// File name constants for the userdata convention.
const (
	ConfigFileName = "config"
	ConfigFileType = "yaml"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// GetSystemDir returns the machine-wide template directory.
// It checks the TEMPLATEME_SYSTEM_DIR environment variable first,
// then falls back to /etc/templateme.
func GetSystemDir() string {
	if v := os.Getenv(branding.EnvVar("SYSTEM_DIR")); v != "" {
		return v
	}
	return branding.SystemDir()
}

// GetUserConfigDir returns the per-user config directory.
// It checks the TEMPLATEME_CONFIG_DIR environment variable first,
// then falls back to $XDG_CONFIG_HOME/templateme (~/.config/templateme).
func GetUserConfigDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("CONFIG_DIR")); v != "" {
		return v, nil
	}
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(root, branding.ConfigDir()), nil
}

// GetSystemConfigPath returns the path to the machine-wide config file.
func GetSystemConfigPath() string {
	return filepath.Join(GetSystemDir(), ConfigFileName+"."+ConfigFileType)
}

// GetUserConfigPath returns the path to the per-user config file.
func GetUserConfigPath() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileType), nil
}

// ConfigFiles returns the config files in increasing precedence order.
// The user file is omitted when its directory cannot be resolved.
func ConfigFiles() []string {
	files := []string{GetSystemConfigPath()}
	if p, err := GetUserConfigPath(); err == nil {
		files = append(files, p)
	}
	return files
}

// SearchDirs returns the default template search directories in lookup
// order: the system directory first, then the per-user config directory.
func SearchDirs() []string {
	dirs := []string{GetSystemDir()}
	if d, err := GetUserConfigDir(); err == nil {
		dirs = append(dirs, d)
	}
	return dirs
}

// EnsureUserConfigDir creates the per-user config directory if it does not exist.
func EnsureUserConfigDir() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, DirPermNormal); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return dir, nil
}
