package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/templateme/templateme/internal/branding"
	"github.com/templateme/templateme/internal/userdata"
)

// Keys understood by templateme.
const (
	KeyAuthor = "author"
	KeyEmail  = "email"
	KeyPaths  = "paths"
)

// Built-in fallbacks used when no config source sets a value.
const (
	DefaultAuthor = "Anonymous"
	DefaultEmail  = "Anonymous@unknown.com"
)

// Config is a layered key/value store backed by Viper.
type Config struct {
	v        *viper.Viper
	userFile string
}

// New returns a Config holding only the built-in defaults and the
// environment overlay.
func New() *Config {
	v := viper.New()
	v.SetConfigType(userdata.ConfigFileType)
	v.SetDefault(KeyAuthor, DefaultAuthor)
	v.SetDefault(KeyEmail, DefaultEmail)
	v.SetDefault(KeyPaths, []string{})
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	return &Config{v: v}
}

// Load builds a Config from the given files in increasing precedence order.
// Missing files are skipped. The last file is the one Set writes to.
func Load(files ...string) (*Config, error) {
	c := New()
	for _, file := range files {
		if err := c.merge(file); err != nil {
			return nil, err
		}
	}
	if len(files) > 0 {
		c.userFile = files[len(files)-1]
	}
	return c, nil
}

// LoadDefault loads the system and user config files.
func LoadDefault() (*Config, error) {
	return Load(userdata.ConfigFiles()...)
}

func (c *Config) merge(file string) error {
	return mergeFile(c.v, file)
}

func mergeFile(v *viper.Viper, file string) error {
	f, err := os.Open(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening config file %s: %w", file, err)
	}
	defer f.Close()

	if err := v.MergeConfig(f); err != nil {
		return fmt.Errorf("reading config file %s: %w", file, err)
	}
	return nil
}

// Author returns the default author substituted for %AUTHOR%.
func (c *Config) Author() string { return c.v.GetString(KeyAuthor) }

// Email returns the default email substituted for %EMAIL%.
func (c *Config) Email() string { return c.v.GetString(KeyEmail) }

// Paths returns the extra template search paths. Relative entries are
// resolved against the directory of the user config file.
func (c *Config) Paths() []string {
	raw := c.v.GetStringSlice(KeyPaths)
	paths := make([]string, 0, len(raw))
	for _, p := range raw {
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) && c.userFile != "" {
			p = filepath.Join(filepath.Dir(c.userFile), p)
		}
		paths = append(paths, p)
	}
	return paths
}

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// Set writes a config key-value pair to the user config file. Only the
// user file's own contents are rewritten; system file, environment and
// default values are never copied into it.
func (c *Config) Set(key, value string) error {
	if c.userFile == "" {
		return fmt.Errorf("no writable config file configured")
	}
	if err := os.MkdirAll(filepath.Dir(c.userFile), userdata.DirPermNormal); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	user := viper.New()
	user.SetConfigType(userdata.ConfigFileType)
	if err := mergeFile(user, c.userFile); err != nil {
		return err
	}

	if key == KeyPaths {
		user.Set(key, append(user.GetStringSlice(KeyPaths), value))
	} else {
		user.Set(key, value)
	}

	if err := user.WriteConfigAs(c.userFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return c.merge(c.userFile)
}

// UserFile returns the path Set writes to.
func (c *Config) UserFile() string { return c.userFile }
