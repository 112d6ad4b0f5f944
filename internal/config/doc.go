// Package config loads templateme settings: the default author and email
// substituted into templates and the extra template search paths. Values are
// layered from built-in defaults, /etc/templateme/config.yaml, the per-user
// config.yaml and TEMPLATEME_* environment variables, later sources winning.
package config
