// Package userdata resolves the directories templateme reads from: the
// machine-wide template directory, the per-user config directory and the
// config files inside them. Every location can be overridden through a
// TEMPLATEME_* environment variable.
package userdata
