// Package cli defines the Cobra command tree for the templateme CLI. Each
// file in this package registers one top-level command (list, show,
// create, etc.) with the root command. Commands delegate to internal
// packages for template resolution and rendering and only handle flag
// parsing, output formatting and user interaction.
package cli
