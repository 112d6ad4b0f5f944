// Package arguments models the values a template asks for before it can be
// rendered. An Argument is keyed case-insensitively, may be required, and
// falls back to its default when no explicit value was given. A Container
// keeps arguments in insertion order and merges the arguments inherited
// through template includes.
package arguments
