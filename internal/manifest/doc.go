// Package manifest parses the manifest.json that may sit at the root of a
// template directory. A manifest carries a short and a long description,
// the names of included templates, extra ignore patterns, an optional
// version and the argument list. Documents may contain // and /* */
// comments and trailing commas. ValidateFile checks a manifest against the
// embedded JSON schema.
package manifest
