// Package scaffold turns named templates into project directories.
//
// A Template is a directory of files plus an optional manifest.json. Each
// file becomes an Element whose path and contents may contain %TOKEN%
// placeholders. Templates are discovered by Sources (a directory on disk or
// an embedded filesystem) and resolved by name through a Manager, which
// also owns the substitution table (EMAIL, AUTHOR, YEAR, NAME and the
// template's own arguments). Templates can include other templates, in
// which case they inherit their arguments and files.
package scaffold
