// Package bundled embeds the templates shipped inside the templateme binary.
package bundled

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var files embed.FS

// FS returns the bundled templates, one directory per template at the root.
func FS() fs.FS {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
