// Package themes embeds the built-in theme definitions.
package themes

import (
	"embed"
	"io/fs"
)

// Dir is the directory inside FS holding the theme files.
const Dir = "builtin"

// builtinThemes embeds one YAML file per theme under builtin/.
//
//go:embed builtin
var builtinThemes embed.FS

// FS returns the embedded filesystem containing the built-in themes.
func FS() fs.FS {
	return builtinThemes
}
