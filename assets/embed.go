// Package assets holds the Codex skill files compiled into the binary.
// The embedded tree is the package root that manifest sources are
// resolved against.
package assets

import (
	"embed"
	"io/fs"
)

// ManifestFile is the name of the install manifest at the package root.
const ManifestFile = "manifest.yaml"

//go:embed manifest.yaml SKILL.md reference.md agent.md scripts
var files embed.FS

// FS returns the embedded package root.
func FS() fs.FS {
	return files
}
