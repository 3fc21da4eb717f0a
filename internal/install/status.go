package install

import (
	"os"

	"github.com/kennyg/codex-skill/internal/artifact"
	"github.com/kennyg/codex-skill/internal/config"
)

// TargetStatus describes one destination on disk
type TargetStatus struct {
	Entry      artifact.Entry
	Path       string
	Present    bool
	Executable bool // any execute bit set
}

// Satisfied reports whether the target looks correctly installed for p.
// Executable entries must carry execute bits on unix.
func (s TargetStatus) Satisfied(p artifact.Platform) bool {
	if !s.Present {
		return false
	}
	if s.Entry.Executable && !p.IsWindows() {
		return s.Executable
	}
	return true
}

// Status inspects every destination for platform p without changing
// anything.
func Status(m *artifact.Manifest, paths *config.Paths, p artifact.Platform) []TargetStatus {
	var statuses []TargetStatus
	for _, e := range m.Resolve(p) {
		dest, err := paths.Destination(e)
		if err != nil {
			continue
		}
		s := TargetStatus{Entry: e, Path: dest}
		if info, err := os.Stat(dest); err == nil && !info.IsDir() {
			s.Present = true
			s.Executable = info.Mode().Perm()&0111 != 0
		}
		statuses = append(statuses, s)
	}
	return statuses
}
