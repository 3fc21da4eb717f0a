package install

import (
	"fmt"
	"io"
	"os"

	"github.com/kennyg/codex-skill/internal/artifact"
	"github.com/kennyg/codex-skill/internal/config"
	"github.com/kennyg/codex-skill/internal/ui"
)

// UninstallReport summarizes an uninstall run
type UninstallReport struct {
	Removed []string
	Failed  []Failure
}

// Uninstaller deletes every file the installer could have written
type Uninstaller struct {
	Manifest *artifact.Manifest
	Paths    *config.Paths

	Out io.Writer
	Err io.Writer
}

// NewUninstaller returns an Uninstaller writing to stdout and stderr
func NewUninstaller(m *artifact.Manifest, paths *config.Paths) *Uninstaller {
	return &Uninstaller{
		Manifest: m,
		Paths:    paths,
		Out:      os.Stdout,
		Err:      os.Stderr,
	}
}

// Targets returns the destination of every entry across both platform
// variants, since the installed variant is not recorded anywhere.
func (u *Uninstaller) Targets() []string {
	var targets []string
	for _, e := range u.Manifest.All() {
		dest, err := u.Paths.Destination(e)
		if err != nil {
			continue
		}
		targets = append(targets, dest)
	}
	return targets
}

// Uninstall removes each installed file that exists, then the skill's
// commands directory.
func (u *Uninstaller) Uninstall() *UninstallReport {
	report := &UninstallReport{}

	for _, path := range u.Targets() {
		if _, err := os.Lstat(path); err != nil {
			continue
		}
		if err := os.Remove(path); err != nil {
			report.Failed = append(report.Failed, Failure{Path: path, Err: err})
			ui.FprintError(u.Err, fmt.Sprintf("Failed to remove %s: %v", path, err))
			continue
		}
		report.Removed = append(report.Removed, path)
		ui.FprintSuccess(u.Out, "Removed: "+path)
	}

	// Removal failure here is expected when the directory is shared or
	// locked; it is not reported.
	if _, err := os.Stat(u.Paths.CommandsDir); err == nil {
		if err := os.RemoveAll(u.Paths.CommandsDir); err == nil {
			report.Removed = append(report.Removed, u.Paths.CommandsDir)
			ui.FprintSuccess(u.Out, "Removed: "+u.Paths.CommandsDir)
		}
	}

	return report
}
