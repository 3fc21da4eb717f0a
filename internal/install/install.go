// Package install copies the Codex skill files into ~/.claude and removes
// them again. Both operations are best effort: a failure on one file is
// reported and the remaining files are still processed.
package install

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kennyg/codex-skill/internal/artifact"
	"github.com/kennyg/codex-skill/internal/config"
	"github.com/kennyg/codex-skill/internal/ui"
)

// Failure records one file operation that did not succeed
type Failure struct {
	Path string
	Err  error
}

// Report summarizes an install run
type Report struct {
	Created   []string         // directories made by this run
	Installed []artifact.Entry // entries copied
	Missing   []artifact.Entry // entries whose source was absent
	Failed    []Failure
}

// Installer copies manifest entries from a package root into the
// configuration root.
type Installer struct {
	Source   fs.FS
	Manifest *artifact.Manifest
	Paths    *config.Paths
	Platform artifact.Platform

	// SourceRoot is the on-disk directory behind Source, if any. It is
	// only used to print real paths in warnings.
	SourceRoot string

	Out io.Writer // [+] lines
	Err io.Writer // [!] and [-] lines
}

// NewInstaller returns an Installer for the host platform writing to the
// process's stdout and stderr.
func NewInstaller(src fs.FS, m *artifact.Manifest, paths *config.Paths) *Installer {
	return &Installer{
		Source:   src,
		Manifest: m,
		Paths:    paths,
		Platform: artifact.HostPlatform(),
		Out:      os.Stdout,
		Err:      os.Stderr,
	}
}

// Install creates the target directories and copies every entry for the
// installer's platform.
func (in *Installer) Install() *Report {
	report := &Report{}

	for _, dir := range in.Paths.Dirs() {
		created, err := config.EnsureDir(dir)
		if err != nil {
			report.Failed = append(report.Failed, Failure{Path: dir, Err: err})
			ui.FprintError(in.Err, fmt.Sprintf("Failed to create %s: %v", dir, err))
			continue
		}
		if created {
			report.Created = append(report.Created, dir)
			ui.FprintSuccess(in.Out, "Created: "+dir)
		}
	}

	for _, e := range in.Manifest.Resolve(in.Platform) {
		if _, err := fs.Stat(in.Source, e.Source); errors.Is(err, fs.ErrNotExist) {
			report.Missing = append(report.Missing, e)
			ui.FprintWarning(in.Err, "Source not found: "+in.sourcePath(e))
			continue
		}

		if err := in.installEntry(e); err != nil {
			report.Failed = append(report.Failed, Failure{Path: e.Source, Err: err})
			ui.FprintError(in.Err, fmt.Sprintf("Failed to copy %s: %v", e.Source, err))
			continue
		}

		report.Installed = append(report.Installed, e)
		ui.FprintSuccess(in.Out, "Installed: "+e.Source)
	}

	return report
}

// sourcePath names an entry's source for display
func (in *Installer) sourcePath(e artifact.Entry) string {
	if in.SourceRoot == "" {
		return e.Source
	}
	return filepath.Join(in.SourceRoot, filepath.FromSlash(e.Source))
}

func (in *Installer) installEntry(e artifact.Entry) error {
	dest, err := in.Paths.Destination(e)
	if err != nil {
		return err
	}

	data, err := fs.ReadFile(in.Source, e.Source)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return err
	}

	if e.Executable && !in.Platform.IsWindows() {
		if err := os.Chmod(dest, artifact.ExecutableMode); err != nil {
			return fmt.Errorf("chmod: %w", err)
		}
	}
	return nil
}
