package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kennyg/codex-skill/internal/artifact"
)

// Layout under the user's home:
//   ~/.claude/commands/codex/   skill docs
//   ~/.claude/agents/           agent definition
//   ~/.claude/scripts/          helper scripts

// Paths holds the various paths the installer uses
type Paths struct {
	// Home is the user's home directory
	Home string

	// ClaudeDir is ~/.claude
	ClaudeDir string

	// Target directories (where files get installed)
	CommandsDir string // ~/.claude/commands/codex
	AgentsDir   string // ~/.claude/agents
	ScriptsDir  string // ~/.claude/scripts
}

// GetPaths returns the standard paths for the current user
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return GetPathsForHome(home), nil
}

// GetPathsForHome returns paths rooted at an explicit home directory
func GetPathsForHome(home string) *Paths {
	claudeDir := filepath.Join(home, artifact.ClaudeDirName)
	return &Paths{
		Home:        home,
		ClaudeDir:   claudeDir,
		CommandsDir: filepath.Join(claudeDir, artifact.CommandsDirName, artifact.SkillDirName),
		AgentsDir:   filepath.Join(claudeDir, artifact.AgentsDirName),
		ScriptsDir:  filepath.Join(claudeDir, artifact.ScriptsDirName),
	}
}

// Dirs returns the target directories in creation order
func (p *Paths) Dirs() []string {
	return []string{p.CommandsDir, p.AgentsDir, p.ScriptsDir}
}

// DirFor maps a manifest directory kind to its absolute path
func (p *Paths) DirFor(d artifact.Dir) (string, error) {
	switch d {
	case artifact.DirCommands:
		return p.CommandsDir, nil
	case artifact.DirAgents:
		return p.AgentsDir, nil
	case artifact.DirScripts:
		return p.ScriptsDir, nil
	}
	return "", fmt.Errorf("unknown target directory %q", d)
}

// Destination returns the absolute install path for an entry
func (p *Paths) Destination(e artifact.Entry) (string, error) {
	dir, err := p.DirFor(e.Dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, e.Name), nil
}

// EnsureDir creates dir if it does not exist. created is true only when
// this call made the directory.
func EnsureDir(dir string) (created bool, err error) {
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}
	return true, nil
}
