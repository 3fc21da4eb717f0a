package artifact

import (
	"fmt"
	"runtime"
)

// Platform selects which helper-script variants get installed
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformUnix    Platform = "unix"
)

// HostPlatform returns the platform of the running binary
func HostPlatform() Platform {
	return PlatformFor(runtime.GOOS)
}

// PlatformFor maps a GOOS value to a Platform. Anything that isn't
// windows is treated as unix.
func PlatformFor(goos string) Platform {
	if goos == "windows" {
		return PlatformWindows
	}
	return PlatformUnix
}

// ParsePlatform validates a user-supplied platform name
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformWindows, PlatformUnix:
		return Platform(s), nil
	}
	return "", fmt.Errorf("unknown platform %q (want %q or %q)", s, PlatformWindows, PlatformUnix)
}

// IsWindows reports whether p is the Windows family
func (p Platform) IsWindows() bool {
	return p == PlatformWindows
}

// Dir names one of the target directories under the configuration root
type Dir string

const (
	DirCommands Dir = "commands"
	DirAgents   Dir = "agents"
	DirScripts  Dir = "scripts"
)

// Entry describes one file to copy into (or remove from) ~/.claude
type Entry struct {
	// Source is a slash-separated path relative to the package root
	Source string `yaml:"src"`
	// Dir is the target directory the file lands in
	Dir Dir `yaml:"dir"`
	// Name is the destination file name inside Dir
	Name string `yaml:"dest"`
	// Executable entries get ExecutableMode on unix
	Executable bool `yaml:"executable,omitempty"`
}

// Manifest represents the manifest.yaml shipped with the skill assets
type Manifest struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Files       []Entry `yaml:"files"`

	// Platform-specific entries, keyed by Platform
	Platforms map[Platform][]Entry `yaml:"platforms"`
}
