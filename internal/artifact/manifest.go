package artifact

import (
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// LoadManifest reads and parses the manifest at name inside fsys
func LoadManifest(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates manifest YAML
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	for _, p := range []Platform{PlatformWindows, PlatformUnix} {
		if _, ok := m.Platforms[p]; !ok {
			return fmt.Errorf("manifest: missing %s platform entries", p)
		}
	}

	check := func(e Entry) error {
		if e.Source == "" || e.Name == "" {
			return fmt.Errorf("manifest: entry needs src and dest: %+v", e)
		}
		if !fs.ValidPath(e.Source) {
			return fmt.Errorf("manifest: invalid source path %q", e.Source)
		}
		if path.Base(e.Name) != e.Name {
			return fmt.Errorf("manifest: dest must be a bare file name: %q", e.Name)
		}
		switch e.Dir {
		case DirCommands, DirAgents, DirScripts:
		default:
			return fmt.Errorf("manifest: unknown dir %q for %s", e.Dir, e.Source)
		}
		return nil
	}

	for _, e := range m.Files {
		if err := check(e); err != nil {
			return err
		}
	}
	for _, entries := range m.Platforms {
		for _, e := range entries {
			if err := check(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// Resolve returns the entries to install on platform p: the common files
// followed by that platform's helper scripts.
func (m *Manifest) Resolve(p Platform) []Entry {
	entries := make([]Entry, 0, len(m.Files)+len(m.Platforms[p]))
	entries = append(entries, m.Files...)
	entries = append(entries, m.Platforms[p]...)
	return entries
}

// All returns every entry across both platform variants, for removal
func (m *Manifest) All() []Entry {
	entries := m.Resolve(PlatformWindows)
	return append(entries, m.Platforms[PlatformUnix]...)
}
