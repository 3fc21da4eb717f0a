package artifact

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/kennyg/codex-skill/assets"
)

const testManifest = `
name: codex
files:
  - src: SKILL.md
    dir: commands
    dest: SKILL.md
platforms:
  windows:
    - src: scripts/run.ps1
      dir: scripts
      dest: run.ps1
  unix:
    - src: scripts/run.sh
      dir: scripts
      dest: run.sh
      executable: true
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(testManifest))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}

	if m.Name != "codex" {
		t.Errorf("Name = %v, want codex", m.Name)
	}
	if len(m.Files) != 1 {
		t.Fatalf("Files len = %d, want 1", len(m.Files))
	}
	unix := m.Platforms[PlatformUnix]
	if len(unix) != 1 || !unix[0].Executable {
		t.Errorf("unix entries = %+v, want one executable entry", unix)
	}
	if m.Platforms[PlatformWindows][0].Executable {
		t.Error("windows entry should not be executable")
	}
}

func TestParseManifest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad yaml",
			content: "files: [",
			wantErr: "parse manifest",
		},
		{
			name: "missing platform",
			content: `
files: []
platforms:
  unix: []
`,
			wantErr: "missing windows",
		},
		{
			name: "unknown dir",
			content: `
files:
  - {src: a.md, dir: hooks, dest: a.md}
platforms: {windows: [], unix: []}
`,
			wantErr: "unknown dir",
		},
		{
			name: "dest with separator",
			content: `
files:
  - {src: a.md, dir: agents, dest: ../a.md}
platforms: {windows: [], unix: []}
`,
			wantErr: "bare file name",
		},
		{
			name: "escaping source",
			content: `
files:
  - {src: ../a.md, dir: agents, dest: a.md}
platforms: {windows: [], unix: []}
`,
			wantErr: "invalid source path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.content))
			if err == nil {
				t.Fatal("ParseManifest() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadManifest_Missing(t *testing.T) {
	if _, err := LoadManifest(fstest.MapFS{}, "manifest.yaml"); err == nil {
		t.Error("LoadManifest() on empty fs should fail")
	}
}

func TestManifest_Resolve(t *testing.T) {
	m, err := LoadManifest(assets.FS(), assets.ManifestFile)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}

	tests := []struct {
		platform Platform
		want     []string
		exec     bool
	}{
		{PlatformWindows, []string{"SKILL.md", "reference.md", "agent.md", "scripts/codex-runner.ps1", "scripts/codex-yolo.cmd"}, false},
		{PlatformUnix, []string{"SKILL.md", "reference.md", "agent.md", "scripts/codex-runner.sh", "scripts/codex-yolo.sh"}, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			entries := m.Resolve(tt.platform)
			if len(entries) != len(tt.want) {
				t.Fatalf("Resolve() len = %d, want %d", len(entries), len(tt.want))
			}
			for i, e := range entries {
				if e.Source != tt.want[i] {
					t.Errorf("entry %d Source = %v, want %v", i, e.Source, tt.want[i])
				}
				isScript := e.Dir == DirScripts
				if isScript && e.Executable != tt.exec {
					t.Errorf("%s Executable = %v, want %v", e.Source, e.Executable, tt.exec)
				}
				if !isScript && e.Executable {
					t.Errorf("%s should not be executable", e.Source)
				}
			}
		})
	}
}

func TestManifest_All(t *testing.T) {
	m, err := LoadManifest(assets.FS(), assets.ManifestFile)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}

	names := make(map[string]bool)
	for _, e := range m.All() {
		names[e.Name] = true
	}

	for _, want := range []string{"SKILL.md", "reference.md", "codex.md", "codex-runner.ps1", "codex-runner.sh", "codex-yolo.cmd", "codex-yolo.sh"} {
		if !names[want] {
			t.Errorf("All() missing %s", want)
		}
	}
	if len(m.All()) != 7 {
		t.Errorf("All() len = %d, want 7", len(m.All()))
	}
}

func TestPlatformFor(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
	}{
		{"windows", PlatformWindows},
		{"linux", PlatformUnix},
		{"darwin", PlatformUnix},
		{"freebsd", PlatformUnix},
	}
	for _, tt := range tests {
		if got := PlatformFor(tt.goos); got != tt.want {
			t.Errorf("PlatformFor(%q) = %v, want %v", tt.goos, got, tt.want)
		}
	}
}

func TestParsePlatform(t *testing.T) {
	if p, err := ParsePlatform("windows"); err != nil || !p.IsWindows() {
		t.Errorf("ParsePlatform(windows) = %v, %v", p, err)
	}
	if p, err := ParsePlatform("unix"); err != nil || p.IsWindows() {
		t.Errorf("ParsePlatform(unix) = %v, %v", p, err)
	}
	if _, err := ParsePlatform("plan9"); err == nil {
		t.Error("ParsePlatform(plan9) expected error")
	}
}
