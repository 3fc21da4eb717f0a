package install

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/kennyg/codex-skill/internal/artifact"
	"github.com/kennyg/codex-skill/internal/config"
)

func TestStatus_NotInstalled(t *testing.T) {
	paths := config.GetPathsForHome(t.TempDir())

	for _, s := range Status(loadManifest(t), paths, artifact.PlatformUnix) {
		if s.Present {
			t.Errorf("%s Present = true, want false", s.Path)
		}
		if s.Satisfied(artifact.PlatformUnix) {
			t.Errorf("%s Satisfied = true, want false", s.Path)
		}
	}
}

func TestStatus_AfterInstall(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute bits are not tracked on windows")
	}

	in, h := newInstaller(t, sourceFS(), artifact.PlatformUnix)
	in.Install()

	statuses := Status(in.Manifest, h.paths, artifact.PlatformUnix)
	if len(statuses) != 5 {
		t.Fatalf("Status() len = %d, want 5", len(statuses))
	}
	for _, s := range statuses {
		if !s.Satisfied(artifact.PlatformUnix) {
			t.Errorf("%s not satisfied: %+v", s.Path, s)
		}
	}

	// Dropping the execute bit on a script is reported.
	runner := filepath.Join(h.paths.ScriptsDir, "codex-runner.sh")
	if err := os.Chmod(runner, 0644); err != nil {
		t.Fatal(err)
	}
	for _, s := range Status(in.Manifest, h.paths, artifact.PlatformUnix) {
		if s.Path == runner && s.Satisfied(artifact.PlatformUnix) {
			t.Error("non-executable runner should not be satisfied")
		}
	}
}

func TestTargetStatus_SatisfiedWindows(t *testing.T) {
	s := TargetStatus{
		Entry:   artifact.Entry{Source: "scripts/codex-runner.sh", Executable: true},
		Present: true,
	}
	if !s.Satisfied(artifact.PlatformWindows) {
		t.Error("execute bits should be ignored on windows")
	}
	if s.Satisfied(artifact.PlatformUnix) {
		t.Error("missing execute bits should fail on unix")
	}
}
