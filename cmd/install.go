package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kennyg/codex-skill/assets"
	"github.com/kennyg/codex-skill/internal/install"
	"github.com/kennyg/codex-skill/internal/ui"
)

var installSource string

var installCmd = &cobra.Command{
	Use:     "install",
	Aliases: []string{"setup"},
	Short:   "Install the Codex skill into ~/.claude",
	Long: `Copy SKILL.md, reference.md, the codex agent and the helper scripts
for this platform into ~/.claude.

Missing or failing files are reported and skipped; the command always
exits successfully once it has started copying.

Examples:
  codex-skill install
  codex-skill install --source ./codex-skill`,
	Args: cobra.NoArgs,
	Run:  runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installSource, "source", "", "install from this directory instead of the bundled files")
}

func runInstall(cmd *cobra.Command, args []string) {
	paths := resolvePaths()
	platform := resolvePlatform()

	var src fs.FS = assets.FS()
	var srcRoot string
	if installSource != "" {
		info, err := os.Stat(installSource)
		if err != nil || !info.IsDir() {
			exitWithError(fmt.Sprintf("source %s is not a directory", installSource))
		}
		if srcRoot, err = filepath.Abs(installSource); err != nil {
			exitWithError(err.Error())
		}
		src = os.DirFS(srcRoot)
	}

	fmt.Println()
	fmt.Println(ui.Banner("Codex Skill for Claude Code - Installer"))
	fmt.Println()

	in := install.NewInstaller(src, loadManifest(), paths)
	in.Platform = platform
	in.SourceRoot = srcRoot
	in.Install()

	fmt.Println()
	fmt.Println(ui.Panel("Installation Complete!",
		"",
		"Usage in Claude Code:",
		"  "+ui.RenderCode("/codex Fix the bug in src/api.ts"),
		"  "+ui.RenderCode("/codex --mode=yolo Implement feature"),
		"",
		"Ensure OPENAI_API_KEY is set!",
		"",
	))
	fmt.Println()
}
