package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/codex-skill/internal/install"
	"github.com/kennyg/codex-skill/internal/ui"
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall",
	Aliases: []string{"remove", "rm"},
	Short:   "Remove the Codex skill from ~/.claude",
	Long: `Delete every file the installer writes, for either platform, and the
commands/codex directory.

Examples:
  codex-skill uninstall`,
	Args: cobra.NoArgs,
	Run:  runUninstall,
}

func runUninstall(cmd *cobra.Command, args []string) {
	paths := resolvePaths()

	fmt.Println()
	fmt.Println(ui.Render(ui.Title, "Codex Skill - Uninstaller"))
	fmt.Println(ui.Render(ui.Muted, "========================="))
	fmt.Println()

	install.NewUninstaller(loadManifest(), paths).Uninstall()

	fmt.Println()
	fmt.Println(ui.Render(ui.Success, "Codex skill uninstalled successfully."))
	fmt.Println()
}
