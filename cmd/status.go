package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/codex-skill/internal/install"
	"github.com/kennyg/codex-skill/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"doctor"},
	Short:   "Show which skill files are installed",
	Long: `List every file the installer would write on this platform and
whether it is present. Helper scripts on macOS and Linux must also be
executable.`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	paths := resolvePaths()
	platform := resolvePlatform()

	fmt.Println()
	fmt.Println(ui.Render(ui.Title, "Codex Skill - Status"))
	fmt.Println(ui.RenderMuted(fmt.Sprintf("  %s (%s)", paths.ClaudeDir, platform)))
	fmt.Println()

	missing := 0
	for _, s := range install.Status(loadManifest(), paths, platform) {
		switch {
		case s.Satisfied(platform):
			fmt.Println(ui.SuccessLine(s.Path))
		case s.Present:
			missing++
			fmt.Println(ui.WarningLine(s.Path + " (not executable)"))
		default:
			missing++
			fmt.Println(ui.ErrorLine(s.Path + " (missing)"))
		}
	}

	fmt.Println()
	if missing == 0 {
		fmt.Println(ui.Render(ui.Success, "All files installed."))
	} else {
		fmt.Println(ui.RenderMuted(fmt.Sprintf("%d file(s) need attention. Run `codex-skill install`.", missing)))
	}
	fmt.Println()
}
