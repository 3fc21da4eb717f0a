package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennyg/codex-skill/assets"
	"github.com/kennyg/codex-skill/internal/artifact"
	"github.com/kennyg/codex-skill/internal/config"
	"github.com/kennyg/codex-skill/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var (
	homeFlag     string
	platformFlag string
)

var rootCmd = &cobra.Command{
	Use:   "codex-skill",
	Short: "Install the Codex skill for Claude Code",
	Long: `Installs the /codex command, the codex agent and its helper scripts
into ~/.claude, and removes them again.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "", "home directory to install into (default: current user's home)")
	rootCmd.PersistentFlags().StringVar(&platformFlag, "platform", "", "override the detected platform (windows|unix)")
	rootCmd.PersistentFlags().MarkHidden("platform")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("codex-skill %s\n", Version)
	},
}

// resolvePaths honours --home, falling back to the user's home directory
func resolvePaths() *config.Paths {
	if homeFlag != "" {
		return config.GetPathsForHome(homeFlag)
	}
	paths, err := config.GetPaths()
	if err != nil {
		exitWithError(err.Error())
	}
	return paths
}

// resolvePlatform honours --platform, falling back to the host
func resolvePlatform() artifact.Platform {
	if platformFlag == "" {
		return artifact.HostPlatform()
	}
	p, err := artifact.ParsePlatform(platformFlag)
	if err != nil {
		exitWithError(err.Error())
	}
	return p
}

// loadManifest reads the manifest shipped with the embedded assets
func loadManifest() *artifact.Manifest {
	m, err := artifact.LoadManifest(assets.FS(), assets.ManifestFile)
	if err != nil {
		exitWithError(err.Error())
	}
	return m
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Render(ui.Error, "Error: "+msg))
	os.Exit(1)
}
