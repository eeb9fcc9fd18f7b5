package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swiftscribe/swiftscribe/internal/bundle"
	"github.com/swiftscribe/swiftscribe/internal/config"
	"github.com/swiftscribe/swiftscribe/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var agentFlag string

var rootCmd = &cobra.Command{
	Use:   "swiftscribe",
	Short: "Swift code-review skill installer",
	Long: ui.Logo() + `
  Installs the swift-code-review skill bundle into your AI agent's
  skills directory. Running with no arguments installs or updates.`,
	Run: runInstall,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&agentFlag, "agent", "a", "", "Target agent (claude, opencode, windsurf)")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("swiftscribe %s\n", Version)
	},
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Error.Render("Error: "+msg))
	os.Exit(1)
}

// resolvePaths picks the target agent and computes install paths.
func resolvePaths() *config.Paths {
	home, err := os.UserHomeDir()
	if err != nil {
		exitWithError(err.Error())
	}

	agent := config.DefaultAgent(home)
	if agentFlag != "" {
		agent = config.Agent(agentFlag)
		if config.GetAgentConfig(agent) == nil {
			exitWithError(fmt.Sprintf("unknown agent: %s (try: claude, opencode, windsurf)", agentFlag))
		}
	}

	paths, err := config.GetPaths(agent)
	if err != nil {
		exitWithError(err.Error())
	}

	return paths
}

// locateBundle finds and loads the bundle this binary shipped with.
func locateBundle() *bundle.Bundle {
	root, err := bundle.Locate()
	if err != nil {
		exitWithError(err.Error())
	}

	b, err := bundle.Load(root)
	if err != nil {
		exitWithError(err.Error())
	}

	return b
}
