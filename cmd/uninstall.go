package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swiftscribe/swiftscribe/internal/config"
	"github.com/swiftscribe/swiftscribe/internal/installer"
	"github.com/swiftscribe/swiftscribe/internal/ui"
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall",
	Aliases: []string{"remove", "rm"},
	Short:   "Remove the installed skill bundle",
	Long: `Remove the swift-code-review skill from the target agent's skills
directory.

The entire skill directory is deleted, including any files added to it by
hand. Running uninstall when nothing is installed is a no-op, not an error.`,
	Args: cobra.NoArgs,
	Run:  runUninstall,
}

func runUninstall(cmd *cobra.Command, args []string) {
	paths := resolvePaths()

	fmt.Println()

	removed, err := installer.Uninstall(paths)
	if err != nil {
		exitWithError(err.Error())
	}

	if !removed {
		fmt.Println(ui.Muted.Render("  Nothing to uninstall."))
		fmt.Println()
		return
	}

	fmt.Println(ui.SuccessLine("Removed " + config.SkillName))
	fmt.Println(ui.Dim.Render("  " + paths.TargetDir))
	fmt.Println()
}
