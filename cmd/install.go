package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swiftscribe/swiftscribe/internal/config"
	"github.com/swiftscribe/swiftscribe/internal/installer"
	"github.com/swiftscribe/swiftscribe/internal/ui"
)

var installCmd = &cobra.Command{
	Use:     "install",
	Aliases: []string{"update"},
	Short:   "Install or update the skill bundle",
	Long: `Install the swift-code-review skill into the target agent's skills
directory.

Any previous installation is replaced wholesale: the old target directory
is deleted before the new copy, so files from earlier versions never
linger. Running install again is always safe.

Examples:
  swiftscribe                      # same as 'swiftscribe install'
  swiftscribe install
  swiftscribe install --agent opencode`,
	Args: cobra.NoArgs,
	Run:  runInstall,
}

func runInstall(cmd *cobra.Command, args []string) {
	paths := resolvePaths()
	b := locateBundle()

	fmt.Println()
	fmt.Println(ui.SectionHeader("Installing"))
	fmt.Println()
	fmt.Println(ui.InfoLine("Bundle: " + b.Root))

	agentCfg := config.GetAgentConfig(paths.Agent)
	fmt.Println(ui.Muted.Render("  Target agent: " + agentCfg.DisplayName))
	fmt.Println()

	receipt, err := installer.Install(b, paths)
	if err != nil {
		exitWithError(err.Error())
	}

	for _, f := range receipt.Files {
		fmt.Println(ui.Muted.Render("    • " + f.Path))
	}

	fmt.Println()
	version := b.Meta.Version
	if version == "" {
		version = "(unversioned)"
	}
	fmt.Println(ui.SuccessLine(fmt.Sprintf("Installed %s %s (%d files)", config.SkillName, version, len(receipt.Files))))
	fmt.Println(ui.Dim.Render("  " + paths.TargetDir))
	fmt.Println(ui.PageFooter())
}
