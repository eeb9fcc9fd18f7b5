package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/swiftscribe/swiftscribe/internal/bundle"
	"github.com/swiftscribe/swiftscribe/internal/config"
	"github.com/swiftscribe/swiftscribe/internal/installer"
	"github.com/swiftscribe/swiftscribe/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the installed bundle and any drift",
	Long: `Show what is installed for the target agent and whether the installed
files still match the install receipt.

Files edited or deleted after install are reported; a fresh 'swiftscribe
install' restores them.`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	paths := resolvePaths()

	receipt, err := installer.LoadReceipt(paths.ReceiptFile)
	if err != nil {
		exitWithError(err.Error())
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Status"))
	fmt.Println()

	if !receipt.Installed() {
		fmt.Println(ui.Muted.Render("  Not installed. Run 'swiftscribe install' to begin."))
		fmt.Println(ui.PageFooter())
		return
	}

	agentName := receipt.Agent
	if cfg := config.GetAgentConfig(config.Agent(receipt.Agent)); cfg != nil {
		agentName = cfg.DisplayName
	}

	fmt.Println("  " + ui.Highlight.Render(receipt.Skill))
	if receipt.BundleVersion != "" {
		fmt.Println(ui.Muted.Render("    Version:   " + receipt.BundleVersion))
	}
	fmt.Println(ui.Muted.Render("    Agent:     " + agentName))
	fmt.Println(ui.Muted.Render("    Installed: " + receipt.InstalledAt.Format(time.RFC822)))
	fmt.Println(ui.Muted.Render("    Path:      " + paths.TargetDir))
	fmt.Println()

	statuses, err := installer.Verify(paths.TargetDir, receipt)
	if err != nil {
		exitWithError(err.Error())
	}

	clean := true
	for _, s := range statuses {
		switch s.State {
		case installer.StateModified:
			clean = false
			fmt.Println(ui.WarningLine(s.Path + " (modified)"))
		case installer.StateMissing:
			clean = false
			fmt.Println(ui.ErrorLine(s.Path + " (missing)"))
		}
	}

	if clean {
		fmt.Println(ui.SuccessLine(fmt.Sprintf("%d file(s) match the install receipt", len(statuses))))
	} else {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  Run 'swiftscribe install' to restore the bundle."))
	}

	// Point out a newer local bundle when one is findable
	if root, err := bundle.Locate(); err == nil {
		if b, err := bundle.Load(root); err == nil && b.Meta.Version != "" && b.Meta.Version != receipt.BundleVersion {
			fmt.Println()
			fmt.Println(ui.InfoLine(fmt.Sprintf("Bundle %s available at %s — run 'swiftscribe install'", b.Meta.Version, root)))
		}
	}

	fmt.Println(ui.PageFooter())
}
