package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swiftscribe/swiftscribe/internal/bundle"
	"github.com/swiftscribe/swiftscribe/internal/config"
	"github.com/swiftscribe/swiftscribe/internal/installer"
	"github.com/swiftscribe/swiftscribe/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for install problems",
	Long: `Verify that the bundle is discoverable, an agent is available, and the
current installation (if any) is intact.`,
	Args: cobra.NoArgs,
	Run:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println(ui.SectionHeader("Diagnosing"))
	fmt.Println()

	healthy := true

	// Bundle discoverable and parseable
	root, err := bundle.Locate()
	if err != nil {
		healthy = false
		fmt.Println(ui.ErrorLine("bundle: " + err.Error()))
	} else if b, err := bundle.Load(root); err != nil {
		healthy = false
		fmt.Println(ui.ErrorLine("bundle: " + err.Error()))
	} else {
		version := b.Meta.Version
		if version == "" {
			version = "unversioned"
		}
		fmt.Println(ui.SuccessLine(fmt.Sprintf("bundle %s (%s) at %s", b.Meta.Name, version, root)))
	}

	// Agent config directories
	home, err := os.UserHomeDir()
	if err != nil {
		exitWithError(err.Error())
	}

	agents := config.DetectInstalledAgents(home)
	if len(agents) == 0 {
		healthy = false
		fmt.Println(ui.WarningLine("no agent config directories found (expected e.g. ~/.claude)"))
	}
	for _, a := range agents {
		fmt.Println(ui.SuccessLine(fmt.Sprintf("agent detected: %s (~/%s)", a.DisplayName, a.ConfigDir)))
	}

	// Receipt consistency for the selected agent
	paths := resolvePaths()
	receipt, err := installer.LoadReceipt(paths.ReceiptFile)
	if err != nil {
		healthy = false
		fmt.Println(ui.ErrorLine("receipt: " + err.Error()))
	} else if receipt.Installed() {
		statuses, err := installer.Verify(paths.TargetDir, receipt)
		if err != nil {
			exitWithError(err.Error())
		}

		drifted := 0
		for _, s := range statuses {
			if s.State != installer.StateOK {
				drifted++
			}
		}

		if drifted == 0 {
			fmt.Println(ui.SuccessLine(fmt.Sprintf("install intact (%d files)", len(statuses))))
		} else {
			healthy = false
			fmt.Println(ui.WarningLine(fmt.Sprintf("%d installed file(s) drifted — 'swiftscribe status' has details", drifted)))
		}
	} else {
		fmt.Println(ui.InfoLine("not installed for " + string(paths.Agent)))
	}

	fmt.Println()
	if healthy {
		fmt.Println(ui.SuccessLine("No problems found"))
	} else {
		fmt.Println(ui.WarningLine("Problems found, see above"))
	}
	fmt.Println(ui.PageFooter())
}
