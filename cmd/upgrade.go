package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/swiftscribe/swiftscribe/internal/bundle"
	"github.com/swiftscribe/swiftscribe/internal/ghclient"
	"github.com/swiftscribe/swiftscribe/internal/installer"
	"github.com/swiftscribe/swiftscribe/internal/ui"
)

// Canonical repository the bundle is published from.
const (
	canonicalOwner = "swiftscribe"
	canonicalRepo  = "swiftscribe"
	canonicalRef   = "main"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Update the installed bundle from GitHub",
	Long: `Fetch the bundle from its canonical GitHub repository and update the
installed copy when the published version differs from the installed one.

Uses GITHUB_TOKEN, GH_TOKEN, or the gh CLI token when available;
unauthenticated access works but is rate-limited.

Examples:
  swiftscribe upgrade
  swiftscribe upgrade --dry-run`,
	Args: cobra.NoArgs,
	Run:  runUpgrade,
}

var upgradeDry bool

func init() {
	upgradeCmd.Flags().BoolVar(&upgradeDry, "dry-run", false, "Check for updates without applying them")
}

func runUpgrade(cmd *cobra.Command, args []string) {
	paths := resolvePaths()

	receipt, err := installer.LoadReceipt(paths.ReceiptFile)
	if err != nil {
		exitWithError(err.Error())
	}
	if !receipt.Installed() {
		exitWithError("nothing installed; run 'swiftscribe install' first")
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Upgrading"))
	fmt.Println()
	fmt.Println(ui.InfoLine(fmt.Sprintf("Source: github.com/%s/%s@%s", canonicalOwner, canonicalRepo, canonicalRef)))
	fmt.Println()

	client := ghclient.New()
	ctx := context.Background()

	skillContent, err := client.GetContents(ctx, canonicalOwner, canonicalRepo, bundle.ManifestFile, canonicalRef)
	if err != nil {
		exitWithError(fmt.Sprintf("failed to fetch %s: %v", bundle.ManifestFile, err))
	}

	var meta bundle.Meta
	if _, err := bundle.ParseFrontmatter(skillContent, &meta); err != nil {
		exitWithError(err.Error())
	}

	if meta.Version != "" && meta.Version == receipt.BundleVersion {
		fmt.Println(ui.SuccessLine(fmt.Sprintf("Already up to date (%s)", receipt.BundleVersion)))
		fmt.Println(ui.PageFooter())
		return
	}

	installed := receipt.BundleVersion
	if installed == "" {
		installed = "unversioned"
	}
	fmt.Println(ui.InfoLine(fmt.Sprintf("Update available: %s → %s", installed, meta.Version)))

	if upgradeDry {
		fmt.Println()
		fmt.Println(ui.Info.Render("  Dry run complete."))
		fmt.Println(ui.PageFooter())
		return
	}
	fmt.Println()

	updated := &installer.Receipt{
		Version:       "1",
		Skill:         receipt.Skill,
		Agent:         receipt.Agent,
		BundleVersion: meta.Version,
		Source:        fmt.Sprintf("github.com/%s/%s@%s", canonicalOwner, canonicalRepo, canonicalRef),
		InstalledAt:   time.Now(),
	}

	var failed int
	write := func(rel string, data []byte) {
		path := filepath.Join(paths.TargetDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			exitWithError(fmt.Sprintf("failed to create directory: %v", err))
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			exitWithError(fmt.Sprintf("failed to write %s: %v", rel, err))
		}
		updated.Files = append(updated.Files, installer.InstalledFile{Path: rel, Hash: installer.HashBytes(data)})
		fmt.Println(ui.Muted.Render("    • " + rel))
	}

	// SKILL.md is already in hand
	write(bundle.ManifestFile, skillContent)

	for _, name := range bundle.ManifestFiles {
		if name == bundle.ManifestFile {
			continue
		}
		content, err := client.GetContents(ctx, canonicalOwner, canonicalRepo, name, canonicalRef)
		if err != nil {
			// Not published in the repo; skip like a missing manifest entry
			continue
		}
		write(name, content)
	}

	for _, dir := range bundle.ManifestDirs {
		if err := fetchTree(ctx, client, dir, dir, write); err != nil {
			fmt.Println(ui.WarningLine(fmt.Sprintf("skipping %s/: %v", dir, err)))
			failed++
		}
	}

	if err := installer.SaveReceipt(paths.ReceiptFile, updated); err != nil {
		exitWithError(fmt.Sprintf("failed to save receipt: %v", err))
	}

	fmt.Println()
	fmt.Println(ui.SuccessLine(fmt.Sprintf("Upgraded to %s (%d files)", meta.Version, len(updated.Files))))
	if failed > 0 {
		fmt.Println(ui.WarningLine(fmt.Sprintf("%d directory(ies) could not be fetched", failed)))
	}
	fmt.Println(ui.PageFooter())
}

// fetchTree downloads a repository directory recursively, handing each file
// to write with its path relative to the bundle root.
func fetchTree(ctx context.Context, client *ghclient.Client, repoPath, rel string, write func(rel string, data []byte)) error {
	entries, err := client.ListContents(ctx, canonicalOwner, canonicalRepo, repoPath, canonicalRef)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.GetName()
		if name == "" {
			continue
		}

		entryPath := repoPath + "/" + name
		entryRel := filepath.Join(rel, name)

		if entry.GetType() == "dir" {
			if err := fetchTree(ctx, client, entryPath, entryRel, write); err != nil {
				return err
			}
			continue
		}

		content, err := client.GetContents(ctx, canonicalOwner, canonicalRepo, entryPath, canonicalRef)
		if err != nil {
			return err
		}
		write(entryRel, content)
	}

	return nil
}
