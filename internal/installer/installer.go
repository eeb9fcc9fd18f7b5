// Package installer synchronizes the skill bundle into an agent's skills
// directory and reverses that operation. An install is a wholesale replace:
// the previous target directory is deleted before the new copy, so stale
// files never survive an update.
package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/swiftscribe/swiftscribe/internal/bundle"
	"github.com/swiftscribe/swiftscribe/internal/config"
)

// Install copies the manifested files and directories of b into
// paths.TargetDir, replacing any previous installation, and writes a
// receipt. Manifested entries absent from the bundle are skipped.
//
// The operation is not transactional: a mid-copy failure can leave a
// partially populated target. It is idempotent and re-runnable, so the
// recovery is simply to run install again.
func Install(b *bundle.Bundle, paths *config.Paths) (*Receipt, error) {
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	if err := os.RemoveAll(paths.TargetDir); err != nil {
		return nil, fmt.Errorf("failed to remove previous install: %w", err)
	}
	if err := os.MkdirAll(paths.TargetDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", paths.TargetDir, err)
	}

	receipt := &Receipt{
		Version:       "1",
		Skill:         config.SkillName,
		Agent:         string(paths.Agent),
		BundleVersion: b.Meta.Version,
		Source:        b.Root,
		InstalledAt:   time.Now(),
	}

	for _, name := range bundle.ManifestFiles {
		src := filepath.Join(b.Root, name)
		if _, err := os.Stat(src); err != nil {
			continue // absent from the bundle, not an error
		}

		hash, err := copyFile(src, filepath.Join(paths.TargetDir, name))
		if err != nil {
			return nil, err
		}
		receipt.Files = append(receipt.Files, InstalledFile{Path: name, Hash: hash})
	}

	for _, name := range bundle.ManifestDirs {
		src := filepath.Join(b.Root, name)
		info, err := os.Stat(src)
		if err != nil || !info.IsDir() {
			continue
		}

		if err := copyTree(src, filepath.Join(paths.TargetDir, name), name, receipt); err != nil {
			return nil, err
		}
	}

	if err := SaveReceipt(paths.ReceiptFile, receipt); err != nil {
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	return receipt, nil
}

// Uninstall removes the target directory subtree and clears the receipt.
// Returns false when there was nothing to remove.
func Uninstall(paths *config.Paths) (bool, error) {
	if err := ClearReceipt(paths.ReceiptFile); err != nil {
		return false, fmt.Errorf("failed to clear receipt: %w", err)
	}

	if _, err := os.Stat(paths.TargetDir); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	if err := os.RemoveAll(paths.TargetDir); err != nil {
		return false, fmt.Errorf("failed to remove %s: %w", paths.TargetDir, err)
	}

	return true, nil
}

// copyTree recursively copies the subtree at src into dst, recording each
// copied file in the receipt under rel.
func copyTree(src, dst, rel string, receipt *Receipt) error {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		entryRel := filepath.Join(rel, entry.Name())

		if entry.IsDir() {
			if err := copyTree(srcPath, dstPath, entryRel, receipt); err != nil {
				return err
			}
			continue
		}

		hash, err := copyFile(srcPath, dstPath)
		if err != nil {
			return err
		}
		receipt.Files = append(receipt.Files, InstalledFile{Path: entryRel, Hash: hash})
	}

	return nil
}

// copyFile copies src to dst, overwriting dst if it exists, and returns
// the sha256 of the copied content.
func copyFile(src, dst string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", src, err)
	}

	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dst, err)
	}

	return HashBytes(data), nil
}

// FileState classifies an installed file against the receipt.
type FileState string

const (
	StateOK       FileState = "ok"
	StateModified FileState = "modified"
	StateMissing  FileState = "missing"
)

// FileStatus is the verification result for one receipt entry.
type FileStatus struct {
	Path  string
	State FileState
}

// Verify compares the target directory's contents against the receipt.
// Files in the target but not in the receipt are ignored; the next
// install removes them wholesale anyway.
func Verify(targetDir string, receipt *Receipt) ([]FileStatus, error) {
	var statuses []FileStatus

	for _, f := range receipt.Files {
		path := filepath.Join(targetDir, f.Path)

		hash, err := HashFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				statuses = append(statuses, FileStatus{Path: f.Path, State: StateMissing})
				continue
			}
			return nil, err
		}

		state := StateOK
		if hash != f.Hash {
			state = StateModified
		}
		statuses = append(statuses, FileStatus{Path: f.Path, State: state})
	}

	return statuses, nil
}
