// Package bundle locates the distributable skill bundle on disk and reads
// its metadata. The bundle root is the directory containing SKILL.md; the
// installer binary ships inside the bundle, so the root is found by walking
// up from the executable's own location.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFile marks the bundle root and carries the skill's frontmatter.
const ManifestFile = "SKILL.md"

// ManifestFiles are the top-level files copied on install, when present.
// A missing entry is skipped, not an error.
var ManifestFiles = []string{
	ManifestFile,
	"README.md",
	"CHANGELOG.md",
	"CONTRIBUTING.md",
	"LICENSE",
}

// ManifestDirs are the directories copied recursively on install, when present.
var ManifestDirs = []string{
	"references",
}

// Meta is the YAML frontmatter of SKILL.md.
type Meta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Author      string `yaml:"author,omitempty"`
}

// Bundle is a located package root plus its parsed metadata.
type Bundle struct {
	Root string
	Meta Meta
}

// FindRoot walks up from start until it finds a directory containing
// SKILL.md. Returns an error if the filesystem root is reached first.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, ManifestFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found in %s or any parent directory", ManifestFile, start)
}

// Locate finds the bundle root, trying the executable's directory first
// and falling back to the working directory (covers `go run`).
func Locate() (string, error) {
	var firstErr error

	if exe, err := os.Executable(); err == nil {
		root, err := FindRoot(filepath.Dir(exe))
		if err == nil {
			return root, nil
		}
		firstErr = err
	}

	cwd, err := os.Getwd()
	if err != nil {
		if firstErr != nil {
			return "", firstErr
		}
		return "", err
	}

	root, err := FindRoot(cwd)
	if err == nil {
		return root, nil
	}
	if firstErr != nil {
		return "", firstErr
	}
	return "", err
}

// Load reads the bundle at root and parses its SKILL.md frontmatter.
func Load(root string) (*Bundle, error) {
	content, err := os.ReadFile(filepath.Join(root, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ManifestFile, err)
	}

	var meta Meta
	if _, err := ParseFrontmatter(content, &meta); err != nil {
		return nil, err
	}

	return &Bundle{Root: root, Meta: meta}, nil
}

// ParseFrontmatter extracts YAML frontmatter from content into target.
// Returns the body content. Content without a frontmatter block is
// returned as-is with target untouched.
func ParseFrontmatter(content []byte, target any) (string, error) {
	text := string(content)

	if !strings.HasPrefix(text, "---") {
		return text, nil
	}

	rest := strings.TrimPrefix(text[3:], "\n")

	idx := strings.Index(rest, "\n---")
	if idx == -1 {
		return text, nil
	}

	yamlContent := rest[:idx]
	body := strings.TrimPrefix(rest[idx+4:], "\n")

	if err := yaml.Unmarshal([]byte(yamlContent), target); err != nil {
		return "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return body, nil
}
