package bundle

import (
	"os"
	"path/filepath"
	"testing"
)

const testSkill = `---
name: swift-code-review
description: Reviews Swift code.
version: 1.2.0
author: test
---

# Swift Code Review

Body content.
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestFindRoot_InStartDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestFile), testSkill)

	got, err := FindRoot(root)
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	if got != root {
		t.Errorf("FindRoot() = %v, want %v", got, root)
	}
}

func TestFindRoot_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestFile), testSkill)

	nested := filepath.Join(root, "cmd", "deep", "nested")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	got, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	if got != root {
		t.Errorf("FindRoot() = %v, want %v", got, root)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	start := t.TempDir()

	if _, err := FindRoot(start); err == nil {
		t.Error("FindRoot() error = nil, want error")
	}
}

func TestFindRoot_IgnoresDirectory(t *testing.T) {
	// A directory named SKILL.md does not mark a bundle root
	start := t.TempDir()
	if err := os.MkdirAll(filepath.Join(start, ManifestFile), 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if _, err := FindRoot(start); err == nil {
		t.Error("FindRoot() error = nil, want error")
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestFile), testSkill)

	b, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if b.Root != root {
		t.Errorf("Root = %v, want %v", b.Root, root)
	}
	if b.Meta.Name != "swift-code-review" {
		t.Errorf("Name = %v, want swift-code-review", b.Meta.Name)
	}
	if b.Meta.Version != "1.2.0" {
		t.Errorf("Version = %v, want 1.2.0", b.Meta.Version)
	}
	if b.Meta.Description == "" {
		t.Error("Description is empty")
	}
}

func TestLoad_MissingManifest(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load() error = nil, want error")
	}
}

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantName    string
		wantVersion string
		wantBody    string
		wantErr     bool
	}{
		{
			name:        "valid frontmatter",
			content:     "---\nname: test\nversion: 2.0.0\n---\n\nBody here.\n",
			wantName:    "test",
			wantVersion: "2.0.0",
			wantBody:    "Body here.\n",
		},
		{
			name:     "no frontmatter",
			content:  "# Just markdown\n",
			wantBody: "# Just markdown\n",
		},
		{
			name:     "unterminated frontmatter",
			content:  "---\nname: test\nno closing delimiter\n",
			wantBody: "---\nname: test\nno closing delimiter\n",
		},
		{
			name:    "invalid yaml",
			content: "---\nname: [unclosed\n---\nbody\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var meta Meta
			body, err := ParseFrontmatter([]byte(tt.content), &meta)

			if tt.wantErr {
				if err == nil {
					t.Error("ParseFrontmatter() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFrontmatter() error = %v", err)
			}

			if meta.Name != tt.wantName {
				t.Errorf("Name = %v, want %v", meta.Name, tt.wantName)
			}
			if meta.Version != tt.wantVersion {
				t.Errorf("Version = %v, want %v", meta.Version, tt.wantVersion)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestManifestIncludesSkillFile(t *testing.T) {
	found := false
	for _, name := range ManifestFiles {
		if name == ManifestFile {
			found = true
		}
	}
	if !found {
		t.Errorf("ManifestFiles %v does not include %s", ManifestFiles, ManifestFile)
	}
}
