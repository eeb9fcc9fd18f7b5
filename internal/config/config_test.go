package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathsFor(t *testing.T) {
	tests := []struct {
		name          string
		agent         Agent
		wantAgentDir  string
		wantSkillsDir string
	}{
		{
			name:          "claude",
			agent:         AgentClaude,
			wantAgentDir:  ".claude",
			wantSkillsDir: filepath.Join(".claude", "skills"),
		},
		{
			name:          "opencode",
			agent:         AgentOpenCode,
			wantAgentDir:  ".opencode",
			wantSkillsDir: filepath.Join(".opencode", "skills"),
		},
		{
			name:          "unknown falls back to claude layout",
			agent:         Agent("mystery"),
			wantAgentDir:  ".claude",
			wantSkillsDir: filepath.Join(".claude", "skills"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			p := PathsFor(tt.agent, home)

			if p.Home != home {
				t.Errorf("Home = %v, want %v", p.Home, home)
			}
			if want := filepath.Join(home, tt.wantAgentDir); p.AgentDir != want {
				t.Errorf("AgentDir = %v, want %v", p.AgentDir, want)
			}
			if want := filepath.Join(home, tt.wantSkillsDir); p.SkillsDir != want {
				t.Errorf("SkillsDir = %v, want %v", p.SkillsDir, want)
			}
			if want := filepath.Join(home, tt.wantSkillsDir, SkillName); p.TargetDir != want {
				t.Errorf("TargetDir = %v, want %v", p.TargetDir, want)
			}
			if want := filepath.Join(home, ".config", ConfigDir, ReceiptFile); p.ReceiptFile != want {
				t.Errorf("ReceiptFile = %v, want %v", p.ReceiptFile, want)
			}
		})
	}
}

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()
	p := PathsFor(AgentClaude, home)

	if err := p.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs() error = %v", err)
	}

	for _, dir := range []string{p.UserConfigDir, p.AgentDir, p.SkillsDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("Stat(%s) error = %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}

	// Target dir is the installer's to create
	if _, err := os.Stat(p.TargetDir); !os.IsNotExist(err) {
		t.Error("EnsureDirs() created the target dir, want absent")
	}
}

func TestEnsureDirs_Idempotent(t *testing.T) {
	p := PathsFor(AgentClaude, t.TempDir())

	for i := 0; i < 2; i++ {
		if err := p.EnsureDirs(); err != nil {
			t.Fatalf("EnsureDirs() iteration %d error = %v", i, err)
		}
	}
}
