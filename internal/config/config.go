package config

import (
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the subdirectory name under .config
	ConfigDir = "swiftscribe"
	// ReceiptFile is the filename for tracking the installed bundle
	ReceiptFile = "state.json"
	// SkillName is the fixed name of the skill this tool installs
	SkillName = "swift-code-review"
)

// Paths holds the filesystem locations swiftscribe reads and writes.
// All paths derive from a single home directory so tests can run
// against a temporary one.
type Paths struct {
	// Home is the user's home directory
	Home string

	// UserConfigDir is ~/.config/swiftscribe (or $XDG_CONFIG_HOME/swiftscribe)
	UserConfigDir string
	// ReceiptFile is UserConfigDir/state.json
	ReceiptFile string

	// Agent being targeted
	Agent Agent

	// AgentDir is the agent's config dir, e.g. ~/.claude
	AgentDir string
	// SkillsDir is the agent's skills dir, e.g. ~/.claude/skills
	SkillsDir string
	// TargetDir is SkillsDir/swift-code-review, the install destination
	TargetDir string
}

// GetPaths resolves paths for the given agent from the real home directory.
// $XDG_CONFIG_HOME overrides the receipt location when set.
func GetPaths(agent Agent) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	p := PathsFor(agent, home)

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		p.UserConfigDir = filepath.Join(configHome, ConfigDir)
		p.ReceiptFile = filepath.Join(p.UserConfigDir, ReceiptFile)
	}

	return p, nil
}

// PathsFor builds paths from an explicit home directory. Unknown agents
// fall back to the Claude layout.
func PathsFor(agent Agent, home string) *Paths {
	cfg := GetAgentConfig(agent)
	if cfg == nil {
		cfg = GetAgentConfig(AgentClaude)
	}

	userConfigDir := filepath.Join(home, ".config", ConfigDir)
	agentDir := filepath.Join(home, cfg.ConfigDir)
	skillsDir := filepath.Join(agentDir, cfg.SkillsDir)

	return &Paths{
		Home:          home,
		UserConfigDir: userConfigDir,
		ReceiptFile:   filepath.Join(userConfigDir, ReceiptFile),
		Agent:         agent,
		AgentDir:      agentDir,
		SkillsDir:     skillsDir,
		TargetDir:     filepath.Join(skillsDir, SkillName),
	}
}

// EnsureDirs creates the directories an install needs. The target dir
// itself is created by the installer as part of the wholesale replace.
func (p *Paths) EnsureDirs() error {
	dirs := []string{
		p.UserConfigDir,
		p.AgentDir,
		p.SkillsDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}
