package config

import (
	"os"
	"path/filepath"
)

// Agent represents a supported AI coding agent target.
type Agent string

const (
	AgentClaude   Agent = "claude"
	AgentOpenCode Agent = "opencode"
	AgentWindsurf Agent = "windsurf"
)

// AgentConfig holds the install layout for a specific agent.
type AgentConfig struct {
	Name        Agent
	DisplayName string
	ConfigDir   string // relative to home, e.g. ".claude"
	SkillsDir   string // relative to ConfigDir
}

// KnownAgents returns every agent swiftscribe can install for.
// Only agents with a SKILL.md-compatible skills directory are listed.
func KnownAgents() []AgentConfig {
	return []AgentConfig{
		{
			Name:        AgentClaude,
			DisplayName: "Claude Code",
			ConfigDir:   ".claude",
			SkillsDir:   "skills",
		},
		{
			Name:        AgentOpenCode,
			DisplayName: "OpenCode",
			ConfigDir:   ".opencode",
			SkillsDir:   "skills",
		},
		{
			Name:        AgentWindsurf,
			DisplayName: "Windsurf",
			ConfigDir:   ".windsurf",
			SkillsDir:   "skills",
		},
	}
}

// GetAgentConfig returns the config for a specific agent, or nil if unknown.
func GetAgentConfig(agent Agent) *AgentConfig {
	for _, a := range KnownAgents() {
		if a.Name == agent {
			return &a
		}
	}
	return nil
}

// DetectInstalledAgents returns agents whose config directory exists under home.
func DetectInstalledAgents(home string) []AgentConfig {
	var installed []AgentConfig
	for _, agent := range KnownAgents() {
		if _, err := os.Stat(filepath.Join(home, agent.ConfigDir)); err == nil {
			installed = append(installed, agent)
		}
	}
	return installed
}

// DefaultAgent returns the agent to target when none is specified.
// Prefers Claude, falls back to the first detected agent.
func DefaultAgent(home string) Agent {
	if _, err := os.Stat(filepath.Join(home, ".claude")); err == nil {
		return AgentClaude
	}

	installed := DetectInstalledAgents(home)
	if len(installed) > 0 {
		return installed[0].Name
	}

	// Default to Claude even if not detected
	return AgentClaude
}
