// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"
	"strings"
)

// AgentID identifies a downstream coding agent a skill can be installed into.
type AgentID string

// Supported agent identifiers.
const (
	AgentClaude   AgentID = "claude"
	AgentCodex    AgentID = "codex"
	AgentGemini   AgentID = "gemini"
	AgentOpenCode AgentID = "opencode"
)

// DefaultAgent is used when a caller does not name any agent.
const DefaultAgent = AgentClaude

// Agent describes a downstream agent and where it loads skills from.
type Agent struct {
	ID        AgentID `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	ShortName string  `json:"shortName" yaml:"shortName"`
	// InstallPath is the skills directory on Unix-like systems, "~" is the home directory.
	InstallPath string `json:"installPath" yaml:"installPath"`
	// WinInstallPath is the skills directory on Windows.
	WinInstallPath string `json:"winInstallPath" yaml:"winInstallPath"`
}

const (
	unixHome    = "~"
	windowsHome = "%USERPROFILE%"
)

var supportedAgents = []Agent{
	{
		ID:             AgentClaude,
		Name:           "Claude Code",
		ShortName:      "Claude",
		InstallPath:    "~/.claude/skills/",
		WinInstallPath: `%USERPROFILE%\.claude\skills\`,
	},
	{
		ID:             AgentCodex,
		Name:           "Codex CLI",
		ShortName:      "Codex",
		InstallPath:    "~/.codex/skills/",
		WinInstallPath: `%USERPROFILE%\.codex\skills\`,
	},
	{
		ID:             AgentGemini,
		Name:           "Gemini CLI",
		ShortName:      "Gemini",
		InstallPath:    "~/.gemini/skills/",
		WinInstallPath: `%USERPROFILE%\.gemini\skills\`,
	},
	{
		ID:             AgentOpenCode,
		Name:           "OpenCode",
		ShortName:      "OpenCode",
		InstallPath:    "~/.opencode/skill/",
		WinInstallPath: `%USERPROFILE%\.opencode\skill\`,
	},
}

// SupportedAgents returns a copy of the supported agent table in a stable order.
func SupportedAgents() []Agent {
	out := make([]Agent, len(supportedAgents))
	copy(out, supportedAgents)
	return out
}

// LookupAgent returns the agent with the given ID.
func LookupAgent(id AgentID) (Agent, bool) {
	for _, a := range supportedAgents {
		if a.ID == id {
			return a, true
		}
	}
	return Agent{}, false
}

// ParseAgentIDs parses a comma-separated list of agent IDs. Blank entries are
// skipped and unknown IDs are rejected. An empty list yields nil.
func ParseAgentIDs(s string) ([]AgentID, error) {
	var ids []AgentID
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id := AgentID(strings.ToLower(part))
		if _, ok := LookupAgent(id); !ok {
			return nil, fmt.Errorf("unsupported agent %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// InstallDir returns the agent's skills directory for the given GOOS with the
// home placeholder replaced by home. Trailing separators are removed.
func (a Agent) InstallDir(goos, home string) string {
	if goos == "windows" {
		p := strings.TrimSuffix(a.WinInstallPath, `\`)
		return strings.Replace(p, windowsHome, home, 1)
	}
	p := strings.TrimSuffix(a.InstallPath, "/")
	if strings.HasPrefix(p, unixHome+"/") {
		p = home + p[len(unixHome):]
	}
	return p
}
