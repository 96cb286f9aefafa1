// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedAgents(t *testing.T) {
	t.Parallel()

	agents := SupportedAgents()
	require.Len(t, agents, 4)

	ids := make([]AgentID, 0, len(agents))
	for _, a := range agents {
		ids = append(ids, a.ID)
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.ShortName)
		assert.NotEmpty(t, a.InstallPath)
		assert.NotEmpty(t, a.WinInstallPath)
	}
	assert.Equal(t, []AgentID{AgentClaude, AgentCodex, AgentGemini, AgentOpenCode}, ids)

	// Mutating the returned slice must not change the table.
	agents[0].Name = "changed"
	again, ok := LookupAgent(AgentClaude)
	require.True(t, ok)
	assert.Equal(t, "Claude Code", again.Name)
}

func TestLookupAgent(t *testing.T) {
	t.Parallel()

	a, ok := LookupAgent(AgentOpenCode)
	require.True(t, ok)
	assert.Equal(t, "~/.opencode/skill/", a.InstallPath)

	_, ok = LookupAgent("cursor")
	assert.False(t, ok)
}

func TestParseAgentIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []AgentID
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "claude", []AgentID{AgentClaude}, false},
		{"multiple with spaces", "claude, Codex ,gemini", []AgentID{AgentClaude, AgentCodex, AgentGemini}, false},
		{"blank entries skipped", "claude,,", []AgentID{AgentClaude}, false},
		{"unknown agent", "claude,cursor", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAgentIDs(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgent_InstallDir(t *testing.T) {
	t.Parallel()

	claude, ok := LookupAgent(AgentClaude)
	require.True(t, ok)

	tests := []struct {
		name string
		goos string
		home string
		want string
	}{
		{"linux", "linux", "/home/dev", "/home/dev/.claude/skills"},
		{"darwin", "darwin", "/Users/dev", "/Users/dev/.claude/skills"},
		{"windows", "windows", `C:\Users\dev`, `C:\Users\dev\.claude\skills`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, claude.InstallDir(tt.goos, tt.home))
		})
	}
}
