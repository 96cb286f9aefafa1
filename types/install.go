// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package types

// InstallFormat is the representation requested from the install endpoint.
type InstallFormat string

// Install formats.
const (
	InstallFormatJSON       InstallFormat = "json"
	InstallFormatRaw        InstallFormat = "raw"
	InstallFormatShell      InstallFormat = "sh"
	InstallFormatPowerShell InstallFormat = "ps1"
)

// InstallAgentInfo is the install location of a skill for one agent.
type InstallAgentInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UnixPath    string `json:"unix_path"`
	WindowsPath string `json:"windows_path"`
}

// InstallSkillRef identifies the skill an InstallInfo belongs to.
type InstallSkillRef struct {
	ID        string  `json:"id"`
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	RepoURL   string  `json:"repo_url"`
	SkillPath *string `json:"skill_path,omitempty"`
}

// InstallPayload carries the content to install and where to put it.
type InstallPayload struct {
	Agents     []InstallAgentInfo `json:"agents"`
	Content    string             `json:"content"`
	ContentURL string             `json:"content_url"`
}

// InstallScripts holds generated install scripts.
type InstallScripts struct {
	Bash       string `json:"bash"`
	PowerShell string `json:"powershell"`
}

// InstallOneLiners holds single-command install snippets.
type InstallOneLiners struct {
	Unix    string `json:"unix"`
	Windows string `json:"windows"`
}

// InstallInfo is the structured response of the install endpoint.
type InstallInfo struct {
	Skill     InstallSkillRef  `json:"skill"`
	Install   InstallPayload   `json:"install"`
	Scripts   InstallScripts   `json:"scripts"`
	OneLiners InstallOneLiners `json:"one_liners"`
}
