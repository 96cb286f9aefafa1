// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package install writes SkillHub skills into the skill directories of local
coding agents.

A skill is installed as <agent skills dir>/<slug>/SKILL.md, where the agent
directory comes from [types.SupportedAgents]:

	inst, err := install.New(c) // c is a *client.Client
	results, err := inst.Install(ctx, "pdf-processor",
		[]types.AgentID{types.AgentClaude, types.AgentCodex})
	for _, r := range results {
		fmt.Println(r.Agent, r.Path, r.Status, r.Digest)
	}

Every result carries the content digest of the written file (see
[github.com/opencontainers/go-digest]); [Verify] checks an installed file
against it. Re-installing identical content reports [StatusUnchanged].
*/
package install
