// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillhub-club/skillhub-go/install"
	"github.com/skillhub-club/skillhub-go/types"
)

func (a *app) newShowCommand() *cobra.Command {
	var (
		content bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "show <id-or-slug>",
		Short: "Show a skill with its evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.client.GetSkill(cmd.Context(), args[0], content)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(a.stdout, detail)
			}
			return printSkillDetail(a.stdout, detail)
		},
	}

	cmd.Flags().BoolVar(&content, "content", false, "Include the raw SKILL.md")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	return cmd
}

func printSkillDetail(w io.Writer, d *types.SkillDetail) error {
	s := &d.Skill
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", s.Name)
	fmt.Fprintf(tw, "Slug:\t%s\n", s.Slug)
	fmt.Fprintf(tw, "Author:\t%s\n", orDash(s.Author))
	fmt.Fprintf(tw, "Category:\t%s\n", s.CategoryName())
	if len(s.Tags) > 0 {
		fmt.Fprintf(tw, "Tags:\t%s\n", strings.Join(s.Tags, ", "))
	}
	fmt.Fprintf(tw, "Score:\t%s\n", formatFloat(s.CompositeScore))
	fmt.Fprintf(tw, "Stars:\t%s\n", formatInt(s.GithubStars))
	fmt.Fprintf(tw, "Repository:\t%s\n", orDash(s.RepoURL))
	if s.SkillPath != nil {
		fmt.Fprintf(tw, "Path:\t%s\n", *s.SkillPath)
	}
	fmt.Fprintf(tw, "Tokens:\t%d\n", d.TokenStats.TotalTokens)
	if err := tw.Flush(); err != nil {
		return err
	}

	if desc := deref(s.Description); desc != "" {
		fmt.Fprintf(w, "\n%s\n", desc)
	}

	if e := d.Evaluation; e != nil {
		rating := "-"
		if e.OverallRating != nil {
			rating = string(*e.OverallRating)
		}
		fmt.Fprintf(w, "\nEvaluation: %s (%s)\n", rating, formatFloat(e.OverallScore))
		if summary := deref(e.Summary); summary != "" {
			fmt.Fprintf(w, "%s\n", summary)
		}
		for _, p := range e.Pros {
			fmt.Fprintf(w, "  + %s\n", p)
		}
		for _, c := range e.Cons {
			fmt.Fprintf(w, "  - %s\n", c)
		}
	}

	if s.SkillMDRaw != nil {
		fmt.Fprintf(w, "\n%s\n", *s.SkillMDRaw)
	}
	return nil
}

// agentFlag is the --agents flag shared by install commands.
type agentFlag struct {
	raw string
}

func (f *agentFlag) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.raw, "agents", "a", string(types.DefaultAgent),
		"Comma-separated agents: claude, codex, gemini, opencode")
}

func (f *agentFlag) ids() ([]types.AgentID, error) {
	return types.ParseAgentIDs(f.raw)
}

func (a *app) newInstallInfoCommand() *cobra.Command {
	var (
		agents  agentFlag
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "install-info <id-or-slug>",
		Short: "Show install paths and scripts for a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := agents.ids()
			if err != nil {
				return err
			}
			info, err := a.client.GetInstallInfo(cmd.Context(), args[0], ids)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(a.stdout, info)
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "AGENT\tUNIX PATH\tWINDOWS PATH")
			for _, ag := range info.Install.Agents {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", ag.Name, ag.UnixPath, ag.WindowsPath)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "\nUnix:    %s\nWindows: %s\n",
				info.OneLiners.Unix, info.OneLiners.Windows)
			return err
		},
	}

	agents.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	return cmd
}

func (a *app) newContentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "content <id-or-slug>",
		Short: "Print the raw SKILL.md of a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := a.client.GetSkillContent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = io.WriteString(a.stdout, content)
			return err
		},
	}
}

func (a *app) newInstaller() (*install.Installer, error) {
	opts := append([]install.Option{install.WithLogger(a.logger)}, a.installOpts...)
	return install.New(a.client, opts...)
}

func (a *app) newInstallCommand() *cobra.Command {
	var (
		agents  agentFlag
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "install <slug>",
		Short: "Install a skill into local agents",
		Long: `Download the SKILL.md of a skill and write it into the skills directory
of each selected agent, e.g. ~/.claude/skills/<slug>/SKILL.md.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := agents.ids()
			if err != nil {
				return err
			}
			inst, err := a.newInstaller()
			if err != nil {
				return err
			}
			results, err := inst.Install(cmd.Context(), args[0], ids)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(a.stdout, results)
			}
			for _, r := range results {
				if _, err := fmt.Fprintf(a.stdout, "%-9s %-9s %s\n", r.Status, r.Agent, r.Path); err != nil {
					return err
				}
			}
			return nil
		},
	}

	agents.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	return cmd
}

func (a *app) newUninstallCommand() *cobra.Command {
	var agents agentFlag

	cmd := &cobra.Command{
		Use:   "uninstall <slug>",
		Short: "Remove an installed skill from local agents",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ids, err := agents.ids()
			if err != nil {
				return err
			}
			inst, err := a.newInstaller()
			if err != nil {
				return err
			}
			removed, err := inst.Uninstall(args[0], ids)
			if err != nil {
				return err
			}
			if len(removed) == 0 {
				_, err = fmt.Fprintf(a.stdout, "%s is not installed\n", args[0])
				return err
			}
			for _, dir := range removed {
				if _, err := fmt.Fprintf(a.stdout, "removed %s\n", dir); err != nil {
					return err
				}
			}
			return nil
		},
	}

	agents.register(cmd)
	return cmd
}

func (a *app) newAgentsCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "agents",
		Short: "List supported agents and their skill directories",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			agents := types.SupportedAgents()
			if jsonOut {
				return writeJSON(a.stdout, agents)
			}
			tw := tabwriter.NewWriter(a.stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tUNIX PATH\tWINDOWS PATH")
			for _, ag := range agents {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ag.ID, ag.Name, ag.InstallPath, ag.WinInstallPath)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	return cmd
}
