// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillhub-club/skillhub-go/config"
	"github.com/skillhub-club/skillhub-go/filter"
)

func (a *app) newWhoamiCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the user the token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.client.GetCurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(a.stdout, user)
			}
			name := deref(user.Name)
			if name == "" {
				name = deref(user.Email)
			}
			_, err = fmt.Fprintf(a.stdout, "%s (%s, %s tier)\n", orDash(name), user.ID, user.Tier)
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	return cmd
}

func (a *app) newFavoritesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite skills",
		Args:  cobra.NoArgs,
	}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List favorite skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := lf.compile()
			if err != nil {
				return err
			}
			skills, err := a.client.GetFavorites(cmd.Context())
			if err != nil {
				return err
			}
			if skills, err = filter.Skills(f, skills); err != nil {
				return err
			}
			if lf.jsonOut {
				return writeJSON(a.stdout, skills)
			}
			return printSkillsTable(a.stdout, skills)
		},
	}
	lf.register(list)

	add := &cobra.Command{
		Use:   "add <skill-id>",
		Short: "Add a skill to favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.AddFavorite(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(a.stdout, "added %s to favorites\n", args[0])
			return err
		},
	}

	remove := &cobra.Command{
		Use:     "remove <skill-id>",
		Aliases: []string{"rm"},
		Short:   "Remove a skill from favorites",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.RemoveFavorite(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(a.stdout, "removed %s from favorites\n", args[0])
			return err
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func (a *app) newLoginCommand() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify an API token and store it in the config file",
		Long: `Verify an API token against the service and store it in the config file.

The token is taken from --token, or read from standard input with --stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token := a.token
			if fromStdin {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("reading token: %w", err)
				}
				token = strings.TrimSpace(line)
				a.client.SetToken(token)
			}
			if token == "" {
				return errors.New("no token given, use --token or --stdin")
			}

			user, err := a.client.GetCurrentUser(cmd.Context())
			if err != nil {
				return fmt.Errorf("verifying token: %w", err)
			}
			if err := config.SaveToken(a.configPath, token); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "logged in as %s, token saved to %s\n",
				orDash(deref(user.Email)), a.configPath)
			return err
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the token from standard input")
	return cmd
}

func (a *app) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API token",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := config.SaveToken(a.configPath, ""); err != nil {
				return err
			}
			_, err := fmt.Fprintf(a.stdout, "token removed from %s\n", a.configPath)
			return err
		},
	}
}
