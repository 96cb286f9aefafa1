// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillhub-club/skillhub-go/client"
	"github.com/skillhub-club/skillhub-go/config"
	"github.com/skillhub-club/skillhub-go/env"
	"github.com/skillhub-club/skillhub-go/httperr"
	"github.com/skillhub-club/skillhub-go/install"
)

// app carries what every command needs once the root command has resolved
// configuration.
type app struct {
	env    env.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	baseURL    string
	token      string
	timeout    time.Duration
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
	client *client.Client

	installOpts []install.Option
}

// NewRootCommand builds the skillhub command tree. Configuration is read
// through r; output goes to stdout and diagnostics to stderr.
func NewRootCommand(r env.Reader, stdout, stderr io.Writer) *cobra.Command {
	return newRootCommand(&app{env: r, stdout: stdout, stderr: stderr})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "skillhub",
		Short: "Search, browse and install skills from SkillHub",
		Long: `skillhub is a command line client for the SkillHub skill catalog.

It searches and browses published skills, shows their evaluations and
installs their SKILL.md into local coding agents such as Claude Code,
Codex CLI, Gemini CLI and OpenCode.

Settings are read from ` + config.DefaultFilePath() + `
and SKILLHUB_* environment variables; flags override both.`,
		Version:           client.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to the config file (default "+config.DefaultFilePath()+")")
	flags.StringVar(&a.baseURL, "base-url", "", "SkillHub API base URL")
	flags.StringVar(&a.token, "token", "", "API token, overrides the configured one")
	flags.DurationVar(&a.timeout, "timeout", 0, "Per-request timeout, e.g. 10s")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log requests at debug level")

	root.AddCommand(
		a.newSearchCommand(),
		a.newCatalogCommand(),
		a.newPopularCommand(),
		a.newRecentCommand(),
		a.newCategoriesCommand(),
		a.newShowCommand(),
		a.newInstallInfoCommand(),
		a.newContentCommand(),
		a.newInstallCommand(),
		a.newUninstallCommand(),
		a.newAgentsCommand(),
		a.newWhoamiCommand(),
		a.newFavoritesCommand(),
		a.newLoginCommand(),
		a.newLogoutCommand(),
	)
	return root
}

// Execute runs the command tree against the process environment.
func Execute(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	root := NewRootCommand(&env.OSReader{}, stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath == "" {
		a.configPath = config.DefaultFilePath()
	}

	cfg, err := config.Load(a.configPath, a.env)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}
	if a.token != "" {
		cfg.Token = a.token
	}
	if a.timeout > 0 {
		cfg.Timeout = a.timeout
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.NewLogger(a.stderr)
	if err != nil {
		return err
	}

	c, err := client.New(append(cfg.ClientOptions(), client.WithLogger(logger))...)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.client = c
	logger.DebugContext(cmd.Context(), "configuration loaded",
		"config", a.configPath, "base_url", cfg.BaseURL, "authenticated", c.IsAuthenticated())
	return nil
}

// FormatError renders an error for the terminal, adding the HTTP status and
// code of client failures.
func FormatError(err error) string {
	var apiErr *httperr.Error
	if !errors.As(err, &apiErr) {
		return "Error: " + err.Error()
	}

	msg := "Error: " + err.Error()
	switch {
	case apiErr.Code != "" && apiErr.Status != 0:
		msg += fmt.Sprintf(" (HTTP %d, %s)", apiErr.Status, apiErr.Code)
	case apiErr.Code != "":
		msg += fmt.Sprintf(" (%s)", apiErr.Code)
	case apiErr.Status != 0:
		msg += fmt.Sprintf(" (HTTP %d)", apiErr.Status)
	}
	if apiErr.Code == httperr.CodeUnauthorized {
		msg += "\nRun 'skillhub login --token <token>' or set SKILLHUB_TOKEN."
	}
	return msg
}
