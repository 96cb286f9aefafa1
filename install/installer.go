// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package install

import (
	"context"
	_ "crypto/sha256" // registers the digest algorithm
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/opencontainers/go-digest"

	"github.com/skillhub-club/skillhub-go/client"
	"github.com/skillhub-club/skillhub-go/types"
	slugval "github.com/skillhub-club/skillhub-go/validation/slug"
)

// SkillFileName is the file an agent loads a skill from.
const SkillFileName = "SKILL.md"

// ErrInvalidSlug is returned for slugs that cannot name a directory.
var ErrInvalidSlug = errors.New("invalid skill slug")

// ContentFetcher retrieves the raw SKILL.md of a skill. *client.Client implements it.
type ContentFetcher interface {
	GetSkillContent(ctx context.Context, idOrSlug string, opts ...client.RequestOption) (string, error)
}

// Status describes what an install did to a skill file.
type Status string

// Install outcomes.
const (
	StatusCreated   Status = "created"
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
)

// Result reports the installation of a skill for one agent.
type Result struct {
	Agent  types.AgentID `json:"agent"`
	Path   string        `json:"path"`
	Digest digest.Digest `json:"digest"`
	Size   int           `json:"size"`
	Status Status        `json:"status"`
}

// Installer writes skills into agent skill directories.
type Installer struct {
	fetcher ContentFetcher
	homeDir string
	goos    string
	logger  *slog.Logger
}

// Option configures an Installer.
type Option func(*Installer)

// WithHomeDir sets the home directory agent paths are resolved against.
// The default is the current user's home directory.
func WithHomeDir(dir string) Option {
	return func(i *Installer) {
		i.homeDir = dir
	}
}

// WithOS selects which agent path table is used, "windows" or anything else.
// The default is runtime.GOOS.
func WithOS(goos string) Option {
	return func(i *Installer) {
		i.goos = goos
	}
}

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(i *Installer) {
		if l != nil {
			i.logger = l
		}
	}
}

// New creates an Installer that fetches content with fetcher.
func New(fetcher ContentFetcher, opts ...Option) (*Installer, error) {
	i := &Installer{
		fetcher: fetcher,
		goos:    runtime.GOOS,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(i)
	}

	if i.homeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		i.homeDir = home
	}
	return i, nil
}

// Path returns where the skill file for slug is installed for agent.
func (i *Installer) Path(agent types.AgentID, slug string) (string, error) {
	if err := validateSlug(slug); err != nil {
		return "", err
	}
	a, ok := types.LookupAgent(agent)
	if !ok {
		return "", fmt.Errorf("unsupported agent %q", agent)
	}
	return filepath.Join(a.InstallDir(i.goos, i.homeDir), slug, SkillFileName), nil
}

// Install fetches the SKILL.md of slug once and writes it for every agent.
// With no agents, types.DefaultAgent is used.
func (i *Installer) Install(
	ctx context.Context, slug string, agents []types.AgentID, opts ...client.RequestOption,
) ([]Result, error) {
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if i.fetcher == nil {
		return nil, errors.New("installer has no content fetcher")
	}

	content, err := i.fetcher.GetSkillContent(ctx, slug, opts...)
	if err != nil {
		return nil, fmt.Errorf("fetching %s content: %w", slug, err)
	}
	return i.WriteContent(slug, []byte(content), agents)
}

// WriteContent writes content as the skill file of slug for every agent.
// A file that already holds the same content is left untouched.
func (i *Installer) WriteContent(slug string, content []byte, agents []types.AgentID) ([]Result, error) {
	if len(agents) == 0 {
		agents = []types.AgentID{types.DefaultAgent}
	}

	if fm, err := ParseFrontmatter(content); err != nil {
		i.logger.Warn("skill content has no valid frontmatter", "slug", slug, "error", err)
	} else if fm.Name != "" && fm.Name != slug {
		i.logger.Debug("skill name differs from slug", "slug", slug, "name", fm.Name)
	}

	d := digest.FromBytes(content)
	results := make([]Result, 0, len(agents))
	for _, agent := range agents {
		path, err := i.Path(agent, slug)
		if err != nil {
			return results, err
		}

		status, err := writeIfChanged(path, content, d)
		if err != nil {
			return results, fmt.Errorf("installing %s for %s: %w", slug, agent, err)
		}

		i.logger.Info("skill installed",
			"slug", slug, "agent", agent, "path", path, "status", status, "digest", d)
		results = append(results, Result{
			Agent:  agent,
			Path:   path,
			Digest: d,
			Size:   len(content),
			Status: status,
		})
	}
	return results, nil
}

// Uninstall removes the skill directory of slug for every agent and returns
// the directories that were removed. Missing directories are skipped.
func (i *Installer) Uninstall(slug string, agents []types.AgentID) ([]string, error) {
	if len(agents) == 0 {
		agents = []types.AgentID{types.DefaultAgent}
	}

	var removed []string
	for _, agent := range agents {
		path, err := i.Path(agent, slug)
		if err != nil {
			return removed, err
		}
		dir := filepath.Dir(path)
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return removed, fmt.Errorf("removing %s: %w", dir, err)
		}
		i.logger.Info("skill removed", "slug", slug, "agent", agent, "path", dir)
		removed = append(removed, dir)
	}
	return removed, nil
}

// Verify reports whether the installed file at path holds content with digest want.
func Verify(path string, want digest.Digest) (bool, error) {
	if err := want.Validate(); err != nil {
		return false, fmt.Errorf("invalid digest: %w", err)
	}
	f, err := os.Open(path) //nolint:gosec // path comes from Installer.Path
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	got, err := want.Algorithm().FromReader(f)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return got == want, nil
}

func writeIfChanged(path string, content []byte, d digest.Digest) (Status, error) {
	existing, err := os.ReadFile(path) //nolint:gosec // path comes from Installer.Path
	switch {
	case err == nil:
		if digest.FromBytes(existing) == d {
			return StatusUnchanged, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("reading existing skill file: %w", err)
	}

	status := StatusCreated
	if err == nil {
		status = StatusUpdated
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("creating skill directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("writing skill file: %w", err)
	}
	return status, nil
}

// validateSlug rejects slugs that are empty or would escape the agent directory.
func validateSlug(slug string) error {
	if err := slugval.Validate(slug); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSlug, err)
	}
	return nil
}
