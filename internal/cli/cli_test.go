// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillhub-club/skillhub-go/config"
	"github.com/skillhub-club/skillhub-go/env"
	"github.com/skillhub-club/skillhub-go/httperr"
	"github.com/skillhub-club/skillhub-go/install"
	"github.com/skillhub-club/skillhub-go/types"
)

const catalogBody = `{
	"skills": [
		{"id": "1", "slug": "pdf-tools", "name": "PDF Tools", "author": "anthropics",
		 "category": "Documents", "tags": ["pdf"], "composite_score": 91.5, "github_stars": 1200,
		 "description": "Extract text from PDFs", "repo_url": "https://github.com/a/pdf"},
		{"id": "2", "slug": "csv-wrangler", "name": "CSV", "author": "dataco",
		 "category": null, "tags": ["csv"], "composite_score": 72.0, "github_stars": 40,
		 "description": null, "repo_url": "https://github.com/d/csv"}
	],
	"pagination": {"total": 2, "limit": 10, "offset": 0, "has_more": false}
}`

// fakeService is a minimal SkillHub API. It records the last request URL.
type fakeService struct {
	*httptest.Server

	mu      sync.Mutex
	lastURL string
}

func (s *fakeService) LastURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastURL
}

func newFakeService(t *testing.T) *fakeService {
	t.Helper()
	s := &fakeService{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/skills/catalog", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.lastURL = r.URL.String()
		s.mu.Unlock()
		_, _ = io.WriteString(w, catalogBody)
	})
	mux.HandleFunc("POST /api/v1/skills/search", func(w http.ResponseWriter, r *http.Request) {
		var req types.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_, _ = io.WriteString(w, `{"results":[{"id":"1","slug":"pdf-tools","name":"PDF Tools",
			"description":"`+req.Query+`","category":null,"simple_score":80,"similarity_score":0.87}],
			"meta":{"method_used":"hybrid","search_latency_ms":5}}`)
	})
	mux.HandleFunc("GET /api/v1/skills/{slug}/install", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "raw" {
			http.Error(w, "unexpected format", http.StatusBadRequest)
			return
		}
		if r.PathValue("slug") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "---\nname: "+r.PathValue("slug")+"\ndescription: test\n---\n# Body\n")
	})
	mux.HandleFunc("GET /api/v1/user/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"code":"INVALID_TOKEN","message":"token rejected"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"id":"u1","email":"dev@example.com","tier":"pro"}`)
	})
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

type testCLI struct {
	service    *fakeService
	configPath string
	home       string
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	dir := t.TempDir()
	return &testCLI{
		service:    newFakeService(t),
		configPath: config.FilePath(filepath.Join(dir, "config")),
		home:       filepath.Join(dir, "home"),
	}
}

// run executes args and returns stdout.
func (tc *testCLI) run(t *testing.T, vars map[string]string, args ...string) (string, error) {
	t.Helper()

	reader := env.MapReader{config.EnvBaseURL: tc.service.URL + "/api/v1"}
	for k, v := range vars {
		reader[k] = v
	}

	var stdout, stderr bytes.Buffer
	root := newRootCommand(&app{
		env:         reader,
		stdout:      &stdout,
		stderr:      &stderr,
		installOpts: []install.Option{install.WithHomeDir(tc.home), install.WithOS("linux")},
	})
	root.SetArgs(append([]string{"--config", tc.configPath}, args...))
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestCatalogCommands(t *testing.T) {
	t.Parallel()

	tc := newTestCLI(t)

	t.Run("popular table", func(t *testing.T) {
		out, err := tc.run(t, nil, "popular", "-n", "5")
		require.NoError(t, err)
		assert.Contains(t, out, "SLUG")
		assert.Contains(t, out, "pdf-tools")
		assert.Contains(t, out, "Uncategorized")
		assert.Contains(t, tc.service.LastURL(), "sort=composite")
		assert.Contains(t, tc.service.LastURL(), "limit=5")
	})

	t.Run("where filter", func(t *testing.T) {
		out, err := tc.run(t, nil, "recent", "--where", `skill.github_stars > 100`, "--json")
		require.NoError(t, err)

		var skills []types.Skill
		require.NoError(t, json.Unmarshal([]byte(out), &skills))
		require.Len(t, skills, 1)
		assert.Equal(t, "pdf-tools", skills[0].Slug)
	})

	t.Run("invalid where filter", func(t *testing.T) {
		_, err := tc.run(t, nil, "popular", "--where", `skill.stars >`)
		require.Error(t, err)
	})

	t.Run("catalog flags become query parameters", func(t *testing.T) {
		_, err := tc.run(t, nil, "catalog", "--tags", "pdf,docs", "--min-stars", "10", "--sort", "stars", "--all")
		require.NoError(t, err)

		got, err := types.ParseCatalogQuery(mustParseQuery(t, tc.service.LastURL()))
		require.NoError(t, err)
		assert.Equal(t, []string{"pdf", "docs"}, got.Tags)
		require.NotNil(t, got.MinStars)
		assert.Equal(t, 10, *got.MinStars)
		assert.Equal(t, types.CatalogSortStars, got.Sort)
		assert.Equal(t, types.CatalogStatusAll, got.Status)
		assert.Nil(t, got.Limit)
	})

	t.Run("categories", func(t *testing.T) {
		out, err := tc.run(t, nil, "categories", "--json")
		require.NoError(t, err)

		var categories []types.Category
		require.NoError(t, json.Unmarshal([]byte(out), &categories))
		assert.ElementsMatch(t, []types.Category{
			{Name: "Documents", Count: 1},
			{Name: types.UncategorizedCategory, Count: 1},
		}, categories)
	})

	t.Run("search", func(t *testing.T) {
		out, err := tc.run(t, nil, "search", "extract", "tables")
		require.NoError(t, err)
		assert.Contains(t, out, "pdf-tools")
		assert.Contains(t, out, "0.87")
		assert.Contains(t, out, "extract tables")
	})
}

func TestContentAndInstall(t *testing.T) {
	t.Parallel()

	tc := newTestCLI(t)

	out, err := tc.run(t, nil, "content", "lint")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "---\nname: lint\n"))

	_, err = tc.run(t, nil, "content", "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httperr.Status(err))

	out, err = tc.run(t, nil, "install", "lint", "--agents", "claude,codex", "--json")
	require.NoError(t, err)

	var results []install.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, install.StatusCreated, r.Status)
		assert.True(t, strings.HasPrefix(r.Path, tc.home), "path %s outside test home", r.Path)
		assert.FileExists(t, r.Path)
	}

	_, err = tc.run(t, nil, "install", "lint", "--agents", "cursor")
	require.ErrorContains(t, err, "unsupported agent")

	out, err = tc.run(t, nil, "uninstall", "lint", "--agents", "claude")
	require.NoError(t, err)
	assert.Contains(t, out, "removed")
	assert.NoFileExists(t, results[0].Path)
}

func TestAuthCommands(t *testing.T) {
	t.Parallel()

	tc := newTestCLI(t)

	t.Run("whoami without token fails locally", func(t *testing.T) {
		_, err := tc.run(t, nil, "whoami")
		require.Error(t, err)
		assert.True(t, httperr.IsCode(err, httperr.CodeUnauthorized))
		assert.Contains(t, FormatError(err), "skillhub login")
	})

	t.Run("login rejects a bad token", func(t *testing.T) {
		_, err := tc.run(t, nil, "login", "--token", "bad-token")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, httperr.Status(err))
		assert.NoFileExists(t, tc.configPath)
	})

	t.Run("login stores the token", func(t *testing.T) {
		out, err := tc.run(t, nil, "login", "--token", "good-token")
		require.NoError(t, err)
		assert.Contains(t, out, "dev@example.com")

		out, err = tc.run(t, nil, "whoami")
		require.NoError(t, err)
		assert.Contains(t, out, "u1")
	})

	t.Run("environment token wins over the file", func(t *testing.T) {
		_, err := tc.run(t, map[string]string{config.EnvToken: "bad-token"}, "whoami")
		require.Error(t, err)
		assert.Equal(t, "token rejected", err.Error())
	})

	t.Run("logout removes the token", func(t *testing.T) {
		_, err := tc.run(t, nil, "logout")
		require.NoError(t, err)

		_, err = tc.run(t, nil, "whoami")
		assert.True(t, httperr.IsCode(err, httperr.CodeUnauthorized))
	})
}

func TestAgentsCommand(t *testing.T) {
	t.Parallel()

	tc := newTestCLI(t)
	out, err := tc.run(t, nil, "agents")
	require.NoError(t, err)
	for _, a := range types.SupportedAgents() {
		assert.Contains(t, out, string(a.ID))
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain", errors.New("boom"), "Error: boom"},
		{"http with code", httperr.New(404, "NOT_FOUND", "no skill"), "Error: no skill (HTTP 404, NOT_FOUND)"},
		{"http without code", httperr.New(502, "", "bad gateway"), "Error: bad gateway (HTTP 502)"},
		{"local code", httperr.Network(errors.New("refused")), "Error: refused (NETWORK_ERROR)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatError(tt.err))
		})
	}
}

func mustParseQuery(t *testing.T, rawURL string) url.Values {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return u.Query()
}
