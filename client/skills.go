// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/skillhub-club/skillhub-go/httperr"
	"github.com/skillhub-club/skillhub-go/types"
)

// GetSkill returns a skill with its evaluation, version history and token
// statistics. includeContent requests the raw SKILL.md and README.
func (c *Client) GetSkill(
	ctx context.Context, idOrSlug string, includeContent bool, opts ...RequestOption,
) (*types.SkillDetail, error) {
	endpoint := skillPath(idOrSlug)
	if includeContent {
		endpoint += "?include_content=true"
	}

	var res types.SkillDetail
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &res, opts...); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetInstallInfo returns install locations, content and scripts of a skill
// for the given agents. With no agents, types.DefaultAgent is used.
func (c *Client) GetInstallInfo(
	ctx context.Context, idOrSlug string, agents []types.AgentID, opts ...RequestOption,
) (*types.InstallInfo, error) {
	if len(agents) == 0 {
		agents = []types.AgentID{types.DefaultAgent}
	}

	ids := make([]string, len(agents))
	for i, a := range agents {
		ids[i] = url.QueryEscape(string(a))
	}
	endpoint := fmt.Sprintf("%s/install?agents=%s&format=%s",
		skillPath(idOrSlug), strings.Join(ids, ","), types.InstallFormatJSON)

	var res types.InstallInfo
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &res, opts...); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetSkillContent returns the raw SKILL.md of a skill as text.
//
// It shares the deadline and cancellation handling of the JSON calls. Error
// responses are not parsed, since a text endpoint carries no JSON envelope.
func (c *Client) GetSkillContent(ctx context.Context, idOrSlug string, opts ...RequestOption) (string, error) {
	rc := c.newRequestConfig(opts)
	ctx, cancel := withDeadline(ctx, rc)
	defer cancel()

	endpoint := fmt.Sprintf("%s/install?format=%s", skillPath(idOrSlug), types.InstallFormatRaw)
	res, err := c.send(ctx, http.MethodGet, endpoint, nil, mediaTypeText, rc)
	if err != nil {
		return "", err
	}
	defer drainAndClose(res.Body)

	if !isSuccess(res.StatusCode) {
		return "", httperr.New(res.StatusCode, "",
			fmt.Sprintf("Failed to fetch skill content (status %d)", res.StatusCode))
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", transportError(ctx, fmt.Errorf("reading skill content: %w", err))
	}
	return string(data), nil
}

func skillPath(idOrSlug string) string {
	return "/skills/" + url.PathEscape(idOrSlug)
}
