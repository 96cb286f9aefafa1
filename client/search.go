// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"

	"github.com/skillhub-club/skillhub-go/types"
)

// Search runs a natural-language search and returns the matching skills.
// params may be nil.
func (c *Client) Search(
	ctx context.Context, query string, params *types.SearchOptions, opts ...RequestOption,
) ([]types.SearchResult, error) {
	req := types.SearchRequest{Query: query}
	if params != nil {
		req.SearchOptions = *params
	}

	res, err := c.SearchWithMeta(ctx, req, opts...)
	if err != nil {
		return nil, err
	}
	return res.Results, nil
}

// SearchWithMeta runs a search and returns the full response, including the
// method used and the search latency.
func (c *Client) SearchWithMeta(
	ctx context.Context, req types.SearchRequest, opts ...RequestOption,
) (*types.SearchResponse, error) {
	var res types.SearchResponse
	if err := c.do(ctx, http.MethodPost, "/skills/search", req, &res, opts...); err != nil {
		return nil, err
	}
	return &res, nil
}
