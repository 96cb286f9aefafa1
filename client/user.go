// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/skillhub-club/skillhub-go/httperr"
	"github.com/skillhub-club/skillhub-go/types"
)

// requireToken fails token-gated operations locally, without a network call.
func (c *Client) requireToken() error {
	if !c.IsAuthenticated() {
		return httperr.Unauthorized()
	}
	return nil
}

// GetCurrentUser returns the user the token belongs to. Requires a token.
func (c *Client) GetCurrentUser(ctx context.Context, opts ...RequestOption) (*types.User, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var user types.User
	if err := c.do(ctx, http.MethodGet, "/user/me", nil, &user, opts...); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetFavorites returns the user's favorite skills. Requires a token.
func (c *Client) GetFavorites(ctx context.Context, opts ...RequestOption) ([]types.Skill, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	var res types.FavoritesResponse
	if err := c.do(ctx, http.MethodGet, "/user/favorites", nil, &res, opts...); err != nil {
		return nil, err
	}
	return res.Skills, nil
}

// AddFavorite adds a skill to the user's favorites. Requires a token.
func (c *Client) AddFavorite(ctx context.Context, skillID string, opts ...RequestOption) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, favoritePath(skillID), nil, nil, opts...)
}

// RemoveFavorite removes a skill from the user's favorites. Requires a token.
func (c *Client) RemoveFavorite(ctx context.Context, skillID string, opts ...RequestOption) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, favoritePath(skillID), nil, nil, opts...)
}

func favoritePath(skillID string) string {
	return "/user/favorites/" + url.PathEscape(skillID)
}
