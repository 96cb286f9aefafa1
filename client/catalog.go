// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"
	"sort"

	"github.com/skillhub-club/skillhub-go/httperr"
	"github.com/skillhub-club/skillhub-go/types"
)

const (
	// DefaultListLimit is the number of skills Popular and Recent return when
	// the caller passes a non-positive limit.
	DefaultListLimit = 10

	// categoriesScanLimit is how many published skills Categories aggregates.
	categoriesScanLimit = 500
)

// Catalog browses the skill catalog. query may be nil; only the filters it
// provides are sent.
func (c *Client) Catalog(
	ctx context.Context, query *types.CatalogQuery, opts ...RequestOption,
) (*types.CatalogResponse, error) {
	qs, err := query.Encode()
	if err != nil {
		return nil, httperr.Unknown(err)
	}

	endpoint := "/skills/catalog"
	if qs != "" {
		endpoint += "?" + qs
	}

	var res types.CatalogResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &res, opts...); err != nil {
		return nil, err
	}
	return &res, nil
}

// Popular returns published skills ordered by composite score.
func (c *Client) Popular(ctx context.Context, limit int, opts ...RequestOption) ([]types.Skill, error) {
	return c.listPublished(ctx, types.CatalogSortComposite, limit, opts)
}

// Recent returns the most recently added published skills.
func (c *Client) Recent(ctx context.Context, limit int, opts ...RequestOption) ([]types.Skill, error) {
	return c.listPublished(ctx, types.CatalogSortRecent, limit, opts)
}

func (c *Client) listPublished(
	ctx context.Context, sortKey types.CatalogSort, limit int, opts []RequestOption,
) ([]types.Skill, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	res, err := c.Catalog(ctx, &types.CatalogQuery{
		Sort:   sortKey,
		Limit:  &limit,
		Status: types.CatalogStatusPublished,
	}, opts...)
	if err != nil {
		return nil, err
	}
	return res.Skills, nil
}

// Categories returns the categories of published skills with their skill
// counts, largest first. Skills without a category are counted under
// types.UncategorizedCategory. Equal counts keep first-seen order.
func (c *Client) Categories(ctx context.Context, opts ...RequestOption) ([]types.Category, error) {
	limit := categoriesScanLimit
	res, err := c.Catalog(ctx, &types.CatalogQuery{
		Limit:  &limit,
		Status: types.CatalogStatusPublished,
	}, opts...)
	if err != nil {
		return nil, err
	}
	return CountCategories(res.Skills), nil
}

// CountCategories aggregates skills by category, sorted by descending count.
func CountCategories(skills []types.Skill) []types.Category {
	index := make(map[string]int)
	var categories []types.Category
	for i := range skills {
		name := skills[i].CategoryName()
		if pos, ok := index[name]; ok {
			categories[pos].Count++
			continue
		}
		index[name] = len(categories)
		categories = append(categories, types.Category{Name: name, Count: 1})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Count > categories[j].Count
	})
	return categories
}
