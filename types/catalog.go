// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"
)

// CatalogSort is a catalog sort key.
type CatalogSort string

// Catalog sort keys.
const (
	CatalogSortScore     CatalogSort = "score"
	CatalogSortStars     CatalogSort = "stars"
	CatalogSortRecent    CatalogSort = "recent"
	CatalogSortComposite CatalogSort = "composite"
)

// CatalogStatus filters skills by publication status.
type CatalogStatus string

// Catalog status filters.
const (
	CatalogStatusPublished CatalogStatus = "published"
	CatalogStatusAll       CatalogStatus = "all"
)

// SortOrder is the direction of a catalog sort.
type SortOrder string

// Sort orders.
const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// CatalogQuery holds the filters of a catalog request.
//
// A field is encoded only when it is provided: strings and slices when
// non-empty, pointers when non-nil, booleans when true. Tags are joined into
// a single comma-separated value, so individual tags must not contain commas.
type CatalogQuery struct {
	Category          string        `url:"category,omitempty"`
	Tags              []string      `url:"tags,comma,omitempty"`
	MinScore          *float64      `url:"min_score,omitempty"`
	MinStars          *int          `url:"min_stars,omitempty"`
	Status            CatalogStatus `url:"status,omitempty"`
	Sort              CatalogSort   `url:"sort,omitempty"`
	Order             SortOrder     `url:"order,omitempty"`
	Limit             *int          `url:"limit,omitempty"`
	Offset            *int          `url:"offset,omitempty"`
	IncludeContent    bool          `url:"include_content,omitempty"`
	IncludeEvaluation bool          `url:"include_evaluation,omitempty"`
}

// Values encodes the query. A nil query encodes to empty values.
func (q *CatalogQuery) Values() (url.Values, error) {
	v, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog query: %w", err)
	}
	return v, nil
}

// Encode returns the URL-encoded query string, without the leading "?".
func (q *CatalogQuery) Encode() (string, error) {
	v, err := q.Values()
	if err != nil {
		return "", err
	}
	return v.Encode(), nil
}

// ParseCatalogQuery decodes catalog filters from query values. It is the
// inverse of CatalogQuery.Values. Unknown keys and malformed values are errors.
func ParseCatalogQuery(values url.Values) (*CatalogQuery, error) {
	q := &CatalogQuery{}
	for key := range values {
		raw := values.Get(key)
		var err error
		switch key {
		case "category":
			q.Category = raw
		case "tags":
			q.Tags = strings.Split(raw, ",")
		case "min_score":
			var f float64
			f, err = strconv.ParseFloat(raw, 64)
			q.MinScore = &f
		case "min_stars":
			q.MinStars, err = parseIntPtr(raw)
		case "status":
			q.Status = CatalogStatus(raw)
		case "sort":
			q.Sort = CatalogSort(raw)
		case "order":
			q.Order = SortOrder(raw)
		case "limit":
			q.Limit, err = parseIntPtr(raw)
		case "offset":
			q.Offset, err = parseIntPtr(raw)
		case "include_content":
			q.IncludeContent, err = strconv.ParseBool(raw)
		case "include_evaluation":
			q.IncludeEvaluation, err = strconv.ParseBool(raw)
		default:
			return nil, fmt.Errorf("unknown catalog query key %q", key)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for catalog query key %q: %w", raw, key, err)
		}
	}
	return q, nil
}

func parseIntPtr(raw string) (*int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// PaginationMeta describes the page returned by a listing endpoint.
type PaginationMeta struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// CatalogResponse is the response of the catalog endpoint.
type CatalogResponse struct {
	Skills     []Skill        `json:"skills"`
	Pagination PaginationMeta `json:"pagination"`
}
