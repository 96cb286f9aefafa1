// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package types

// SearchMethod selects the retrieval strategy of a search.
type SearchMethod string

// Search methods.
const (
	SearchMethodEmbedding SearchMethod = "embedding"
	SearchMethodFulltext  SearchMethod = "fulltext"
	SearchMethodHybrid    SearchMethod = "hybrid"
)

// SearchOptions are the optional parameters of a search.
type SearchOptions struct {
	Limit  *int         `json:"limit,omitempty"`
	Method SearchMethod `json:"method,omitempty"`
	// MMR enables maximal marginal relevance re-ranking for diversity.
	MMR       *bool    `json:"mmr,omitempty"`
	MMRLambda *float64 `json:"mmr_lambda,omitempty"`
	Category  string   `json:"category,omitempty"`
	MinScore  *float64 `json:"min_score,omitempty"`
	// ExcludeIDs removes the given skill IDs from the results.
	ExcludeIDs     []string `json:"exclude_ids,omitempty"`
	IncludeContent bool     `json:"include_content,omitempty"`
}

// SearchRequest is the body of a search call.
type SearchRequest struct {
	Query string `json:"query"`
	SearchOptions
}

// SearchResult is a single search hit.
type SearchResult struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Description     *string  `json:"description"`
	DescriptionZh   *string  `json:"description_zh"`
	Category        *string  `json:"category"`
	SimpleScore     *float64 `json:"simple_score"`
	SimilarityScore float64  `json:"similarity_score"`
	MatchReason     *string  `json:"match_reason,omitempty"`
	SkillMDRaw      *string  `json:"skill_md_raw,omitempty"`
}

// SearchMeta reports how a search was executed.
type SearchMeta struct {
	MethodUsed           string `json:"method_used"`
	QueryEmbeddingTokens *int   `json:"query_embedding_tokens,omitempty"`
	SearchLatencyMS      int    `json:"search_latency_ms"`
}

// SearchResponse is the full response of a search call.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Meta    SearchMeta     `json:"meta"`
}
