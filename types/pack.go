// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package types

// SelectorType is the strategy used to choose skills into a pack.
type SelectorType string

// Pack selectors.
const (
	SelectorRandom           SelectorType = "random"
	SelectorTopScore         SelectorType = "top_score"
	SelectorEmbedding        SelectorType = "embedding"
	SelectorMMR              SelectorType = "mmr"
	SelectorCategoryBalanced SelectorType = "category_balanced"
)

// SelectorConfig tunes a pack selector.
type SelectorConfig struct {
	Query           string             `json:"query,omitempty"`
	MMRLambda       *float64           `json:"mmr_lambda,omitempty"`
	CategoryWeights map[string]float64 `json:"category_weights,omitempty"`
	ScoreThreshold  *float64           `json:"score_threshold,omitempty"`
}

// PackBuildRequest asks the service to assemble a bundle of skills.
type PackBuildRequest struct {
	Selector       SelectorType    `json:"selector"`
	SelectorConfig *SelectorConfig `json:"selector_config,omitempty"`
	MaxCount       *int            `json:"max_count,omitempty"`
	MaxTokens      *int            `json:"max_tokens,omitempty"`
	TaskType       string          `json:"task_type,omitempty"`
	RequiredTags   []string        `json:"required_tags,omitempty"`
	AvoidIDs       []string        `json:"avoid_ids,omitempty"`
	DedupByRepo    bool            `json:"dedup_by_repo,omitempty"`
	IncludeReasons bool            `json:"include_reasons,omitempty"`
}

// PackSkill is a skill selected into a pack.
type PackSkill struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	Version         int     `json:"version"`
	SelectionReason *string `json:"selection_reason,omitempty"`
	TokenCount      int     `json:"token_count"`
}

// Pack is an assembled bundle of skills.
type Pack struct {
	ID          string      `json:"id"`
	Skills      []PackSkill `json:"skills"`
	TotalSkills int         `json:"total_skills"`
	TotalTokens int         `json:"total_tokens"`
}

// PackBuildMeta reports how a pack was built.
type PackBuildMeta struct {
	SelectorUsed         string `json:"selector_used"`
	CandidatesConsidered int    `json:"candidates_considered"`
	CandidatesFiltered   int    `json:"candidates_filtered"`
	BuildLatencyMS       int    `json:"build_latency_ms"`
}

// PackBuildResponse is the result of a pack build.
type PackBuildResponse struct {
	Pack     Pack          `json:"pack"`
	Meta     PackBuildMeta `json:"meta"`
	Warnings []string      `json:"warnings,omitempty"`
}
