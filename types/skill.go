// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package types

// SimpleRating is the letter grade derived from a skill's simple score.
type SimpleRating string

// Simple ratings, best first.
const (
	SimpleRatingA SimpleRating = "A"
	SimpleRatingB SimpleRating = "B"
	SimpleRatingC SimpleRating = "C"
	SimpleRatingD SimpleRating = "D"
	SimpleRatingE SimpleRating = "E"
)

// EvaluationRating is the overall grade of a skill evaluation.
type EvaluationRating string

// Evaluation ratings, best first.
const (
	EvaluationRatingS EvaluationRating = "S"
	EvaluationRatingA EvaluationRating = "A"
	EvaluationRatingB EvaluationRating = "B"
	EvaluationRatingC EvaluationRating = "C"
	EvaluationRatingD EvaluationRating = "D"
)

// Skill is a single skill in catalog, favorites and detail responses.
type Skill struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Author string `json:"author"`
	// Description is the English description.
	Description *string `json:"description"`
	// DescriptionZh is the Chinese description.
	DescriptionZh *string  `json:"description_zh"`
	Category      *string  `json:"category"`
	Tags          []string `json:"tags"`
	// SimpleScore is the heuristic quality score (0-100).
	SimpleScore  *float64      `json:"simple_score"`
	SimpleRating *SimpleRating `json:"simple_rating"`
	// CompositeScore combines quality and popularity signals; it drives the
	// "composite" catalog sort.
	CompositeScore *float64 `json:"composite_score"`
	GithubStars    *int     `json:"github_stars"`
	GithubForks    *int     `json:"github_forks"`
	// LastCommitAt is an RFC3339 timestamp.
	LastCommitAt *string `json:"last_commit_at"`
	RepoURL      string  `json:"repo_url"`
	// SkillMDRaw is the raw SKILL.md, only present when content was requested.
	SkillMDRaw *string `json:"skill_md_raw,omitempty"`
}

// SkillWithSource is the skill record of a detail response, which adds
// repository location and README fields.
type SkillWithSource struct {
	Skill
	ReadmeRaw   *string `json:"readme_raw,omitempty"`
	BaseRepoURL *string `json:"base_repo_url,omitempty"`
	SkillPath   *string `json:"skill_path,omitempty"`
}

// SkillEvaluation is the LLM-assisted evaluation of a skill.
type SkillEvaluation struct {
	OverallScore       *float64          `json:"overall_score"`
	OverallRating      *EvaluationRating `json:"overall_rating"`
	InstructionClarity *float64          `json:"instruction_clarity"`
	Practicality       *float64          `json:"practicality"`
	OutputQuality      *float64          `json:"output_quality"`
	Maintainability    *float64          `json:"maintainability"`
	Innovation         *float64          `json:"innovation"`
	Security           *float64          `json:"security"`
	Summary            *string           `json:"summary"`
	SummaryZh          *string           `json:"summary_zh,omitempty"`
	Pros               []string          `json:"pros"`
	ProsZh             []string          `json:"pros_zh,omitempty"`
	Cons               []string          `json:"cons"`
	ConsZh             []string          `json:"cons_zh,omitempty"`
	TargetAudience     *string           `json:"target_audience"`
	TargetAudienceZh   *string           `json:"target_audience_zh,omitempty"`
	// FlowData is an opaque structure describing the skill's workflow.
	FlowData        any     `json:"flow_data,omitempty"`
	PotentialOutput *string `json:"potential_output,omitempty"`
}

// SkillVersionSummary describes one stored version of a skill.
type SkillVersionSummary struct {
	VersionNumber int    `json:"version_number"`
	MutationType  string `json:"mutation_type"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
}

// TokenStats reports token counts of a skill's content.
type TokenStats struct {
	SkillMDTokens int  `json:"skill_md_tokens"`
	ReadmeTokens  *int `json:"readme_tokens,omitempty"`
	TotalTokens   int  `json:"total_tokens"`
}

// SkillDetail is the response of the skill detail endpoint.
type SkillDetail struct {
	Skill      SkillWithSource       `json:"skill"`
	Evaluation *SkillEvaluation      `json:"evaluation,omitempty"`
	Versions   []SkillVersionSummary `json:"versions,omitempty"`
	TokenStats TokenStats            `json:"token_stats"`
}

// Category is a skill category with the number of skills in it.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// UncategorizedCategory is the bucket for skills without a category.
const UncategorizedCategory = "Uncategorized"

// CategoryName returns the skill's category, or UncategorizedCategory when it
// has none.
func (s *Skill) CategoryName() string {
	if s.Category == nil || *s.Category == "" {
		return UncategorizedCategory
	}
	return *s.Category
}
