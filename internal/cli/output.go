// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillhub-club/skillhub-go/filter"
	"github.com/skillhub-club/skillhub-go/types"
)

const maxDescriptionWidth = 60

// listFlags are shared by commands that print skill listings.
type listFlags struct {
	where   string
	jsonOut bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.where, "where", "",
		`CEL filter applied to each result, e.g. 'skill.github_stars > 100'`)
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "Output in JSON format")
}

// compile returns nil when no filter was given.
func (f *listFlags) compile() (*filter.Filter, error) {
	if f.where == "" {
		return nil, nil
	}
	return filter.Compile(f.where)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSkillsTable(w io.Writer, skills []types.Skill) error {
	if len(skills) == 0 {
		_, err := fmt.Fprintln(w, "No skills found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tAUTHOR\tCATEGORY\tSCORE\tSTARS\tDESCRIPTION")
	for i := range skills {
		s := &skills[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Slug, orDash(s.Author), s.CategoryName(),
			formatFloat(s.CompositeScore), formatInt(s.GithubStars),
			truncate(deref(s.Description), maxDescriptionWidth))
	}
	return tw.Flush()
}

func printSearchTable(w io.Writer, results []types.SearchResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No skills found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tSIMILARITY\tSCORE\tCATEGORY\tDESCRIPTION")
	for _, r := range results {
		category := deref(r.Category)
		if category == "" {
			category = types.UncategorizedCategory
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%s\t%s\n",
			r.Slug, r.SimilarityScore, formatFloat(r.SimpleScore), category,
			truncate(deref(r.Description), maxDescriptionWidth))
	}
	return tw.Flush()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', 1, 64)
}

func formatInt(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

// truncate shortens s to at most width runes on a single line.
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= width {
		return orDash(s)
	}
	return string(r[:width-3]) + "..."
}
