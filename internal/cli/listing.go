// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillhub-club/skillhub-go/filter"
	"github.com/skillhub-club/skillhub-go/types"
)

func (a *app) newSearchCommand() *cobra.Command {
	var (
		lf       listFlags
		limit    int
		method   string
		category string
		minScore float64
		mmr      bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search skills by meaning and keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lf.compile()
			if err != nil {
				return err
			}

			opts := &types.SearchOptions{
				Method:   types.SearchMethod(method),
				Category: category,
			}
			if limit > 0 {
				opts.Limit = &limit
			}
			if cmd.Flags().Changed("min-score") {
				opts.MinScore = &minScore
			}
			if cmd.Flags().Changed("mmr") {
				opts.MMR = &mmr
			}

			results, err := a.client.Search(cmd.Context(), strings.Join(args, " "), opts)
			if err != nil {
				return err
			}
			if results, err = filter.Apply(f, results); err != nil {
				return err
			}

			if lf.jsonOut {
				return writeJSON(a.stdout, results)
			}
			return printSearchTable(a.stdout, results)
		},
	}

	lf.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of results")
	cmd.Flags().StringVar(&method, "method", "", "Search method: embedding, fulltext or hybrid")
	cmd.Flags().StringVar(&category, "category", "", "Only search this category")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Minimum quality score")
	cmd.Flags().BoolVar(&mmr, "mmr", false, "Diversify results with maximal marginal relevance")
	return cmd
}

func (a *app) newCatalogCommand() *cobra.Command {
	var (
		lf         listFlags
		q          types.CatalogQuery
		sortKey    string
		order      string
		all        bool
		minScore   float64
		minStars   int
		limit      int
		offset     int
		evaluation bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the skill catalog",
		Long: `Browse the skill catalog with server-side filters and sorting.

Use --where for additional client-side filtering of the returned page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := lf.compile()
			if err != nil {
				return err
			}

			q.Sort = types.CatalogSort(sortKey)
			q.Order = types.SortOrder(order)
			q.IncludeEvaluation = evaluation
			if all {
				q.Status = types.CatalogStatusAll
			}
			flags := cmd.Flags()
			if flags.Changed("min-score") {
				q.MinScore = &minScore
			}
			if flags.Changed("min-stars") {
				q.MinStars = &minStars
			}
			if flags.Changed("limit") {
				q.Limit = &limit
			}
			if flags.Changed("offset") {
				q.Offset = &offset
			}

			res, err := a.client.Catalog(cmd.Context(), &q)
			if err != nil {
				return err
			}
			if res.Skills, err = filter.Skills(f, res.Skills); err != nil {
				return err
			}

			if lf.jsonOut {
				return writeJSON(a.stdout, res)
			}
			if err := printSkillsTable(a.stdout, res.Skills); err != nil {
				return err
			}
			p := res.Pagination
			_, err = fmt.Fprintf(a.stdout, "\nShowing %d-%d of %d\n",
				min(p.Offset+1, p.Total), min(p.Offset+p.Limit, p.Total), p.Total)
			return err
		},
	}

	lf.register(cmd)
	flags := cmd.Flags()
	flags.StringVar(&q.Category, "category", "", "Only skills in this category")
	flags.StringSliceVar(&q.Tags, "tags", nil, "Only skills with these tags (comma-separated)")
	flags.Float64Var(&minScore, "min-score", 0, "Minimum quality score")
	flags.IntVar(&minStars, "min-stars", 0, "Minimum GitHub stars")
	flags.StringVar(&sortKey, "sort", "", "Sort key: score, stars, recent or composite")
	flags.StringVar(&order, "order", "", "Sort order: asc or desc")
	flags.IntVarP(&limit, "limit", "n", 0, "Page size")
	flags.IntVar(&offset, "offset", 0, "Page offset")
	flags.BoolVar(&all, "all", false, "Include unpublished skills")
	flags.BoolVar(&evaluation, "evaluation", false, "Include evaluation data")
	return cmd
}

func (a *app) newPopularCommand() *cobra.Command {
	return a.newTopCommand("popular", "Show the highest ranked published skills", a.popular)
}

func (a *app) newRecentCommand() *cobra.Command {
	return a.newTopCommand("recent", "Show the most recently added skills", a.recent)
}

type listFunc func(cmd *cobra.Command, limit int) ([]types.Skill, error)

func (a *app) popular(cmd *cobra.Command, limit int) ([]types.Skill, error) {
	return a.client.Popular(cmd.Context(), limit)
}

func (a *app) recent(cmd *cobra.Command, limit int) ([]types.Skill, error) {
	return a.client.Recent(cmd.Context(), limit)
}

func (a *app) newTopCommand(use, short string, list listFunc) *cobra.Command {
	var (
		lf    listFlags
		limit int
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := lf.compile()
			if err != nil {
				return err
			}
			skills, err := list(cmd, limit)
			if err != nil {
				return err
			}
			if skills, err = filter.Skills(f, skills); err != nil {
				return err
			}
			if lf.jsonOut {
				return writeJSON(a.stdout, skills)
			}
			return printSkillsTable(a.stdout, skills)
		},
	}

	lf.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of skills (default 10)")
	return cmd
}

func (a *app) newCategoriesCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List skill categories with their skill counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := a.client.Categories(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(a.stdout, categories)
			}
			for _, c := range categories {
				if _, err := fmt.Fprintf(a.stdout, "%5d  %s\n", c.Count, c.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	return cmd
}
