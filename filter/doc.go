// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package filter narrows skill listings with CEL expressions evaluated on the
client.

Each item is exposed as the map variable skill, keyed by the JSON field
names of the wire types:

	skill.composite_score > 80.0 && "pdf" in skill.tags
	skill.author == "anthropics" || skill.github_stars >= 1000
	has(skill.category) && skill.category.startsWith("Dev")

Numeric fields arrive as doubles; comparisons against integer literals work.
Fields the service sent as null are absent, so guard them with has().

# Usage

	f, err := filter.Compile(`skill.simple_rating == "A"`)
	if err != nil {
		var exprErr *filter.ExpressionError
		if errors.As(err, &exprErr) {
			fmt.Println(exprErr.AsJSON())
		}
		return err
	}
	best, err := filter.Skills(f, skills)

Compiled filters are safe for concurrent use. Expressions are bounded in
length ([MaxExpressionLength]) and evaluation cost ([CostLimit]).
*/
package filter
