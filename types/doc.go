// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package types defines the wire data model of the SkillHub API and the static
table of supported agents.

All records are plain values decoded from JSON responses. Fields the service
may omit are pointers or nil-able slices and maps, so an absent value is never
confused with a zero value.

# Catalog Queries

[CatalogQuery] encodes to a query string in which a key appears only when the
corresponding field was provided:

	limit := 20
	q := &types.CatalogQuery{
		Category: "Data",
		Tags:     []string{"pdf", "ocr"},
		Limit:    &limit,
	}
	values, err := q.Values() // category=Data&limit=20&tags=pdf%2Cocr

[ParseCatalogQuery] is the inverse.

# Agents

[SupportedAgents] lists the downstream agents a skill can be installed into,
with their install locations on Unix and Windows.
*/
package types
