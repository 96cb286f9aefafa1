// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package slug provides validation functions for skill slugs.

A slug names the directory a skill is installed into, so it must be safe to
use as a single path segment on every supported OS.

# Slug Validation

	if err := slug.Validate("pdf-processor"); err != nil {
		// Handle invalid slug
	}

Valid slugs must:
  - Be non-empty and at most MaxLength bytes
  - Start with an ASCII letter or digit
  - Contain only ASCII letters, digits, dots, underscores and dashes
  - Not contain null bytes or path separators

# Examples

Valid slugs:

	"pdf-processor"
	"anthropics.skills_v2"
	"3d-render"

Invalid slugs:

	""                  // empty
	".."                // relative path element
	"a/b"               // path separator
	"-flag"             // leading dash
	"my skill"          // whitespace
*/
package slug
