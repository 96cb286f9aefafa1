// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package slug

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxLength is the longest slug accepted.
const MaxLength = 128

var validSlugRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Validate checks that s can be used as a single directory name.
func Validate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("slug cannot be empty or consist only of whitespace")
	}

	// Check for null bytes explicitly
	if strings.Contains(s, "\x00") {
		return fmt.Errorf("slug cannot contain null bytes")
	}

	if strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("slug cannot contain a path separator: %q", s)
	}

	if len(s) > MaxLength {
		return fmt.Errorf("slug exceeds %d bytes: %q", MaxLength, s[:MaxLength]+"...")
	}

	if !validSlugRegex.MatchString(s) {
		return fmt.Errorf("slug must start with a letter or digit and contain only letters, digits, dots, underscores and dashes: %q", s)
	}

	return nil
}
