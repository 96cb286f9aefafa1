// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "simple", input: "pdf-processor"},
		{name: "dots and underscores", input: "anthropics.skills_v2"},
		{name: "leading digit", input: "3d-render"},
		{name: "mixed case", input: "PDF-Tools"},
		{name: "max length", input: strings.Repeat("a", MaxLength)},
		{name: "empty", input: "", wantErr: "empty"},
		{name: "whitespace only", input: "   ", wantErr: "empty"},
		{name: "null byte", input: "a\x00b", wantErr: "null bytes"},
		{name: "forward slash", input: "a/b", wantErr: "path separator"},
		{name: "backslash", input: `a\b`, wantErr: "path separator"},
		{name: "parent reference", input: "..", wantErr: "must start with"},
		{name: "current dir", input: ".", wantErr: "must start with"},
		{name: "leading dash", input: "-flag", wantErr: "must start with"},
		{name: "inner space", input: "my skill", wantErr: "must start with"},
		{name: "too long", input: strings.Repeat("a", MaxLength+1), wantErr: "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
