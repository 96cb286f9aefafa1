// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHeaderName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"client header", "X-SkillHub-Client", false},
		{"authorization", "Authorization", false},
		{"digits", "X-Request-2", false},
		{"dots", "X.Skill.Source", false},

		{"crlf injection", "X-SkillHub-Client\r\nX-Injected: 1", true},
		{"bare newline", "X-SkillHub\nClient", true},
		{"trailing carriage return", "X-SkillHub\r", true},
		{"null byte", "X-SkillHub\x00", true},
		{"space", "X SkillHub", true},
		{"colon", "X-SkillHub:", true},
		{"empty", "", true},
		{"too long", strings.Repeat("H", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateHeaderName(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHeaderValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"user agent", "skillhub-go/0.3.0 (linux)", false},
		{"bearer token", "Bearer shk_live_123", false},
		{"punctuation", "a=b; c=\"d\"", false},
		{"tab", "left\tright", false},

		{"crlf injection", "v\r\nX-Injected: 1", true},
		{"bare newline", "v\nw", true},
		{"null byte", "v\x00w", true},
		{"control char", "v\x01w", true},
		{"delete char", "v\x7Fw", true},
		{"too long", strings.Repeat("v", 8193), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateHeaderValue(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		headers   map[string]string
		expectErr bool
	}{
		{"nil map", nil, false},
		{"valid headers", map[string]string{"X-Team": "search", "Accept-Language": "en"}, false},
		{"invalid name", map[string]string{"X Team": "search"}, true},
		{"invalid value", map[string]string{"X-Team": "a\r\nX-Injected: 1"}, true},
		{"empty value", map[string]string{"X-Team": ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateHeaders(tt.headers)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
		errMsg    string
	}{
		{"production", "https://skillhub.club/api/v1", false, ""},
		{"local http with port", "http://localhost:8787", false, ""},
		{"trailing slash", "https://skillhub.club/api/v1/", false, ""},

		{"empty", "", true, "cannot be empty"},
		{"missing scheme", "skillhub.club/api/v1", true, "must include a scheme"},
		{"ftp scheme", "ftp://skillhub.club", true, "must be http or https"},
		{"missing host", "https:///api/v1", true, "must include a host"},
		{"query string", "https://skillhub.club/api?x=1", true, "query string"},
		{"fragment", "https://skillhub.club/api#v1", true, "fragments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateBaseURL(tt.input)
			if tt.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
