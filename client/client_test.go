// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skillhub-club/skillhub-go/client/mocks"
	"github.com/skillhub-club/skillhub-go/httperr"
)

const testBaseURL = "https://api.test/v1"

func newResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// newMockClient returns a client whose transport is a gomock double. A test
// that sets no expectations fails if any request reaches the transport.
func newMockClient(t *testing.T, opts ...Option) (*Client, *mocks.MockDoer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	doer := mocks.NewMockDoer(ctrl)

	all := append([]Option{WithBaseURL(testBaseURL), WithTransport(doer)}, opts...)
	c, err := New(all...)
	require.NoError(t, err)
	return c, doer
}

// requireAPIError asserts err is an *httperr.Error with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code httperr.Code) *httperr.Error {
	t.Helper()

	var apiErr *httperr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, status, apiErr.Status)
	assert.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.defaultTimeout)
	assert.False(t, c.IsAuthenticated())
	assert.IsType(t, &http.Client{}, c.doer)
	assert.NotNil(t, c.logger)
}

func TestNew_WithOptions(t *testing.T) {
	t.Parallel()

	headers := map[string]string{"X-Team": "search"}
	c, err := New(
		WithBaseURL("http://localhost:8787/api/v1/"),
		WithToken("tok"),
		WithTimeout(5*time.Second),
		WithHeaders(headers),
	)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8787/api/v1", c.BaseURL(), "trailing slash should be trimmed")
	assert.True(t, c.IsAuthenticated())
	assert.Equal(t, 5*time.Second, c.defaultTimeout)

	headers["X-Team"] = "changed"
	assert.Equal(t, "search", c.defaultHeaders["X-Team"], "default headers should be copied")
}

func TestNew_NonPositiveTimeoutKeepsDefault(t *testing.T) {
	t.Parallel()

	c, err := New(WithTimeout(0))
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, c.defaultTimeout)
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
	}{
		{"base URL without scheme", []Option{WithBaseURL("skillhub.club/api")}},
		{"base URL with query", []Option{WithBaseURL("https://skillhub.club/api?v=1")}},
		{"header injection", []Option{WithHeaders(map[string]string{"X-Team": "a\r\nX-Evil: 1"})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.opts...)
			require.Error(t, err)
		})
	}
}

func TestSetToken(t *testing.T) {
	t.Parallel()

	c, err := New()
	require.NoError(t, err)
	assert.False(t, c.IsAuthenticated())

	c.SetToken("x")
	assert.True(t, c.IsAuthenticated())

	c.SetToken("")
	assert.False(t, c.IsAuthenticated())

	c.SetToken("")
	assert.False(t, c.IsAuthenticated())
}

func TestTokenGatedOperations_WithoutToken(t *testing.T) {
	t.Parallel()

	ops := map[string]func(c *Client) error{
		"GetCurrentUser": func(c *Client) error {
			_, err := c.GetCurrentUser(context.Background())
			return err
		},
		"GetFavorites": func(c *Client) error {
			_, err := c.GetFavorites(context.Background())
			return err
		},
		"AddFavorite": func(c *Client) error {
			return c.AddFavorite(context.Background(), "skill-1")
		},
		"RemoveFavorite": func(c *Client) error {
			return c.RemoveFavorite(context.Background(), "skill-1")
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// No expectations: any transport call fails the test.
			c, _ := newMockClient(t)
			requireAPIError(t, op(c), http.StatusUnauthorized, httperr.CodeUnauthorized)
		})
	}
}

func TestSetToken_ClearingRestoresGuard(t *testing.T) {
	t.Parallel()

	c, doer := newMockClient(t)

	c.SetToken("x")
	doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer x", req.Header.Get("Authorization"))
		return newResponse(http.StatusOK, `{"id":"u1","tier":"free"}`), nil
	}).Times(1)

	user, err := c.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	c.SetToken("")
	assert.False(t, c.IsAuthenticated())

	_, err = c.GetCurrentUser(context.Background())
	requireAPIError(t, err, http.StatusUnauthorized, httperr.CodeUnauthorized)
}
