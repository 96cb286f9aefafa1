// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	httpval "github.com/skillhub-club/skillhub-go/validation/http"
)

const (
	// DefaultBaseURL is the production SkillHub API.
	DefaultBaseURL = "https://skillhub.club/api/v1"

	// DefaultTimeout applies to every call that does not override it.
	DefaultTimeout = 30 * time.Second

	// Version is the SDK version reported in the User-Agent header.
	Version = "0.1.0"
)

var userAgent = "skillhub-go/" + Version

// Client calls the SkillHub API. It is safe for concurrent use; each call
// carries its own deadline and cancellation state.
type Client struct {
	baseURL        string
	doer           Doer
	defaultTimeout time.Duration
	defaultHeaders map[string]string
	logger         *slog.Logger

	// token is the only mutable state. Calls read it once while composing
	// headers, so a change applies to calls that have not reached that point.
	token atomic.Pointer[string]
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API base URL. Endpoint paths are appended to it.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithToken sets the initial bearer token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.SetToken(token)
	}
}

// WithTimeout sets the default per-call timeout. Non-positive values keep DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.defaultTimeout = d
		}
	}
}

// WithHeaders sets headers sent with every call. Per-call headers override them.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.defaultHeaders = maps.Clone(headers)
	}
}

// WithTransport sets the transport used to perform requests.
// The default is a plain *http.Client; deadlines are enforced per call through
// the request context rather than a client-wide timeout.
func WithTransport(doer Doer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

// WithLogger sets the logger used for per-call debug records.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client. It validates the base URL and default headers.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:        DefaultBaseURL,
		defaultTimeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := httpval.ValidateBaseURL(c.baseURL); err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", err)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	if err := httpval.ValidateHeaders(c.defaultHeaders); err != nil {
		return nil, fmt.Errorf("invalid default headers: %w", err)
	}

	if c.doer == nil {
		c.doer = &http.Client{}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	return c, nil
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken sets the bearer token sent with subsequent calls. An empty token
// clears it. Calls already past header composition are unaffected.
func (c *Client) SetToken(token string) {
	if token == "" {
		c.token.Store(nil)
		return
	}
	c.token.Store(&token)
}

// IsAuthenticated reports whether a token is set.
func (c *Client) IsAuthenticated() bool {
	return c.currentToken() != ""
}

func (c *Client) currentToken() string {
	if t := c.token.Load(); t != nil {
		return *t
	}
	return ""
}
