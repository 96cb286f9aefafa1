// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"time"

	"github.com/skillhub-club/skillhub-go/httperr"
	httpval "github.com/skillhub-club/skillhub-go/validation/http"
)

const (
	mediaTypeJSON = "application/json"
	mediaTypeText = "text/plain"

	// maxErrorBodySize bounds how much of a failed response is read for its error envelope.
	maxErrorBodySize = 1 << 20

	// maxDrainSize bounds how much of an unread body is discarded before closing.
	maxDrainSize = 64 << 10
)

// errRequestTimeout is the cancellation cause of the per-call deadline. It
// separates the deadline from cancellation of the caller's context.
var errRequestTimeout = errors.New("skillhub: request deadline exceeded")

// requestConfig holds per-call overrides.
type requestConfig struct {
	timeout time.Duration
	headers map[string]string
}

// RequestOption overrides client defaults for a single call.
type RequestOption func(*requestConfig)

// WithRequestTimeout overrides the client's default timeout for one call.
// Non-positive values keep the default.
func WithRequestTimeout(d time.Duration) RequestOption {
	return func(rc *requestConfig) {
		if d > 0 {
			rc.timeout = d
		}
	}
}

// WithRequestHeader adds a header to one call. It overrides a default header
// with the same name but never the Authorization header of a set token.
func WithRequestHeader(name, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = make(map[string]string)
		}
		rc.headers[name] = value
	}
}

// WithRequestHeaders adds several headers to one call, like WithRequestHeader.
func WithRequestHeaders(headers map[string]string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = make(map[string]string, len(headers))
		}
		maps.Copy(rc.headers, headers)
	}
}

func (c *Client) newRequestConfig(opts []RequestOption) requestConfig {
	rc := requestConfig{timeout: c.defaultTimeout}
	for _, opt := range opts {
		opt(&rc)
	}
	return rc
}

// withDeadline derives the call context. It is done when the caller's context
// is done or the deadline elapses, and immediately if the caller's context is
// already done.
func withDeadline(ctx context.Context, rc requestConfig) (context.Context, context.CancelFunc) {
	return context.WithTimeoutCause(ctx, rc.timeout, errRequestTimeout)
}

// do performs a JSON call. body, when non-nil, is sent as JSON. out, when
// non-nil, receives the decoded response; otherwise the body is discarded.
// Every error it returns is an *httperr.Error.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any, opts ...RequestOption) error {
	rc := c.newRequestConfig(opts)
	ctx, cancel := withDeadline(ctx, rc)
	defer cancel()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return httperr.Unknown(fmt.Errorf("encoding request body: %w", err))
		}
	}

	res, err := c.send(ctx, method, endpoint, payload, mediaTypeJSON, rc)
	if err != nil {
		return err
	}
	defer drainAndClose(res.Body)

	if !isSuccess(res.StatusCode) {
		return errorFromResponse(res)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return transportError(ctx, fmt.Errorf("decoding response body: %w", err))
	}
	return nil
}

// send builds and performs a request, mapping transport failures. On success
// the caller owns the response body.
func (c *Client) send(
	ctx context.Context, method, endpoint string, payload []byte, accept string, rc requestConfig,
) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, endpoint, payload, accept, rc)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := c.doer.Do(req)
	if err != nil {
		mapped := transportError(ctx, err)
		c.logCall(ctx, method, endpoint, 0, start, mapped)
		return nil, mapped
	}
	if res == nil {
		mapped := httperr.Unknown(errors.New("transport returned no response"))
		c.logCall(ctx, method, endpoint, 0, start, mapped)
		return nil, mapped
	}
	if res.Body == nil {
		res.Body = http.NoBody
	}

	// A transport that ignored cancellation may still hand back a response;
	// once the call context is done that response is discarded.
	if ctx.Err() != nil {
		drainAndClose(res.Body)
		mapped := transportError(ctx, ctx.Err())
		c.logCall(ctx, method, endpoint, res.StatusCode, start, mapped)
		return nil, mapped
	}

	c.logCall(ctx, method, endpoint, res.StatusCode, start, nil)
	return res, nil
}

// newRequest composes the request. Header layers, later wins: fixed headers,
// client defaults, per-call headers, then Authorization when a token is set.
func (c *Client) newRequest(
	ctx context.Context, method, endpoint string, payload []byte, accept string, rc requestConfig,
) (*http.Request, error) {
	if err := httpval.ValidateHeaders(rc.headers); err != nil {
		return nil, httperr.Unknown(fmt.Errorf("invalid request headers: %w", err))
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, httperr.Unknown(fmt.Errorf("creating %s %s request: %w", method, endpoint, err))
	}

	if accept == mediaTypeJSON {
		req.Header.Set("Content-Type", mediaTypeJSON)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", userAgent)
	for name, value := range c.defaultHeaders {
		req.Header.Set(name, value)
	}
	for name, value := range rc.headers {
		req.Header.Set(name, value)
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// transportError maps a failure that happened before a usable response was
// read. Only the per-call deadline yields TIMEOUT; cancellation of the
// caller's context is reported as a network error.
func transportError(ctx context.Context, err error) error {
	if errors.Is(context.Cause(ctx), errRequestTimeout) {
		return httperr.Timeout()
	}
	return httperr.Network(err)
}

// errorFromResponse maps a non-2xx response. The body is decoded on a best
// effort basis; an unreadable or non-JSON body leaves code and details empty.
func errorFromResponse(res *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
	if err != nil {
		return httperr.FromEnvelope(res.StatusCode, nil)
	}

	var env httperr.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return httperr.FromEnvelope(res.StatusCode, nil)
	}
	return httperr.FromEnvelope(res.StatusCode, &env)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func drainAndClose(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainSize))
	_ = body.Close()
}

func (c *Client) logCall(ctx context.Context, method, endpoint string, status int, start time.Time, err error) {
	if err == nil {
		c.logger.DebugContext(ctx, "skillhub request completed",
			"method", method,
			"path", endpoint,
			"status", status,
			"duration", time.Since(start),
		)
		return
	}
	c.logger.DebugContext(ctx, "skillhub request failed",
		"method", method,
		"path", endpoint,
		"status", status,
		"code", httperr.CodeOf(err),
		"duration", time.Since(start),
		"error", err,
	)
}
