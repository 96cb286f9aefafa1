// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=transport.go -destination=mocks/mock_doer.go -package=mocks Doer

import "net/http"

// Doer performs a single HTTP request. *http.Client satisfies it.
//
// Implementations must observe req.Context(): the client cancels it when the
// request deadline elapses or the caller's context is done.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
