// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package client provides a typed client for the SkillHub API: search, catalog
browsing, skill details, install information and user favorites.

# Creating a Client

	c, err := client.New(
		client.WithToken(os.Getenv("SKILLHUB_TOKEN")),
		client.WithTimeout(10*time.Second),
	)
	if err != nil {
		return err
	}

	results, err := c.Search(ctx, "pdf processing", nil)

# Deadlines and Cancellation

Every call runs under a deadline: the client default (30s unless configured)
or a per-call override from [WithRequestTimeout]. The caller's context is the
cancellation handle. The call is aborted as soon as either fires, and at once
if the context is already done when the call starts.

A deadline expiry fails with status 408 and code TIMEOUT. Cancellation of the
caller's context fails with status 0 and code NETWORK_ERROR.

# Errors

Every error returned by a Client method is an [*httperr.Error]:

	_, err := c.GetFavorites(ctx)
	if httperr.IsCode(err, httperr.CodeUnauthorized) {
		// no token set; no request was made
	}

# Authentication

[Client.SetToken] sets or clears the bearer token. Current-user and favorites
operations fail locally with 401 UNAUTHORIZED when no token is set.

# Testing

The transport is the [Doer] interface. A generated mock is available in the
mocks sub-package:

	ctrl := gomock.NewController(t)
	doer := mocks.NewMockDoer(ctrl)
	c, _ := client.New(client.WithTransport(doer))
*/
package client
