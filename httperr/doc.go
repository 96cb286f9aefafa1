// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides the canonical error type returned by the SkillHub client.

Every failure that leaves the client is an [*Error] carrying the HTTP status
(0 when no response was received), an optional machine-readable [Code], a
human-readable message and optional structured details sent by the service.

# Kinds

	HTTP failure    status = response status, code/details from the error body
	TIMEOUT         status 408, the request deadline elapsed
	NETWORK_ERROR   status 0, transport failure, message copied from the cause
	UNAUTHORIZED    status 401, no token set for a token-gated operation
	UNKNOWN         status 0, anything else

# Branching on Errors

	skill, err := c.GetSkill(ctx, "pdf-processor", false)
	if err != nil {
		switch {
		case httperr.IsCode(err, httperr.CodeTimeout):
			// retry later
		case httperr.Status(err) == http.StatusNotFound:
			// no such skill
		}
	}

[*Error] implements Unwrap, so errors.As works through wrapping layers:

	var apiErr *httperr.Error
	if errors.As(err, &apiErr) {
		log.Printf("HTTP %d %s: %s", apiErr.HTTPCode(), apiErr.Code, apiErr.Message)
	}
*/
package httperr
