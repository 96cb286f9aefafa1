// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package http provides validation functions for HTTP headers and API base URLs.

The SkillHub client runs these checks on its default headers and base URL at
construction time, and on per-call headers before a request is built, so a
header injection attempt never reaches the transport.

# Header Validation

Validate HTTP header names and values per RFC 7230:

	if err := http.ValidateHeaderName("X-Client-Version"); err != nil {
		// Handle invalid header name
	}

	if err := http.ValidateHeaders(map[string]string{"X-Team": "search"}); err != nil {
		// Handle invalid header map
	}

The validators check for:
  - CRLF injection attempts (\r\n sequences)
  - Control characters
  - RFC 7230 token compliance for header names
  - Length limits (256 bytes for names, 8192 for values)

# Base URL Validation

	if err := http.ValidateBaseURL("https://skillhub.club/api/v1"); err != nil {
		// Handle invalid URL
	}

Base URLs must use http or https, include a host, and carry neither a query
string nor a fragment.
*/
package http
