// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, so configuration can be loaded without touching the real environment
in tests.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	if token, ok := env.Lookup(reader, "SKILLHUB_TOKEN"); ok {
		// use token
	}

Lookup trims whitespace and treats an empty value as unset.

# Testing

Tests can pass a MapReader holding fixed values, or the generated mock from
the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().LookupEnv("SKILLHUB_TOKEN").Return("test-token", true)
*/
package env
