// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides a pre-configured [log/slog.Logger] factory shared by
the SkillHub client and the skillhub command.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]
  - Durations: rendered with [time.Duration.String]

# Basic Usage

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
	)
	c, err := client.New(client.WithLogger(logger))

# Configuration Strings

[ParseFormat] and [ParseLevel] turn the values found in config files and
environment variables ("json", "text", "debug", "warn", ...) into options:

	format, err := logging.ParseFormat(cfg.LogFormat)
	level, err := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(logging.WithFormat(format), logging.WithLevel(level))

# Testing

Inject a buffer to capture log output in tests:

	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf))
*/
package logging
