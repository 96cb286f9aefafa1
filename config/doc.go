// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads SkillHub client settings.

Settings are resolved from three sources, later sources winning:

 1. Built-in defaults ([Default]).
 2. The YAML file at $XDG_CONFIG_HOME/skillhub/config.yaml ([DefaultFilePath]).
    The file is optional. When present it is validated against an embedded
    JSON schema before it is applied.
 3. Environment variables: SKILLHUB_BASE_URL, SKILLHUB_TOKEN,
    SKILLHUB_TIMEOUT, SKILLHUB_LOG_LEVEL and SKILLHUB_LOG_FORMAT.

Example file:

	base_url: https://skillhub.club/api/v1
	token: sk_live_example
	timeout: 45s
	headers:
	  X-Team: platform
	log_level: info
	log_format: text

# Usage

	cfg, err := config.Load(config.DefaultFilePath(), &env.OSReader{})
	if err != nil {
		return err
	}
	c, err := client.New(cfg.ClientOptions()...)

[SaveToken] writes a token into the file, leaving its other settings in place.
*/
package config
