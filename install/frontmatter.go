// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package install

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxFrontmatterSize limits frontmatter to prevent YAML parsing attacks.
const maxFrontmatterSize = 64 * 1024

// ErrNoFrontmatter is returned when SKILL.md content does not open with a
// YAML frontmatter block.
var ErrNoFrontmatter = errors.New("SKILL.md must start with YAML frontmatter (---)")

// Frontmatter is the YAML header of a SKILL.md file.
type Frontmatter struct {
	Name         string            `yaml:"name" json:"name"`
	Description  string            `yaml:"description" json:"description"`
	Version      string            `yaml:"version,omitempty" json:"version,omitempty"`
	AllowedTools ToolList          `yaml:"allowed-tools,omitempty" json:"allowed_tools,omitempty"`
	License      string            `yaml:"license,omitempty" json:"license,omitempty"`
	Metadata     map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// ToolList is the allowed-tools value, written either as a YAML sequence or
// as a single comma- or space-separated string.
type ToolList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *ToolList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		sep := strings.Fields
		if strings.Contains(value.Value, ",") {
			sep = func(s string) []string { return strings.Split(s, ",") }
		}
		var tools []string
		for _, part := range sep(value.Value) {
			if part = strings.TrimSpace(part); part != "" {
				tools = append(tools, part)
			}
		}
		*l = tools
		return nil
	case yaml.SequenceNode:
		var tools []string
		if err := value.Decode(&tools); err != nil {
			return fmt.Errorf("decoding allowed-tools list: %w", err)
		}
		*l = tools
		return nil
	default:
		return fmt.Errorf("allowed-tools: expected string or list, got YAML node kind %d", value.Kind)
	}
}

// ParseFrontmatter extracts the frontmatter of SKILL.md content.
func ParseFrontmatter(content []byte) (*Frontmatter, error) {
	content = bytes.TrimSpace(content)

	delimiter := []byte("---")
	if !bytes.HasPrefix(content, delimiter) {
		return nil, ErrNoFrontmatter
	}

	rest := bytes.TrimPrefix(content[len(delimiter):], []byte("\n"))
	end := bytes.Index(rest, delimiter)
	if end == -1 {
		return nil, fmt.Errorf("SKILL.md frontmatter missing closing delimiter (---)")
	}

	block := rest[:end]
	if len(block) > maxFrontmatterSize {
		return nil, fmt.Errorf("frontmatter exceeds maximum size of %d bytes", maxFrontmatterSize)
	}

	var fm Frontmatter
	if err := yaml.Unmarshal(block, &fm); err != nil {
		return nil, fmt.Errorf("parsing frontmatter YAML: %w", err)
	}
	return &fm, nil
}
