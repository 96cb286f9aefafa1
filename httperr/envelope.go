// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

// Envelope is the error body the SkillHub service sends with non-2xx responses.
type Envelope struct {
	Error     *EnvelopeError `json:"error,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// EnvelopeError is the error object inside an Envelope.
type EnvelopeError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
