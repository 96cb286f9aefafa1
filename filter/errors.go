// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Sentinel errors for filter operations.
var (
	// ErrExpressionCheck is returned when an expression fails syntax or type checking.
	ErrExpressionCheck = errors.New("filter expression check failed")

	// ErrEvaluation is returned when evaluating an expression against an item fails.
	ErrEvaluation = errors.New("filter expression evaluation failed")

	// ErrInvalidResult is returned when an expression does not produce a bool.
	ErrInvalidResult = errors.New("filter expression returned invalid result type")
)

// ErrKind identifies the compilation stage an ExpressionError came from.
type ErrKind string

const (
	// ErrKindParse indicates a syntax error.
	ErrKindParse ErrKind = "parse"
	// ErrKindCheck indicates a type checking error, such as an unknown variable.
	ErrKindCheck ErrKind = "check"
)

// Issue is one problem found in an expression. Line and Col are 1-based.
type Issue struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// ExpressionError reports a filter expression that could not be compiled,
// with the location of every issue.
type ExpressionError struct {
	Kind   ErrKind `json:"kind"`
	Source string  `json:"source,omitempty"`
	Issues []Issue `json:"errors,omitempty"`

	original error
}

// Error implements the error interface.
func (e *ExpressionError) Error() string {
	return fmt.Sprintf("%s error in filter %q: %s", e.Kind, e.Source, e.original)
}

// Unwrap returns the underlying error, which wraps ErrExpressionCheck.
func (e *ExpressionError) Unwrap() error {
	return e.original
}

// AsJSON returns the error details as a JSON string.
func (e *ExpressionError) AsJSON() string {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal JSON: %s"}`, err)
	}
	return string(b)
}

func newExpressionError(kind ErrKind, source string, issues *cel.Issues) error {
	e := &ExpressionError{
		Kind:     kind,
		Source:   source,
		Issues:   make([]Issue, 0, len(issues.Errors())),
		original: fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
	// CEL columns are 0-based.
	for _, ce := range issues.Errors() {
		e.Issues = append(e.Issues, Issue{
			Line: ce.Location.Line(),
			Col:  ce.Location.Column() + 1,
			Msg:  ce.Message,
		})
	}
	return e
}
