// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/skillhub-club/skillhub-go/types"
)

const (
	// Variable is the name under which each item is exposed to expressions.
	Variable = "skill"

	// MaxExpressionLength is the maximum accepted expression length.
	MaxExpressionLength = 4096

	// CostLimit bounds the runtime cost of a single evaluation.
	CostLimit = 1_000_000
)

var sharedEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable(Variable, cel.MapType(cel.StringType, cel.DynType)),
		cel.CrossTypeNumericComparisons(true),
	)
})

// Filter is a compiled skill expression. It is safe for concurrent use.
type Filter struct {
	source  string
	program cel.Program
}

// Source returns the expression the filter was compiled from.
func (f *Filter) Source() string {
	return f.source
}

// Compile parses and type checks expr. The expression must produce a bool.
// Syntax and type errors are returned as *ExpressionError.
func Compile(expr string) (*Filter, error) {
	env, ast, err := check(expr)
	if err != nil {
		return nil, err
	}

	program, err := env.Program(ast, cel.CostLimit(CostLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create program for %q: %w", expr, err)
	}
	return &Filter{source: expr, program: program}, nil
}

// Check validates expr without building a program.
func Check(expr string) error {
	_, _, err := check(expr)
	return err
}

func check(expr string) (*cel.Env, *cel.Ast, error) {
	if len(expr) > MaxExpressionLength {
		return nil, nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), MaxExpressionLength)
	}

	env, err := sharedEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	parsed, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, nil, newExpressionError(ErrKindParse, expr, issues)
	}

	checked, issues := env.Check(parsed)
	if issues.Err() != nil {
		return nil, nil, newExpressionError(ErrKindCheck, expr, issues)
	}

	out := checked.OutputType()
	if !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, nil, fmt.Errorf("%w: filter %q produces %s, not bool",
			ErrExpressionCheck, expr, out)
	}
	return env, checked, nil
}

// Match reports whether item satisfies the filter. item is converted through
// its JSON form, so fields are addressed by their JSON names. Null fields are
// left out: test them with has(skill.field).
func (f *Filter) Match(item any) (bool, error) {
	fields, err := toFields(item)
	if err != nil {
		return false, err
	}

	out, _, err := f.program.Eval(map[string]any{Variable: fields})
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidResult, out.Value())
	}
	return matched, nil
}

// Apply returns the items that satisfy f, in their original order. A nil
// filter keeps every item. Evaluation stops at the first failing item.
func Apply[T any](f *Filter, items []T) ([]T, error) {
	if f == nil {
		return items, nil
	}

	kept := make([]T, 0, len(items))
	for i := range items {
		ok, err := f.Match(items[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if ok {
			kept = append(kept, items[i])
		}
	}
	return kept, nil
}

// Skills filters catalog skills.
func Skills(f *Filter, skills []types.Skill) ([]types.Skill, error) {
	return Apply(f, skills)
}

func toFields(item any) (map[string]any, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding item: %w", ErrEvaluation, err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: item is not an object: %w", ErrEvaluation, err)
	}
	for k, v := range fields {
		if v == nil {
			delete(fields, k)
		}
	}
	return fields, nil
}
