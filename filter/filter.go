// Package filter compiles expr-lang expressions and evaluates them against
// flattened FBR rows.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/fbrfetch/fbrfetch/fbrapi"
)

// RowFilter represents a compiled row filter
type RowFilter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression. Row columns are available as
// variables by name; columns absent from a row evaluate to nil.
//
// Examples:
//
//	competition_name == "Premier League"
//	league_id == 9
//	contains(competition_name, "cup")
func Compile(expression string) (*RowFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(buildEnv(nil)),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &RowFilter{
		program: program,
		expr:    expression,
	}, nil
}

// String returns the original expression.
func (f *RowFilter) String() string {
	return f.expr
}

// Evaluate reports whether the row matches the filter.
func (f *RowFilter) Evaluate(row fbrapi.Row) (bool, error) {
	result, err := expr.Run(f.program, buildEnv(row))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression must return a boolean, got %T", result)
	}
	return matched, nil
}

// Apply returns the rows matching the filter, preserving order.
func (f *RowFilter) Apply(rows []fbrapi.Row) ([]fbrapi.Row, error) {
	var matched []fbrapi.Row
	for _, row := range rows {
		ok, err := f.Evaluate(row)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

// buildEnv creates the expression environment: string helpers plus the row's
// columns. Row columns shadow helpers on name collision.
func buildEnv(row fbrapi.Row) map[string]any {
	env := map[string]any{
		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}

	for k, v := range row {
		env[k] = v
	}
	return env
}
