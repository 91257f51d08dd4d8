package dump

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
)

// ListSeparator separates the elements of a CMake list value.
const ListSeparator = ";"

// Env returns the expression environment for the state:
//
//	vars     map[string]string             variable name to value
//	targets  map[string]map[string]string  target name to property values,
//	                                       first occurrence of a name wins
//	list     func(string) []string         splits a CMake list
func (s *State) Env() map[string]any {
	vars := make(map[string]string, s.NumVariables())
	for name, v := range s.Variables() {
		vars[name] = v.Value
	}

	targets := make(map[string]map[string]string, s.NumTargets())
	for name, t := range s.Targets() {
		props := make(map[string]string, len(t.Properties))
		for _, p := range t.Properties {
			if _, ok := props[p.Name]; !ok {
				props[p.Name] = p.Value
			}
		}

		targets[name] = props
	}

	return map[string]any{
		"vars":    vars,
		"targets": targets,
		"list":    splitList,
	}
}

func splitList(value string) []string {
	if value == "" {
		return []string{}
	}

	return strings.Split(value, ListSeparator)
}

// Evaluate compiles and runs an expr-lang expression against [State.Env].
//
//	state.Evaluate(ctx, `vars.CMAKE_BUILD_TYPE == "Debug"`)
//	state.Evaluate(ctx, `filter(keys(targets), {targets[#].TYPE == "EXECUTABLE"})`)
func (s *State) Evaluate(ctx context.Context, source string) (any, error) {
	env := s.Env()

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, ErrExprCompile.Wrap(err).With(slog.String("source", source))
	}

	s.logger.TraceContext(ctx, "expr compiled", slog.String("source", source))

	result, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err).With(slog.String("source", source))
	}

	return result, nil
}

// FormatResult renders an evaluation result for display. Strings are printed
// verbatim and lists one element per line.
func FormatResult(result any) string {
	switch v := result.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = FormatResult(e)
		}

		return strings.Join(parts, "\n")
	case map[string]string:
		keys := slices.Sorted(maps.Keys(v))

		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + v[k]
		}

		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}
