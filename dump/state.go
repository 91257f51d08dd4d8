package dump

import (
	"context"
	"iter"
	"log/slog"

	"github.com/ardnew/cmakedbg/log"
)

// State is the deserialized content of a dump: variables and targets keyed by
// name, in file order. A State is never modified after [Parse] returns it.
type State struct {
	variables *Index[Variable]
	targets   *Index[Target]
	prefix    PrefixMode
	logger    log.Logger
}

// Option configures [Load] and [Parse].
type Option func(*State)

// WithLogger sets the logger used for trace and debug output.
// The zero logger discards everything.
func WithLogger(logger log.Logger) Option {
	return func(s *State) {
		s.logger = logger
	}
}

// WithLiteralPrefix selects [PrefixLiteral] when literal is true and the
// default [PrefixCharset] otherwise.
func WithLiteralPrefix(literal bool) Option {
	return func(s *State) {
		if literal {
			s.prefix = PrefixLiteral
		} else {
			s.prefix = PrefixCharset
		}
	}
}

// Load reads and parses the dump file inside binaryDir.
func Load(ctx context.Context, binaryDir string, opts ...Option) (*State, error) {
	lines, err := ReadLines(binaryDir)
	if err != nil {
		return nil, err
	}

	return Parse(ctx, lines, opts...)
}

// Parse deserializes the lines of a complete dump file, header included.
func Parse(ctx context.Context, lines []string, opts ...Option) (*State, error) {
	s := &State{}

	for _, opt := range opts {
		opt(s)
	}

	s.logger.TraceContext(ctx, "dump parse start",
		slog.Int("line_count", len(lines)),
		slog.Bool("literal_prefix", s.prefix == PrefixLiteral),
	)

	body := lines[min(HeaderLines, len(lines)):]

	vars, err := ParseVariables(body)
	if err != nil {
		return nil, err
	}

	targets, err := ParseTargets(body, s.prefix)
	if err != nil {
		return nil, err
	}

	s.variables, s.targets = vars, targets

	s.logger.DebugContext(ctx, "dump parsed",
		slog.Int("variable_count", vars.Len()),
		slog.Int("target_count", targets.Len()),
	)

	return s, nil
}

// Variable returns the variable called name.
func (s *State) Variable(name string) (Variable, bool) {
	return s.variables.Get(name)
}

// Variables iterates over all variables in file order.
func (s *State) Variables() iter.Seq2[string, Variable] {
	return s.variables.All()
}

// VariableNames iterates over all variable names in file order.
func (s *State) VariableNames() iter.Seq[string] {
	return s.variables.Keys()
}

// NumVariables returns the number of distinct variable names.
func (s *State) NumVariables() int { return s.variables.Len() }

// Target returns the target called name.
func (s *State) Target(name string) (Target, bool) {
	return s.targets.Get(name)
}

// Targets iterates over all targets in file order.
func (s *State) Targets() iter.Seq2[string, Target] {
	return s.targets.All()
}

// TargetNames iterates over all target names in file order.
func (s *State) TargetNames() iter.Seq[string] {
	return s.targets.Keys()
}

// NumTargets returns the number of distinct target names.
func (s *State) NumTargets() int { return s.targets.Len() }
