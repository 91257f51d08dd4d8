package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/cmakedbg/dump"
)

// Eval evaluates an expression over the dump.
//
// The expression sees three names: vars (variable values by name), targets
// (property values by target and property name) and list (splits a CMake
// list).
type Eval struct {
	Expression []string `arg:"" help:"Expression to evaluate; multiple words are joined with spaces" name:"expression"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	source := strings.Join(e.Expression, " ")

	result, err := state.Evaluate(ctx, source)
	if err != nil {
		return ErrEval.Wrap(err).With(slog.String("command", "eval"))
	}

	_, err = fmt.Fprintln(stdout(ctx), dump.FormatResult(result))

	return err
}
