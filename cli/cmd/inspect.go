package cmd

import (
	"context"
	"os"

	"golang.org/x/term"

	"github.com/ardnew/cmakedbg/cli/cmd/repl"
	"github.com/ardnew/cmakedbg/log"
)

// Inspect starts an interactive session over the dump.
type Inspect struct {
	TUI     bool   `help:"Use the line editor with completion and history (terminals only)." name:"tui"`
	History string `default:"${cache}" help:"Directory of the line editor history file." type:"path"`
}

// Run executes the inspect command.
func (c *Inspect) Run(ctx context.Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	opts := []repl.Option{repl.WithLogger(log.Default())}

	if c.TUI {
		if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
			return wrapSession(repl.RunTUI(ctx, state, c.History, opts...))
		}

		log.WarnContext(ctx, "standard input is not a terminal, using line mode")
	}

	return wrapSession(repl.Run(ctx, state, stdin(ctx), stdout(ctx), opts...))
}

func wrapSession(err error) error {
	if err != nil {
		return ErrSession.Wrap(err)
	}

	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
