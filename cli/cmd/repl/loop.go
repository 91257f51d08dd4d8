package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/ardnew/cmakedbg/dump"
)

// Run starts a session over state and drives it from in until "exit" is
// executed, a command fails fatally, or ctx is done.
//
// Reads happen in a separate goroutine so that SIGINT can be observed while a
// read is blocked. An interrupt or end of input prints a blank line and
// re-prompts.
func Run(
	ctx context.Context,
	state *dump.State,
	in io.Reader,
	out io.Writer,
	opts ...Option,
) error {
	return NewSession(state, out, opts...).Loop(ctx, in)
}

// Loop runs the read-dispatch-print cycle on s. See [Run].
func (s *Session) Loop(ctx context.Context, in io.Reader) error {
	interrupt := s.interrupt
	if interrupt == nil {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)

		defer signal.Stop(c)

		interrupt = c
	}

	s.logger.TraceContext(ctx, "repl loop start",
		slog.Int("variable_count", s.state.NumVariables()),
		slog.Int("target_count", s.state.NumTargets()),
	)

	if _, err := fmt.Fprintf(s.out, "%s\n\n", Banner); err != nil {
		return err
	}

	lr := newLineReader(in)

	for !s.Terminated() {
		if _, err := io.WriteString(s.out, Prompt); err != nil {
			return err
		}

		line, err := s.next(ctx, lr, interrupt)
		if err != nil {
			return err
		}

		if err := s.Execute(ctx, line); err != nil {
			return err
		}
	}

	return nil
}

// next waits for the next input line. Interrupts and end of input yield an
// empty line after printing a newline.
func (s *Session) next(
	ctx context.Context,
	lr *lineReader,
	interrupt <-chan os.Signal,
) (string, error) {
	results := lr.request()

	select {
	case <-ctx.Done():
		return "", context.Cause(ctx)

	case sig := <-interrupt:
		s.logger.TraceContext(ctx, "repl interrupt", slog.String("signal", sig.String()))

		return "", s.println()

	case res := <-results:
		lr.done()

		switch {
		case res.err == nil, res.line != "":
			return strings.TrimRight(res.line, "\r\n"), nil

		case errors.Is(res.err, io.EOF):
			s.logger.TraceContext(ctx, "repl end of input")

			if err := s.println(); err != nil {
				return "", err
			}

			return "", sleep(ctx, s.eofDelay)

		default:
			return "", fmt.Errorf("%w: %w", ErrReadInput, res.err)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-t.C:
		return nil
	}
}

type readResult struct {
	line string
	err  error
}

// lineReader performs at most one outstanding read at a time. A read that
// was abandoned by an interrupt is picked up by the next request.
type lineReader struct {
	r       *bufio.Reader
	results chan readResult
	pending bool
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{
		r:       bufio.NewReader(in),
		results: make(chan readResult, 1),
	}
}

func (lr *lineReader) request() <-chan readResult {
	if !lr.pending {
		lr.pending = true

		go func() {
			line, err := lr.r.ReadString('\n')
			lr.results <- readResult{line: line, err: err}
		}()
	}

	return lr.results
}

func (lr *lineReader) done() { lr.pending = false }
