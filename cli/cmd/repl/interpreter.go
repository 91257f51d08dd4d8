package repl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ardnew/cmakedbg/dump"
	"github.com/ardnew/cmakedbg/log"
)

// Status is the lifecycle state of a [Session].
type Status int

const (
	// Running is the initial status.
	Running Status = iota
	// Terminated is entered only through the "exit" command.
	Terminated
)

// Banner is printed once when a session loop starts.
const Banner = "CMake debugger utility. Type help or ? to list commands."

// Prompt precedes every line read by [Run].
const Prompt = "(cmake) "

// Session is the environment every command handler runs in: the parsed dump,
// the output writer and the logger. The state is only read.
type Session struct {
	state     *dump.State
	out       io.Writer
	logger    log.Logger
	status    Status
	interrupt <-chan os.Signal
	eofDelay  time.Duration
}

// Option configures a [Session].
type Option func(*Session)

// WithLogger sets the logger for command tracing.
func WithLogger(logger log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithInterrupt replaces the SIGINT subscription made by [Run] with c.
func WithInterrupt(c <-chan os.Signal) Option {
	return func(s *Session) { s.interrupt = c }
}

// WithEOFDelay sets how long [Run] waits after reaching end of input before
// it reads again.
func WithEOFDelay(d time.Duration) Option {
	return func(s *Session) { s.eofDelay = max(d, 0) }
}

const defaultEOFDelay = 100 * time.Millisecond

// NewSession returns a running session over state that writes to out.
func NewSession(state *dump.State, out io.Writer, opts ...Option) *Session {
	s := &Session{
		state:    state,
		out:      out,
		eofDelay: defaultEOFDelay,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// Terminated reports whether "exit" has been executed.
func (s *Session) Terminated() bool { return s.status == Terminated }

// Execute parses and dispatches one input line.
func (s *Session) Execute(ctx context.Context, line string) error {
	return s.Dispatch(ctx, Parse(line))
}

// Dispatch runs cmd. The returned error is either a write failure or
// [ErrUnknownTarget]; both end the session. Usage errors and lookup misses
// are reported on the output instead.
func (s *Session) Dispatch(ctx context.Context, cmd Command) error {
	if cmd.Kind != KindEmpty {
		s.logger.TraceContext(ctx, "repl command",
			slog.String("kind", cmd.Kind.String()),
			slog.String("arg", cmd.Arg),
		)
	}

	switch cmd.Kind {
	case KindEmpty:
		return nil
	case KindVar:
		return s.doVar(cmd.Arg)
	case KindListAllVars:
		return s.doListAllVars(cmd.Arg)
	case KindTarget:
		return s.doTarget(cmd.Arg)
	case KindListAllTargets:
		return s.doListAllTargets(cmd.Arg)
	case KindExit:
		return s.doExit(ctx, cmd.Arg)
	case KindHelp:
		return s.doHelp(cmd.Arg)
	default:
		return s.println("*** Unknown syntax: " + cmd.Line)
	}
}

func (s *Session) println(a ...any) error {
	_, err := fmt.Fprintln(s.out, a...)

	return err
}

func (s *Session) doVar(arg string) error {
	name, _, _ := strings.Cut(arg, " ")

	v, ok := s.state.Variable(name)
	if !ok {
		return s.println("Variable " + name + " not found")
	}

	return s.println(v.Value)
}

func (s *Session) doListAllVars(arg string) error {
	if arg != "" {
		return s.println("Error. Command syntax: <listallvars>")
	}

	for name, v := range s.state.Variables() {
		if err := s.println(name + "=" + v.Value); err != nil {
			return err
		}
	}

	return nil
}

func (s *Session) doTarget(arg string) error {
	if arg == "" {
		return s.println("Error. Command syntax: target <target_name> <property>")
	}

	fields := strings.Split(arg, " ")

	if len(fields) == 1 {
		t, err := s.target(arg)
		if err != nil {
			return err
		}

		if err := s.println("Defined properties for target '" + arg + "'"); err != nil {
			return err
		}

		for _, p := range t.Properties {
			if err := s.println("\t" + p.Name + " = " + p.Value); err != nil {
				return err
			}
		}

		return nil
	}

	name, property := fields[0], fields[1]

	t, err := s.target(name)
	if err != nil {
		return err
	}

	if p, ok := t.Property(property); ok {
		return s.println(p.Value)
	}

	return s.println("No property " + property + " found for target " + name)
}

func (s *Session) target(name string) (dump.Target, error) {
	t, ok := s.state.Target(name)
	if !ok {
		return t, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}

	return t, nil
}

func (s *Session) doListAllTargets(arg string) error {
	if arg != "" {
		return s.println("Error. Command syntax: <listalltargets>")
	}

	for name := range s.state.TargetNames() {
		if err := s.println(name); err != nil {
			return err
		}
	}

	return nil
}

func (s *Session) doExit(ctx context.Context, arg string) error {
	if arg != "" {
		return s.println("Error. Command syntax: <exit>")
	}

	s.status = Terminated
	s.logger.DebugContext(ctx, "repl session terminated")

	return nil
}

const (
	helpHeader = "Documented commands (type help <topic>):"
	helpRuler  = "="
)

var helpTopics = map[string]string{
	"var": "Get the value of a CMake variable.\n\n" +
		"Example:\n    var CMAKE_BUILD_TYPE",
	"listallvars": "List all the CMake variables.",
	"target": "Get the properties of a target, or the value of one of them.\n\n" +
		"Example:\n    target app\n    target app TYPE",
	"listalltargets": "List all the CMake targets.",
	"exit":           "Exit the debugger.",
	"help":           `List available commands with "help" or detailed help with "help cmd".`,
}

func (s *Session) doHelp(arg string) error {
	if arg != "" {
		if text, ok := helpTopics[arg]; ok {
			return s.println(text)
		}

		return s.println("*** No help on " + arg)
	}

	_, err := fmt.Fprintf(s.out, "\n%s\n%s\n%s\n\n",
		helpHeader,
		strings.Repeat(helpRuler, len(helpHeader)),
		strings.Join(Words(), "  "),
	)

	return err
}
