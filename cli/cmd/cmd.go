package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/cmakedbg/dump"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer commands print results to.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

type stdinKey struct{}

// WithStdin returns a new context.Context whose interactive session reads
// from r instead of os.Stdin.
func WithStdin(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey{}, r)
}

func stdin(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

type (
	dumpKey    struct{}
	dumpSource struct {
		dir  string
		opts []dump.Option
	}
)

// WithDump returns a new context.Context from which commands load the dump
// file in binaryDir, parsed with opts.
func WithDump(
	ctx context.Context,
	binaryDir string,
	opts ...dump.Option,
) context.Context {
	return context.WithValue(ctx, dumpKey{}, dumpSource{dir: binaryDir, opts: opts})
}

// loadState loads and parses the dump registered with [WithDump].
func loadState(ctx context.Context) (*dump.State, error) {
	src, ok := ctx.Value(dumpKey{}).(dumpSource)
	if !ok {
		return nil, ErrNoDump
	}

	return dump.Load(ctx, src.dir, src.opts...)
}
