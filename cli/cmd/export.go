package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/cmakedbg/dump"
)

// Export writes the dump to standard output in a structured format.
type Export struct {
	Format string `arg:"" default:"json" enum:"${exportFormats}" help:"Output format (${enum})." optional:""`
	Indent int    `default:"2" help:"Indentation width. Zero writes compact JSON or flow YAML." short:"i"`
	Match  string `help:"Only export variables and targets whose names match this glob." placeholder:"GLOB" short:"m"`
}

// Vars returns the kong variables referenced by the command tags, except
// [CacheIdentifier] and [ConfigIdentifier] which depend on the host.
func Vars() kong.Vars {
	return kong.Vars{FormatsIdentifier: strings.Join(dump.FormatNames(), ",")}
}

// Run executes the export command.
func (e *Export) Run(ctx context.Context) error {
	state, err := loadState(ctx)
	if err != nil {
		return err
	}

	if e.Match != "" {
		if state, err = state.Match(e.Match); err != nil {
			return ErrExport.Wrap(err)
		}
	}

	err = state.Format(ctx, stdout(ctx), e.Format, e.Indent)
	if err != nil {
		return ErrExport.Wrap(err).With(slog.String("format", e.Format))
	}

	return nil
}
