// Package log provides a concurrency-safe structured logger built on
// [log/slog].
//
// A [Logger] is created with [Make] and configured with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
//	logger.Info("dump loaded", slog.Int("variables", 42))
//
// Every level has a context-aware variant ([Logger.InfoContext], ...). The
// context-unaware variants use [DefaultContextProvider].
//
// # Levels
//
// In addition to the slog levels, the package defines [LevelTrace] below
// [LevelDebug] for per-command and per-line diagnostics.
//
// # Formats
//
// Output is JSON ([FormatJSON]) or logfmt-style text ([FormatText]). With
// [WithPretty] enabled, both formats are rendered with terminal colors.
//
// # Default Logger
//
// The package-level functions ([Debug], [Info], [Error], ...) write through a
// default logger that writes to [os.Stderr]. [Config] replaces its options.
package log
