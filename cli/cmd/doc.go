// Package cmd implements the cmakedbg subcommands: inspect, export and eval.
//
// Each command loads the dump registered in its context with [WithDump] and
// writes to the standard output of the [kong.Context] stored with
// [WithContext].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file, without extension.
	ConfigIdentifier = "config"

	// FormatsIdentifier is the kong variable identifier containing the
	// comma-separated export format names.
	FormatsIdentifier = "exportFormats"
)
