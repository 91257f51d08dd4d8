// Package cli contains the command line interface for cmakedbg.
//
// # Usage
//
// Every command reads the CMakeDebugger dump from the binary directory given
// with --binary-dir (-b):
//
//	cmakedbg -b build                 # interactive session (default)
//	cmakedbg -b build inspect --tui   # force the full-screen interface
//	cmakedbg -b build export yaml -m 'CMAKE_*'
//	cmakedbg -b build eval 'vars.CMAKE_BUILD_TYPE == "Debug"'
//
// # Configuration
//
// Flag defaults may be set in config.json or config.yaml under the user
// configuration directory. YAML mappings are flattened with hyphens, so
// "log: {level: debug}" sets --log-level. Command-line flags override the
// config file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o cmakedbg .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
