package dump

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var header = []string{
	"# CMakeDebugger",
	"# Generated by CMake",
	"# Do not edit",
	"",
}

// makeDump returns the lines of a dump file with the given section bodies.
func makeDump(vars, targets []string) []string {
	lines := append([]string{}, header...)
	lines = append(lines, VariablesStart)
	lines = append(lines, vars...)
	lines = append(lines, VariablesEnd, TargetsStart)
	lines = append(lines, targets...)

	return append(lines, TargetsEnd)
}

// writeDump writes lines to a CMakeDebugger file in a new temp directory and
// returns the directory.
func writeDump(t *testing.T, lines []string) string {
	t.Helper()

	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, FileName),
		[]byte(strings.Join(lines, "\n")+"\n"),
		0o644,
	)
	if err != nil {
		t.Fatal(err)
	}

	return dir
}
