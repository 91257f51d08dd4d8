package dump

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Sentinel lines delimiting the sections of the dump.
const (
	VariablesStart = "# Serialized variables"
	VariablesEnd   = "# End serialized variables"
	TargetsStart   = "# Serialized targets"
	TargetsEnd     = "# End serialized targets"

	// TargetOpen and TargetClose prefix the lines that delimit a target block.
	TargetOpen  = "++++"
	TargetClose = "----"
)

// section returns the lines strictly between the first line equal to begin
// and the first line equal to end. Both sentinels are searched from the top,
// so an end that precedes its begin yields an empty section.
func section(lines []string, name, begin, end string) ([]string, error) {
	b := slices.Index(lines, begin)
	if b < 0 {
		return nil, malformed(ErrStartNotFound, name)
	}

	e := slices.Index(lines, end)
	if e < 0 {
		return nil, malformed(ErrEndNotFound, name)
	}

	if e <= b {
		return nil, nil
	}

	return lines[b+1 : e], nil
}

func malformed(boundary *Error, name string) *Error {
	return ErrMalformed.
		Wrap(fmt.Errorf("%s section: %w", name, boundary)).
		With(slog.String("section", name))
}

// splitAssignment splits "name=value" at '='. The value ends at the next '='
// if there is one, and is empty if the line has no '=' at all.
func splitAssignment(line string) (name, value string) {
	fields := strings.SplitN(line, "=", 3)

	name = fields[0]
	if len(fields) > 1 {
		value = fields[1]
	}

	return name, value
}
