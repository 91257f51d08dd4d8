package dump

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the name of the dump file inside the CMake binary directory.
const FileName = "CMakeDebugger"

// HeaderLines is the number of leading lines that carry no data.
const HeaderLines = 4

// maxLineSize bounds a single line. Cache variables holding generated
// source lists can be far longer than bufio's default token size.
const maxLineSize = 64 << 20

// Path returns the location of the dump file inside binaryDir.
func Path(binaryDir string) string {
	return filepath.Join(binaryDir, FileName)
}

// ReadLines reads the dump file inside binaryDir.
func ReadLines(binaryDir string) ([]string, error) {
	path := Path(binaryDir)

	file, err := os.Open(path)
	if err != nil {
		return nil, ErrReadDump.Wrap(err).With(slog.String("path", path))
	}
	defer file.Close()

	lines, err := ReadLinesFrom(file)
	if err != nil {
		return nil, WrapError(err).With(slog.String("path", path))
	}

	return lines, nil
}

// ReadLinesFrom reads r to the end and returns its lines without their
// terminators. "\n", "\r\n" and a lone "\r" all end a line. No other
// whitespace is touched.
func ReadLinesFrom(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)

	var lines []string

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, ErrReadDump.Wrap(err)
	}

	return lines, nil
}

// scanLines is a [bufio.SplitFunc] for universal newlines.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}

		// A '\r' at the end of the buffer may be the first half of "\r\n".
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}

		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}

		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
