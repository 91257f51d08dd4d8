package repl

import (
	"context"
	"testing"

	"github.com/ardnew/cmakedbg/dump"
)

// testState returns a state with two variables and two targets:
//
//	FOO=bar, CMAKE_BUILD_TYPE=Debug
//	T   { p1 = a, p2 = b }
//	app { TYPE = EXECUTABLE }
func testState(t *testing.T) *dump.State {
	t.Helper()

	state, err := dump.Parse(context.Background(), []string{
		"# header", "#", "#", "",
		dump.VariablesStart,
		"FOO=bar",
		"CMAKE_BUILD_TYPE=Debug",
		dump.VariablesEnd,
		dump.TargetsStart,
		"++++T",
		"T p1=a",
		"T p2=b",
		"----T",
		"++++app",
		"app TYPE=EXECUTABLE",
		"----app",
		dump.TargetsEnd,
	})
	if err != nil {
		t.Fatal(err)
	}

	return state
}
