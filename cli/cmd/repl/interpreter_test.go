package repl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSessionExecute(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"", ""},
		{"var FOO", "bar\n"},
		{"var FOO ignored", "bar\n"},
		{"var BAZ", "Variable BAZ not found\n"},
		{"var", "Variable  not found\n"},
		{"listallvars", "FOO=bar\nCMAKE_BUILD_TYPE=Debug\n"},
		{"listallvars x", "Error. Command syntax: <listallvars>\n"},
		{"target", "Error. Command syntax: target <target_name> <property>\n"},
		{"target T", "Defined properties for target 'T'\n\tp1 = a\n\tp2 = b\n"},
		{"target T p1", "a\n"},
		{"target T p2 extra", "b\n"},
		{"target T p3", "No property p3 found for target T\n"},
		{"target app TYPE", "EXECUTABLE\n"},
		{"listalltargets", "T\napp\n"},
		{"listalltargets x", "Error. Command syntax: <listalltargets>\n"},
		{"exit now", "Error. Command syntax: <exit>\n"},
		{"frobnicate", "*** Unknown syntax: frobnicate\n"},
		{"!ls", "*** Unknown syntax: !ls\n"},
		{"help var", helpTopics["var"] + "\n"},
		{"?target", helpTopics["target"] + "\n"},
		{"help nope", "*** No help on nope\n"},
		{
			"help",
			"\nDocumented commands (type help <topic>):\n" +
				"========================================\n" +
				"exit  help  listallvars  listalltargets  target  var\n\n",
		},
	}

	state := testState(t)

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var out bytes.Buffer

			s := NewSession(state, &out)

			if err := s.Execute(context.Background(), tt.line); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}

			if s.Terminated() {
				t.Error("session should still be running")
			}
		})
	}
}

func TestSessionExit(t *testing.T) {
	var out bytes.Buffer

	s := NewSession(testState(t), &out)
	if s.Status() != Running {
		t.Fatalf("Status() = %v, want Running", s.Status())
	}

	if err := s.Execute(context.Background(), "exit"); err != nil {
		t.Fatal(err)
	}

	if s.Status() != Terminated || out.Len() != 0 {
		t.Errorf("Status() = %v, output %q", s.Status(), out.String())
	}
}

func TestSessionUnknownTarget(t *testing.T) {
	for _, line := range []string{"target nope", "target nope TYPE"} {
		var out bytes.Buffer

		err := NewSession(testState(t), &out).Execute(context.Background(), line)
		if !errors.Is(err, ErrUnknownTarget) {
			t.Errorf("%q: error = %v, want ErrUnknownTarget", line, err)
		}

		if !strings.Contains(err.Error(), `"nope"`) {
			t.Errorf("%q: error %q should name the target", line, err)
		}
	}
}

func TestSessionScenario(t *testing.T) {
	var out bytes.Buffer

	s := NewSession(testState(t), &out)

	for _, line := range []string{"var FOO", "var BAZ", "target T", "exit"} {
		if err := s.Execute(context.Background(), line); err != nil {
			t.Fatal(err)
		}
	}

	want := "bar\n" +
		"Variable BAZ not found\n" +
		"Defined properties for target 'T'\n\tp1 = a\n\tp2 = b\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}

	if !s.Terminated() {
		t.Error("session should be terminated")
	}
}
