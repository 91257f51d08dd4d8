package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"
)

const intro = Banner + "\n\n"

// scriptedReader returns one chunk per Read. An empty chunk is a single end
// of input; reading continues with the next chunk afterwards.
type scriptedReader struct{ chunks []string }

func (r *scriptedReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}

	chunk := r.chunks[0]
	r.chunks = r.chunks[1:]

	if chunk == "" {
		return 0, io.EOF
	}

	return copy(p, chunk), nil
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func runScript(t *testing.T, chunks ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	err := Run(context.Background(), testState(t),
		&scriptedReader{chunks: chunks}, &out,
		WithInterrupt(make(chan os.Signal)),
		WithEOFDelay(0),
	)

	return out.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   string
	}{
		{
			name:   "scenario",
			chunks: []string{"var FOO\nvar BAZ\nlistallvars\nexit\n"},
			want: intro +
				Prompt + "bar\n" +
				Prompt + "Variable BAZ not found\n" +
				Prompt + "FOO=bar\nCMAKE_BUILD_TYPE=Debug\n" +
				Prompt,
		},
		{
			name:   "end of input is a blank line",
			chunks: []string{"var FOO\n", "", "exit\n"},
			want:   intro + Prompt + "bar\n" + Prompt + "\n" + Prompt,
		},
		{
			name:   "repeated end of input",
			chunks: []string{"", "", "exit\n"},
			want:   intro + Prompt + "\n" + Prompt + "\n" + Prompt,
		},
		{
			name:   "last line without terminator",
			chunks: []string{"var FOO", "", "exit"},
			want:   intro + Prompt + "bar\n" + Prompt,
		},
		{
			name:   "crlf",
			chunks: []string{"var FOO\r\nexit\r\n"},
			want:   intro + Prompt + "bar\n" + Prompt,
		},
		{
			name:   "empty lines",
			chunks: []string{"\n   \nexit\n"},
			want:   intro + Prompt + Prompt + Prompt,
		},
		{
			name:   "empty line does not repeat the last command",
			chunks: []string{"var FOO\n\nexit\n"},
			want:   intro + Prompt + "bar\n" + Prompt + Prompt,
		},
		{
			name:   "exit with argument continues",
			chunks: []string{"exit now\nexit\n"},
			want:   intro + Prompt + "Error. Command syntax: <exit>\n" + Prompt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runScript(t, tt.chunks...)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("output =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestRun_UnknownTargetIsFatal(t *testing.T) {
	got, err := runScript(t, "var FOO\ntarget nope\nvar FOO\nexit\n")
	if !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("Run() error = %v, want ErrUnknownTarget", err)
	}

	if want := intro + Prompt + "bar\n" + Prompt; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_ReadError(t *testing.T) {
	boom := errors.New("boom")

	var out bytes.Buffer

	err := Run(context.Background(), testState(t), failingReader{boom}, &out,
		WithInterrupt(make(chan os.Signal)))
	if !errors.Is(err, ErrReadInput) || !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want ErrReadInput wrapping boom", err)
	}
}

func TestRun_Interrupt(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()

	interrupt := make(chan os.Signal)

	var out bytes.Buffer

	done := make(chan error, 1)

	go func() {
		done <- Run(context.Background(), testState(t), pr, &out,
			WithInterrupt(interrupt))
	}()

	// Nothing has been written yet, so the blocked read cannot win.
	interrupt <- os.Interrupt
	interrupt <- os.Interrupt

	if _, err := io.WriteString(pw, "var FOO\n"); err != nil {
		t.Fatal(err)
	}

	if _, err := io.WriteString(pw, "exit\n"); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return")
	}

	want := intro + Prompt + "\n" + Prompt + "\n" + Prompt + "bar\n" + Prompt
	if out.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestRun_ContextCanceled(t *testing.T) {
	pr, _ := io.Pipe()
	defer pr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer

	err := Run(ctx, testState(t), pr, &out, WithInterrupt(make(chan os.Signal)))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}

	if want := intro + Prompt; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRun_Banner(t *testing.T) {
	got, err := runScript(t, "exit\n")
	if err != nil {
		t.Fatal(err)
	}

	const want = "CMake debugger utility. Type help or ? to list commands.\n\n(cmake) "
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
