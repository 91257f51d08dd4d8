package repl

import (
	"slices"
	"testing"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "var", 3, "var", 0, 3},
		{"second_word", "var FOO", 7, "FOO", 4, 7},
		{"mid_word", "target app", 6, "app", 7, 10},
		{"inside_word", "listallvars", 4, "listallvars", 0, 11},
		{"empty_after_space", "target ", 7, "", 7, 7},
		{"at_start", "var", 0, "var", 0, 3},
		{"punctuation_kept", "var A.B-C", 9, "A.B-C", 4, 9},
		{"cursor_past_end", "var", 10, "var", 0, 3},
		{"empty", "", 0, "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	state := testState(t)

	tests := []struct {
		input string
		want  []string
	}{
		{"", Words()},
		{"help ", Words()},
		{"var ", []string{"FOO", "CMAKE_BUILD_TYPE"}},
		{"target ", []string{"T", "app"}},
		{"target T ", []string{"p1", "p2"}},
		{"target nope ", nil},
		{"listallvars ", nil},
		{"var FOO ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := candidates(state, tt.input, len(tt.input))
			if !slices.Equal(got, tt.want) {
				t.Errorf("candidates(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
