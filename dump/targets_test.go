package dump

import (
	"errors"
	"slices"
	"testing"
)

func TestParseTargets(t *testing.T) {
	lines := []string{
		TargetsStart,
		"++++lib",
		"lib TYPE=STATIC_LIBRARY",
		"----lib",
		"++++app",
		"app TYPE=EXECUTABLE",
		"app SOURCES=main.c;util.c",
		"app LINK=lib",
		"app LINK=m",
		"----app",
		"++++empty",
		"----empty",
		TargetsEnd,
	}

	targets, err := ParseTargets(lines, PrefixCharset)
	if err != nil {
		t.Fatalf("ParseTargets() error = %v", err)
	}

	if got := slices.Collect(targets.Keys()); !slices.Equal(got, []string{"lib", "app", "empty"}) {
		t.Errorf("Keys() = %q", got)
	}

	app, ok := targets.Get("app")
	if !ok {
		t.Fatal("target app not found")
	}

	want := []TargetProperty{
		{"TYPE", "EXECUTABLE"},
		{"SOURCES", "main.c;util.c"},
		{"LINK", "lib"},
		{"LINK", "m"},
	}

	if !slices.Equal(app.Properties, want) {
		t.Errorf("app.Properties = %+v, want %+v", app.Properties, want)
	}

	if p, ok := app.Property("LINK"); !ok || p.Value != "lib" {
		t.Errorf("Property(LINK) = %+v, %v, want first occurrence", p, ok)
	}

	if _, ok := app.Property("MISSING"); ok {
		t.Error("Property(MISSING) should not be found")
	}

	empty, _ := targets.Get("empty")
	if len(empty.Properties) != 0 {
		t.Errorf("empty.Properties = %+v", empty.Properties)
	}
}

func TestParseTargets_OrderIndependent(t *testing.T) {
	forward := []string{TargetsStart, "++++a", "----a", "++++b", "----b", TargetsEnd}
	reverse := []string{TargetsStart, "++++b", "----b", "++++a", "----a", TargetsEnd}

	for _, lines := range [][]string{forward, reverse} {
		targets, err := ParseTargets(lines, PrefixCharset)
		if err != nil {
			t.Fatal(err)
		}

		got := slices.Sorted(targets.Keys())
		if !slices.Equal(got, []string{"a", "b"}) {
			t.Errorf("names = %q, want [a b]", got)
		}
	}
}

func TestParseTargets_PrefixMode(t *testing.T) {
	lines := []string{
		TargetsStart,
		"++++app",
		"app path=/usr/bin",
		"app TYPE=EXECUTABLE",
		"----app",
		TargetsEnd,
	}

	tests := []struct {
		mode PrefixMode
		want []string
	}{
		// "path" shares 'p' and 'a' with "app" and loses them.
		{PrefixCharset, []string{"th", "TYPE"}},
		{PrefixLiteral, []string{"path", "TYPE"}},
	}

	for _, tt := range tests {
		targets, err := ParseTargets(lines, tt.mode)
		if err != nil {
			t.Fatal(err)
		}

		app, _ := targets.Get("app")

		var got []string
		for _, p := range app.Properties {
			got = append(got, p.Name)
		}

		if !slices.Equal(got, tt.want) {
			t.Errorf("mode %d: names = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestParseTargets_NameIsTrimmed(t *testing.T) {
	targets, err := ParseTargets([]string{
		TargetsStart, "++++app  ", "app A=1", "----app  ", TargetsEnd,
	}, PrefixCharset)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := targets.Get("app"); !ok {
		t.Errorf("Keys() = %q, want trimmed app", slices.Collect(targets.Keys()))
	}
}

func TestParseTargets_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{"missing start", []string{"++++a", "----a", TargetsEnd}, ErrStartNotFound},
		{"missing end", []string{TargetsStart, "++++a", "----a"}, ErrEndNotFound},
		{"unclosed target", []string{TargetsStart, "++++a", "a X=1", TargetsEnd}, ErrTargetEndNotFound},
		{"close before open", []string{TargetsStart, "----a", "++++a", TargetsEnd}, ErrTargetEndNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTargets(tt.lines, PrefixCharset)
			if !errors.Is(err, ErrMalformed) || !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want ErrMalformed and %v", err, tt.want)
			}
		})
	}
}

func TestParseTargets_ValueKeepsEquals(t *testing.T) {
	targets, err := ParseTargets([]string{
		TargetsStart,
		"++++app",
		"app COMPILE_DEFINITIONS=FOO=1;BAR=2",
		"app EMPTY=",
		"app NOVALUE",
		"----app",
		TargetsEnd,
	}, PrefixLiteral)
	if err != nil {
		t.Fatal(err)
	}

	app, _ := targets.Get("app")

	want := []TargetProperty{
		{"COMPILE_DEFINITIONS", "FOO=1;BAR=2"},
		{"EMPTY", ""},
		{"NOVALUE", ""},
	}

	if !slices.Equal(app.Properties, want) {
		t.Errorf("app.Properties = %+v, want %+v", app.Properties, want)
	}
}
