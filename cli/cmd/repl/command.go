package repl

import "strings"

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies a command.
type Kind int

const (
	KindEmpty Kind = iota
	KindVar
	KindListAllVars
	KindTarget
	KindListAllTargets
	KindExit
	KindHelp
	KindUnknown
)

// words maps each command word to its kind. Order is the help listing order.
var words = []struct {
	word string
	kind Kind
}{
	{"exit", KindExit},
	{"help", KindHelp},
	{"listallvars", KindListAllVars},
	{"listalltargets", KindListAllTargets},
	{"target", KindTarget},
	{"var", KindVar},
}

// Words returns the command words in alphabetical order.
func Words() []string {
	w := make([]string, len(words))
	for i, e := range words {
		w[i] = e.word
	}

	return w
}

func lookup(word string) Kind {
	for _, e := range words {
		if e.word == word {
			return e.kind
		}
	}

	return KindUnknown
}

// Command is a parsed input line.
type Command struct {
	Kind Kind
	// Word is the command word as typed.
	Word string
	// Arg is everything after the command word with surrounding whitespace
	// removed.
	Arg string
	// Line is the trimmed input, with a leading "?" expanded to "help ".
	Line string
}

// Parse resolves an input line into a [Command].
//
// The command word is the leading run of letters, digits and underscores.
// A line starting with "?" is a help request.
func Parse(line string) Command {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Kind: KindEmpty}
	}

	if rest, ok := strings.CutPrefix(line, "?"); ok {
		line = "help " + rest
	}

	i := strings.IndexFunc(line, func(r rune) bool { return !isIdent(r) })
	if i < 0 {
		i = len(line)
	}

	cmd := Command{
		Word: line[:i],
		Arg:  strings.TrimSpace(line[i:]),
		Line: line,
	}

	if cmd.Word == "" {
		cmd.Kind = KindUnknown
	} else {
		cmd.Kind = lookup(cmd.Word)
	}

	return cmd
}

func isIdent(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
