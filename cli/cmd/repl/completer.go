package repl

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/cmakedbg/dump"
)

// wordBounds returns the space-delimited word at the cursor position and its
// byte boundaries within input. The word is empty when the cursor follows a
// space or sits at the start of an empty line.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if r == ' ' || r == '\t' {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if r == ' ' || r == '\t' {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// candidates returns the completions valid for the word that begins at
// wordStart. The words already typed before it select what is completed:
//
//	<word>                  command words
//	var <word>              variable names
//	help <word>             command words
//	target <word>           target names
//	target <name> <word>    property names of the target
func candidates(state *dump.State, input string, wordStart int) []string {
	prior := strings.Fields(input[:wordStart])

	switch {
	case len(prior) == 0:
		return Words()

	case len(prior) == 1 && prior[0] == "help":
		return Words()

	case len(prior) == 1 && prior[0] == "var":
		return slices.Collect(state.VariableNames())

	case len(prior) == 1 && prior[0] == "target":
		return slices.Collect(state.TargetNames())

	case len(prior) == 2 && prior[0] == "target":
		t, ok := state.Target(prior[1])
		if !ok {
			return nil
		}

		var names []string

		for _, p := range t.Properties {
			if !slices.Contains(names, p.Name) {
				names = append(names, p.Name)
			}
		}

		return names
	}

	return nil
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor, ranked best-first, along with the word boundaries. An empty word
// produces no matches so the hint line stays visible.
func (m model) computeMatches() (matches fuzzy.Matches, wordStart, wordEnd int) {
	input := m.input.Value()

	word, wordStart, wordEnd := wordBounds(input, m.input.Position())
	if word == "" {
		return nil, wordStart, wordEnd
	}

	list := candidates(m.session.state, input, wordStart)
	if len(list) == 0 {
		return nil, wordStart, wordEnd
	}

	return fuzzy.Find(word, list), wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. The selected candidate (when tabbing) uses
// the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)
		entryWidth := lipgloss.Width(rendered)

		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle, highlightStyle := suggestionStyle, matchStyle
	if selected {
		baseStyle, highlightStyle = selectedStyle, selectedMatchStyle
	}

	var b strings.Builder

	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	return b.String()
}
