package dump

import (
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
)

// Match returns a new State holding only the variables and targets whose
// names match the glob pattern. Patterns use doublestar syntax
// ("CMAKE_*", "{app,lib}*", "[A-Z]*_DIR").
func (s *State) Match(pattern string) (*State, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, ErrInvalidPattern.With(slog.String("pattern", pattern))
	}

	m := &State{
		variables: newIndex[Variable](),
		targets:   newIndex[Target](),
		prefix:    s.prefix,
		logger:    s.logger,
	}

	for name, v := range s.Variables() {
		if ok, _ := doublestar.Match(pattern, name); ok {
			m.variables.set(name, v)
		}
	}

	for name, t := range s.Targets() {
		if ok, _ := doublestar.Match(pattern, name); ok {
			m.targets.set(name, t)
		}
	}

	return m, nil
}
