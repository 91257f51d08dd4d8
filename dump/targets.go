package dump

import (
	"log/slog"
	"slices"
	"strings"
)

// TargetProperty is a single property line of a target. Names are not unique.
type TargetProperty struct {
	Name  string `json:"name"  yaml:"name"  msgpack:"name"`
	Value string `json:"value" yaml:"value" msgpack:"value"`
}

// Target is a CMake target with its properties in file order.
type Target struct {
	Name       string           `json:"name"       yaml:"name"       msgpack:"name"`
	Properties []TargetProperty `json:"properties" yaml:"properties" msgpack:"properties"`
}

// Property returns the first property named name.
func (t Target) Property(name string) (TargetProperty, bool) {
	i := slices.IndexFunc(t.Properties, func(p TargetProperty) bool {
		return p.Name == name
	})
	if i < 0 {
		return TargetProperty{}, false
	}

	return t.Properties[i], true
}

// PrefixMode selects how the target name is removed from a property line.
type PrefixMode int

const (
	// PrefixCharset trims every leading character contained in the target
	// name or a space.
	PrefixCharset PrefixMode = iota
	// PrefixLiteral removes exactly "<target> ".
	PrefixLiteral
)

// stripPrefix removes the target name prefix from a property line.
func (m PrefixMode) stripPrefix(line, target string) string {
	if m == PrefixLiteral {
		return strings.TrimPrefix(line, target+" ")
	}

	return strings.TrimLeft(line, target+" ")
}

// ParseTargets deserializes the targets section of lines.
//
// Each "++++<name>" line opens a block that the first following
// "----<name>" line closes. The lines in between are the target's properties.
// A block without a closing line is reported as malformed.
func ParseTargets(lines []string, mode PrefixMode) (*Index[Target], error) {
	raw, err := section(lines, "targets", TargetsStart, TargetsEnd)
	if err != nil {
		return nil, err
	}

	targets := newIndex[Target]()

	for i, line := range raw {
		if !strings.HasPrefix(line, TargetOpen) {
			continue
		}

		name := strings.TrimSpace(strings.ReplaceAll(line, TargetOpen, ""))
		closing := strings.ReplaceAll(line, TargetOpen, TargetClose)

		n := slices.Index(raw[i+1:], closing)
		if n < 0 {
			return nil, ErrMalformed.
				Wrap(ErrTargetEndNotFound).
				With(slog.String("section", "targets"), slog.String("target", name))
		}

		target := Target{
			Name:       name,
			Properties: make([]TargetProperty, 0, n),
		}

		for _, prop := range raw[i+1 : i+1+n] {
			// Property values keep every '=' after the first.
			pname, value, _ := strings.Cut(mode.stripPrefix(prop, name), "=")
			target.Properties = append(target.Properties, TargetProperty{
				Name:  pname,
				Value: value,
			})
		}

		targets.set(name, target)
	}

	return targets, nil
}
