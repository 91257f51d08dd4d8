package dump

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the exported form of a [State]. Slices keep the file order that
// a map would lose.
type Snapshot struct {
	Variables []Variable `json:"variables" yaml:"variables" msgpack:"variables"`
	Targets   []Target   `json:"targets"   yaml:"targets"   msgpack:"targets"`
}

// Snapshot copies the state into a [Snapshot].
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Variables: make([]Variable, 0, s.NumVariables()),
		Targets:   make([]Target, 0, s.NumTargets()),
	}

	for _, v := range s.Variables() {
		snap.Variables = append(snap.Variables, v)
	}

	for _, t := range s.Targets() {
		snap.Targets = append(snap.Targets, t)
	}

	return snap
}

// MarshalJSON implements json.Marshaler for State.
func (s *State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

// FormatJSON writes the state as JSON. An indent of zero or less writes a
// single line.
func (s *State) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	return enc.Encode(s.Snapshot())
}

// FormatYAML writes the state as YAML. An indent of zero or less selects flow
// style.
func (s *State) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, s.Snapshot(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// FormatMsgpack writes the state as MessagePack.
func (s *State) FormatMsgpack(_ context.Context, w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(s.Snapshot())
}

// DecodeSnapshot reads a MessagePack snapshot written by
// [State.FormatMsgpack].
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot

	err := msgpack.NewDecoder(r).Decode(&snap)

	return snap, err
}

// Export format names accepted by [State.Format].
const (
	FormatNameJSON    = "json"
	FormatNameYAML    = "yaml"
	FormatNameMsgpack = "msgpack"
)

// FormatNames returns the accepted export format names.
func FormatNames() []string {
	return []string{FormatNameJSON, FormatNameYAML, FormatNameMsgpack}
}

// Format writes the state in the named format. indent is ignored by msgpack.
func (s *State) Format(ctx context.Context, w io.Writer, format string, indent int) error {
	switch strings.ToLower(format) {
	case FormatNameJSON:
		return s.FormatJSON(ctx, w, indent)
	case FormatNameYAML:
		return s.FormatYAML(ctx, w, indent)
	case FormatNameMsgpack:
		return s.FormatMsgpack(ctx, w)
	default:
		return ErrUnknownFormat.With(slog.String("format", format))
	}
}
