package fretwav

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type (
	// Fret is the position pressed on one string: either muted (the zero
	// value) or a fret number, 0 being the open string.
	Fret struct {
		value  int
		played bool
	}

	// Tab lists one Fret per string, in the same order as the strings of the
	// Fretboard it is resolved on.
	Tab []Fret
)

// Muted is a string that is not played.
var Muted = Fret{}

// At returns a Fret pressed at fret n.
func At(n int) Fret {
	return Fret{value: n, played: true}
}

func (f Fret) Unpack() (int, bool) {
	return f.value, f.played
}

func (f Fret) Played() bool {
	return f.played
}

func (f Fret) String() string {
	if !f.played {
		return "x"
	}
	return strconv.Itoa(f.value)
}

func parseFret(s string) (Fret, error) {
	switch s {
	case "x", "X", "-":
		return Muted, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Muted, fmt.Errorf("bad fret %q: expected a number, x or -", s)
	}
	return At(n), nil
}

// UnmarshalYAML accepts integers, null and the strings x and -.
func (f *Fret) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: fret should be a scalar", value.Line)
	}
	if value.ShortTag() == "!!null" {
		*f = Muted
		return nil
	}
	ret, err := parseFret(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %v", value.Line, err)
	}
	*f = ret
	return nil
}

// UnmarshalYAML decodes the sequence itself, because yaml.v3 drops null
// items when decoding straight into a slice and the frets would shift onto
// the wrong strings.
func (t *Tab) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: tab should be a sequence of frets", value.Line)
	}
	ret := make(Tab, len(value.Content))
	for i, node := range value.Content {
		if err := ret[i].UnmarshalYAML(node); err != nil {
			return fmt.Errorf("string %d: %v", i+1, err)
		}
	}
	*t = ret
	return nil
}

func (f Fret) MarshalYAML() (interface{}, error) {
	if !f.played {
		return "x", nil
	}
	return f.value, nil
}

func (f *Fret) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = Muted
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	ret, err := parseFret(s)
	if err != nil {
		return err
	}
	*f = ret
	return nil
}

func (f Fret) MarshalJSON() ([]byte, error) {
	if !f.played {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// ParseTab parses tabs written as space or comma separated frets, e.g.
// "x 3 2 0 1 0" or "0,2,2,1,0,0".
func ParseTab(s string) (Tab, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	tab := make(Tab, 0, len(fields))
	for i, field := range fields {
		fret, err := parseFret(field)
		if err != nil {
			return nil, fmt.Errorf("string %d: %v", i+1, err)
		}
		tab = append(tab, fret)
	}
	return tab, nil
}

func (t Tab) String() string {
	s := make([]string, len(t))
	for i, f := range t {
		s[i] = f.String()
	}
	return strings.Join(s, " ")
}

// NumPlayed returns the number of strings that are not muted.
func (t Tab) NumPlayed() int {
	n := 0
	for _, f := range t {
		if f.played {
			n++
		}
	}
	return n
}
