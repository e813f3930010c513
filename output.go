package fretwav

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
)

// Namer builds output file names from a text/template. The sprig functions
// are available to the template, e.g. {{ .Name | replace "|" "_" }}.
type Namer struct {
	Template *template.Template
}

// NameData is passed to the output name template.
type NameData struct {
	Name  string // name of the chord
	Index int    // position of the chord in the book, starting from 0
}

func NewNamer(pattern string) (*Namer, error) {
	tmpl, err := template.New("output").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: could not parse output template %q: %v", ErrConfiguration, pattern, err)
	}
	return &Namer{Template: tmpl}, nil
}

// Path returns the path of the output file for a chord: the template result
// with extension ext appended, joined to dir.
func (n *Namer) Path(dir string, index int, name string, ext string) (string, error) {
	var buf bytes.Buffer
	if err := n.Template.Execute(&buf, NameData{Name: name, Index: index}); err != nil {
		return "", fmt.Errorf("could not execute output template: %v", err)
	}
	base := strings.TrimSpace(buf.String())
	if base == "" {
		return "", fmt.Errorf("output template gave an empty name for chord %q", name)
	}
	if base == "." || strings.ContainsAny(base, `/\`) || !filepath.IsLocal(base) {
		return "", fmt.Errorf("output name %q of chord %q is not a plain file name; use e.g. {{ .Name | replace \"/\" \"_\" }}", base, name)
	}
	return filepath.Join(dir, base+ext), nil
}
