// Package report renders the companion metadata written next to each
// generated MIDI file, either as a human-readable text report or as YAML.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
	"time"

	"github.com/Masterminds/sprig"
	"gopkg.in/yaml.v3"

	"github.com/aureamidi/aurea"
)

//go:embed templates/info.txt.tmpl
var infoTemplate string

var tmpl = template.Must(template.New("info").Funcs(sprig.TxtFuncMap()).Parse(infoTemplate))

// Info is the full report payload: the composition metadata plus the output
// file it accompanies.
type Info struct {
	Filename       string    `yaml:"filename"`
	Generated      time.Time `yaml:"generated"`
	aurea.Metadata `yaml:",inline"`
}

// Phi is exposed to the report template.
func (Info) Phi() float64 { return aurea.Phi }

// Text renders the human-readable report.
func Text(info Info) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, info); err != nil {
		return nil, fmt.Errorf("rendering report failed: %v", err)
	}
	return buf.Bytes(), nil
}

// YAML renders the machine-readable report.
func YAML(info Info) ([]byte, error) {
	out, err := yaml.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("marshaling report failed: %v", err)
	}
	return out, nil
}
