package aurea

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/styles.yml
var stylesYaml []byte

//go:embed catalog/instruments.yml
var instrumentsYaml []byte

// DefaultStyle is used when a caller asks for a style the catalog does not
// know.
const DefaultStyle = "classical"

// Style is an immutable generation template: which scales and chord
// progressions suit the style, its tempo range, the General MIDI programs of
// its voices (melody first, 1-based patch numbers), its dynamic markings and
// the rhythm pattern its melodies are shaped with.
type Style struct {
	Scales       []string `yaml:"scales,flow"`
	Progressions []string `yaml:"progressions,flow"`
	TempoRange   [2]int   `yaml:"tempo,flow"`
	Instruments  []int    `yaml:"instruments,flow"`
	Dynamics     []string `yaml:"dynamics,flow"`
	Rhythm       string   `yaml:"rhythm"`
}

var styles = func() map[string]Style {
	var m map[string]Style
	if err := yaml.Unmarshal(stylesYaml, &m); err != nil {
		panic(fmt.Errorf("parsing embedded style catalog failed: %v", err))
	}
	return m
}()

var instruments = func() map[string]map[int]string {
	var m map[string]map[int]string
	if err := yaml.Unmarshal(instrumentsYaml, &m); err != nil {
		panic(fmt.Errorf("parsing embedded instrument catalog failed: %v", err))
	}
	return m
}()

// dynamics maps the usual dynamic markings to MIDI velocities.
var dynamics = map[string]int{
	"ppp": 16,
	"pp":  32,
	"p":   48,
	"mp":  64,
	"mf":  80,
	"f":   96,
	"ff":  112,
	"fff": 127,
}

// StyleByName returns the style template for name and whether the catalog
// knows the name.
func StyleByName(name string) (Style, bool) {
	s, ok := styles[name]
	return s, ok
}

// StyleNames returns all catalog style names, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InstrumentCategories returns the General MIDI instrument categories of the
// catalog, sorted.
func InstrumentCategories() []string {
	names := make([]string, 0, len(instruments))
	for name := range instruments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InstrumentsInCategory returns the 1-based patch number to name mapping of
// one category and whether the category exists.
func InstrumentsInCategory(category string) (map[int]string, bool) {
	m, ok := instruments[category]
	return m, ok
}

// InstrumentName returns the catalog name of a 1-based patch number.
func InstrumentName(patch int) (string, bool) {
	for _, category := range instruments {
		if name, ok := category[patch]; ok {
			return name, true
		}
	}
	return "", false
}

// DynamicVelocity returns the MIDI velocity of a dynamic marking such as
// "mf".
func DynamicVelocity(marking string) (int, bool) {
	v, ok := dynamics[marking]
	return v, ok
}
