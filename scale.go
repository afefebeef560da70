package aurea

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/scales.yml
var scalesYaml []byte

// DefaultScale is used when a caller asks for a scale the catalog does not
// know.
const DefaultScale = "major"

type (
	// Scale is an ordered list of semitone offsets from the root, the first
	// offset always 0, plus a short description of its character.
	Scale struct {
		Intervals      []int  `yaml:"intervals,flow"`
		Characteristic string `yaml:"characteristic"`
	}

	// ScaleInfo is the scale metadata merged into a composition's analysis
	// record.
	ScaleInfo struct {
		Name           string `yaml:"name"`
		Intervals      []int  `yaml:"intervals,flow"`
		NoteCount      int    `yaml:"note_count"`
		Characteristic string `yaml:"characteristic"`
	}
)

var scales = func() map[string]Scale {
	var m map[string]Scale
	if err := yaml.Unmarshal(scalesYaml, &m); err != nil {
		panic(fmt.Errorf("parsing embedded scale catalog failed: %v", err))
	}
	return m
}()

// ScaleByName returns the scale for name. The second return value reports
// whether the catalog knows the name; the caller decides what to fall back
// to.
func ScaleByName(name string) (Scale, bool) {
	s, ok := scales[name]
	return s, ok
}

// ScaleNames returns all catalog scale names, sorted.
func ScaleNames() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Info returns the reporting metadata for the scale.
func (s Scale) Info(name string) ScaleInfo {
	return ScaleInfo{
		Name:           name,
		Intervals:      s.Intervals,
		NoteCount:      len(s.Intervals),
		Characteristic: s.Characteristic,
	}
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the scientific pitch name of a MIDI key, e.g. 60 -> "C4".
func NoteName(key int) string {
	return fmt.Sprintf("%s%d", noteNames[((key%12)+12)%12], key/12-1)
}
