package aurea

import (
	"errors"
	"math/rand"
	"time"
)

// drumStyles lists the styles that get a percussion track, provided the
// melody is long enough to carry one.
var drumStyles = map[string]bool{
	"jazz":  true,
	"blues": true,
	"pop":   true,
}

type (
	// Params describes one composition request.
	Params struct {
		Style    string // style template name; unknown falls back to DefaultStyle
		Scale    string // scale name; unknown falls back to DefaultScale
		Root     int    // root note as a MIDI key
		Tempo    int    // beats per minute
		Duration int    // target length in seconds
	}

	// Metadata is the analysis record of the melody merged with the
	// composition-level reporting fields.
	Metadata struct {
		Analysis        Analysis  `yaml:",inline"`
		Style           string    `yaml:"style"`
		Scale           string    `yaml:"scale"`
		RootNote        string    `yaml:"root_note"`
		Tempo           int       `yaml:"tempo"`
		Duration        int       `yaml:"duration"`
		StructurePoints []int     `yaml:"structure_points,flow"`
		ScaleInfo       ScaleInfo `yaml:"scale_info"`
	}

	// Composer runs the full generation pipeline. All stochastic choices
	// are drawn from its rand source, so a seeded source reproduces a
	// composition end to end.
	Composer struct {
		rnd *rand.Rand
	}
)

// NewComposer returns a Composer drawing from rnd; a nil rnd gets a source
// seeded from the clock.
func NewComposer(rnd *rand.Rand) *Composer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Composer{rnd: rnd}
}

// Compose generates one composition: the melody, shaped by the style's
// rhythm pattern, the bass and middle harmony voices derived from it, a
// percussion track for the drummed styles when the shaped melody is longer
// than 16 notes, and the analysis of the shaped melody. The note count is
// duration · tempo/60 · 2, assuming an eighth-note pulse. Unknown style and
// scale names fall back to the defaults, which the returned metadata makes
// visible.
func (c *Composer) Compose(p Params) (Composition, error) {
	if p.Duration <= 0 {
		return Composition{}, errors.New("duration must be positive")
	}
	if p.Tempo <= 0 {
		return Composition{}, errors.New("tempo must be positive")
	}
	if p.Root < MinKey || p.Root > MaxKey {
		return Composition{}, errors.New("root note outside the 21..108 key range")
	}

	styleName := p.Style
	style, ok := StyleByName(styleName)
	if !ok {
		styleName = DefaultStyle
		style, _ = StyleByName(styleName)
	}
	scaleName := p.Scale
	scale, ok := ScaleByName(scaleName)
	if !ok {
		scaleName = DefaultScale
		scale, _ = ScaleByName(scaleName)
	}

	totalNotes := int(float64(p.Duration) * float64(p.Tempo) / 60 * 2)
	structurePoints := Subdivide(c.rnd, totalNotes)

	melody := GenerateMelody(c.rnd, scale.Intervals, totalNotes, p.Root)
	melody = ApplyRhythm(melody, style.Rhythm)
	bass, middle := GenerateHarmony(melody)

	var percussion []Hit
	if drumStyles[styleName] && len(melody) > 16 {
		percussion = GeneratePercussion(c.rnd, len(melody), style.Rhythm)
	}

	return Composition{
		Style:      style,
		Tempo:      p.Tempo,
		Root:       p.Root,
		Melody:     melody,
		Harmony:    []Sequence{bass, middle},
		Percussion: percussion,
		Metadata: Metadata{
			Analysis:        Analyze(melody),
			Style:           styleName,
			Scale:           scaleName,
			RootNote:        NoteName(p.Root),
			Tempo:           p.Tempo,
			Duration:        p.Duration,
			StructurePoints: structurePoints,
			ScaleInfo:       scale.Info(scaleName),
		},
	}, nil
}
