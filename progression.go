package aurea

import (
	"math/rand"
	"sort"
)

// DefaultProgression is used when a caller asks for a progression the
// catalog does not know.
const DefaultProgression = "pop"

// progressions lists well-known chord progressions as scale degrees.
var progressions = map[string][]int{
	"pop":              {0, 5, 6, 4},                         // I-vi-IV-V
	"jazz_ii_v_i":      {1, 4, 0},                            // ii-V-I
	"circle_of_fifths": {0, 4, 1, 5, 2, 6, 3},                //
	"blues_12bar":      {0, 0, 0, 0, 3, 3, 0, 0, 4, 3, 0, 4}, // 12-bar blues
	"classical":        {0, 4, 0, 5},                         // I-V-I-vi
	"modal_jazz":       {0, 1, 2, 3},                         //
	"rock":             {0, 6, 3, 4},                         // I-bVII-IV-V
	"folk":             {0, 4, 5, 0},                         // I-V-vi-I
}

// ProgressionNames returns all progression names, sorted.
func ProgressionNames() []string {
	names := make([]string, 0, len(progressions))
	for name := range progressions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerateProgression builds the chords of a named progression on the given
// root and scale. Each chord is a triad stacked from alternating scale
// degrees; with probability 1/φ (about 38%) a seventh is added, drawing once
// from rnd per chord. Unknown progression or scale names fall back to
// DefaultProgression and DefaultScale.
func GenerateProgression(rnd *rand.Rand, name string, root int, scaleName string) [][]int {
	degrees, ok := progressions[name]
	if !ok {
		degrees = progressions[DefaultProgression]
	}
	scale, ok := ScaleByName(scaleName)
	if !ok {
		scale, _ = ScaleByName(DefaultScale)
	}
	offsets := scale.Intervals

	chords := make([][]int, 0, len(degrees))
	for _, degree := range degrees {
		base := offsets[degree%len(offsets)]
		chordRoot := root + base
		third := chordRoot + offsets[(degree+2)%len(offsets)] - base
		fifth := chordRoot + offsets[(degree+4)%len(offsets)] - base
		chord := []int{chordRoot, third, fifth}
		if rnd.Float64() < PhiInverse {
			chord = append(chord, chordRoot+offsets[(degree+6)%len(offsets)]-base)
		}
		chords = append(chords, chord)
	}
	return chords
}
