package aurea

import (
	"math"

	"github.com/viterin/vek"
)

type (
	// Analysis is the descriptive statistics record of one voice.
	Analysis struct {
		TotalNotes  int     `yaml:"total_notes"`
		NoteRange   int     `yaml:"note_range"` // max key - min key, semitones
		AvgDuration float64 `yaml:"avg_duration"`
		AvgVelocity float64 `yaml:"avg_velocity"`

		// Intervals is nil when the sequence has fewer than two notes.
		Intervals *IntervalStats `yaml:"intervals,omitempty"`
		// Durations is nil when no consecutive pair has a nonzero leading
		// duration.
		Durations *DurationStats `yaml:"durations,omitempty"`
	}

	// IntervalStats describes the absolute semitone steps between
	// consecutive notes.
	IntervalStats struct {
		Avg float64 `yaml:"avg"`
		Max float64 `yaml:"max"`
		// GoldenPercentage is the share (0-100) of steps equal to one of
		// the integer-rounded golden multiples floor(φ·k), k = 1..7.
		GoldenPercentage float64 `yaml:"golden_ratio_percentage"`
	}

	// DurationStats describes the ratios of consecutive durations.
	DurationStats struct {
		// PhiPercentage is the share (0-100) of consecutive duration
		// ratios within 0.1 of φ or 1/φ.
		PhiPercentage float64 `yaml:"phi_duration_percentage"`
	}
)

// goldenIntervals is the set {floor(φ·k) : k = 1..7} = {1,3,4,6,8,9,11}.
// The rounding and the fixed 0.1 ratio tolerance below are part of the
// observable contract and deliberately not derived from anything.
var goldenIntervals = func() map[int]bool {
	m := make(map[int]bool, 7)
	for k := 1; k <= 7; k++ {
		m[int(phi*float64(k))] = true
	}
	return m
}()

// Analyze computes the descriptive statistics of a sequence. An empty
// sequence yields the zero record, not an error; a single note yields the
// basic fields with no interval or duration-ratio statistics.
func Analyze(seq Sequence) Analysis {
	if len(seq) == 0 {
		return Analysis{}
	}
	keys := make([]float64, len(seq))
	durations := make([]float64, len(seq))
	velocities := make([]float64, len(seq))
	for i, n := range seq {
		keys[i] = float64(n.Key)
		durations[i] = float64(n.Duration)
		velocities[i] = float64(n.Velocity)
	}
	analysis := Analysis{
		TotalNotes:  len(seq),
		NoteRange:   int(vek.Max(keys) - vek.Min(keys)),
		AvgDuration: vek.Mean(durations),
		AvgVelocity: vek.Mean(velocities),
	}
	if len(seq) < 2 {
		return analysis
	}

	intervals := make([]float64, len(seq)-1)
	golden := 0
	for i := 1; i < len(seq); i++ {
		step := seq[i].Key - seq[i-1].Key
		if step < 0 {
			step = -step
		}
		intervals[i-1] = float64(step)
		if goldenIntervals[step] {
			golden++
		}
	}
	analysis.Intervals = &IntervalStats{
		Avg:              vek.Mean(intervals),
		Max:              vek.Max(intervals),
		GoldenPercentage: float64(golden) / float64(len(intervals)) * 100,
	}

	ratios, phiLike := 0, 0
	for i := 1; i < len(seq); i++ {
		if seq[i-1].Duration == 0 {
			continue
		}
		ratios++
		r := float64(seq[i].Duration) / float64(seq[i-1].Duration)
		if math.Abs(r-Phi) < 0.1 || math.Abs(r-PhiInverse) < 0.1 {
			phiLike++
		}
	}
	if ratios > 0 {
		analysis.Durations = &DurationStats{
			PhiPercentage: float64(phiLike) / float64(ratios) * 100,
		}
	}
	return analysis
}
