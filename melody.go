package aurea

import (
	"math"
	"math/rand"
)

// goldenDurations is the fixed duration set the melody picks from: a quarter
// note scaled by 1/φ, 1, φ and φ². Computed through float64 variables so the
// truncating conversions happen at run time.
var goldenDurations = func() [4]int {
	base := float64(TicksPerQuarter)
	return [4]int{
		int(base * PhiInverse),
		int(base),
		int(base * Phi),
		int(base * Phi * Phi),
	}
}()

// fibonacciWeights returns the first n Fibonacci numbers divided by the
// largest of them, so every weight is in (0,1]. The running values are
// rescaled on the way so that long sequences do not overflow float64; the
// ratios are unaffected.
func fibonacciWeights(n int) []float64 {
	if n <= 0 {
		return nil
	}
	w := make([]float64, n)
	a, b := 1.0, 1.0
	for i := range w {
		w[i] = a
		a, b = b, a+b
		if b > 1e300 {
			for j := 0; j <= i; j++ {
				w[j] *= 1e-300
			}
			a *= 1e-300
			b *= 1e-300
		}
	}
	max := w[n-1] // the sequence never decreases
	for i := range w {
		w[i] /= max
	}
	return w
}

// GenerateMelody produces exactly length notes on the given scale. Per note
// it blends three factors in [0,1) - the fractional part of i·φ, the
// normalized Fibonacci weight of i and a random jitter - to pick the scale
// degree, shifts the octave along sin(i·φ), picks the duration from the
// golden duration set and swings the velocity on sin(2i·φ). Keys are clamped
// to the piano range and velocities to 32..127. One draw is consumed from
// rnd per note, so a seeded source reproduces the melody exactly. A length
// of zero or less yields nil.
func GenerateMelody(rnd *rand.Rand, scale []int, length, root int) Sequence {
	if length <= 0 || len(scale) == 0 {
		return nil
	}
	weights := fibonacciWeights(length)
	melody := make(Sequence, 0, length)
	for i := 0; i < length; i++ {
		phiFactor := math.Mod(float64(i)*Phi, 1)
		fibFactor := weights[i%len(weights)]
		randomFactor := rnd.Float64() * 0.3

		noteFactor := (phiFactor + fibFactor + randomFactor) / 2.3
		index := int(noteFactor*float64(len(scale))) % len(scale)
		key := root + scale[index]

		octaveFactor := math.Sin(float64(i)*Phi) * 2
		key = clampKey(key + int(octaveFactor)*12)

		duration := goldenDurations[int(math.Mod(float64(i)*Phi, float64(len(goldenDurations))))]

		velocity := 64 + int(32*math.Sin(float64(i)*Phi*2))
		if velocity < 32 {
			velocity = 32
		} else if velocity > 127 {
			velocity = 127
		}

		melody = append(melody, Note{Key: key, Duration: duration, Velocity: velocity})
	}
	return melody
}
