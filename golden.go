package aurea

import (
	"math"
	"math/rand"
	"sort"
)

// Phi is the golden ratio (1+√5)/2 and PhiInverse its reciprocal. Both are
// used as shaping parameters all over the generators.
const (
	Phi        = math.Phi
	PhiInverse = 1 / math.Phi
)

// phi as a variable, so that the integer values derived from it around the
// package are computed with run-time conversions (a constant conversion of a
// non-integer value would not compile).
var phi = float64(math.Phi)

// Fibonacci returns the first n terms of the sequence 1, 1, 2, 3, 5, ...
// For n <= 0 it returns nil.
func Fibonacci(n int) []int {
	if n <= 0 {
		return nil
	}
	fib := make([]int, n)
	fib[0] = 1
	if n > 1 {
		fib[1] = 1
	}
	for i := 2; i < n; i++ {
		fib[i] = fib[i-1] + fib[i-2]
	}
	return fib
}

// Subdivide splits total recursively into segments whose lengths relate
// roughly φ:1 and returns the leaf lengths sorted longest first. Recursion
// stops at depth 3 or once a segment is shorter than 4; at every split a draw
// from rnd decides (probability 0.6) whether to keep subdividing or to emit
// both halves as leaves. The leaves always sum to total. The result is used
// only for reporting structure points, not for note generation.
func Subdivide(rnd *rand.Rand, total int) []int {
	var leaves []int
	var split func(length, depth int)
	split = func(length, depth int) {
		if depth >= 3 || length < 4 {
			leaves = append(leaves, length)
			return
		}
		major := int(float64(length) * PhiInverse)
		minor := length - major
		if rnd.Float64() < 0.6 {
			split(major, depth+1)
			split(minor, depth+1)
		} else {
			leaves = append(leaves, major, minor)
		}
	}
	split(total, 0)
	sort.Sort(sort.Reverse(sort.IntSlice(leaves)))
	return leaves
}
