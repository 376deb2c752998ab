package report

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Spec is a named input dataset.
type Spec struct {
	Name    string
	Numbers []int
}

// DefaultSpecs returns the standard datasets over the domain [0, 300]: a short
// literal sequence, four seeded random sequences of growing length, three
// ascending runs, and one run repeated three times.
func DefaultSpecs() []Spec {
	specs := []Spec{
		{Name: "literal [3 22 111]", Numbers: []int{3, 22, 111}},
	}

	for i, count := range []int{50, 100, 500, 1000} {
		seed := uint64(i + 1) //nolint:gosec
		specs = append(specs, Spec{
			Name:    fmt.Sprintf("random seed=%d", seed),
			Numbers: RandomSequence(seed, 0, 300, count),
		})
	}

	for _, r := range [][2]int{{0, 9}, {10, 99}, {100, 299}} {
		specs = append(specs, Spec{
			Name:    fmt.Sprintf("range %d..%d", r[0], r[1]),
			Numbers: InclusiveRange(r[0], r[1]),
		})
	}

	run := InclusiveRange(0, 299)
	specs = append(specs, Spec{
		Name:    "range 0..299 x3",
		Numbers: slices.Concat(run, run, run),
	})

	return specs
}

// RandomSequence returns count numbers drawn uniformly from [minValue, maxValue].
// The same seed always yields the same sequence.
func RandomSequence(seed uint64, minValue, maxValue, count int) []int {
	rng := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec
	out := make([]int, count)
	for i := range out {
		out[i] = minValue + rng.IntN(maxValue-minValue+1)
	}

	return out
}

// InclusiveRange returns minValue, minValue+1, ..., maxValue.
func InclusiveRange(minValue, maxValue int) []int {
	if maxValue < minValue {
		return []int{}
	}

	out := make([]int, 0, maxValue-minValue+1)
	for v := minValue; v <= maxValue; v++ {
		out = append(out, v)
	}

	return out
}
