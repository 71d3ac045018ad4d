package chain

import (
	"github.com/san-kum/hmclab/internal/hmc"
	"github.com/san-kum/hmclab/internal/target"
)

// Sample is the sampling entry point the host bindings call: draw
// nSamples positions from the named target distribution, starting at
// (startX, startY), using numSteps leapfrog steps of size stepSize per
// proposal. The generator is freshly seeded from crypto/rand; the engine
// keeps no state between calls.
func Sample(nSamples int, stepSize float64, numSteps int, startX, startY float64, distType string) (*Result, error) {
	return SampleSeeded(nSamples, stepSize, numSteps, startX, startY, distType, RandomSeed())
}

// SampleSeeded is Sample with an explicit seed: identical parameters and
// seed produce a bit-identical sample sequence.
func SampleSeeded(nSamples int, stepSize float64, numSteps int, startX, startY float64, distType string, seed int64) (*Result, error) {
	t, err := target.New(distType)
	if err != nil {
		return nil, err
	}
	c, err := New(t, stepSize, numSteps, seed)
	if err != nil {
		return nil, err
	}
	return c.Run(hmc.Point{X: startX, Y: startY}, nSamples)
}
