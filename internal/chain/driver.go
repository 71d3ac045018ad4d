package chain

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/hmclab/internal/hmc"
	"github.com/san-kum/hmclab/internal/leapfrog"
)

// Result is the output of one chain run: the visited positions in
// generation order (rejected iterations re-emit the previous position)
// and the empirical acceptance rate.
type Result struct {
	Samples        []hmc.Point `json:"samples"`
	AcceptanceRate float64     `json:"acceptance_rate"`
	Accepted       int         `json:"accepted"`
	Seed           int64       `json:"seed"`
}

// Chain is a reusable HMC driver. It owns its generator: successive Run
// calls continue a single random stream, so batches chained through
// their last sample behave like one longer chain. A Chain must not be
// shared between goroutines.
type Chain struct {
	target   hmc.Target
	integ    hmc.Integrator
	rng      *rand.Rand
	momentum momentumSampler
	stepSize float64
	numSteps int
	seed     int64
}

// New validates the trajectory parameters and builds a chain seeded with
// the given seed. Validation failures carry no partial state.
func New(t hmc.Target, stepSize float64, numSteps int, seed int64) (*Chain, error) {
	if !(stepSize > 0) {
		return nil, hmc.ErrInvalidStepSize
	}
	if numSteps < 1 {
		return nil, hmc.ErrInvalidStepCount
	}
	src := newSource(seed)
	return &Chain{
		target:   t,
		integ:    leapfrog.New(),
		rng:      rand.New(src),
		momentum: newMomentumSampler(src),
		stepSize: stepSize,
		numSteps: numSteps,
		seed:     seed,
	}, nil
}

func (c *Chain) Target() hmc.Target { return c.target }
func (c *Chain) Seed() int64        { return c.seed }

// Run advances the chain n iterations from start and returns exactly n
// recorded positions. n = 0 yields an empty result with acceptance rate
// 0 by convention. The loop never terminates early: a divergent
// trajectory only rejects that iteration's proposal.
func (c *Chain) Run(start hmc.Point, n int) (*Result, error) {
	if n < 0 {
		return nil, hmc.ErrInvalidSampleCount
	}

	samples := make([]hmc.Point, 0, n)
	q := start
	accepted := 0

	for i := 0; i < n; i++ {
		p := c.momentum.Draw()
		h0 := c.target.Potential(q) + hmc.Kinetic(p)

		q1, p1, ok := c.integ.Trajectory(c.target, q, p, c.stepSize, c.numSteps)
		h1 := math.Inf(1)
		if ok {
			h1 = c.target.Potential(q1) + hmc.Kinetic(p1)
		}

		if metropolis(h0, h1, c.rng.Float64()) {
			q = q1
			accepted++
		}
		samples = append(samples, q)
	}

	rate := 0.0
	if n > 0 {
		rate = float64(accepted) / float64(n)
	}
	return &Result{
		Samples:        samples,
		AcceptanceRate: rate,
		Accepted:       accepted,
		Seed:           c.seed,
	}, nil
}
