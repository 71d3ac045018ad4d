package chain

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/hmclab/internal/hmc"
)

// momentumSampler draws the auxiliary momentum, two independent standard
// normal variates per iteration, from the chain's own source. Momentum
// is redrawn every iteration and never persists between them.
type momentumSampler struct {
	norm distuv.Normal
}

func newMomentumSampler(src rand.Source) momentumSampler {
	return momentumSampler{
		norm: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

func (m momentumSampler) Draw() hmc.Point {
	return hmc.Point{X: m.norm.Rand(), Y: m.norm.Rand()}
}
