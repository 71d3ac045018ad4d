package target

import (
	"math"

	"github.com/san-kum/hmclab/internal/hmc"
)

// Bimodal is an equal-weight mixture of two isotropic Gaussian modes at
// (±2.5, ±2.5), U(q) = −log(exp(−d₁/s) + exp(−d₂/s)) with dᵢ the squared
// distance to mode i. Far from both modes the potential keeps growing,
// so the density is confining.
type Bimodal struct {
	ModeA, ModeB hmc.Point
	Scale        float64
}

func NewBimodal() *Bimodal {
	return &Bimodal{
		ModeA: hmc.Point{X: 2.5, Y: 2.5},
		ModeB: hmc.Point{X: -2.5, Y: -2.5},
		Scale: 1.5,
	}
}

func (b *Bimodal) Name() string { return "bimodal" }

// exponents returns −dᵢ/s for both modes, shifted so the larger is 0.
// The shift keeps exp from underflowing far from the modes; without it
// the mixture weights degenerate to 0/0.
func (b *Bimodal) exponents(q hmc.Point) (ea, eb, shift float64) {
	da := q.Sub(b.ModeA)
	db := q.Sub(b.ModeB)
	ea = -(da.X*da.X + da.Y*da.Y) / b.Scale
	eb = -(db.X*db.X + db.Y*db.Y) / b.Scale
	shift = math.Max(ea, eb)
	return ea - shift, eb - shift, shift
}

func (b *Bimodal) Potential(q hmc.Point) float64 {
	ea, eb, shift := b.exponents(q)
	return -shift - math.Log(math.Exp(ea)+math.Exp(eb))
}

func (b *Bimodal) Gradient(q hmc.Point) hmc.Point {
	ea, eb, _ := b.exponents(q)
	wa := math.Exp(ea)
	wb := math.Exp(eb)
	sum := wa + wb
	wa /= sum
	wb /= sum

	// mixture gradient: responsibility-weighted component gradients
	ga := q.Sub(b.ModeA).Scale(2 / b.Scale)
	gb := q.Sub(b.ModeB).Scale(2 / b.Scale)
	return ga.Scale(wa).Add(gb.Scale(wb))
}
