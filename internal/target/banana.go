package target

import "github.com/san-kum/hmclab/internal/hmc"

// Banana is the Rosenbrock potential U(q) = (a−x)² + b(y−x²)², a curved
// ridge along y = x². The warp term makes the density strongly
// non-Gaussian, which is what makes it a useful stress test for the
// integrator.
type Banana struct {
	A, B float64
}

func NewBanana() *Banana {
	return &Banana{A: 1.0, B: 10.0}
}

func (b *Banana) Name() string { return "banana" }

func (b *Banana) Potential(q hmc.Point) float64 {
	ax := b.A - q.X
	w := q.Y - q.X*q.X
	return ax*ax + b.B*w*w
}

func (b *Banana) Gradient(q hmc.Point) hmc.Point {
	w := q.Y - q.X*q.X
	return hmc.Point{
		X: -2*(b.A-q.X) - 4*b.B*q.X*w,
		Y: 2 * b.B * w,
	}
}
