package hmc

import "math"

// Point is a 2-D vector used for both sampled positions and auxiliary
// momenta.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Target evaluates the potential energy U(q) = -log density and its
// gradient for one target distribution. Both must be closed-form; the
// integrator's accuracy depends on exact gradients.
type Target interface {
	Name() string
	Potential(q Point) float64
	Gradient(q Point) Point
}

// Integrator advances a (position, momentum) pair through numSteps
// discrete steps of size stepSize under the given target's dynamics.
// ok is false when the trajectory left the finite float64 range; the
// returned endpoint is then a sentinel whose energy must be treated
// as +Inf.
type Integrator interface {
	Trajectory(t Target, q, p Point, stepSize float64, numSteps int) (qn, pn Point, ok bool)
}

// Kinetic is K(p) = ½|p|² under the identity mass matrix.
func Kinetic(p Point) float64 {
	return 0.5 * (p.X*p.X + p.Y*p.Y)
}
