// Package leapfrog implements the symplectic integrator used for HMC
// trajectory proposals.
package leapfrog

import "github.com/san-kum/hmclab/internal/hmc"

// Integrator is the standard leapfrog (velocity Verlet) scheme:
// half-step momentum kick, full-step position drift, half-step kick.
// The scheme is time-reversible and volume-preserving; the update order
// below must not be fused or reordered, or both properties are lost.
type Integrator struct{}

func New() *Integrator {
	return &Integrator{}
}

// Trajectory advances (q, p) through numSteps steps of size stepSize
// under the identity mass matrix. The gradient at the end of one step is
// reused as the opening gradient of the next, so each step costs one
// gradient evaluation.
//
// If the state or gradient leaves the finite range at any point the
// remaining steps are skipped and ok is false; the caller treats the
// endpoint's energy as +Inf.
func (l *Integrator) Trajectory(t hmc.Target, q, p hmc.Point, stepSize float64, numSteps int) (hmc.Point, hmc.Point, bool) {
	grad := t.Gradient(q)
	if !grad.IsFinite() {
		return q, p, false
	}

	for i := 0; i < numSteps; i++ {
		p.X -= 0.5 * stepSize * grad.X
		p.Y -= 0.5 * stepSize * grad.Y

		q.X += stepSize * p.X
		q.Y += stepSize * p.Y

		grad = t.Gradient(q)

		p.X -= 0.5 * stepSize * grad.X
		p.Y -= 0.5 * stepSize * grad.Y

		if !q.IsFinite() || !p.IsFinite() || !grad.IsFinite() {
			return q, p, false
		}
	}

	return q, p, true
}
