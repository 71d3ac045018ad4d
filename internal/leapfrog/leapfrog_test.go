package leapfrog

import (
	"math"
	"testing"

	"github.com/san-kum/hmclab/internal/hmc"
	"github.com/san-kum/hmclab/internal/target"
)

func TestReversibility(t *testing.T) {
	cases := []struct {
		name     string
		stepSize float64
		numSteps int
		q, p     hmc.Point
	}{
		{"gaussian", 0.1, 50, hmc.Point{X: 0.5, Y: -0.3}, hmc.Point{X: 0.7, Y: 0.2}},
		{"banana", 0.01, 100, hmc.Point{X: 0.5, Y: 0.1}, hmc.Point{X: -0.4, Y: 0.6}},
		{"bimodal", 0.05, 80, hmc.Point{X: 2.0, Y: 2.2}, hmc.Point{X: 0.3, Y: -0.5}},
	}

	integ := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tgt, err := target.New(tc.name)
			if err != nil {
				t.Fatal(err)
			}

			qf, pf, ok := integ.Trajectory(tgt, tc.q, tc.p, tc.stepSize, tc.numSteps)
			if !ok {
				t.Fatal("forward trajectory diverged")
			}

			// negate momentum, integrate back, negate again
			qb, pb, ok := integ.Trajectory(tgt, qf, pf.Neg(), tc.stepSize, tc.numSteps)
			if !ok {
				t.Fatal("reverse trajectory diverged")
			}
			pb = pb.Neg()

			scale := math.Max(1, tc.q.Norm())
			if qb.Sub(tc.q).Norm() > 1e-9*scale {
				t.Errorf("position not recovered: start %+v, got %+v", tc.q, qb)
			}
			if pb.Sub(tc.p).Norm() > 1e-9*math.Max(1, tc.p.Norm()) {
				t.Errorf("momentum not recovered: start %+v, got %+v", tc.p, pb)
			}
		})
	}
}

func TestEnergyErrorShrinksWithStepSize(t *testing.T) {
	tgt := target.NewBanana()
	integ := New()
	q0 := hmc.Point{X: 0.2, Y: 0.5}
	p0 := hmc.Point{X: 0.4, Y: -0.3}
	h0 := tgt.Potential(q0) + hmc.Kinetic(p0)

	energyErr := func(eps float64, steps int) float64 {
		q, p, ok := integ.Trajectory(tgt, q0, p0, eps, steps)
		if !ok {
			t.Fatalf("trajectory diverged at eps=%g", eps)
		}
		return math.Abs(tgt.Potential(q) + hmc.Kinetic(p) - h0)
	}

	// same trajectory length, finer discretization
	coarse := energyErr(0.02, 100)
	fine := energyErr(0.002, 1000)
	if fine >= coarse {
		t.Errorf("energy error did not shrink: coarse %g, fine %g", coarse, fine)
	}
}

func TestDivergenceReturnsSentinel(t *testing.T) {
	tgt := target.NewBanana()
	integ := New()

	// far off the ridge with a huge step the quartic term overflows fast
	q := hmc.Point{X: 50, Y: -200}
	p := hmc.Point{}
	_, _, ok := integ.Trajectory(tgt, q, p, 10, 50)
	if ok {
		t.Fatal("expected divergence")
	}
}

func TestSingleStepMatchesHandComputation(t *testing.T) {
	// standard normal: grad U(q) = q
	tgt := target.NewGaussian()
	integ := New()

	q0 := hmc.Point{X: 1, Y: 0}
	p0 := hmc.Point{X: 0, Y: 1}
	eps := 0.5

	// p half: p - eps/2*q0; q: q0 + eps*p; p half: p - eps/2*q1
	pHalf := hmc.Point{X: p0.X - 0.5*eps*q0.X, Y: p0.Y - 0.5*eps*q0.Y}
	q1 := hmc.Point{X: q0.X + eps*pHalf.X, Y: q0.Y + eps*pHalf.Y}
	p1 := hmc.Point{X: pHalf.X - 0.5*eps*q1.X, Y: pHalf.Y - 0.5*eps*q1.Y}

	qGot, pGot, ok := integ.Trajectory(tgt, q0, p0, eps, 1)
	if !ok {
		t.Fatal("diverged")
	}
	if qGot != q1 || pGot != p1 {
		t.Errorf("got q=%+v p=%+v, want q=%+v p=%+v", qGot, pGot, q1, p1)
	}
}
