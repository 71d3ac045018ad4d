package chain

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/hmclab/internal/hmc"
	"github.com/san-kum/hmclab/internal/target"
)

func mustTarget(t *testing.T, name string) hmc.Target {
	t.Helper()
	tgt, err := target.New(name)
	if err != nil {
		t.Fatal(err)
	}
	return tgt
}

func TestRunLength(t *testing.T) {
	for _, n := range []int{0, 1, 7, 500} {
		res, err := SampleSeeded(n, 0.1, 10, 0, 0, "gaussian", 1)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(res.Samples) != n {
			t.Errorf("n=%d: got %d samples", n, len(res.Samples))
		}
		if res.AcceptanceRate < 0 || res.AcceptanceRate > 1 {
			t.Errorf("n=%d: acceptance rate %g out of [0,1]", n, res.AcceptanceRate)
		}
		if n == 0 && res.AcceptanceRate != 0 {
			t.Errorf("empty run: acceptance rate %g, want 0", res.AcceptanceRate)
		}
	}
}

func TestInvalidInputs(t *testing.T) {
	cases := []struct {
		name string
		call func() (*Result, error)
		want error
	}{
		{"unknown target", func() (*Result, error) {
			return SampleSeeded(10, 0.1, 10, 0, 0, "unknown", 1)
		}, hmc.ErrUnknownTarget},
		{"zero step size", func() (*Result, error) {
			return SampleSeeded(10, 0, 10, 0, 0, "gaussian", 1)
		}, hmc.ErrInvalidStepSize},
		{"negative step size", func() (*Result, error) {
			return SampleSeeded(10, -0.1, 10, 0, 0, "gaussian", 1)
		}, hmc.ErrInvalidStepSize},
		{"nan step size", func() (*Result, error) {
			return SampleSeeded(10, math.NaN(), 10, 0, 0, "gaussian", 1)
		}, hmc.ErrInvalidStepSize},
		{"zero steps", func() (*Result, error) {
			return SampleSeeded(10, 0.1, 0, 0, 0, "gaussian", 1)
		}, hmc.ErrInvalidStepCount},
		{"negative samples", func() (*Result, error) {
			return SampleSeeded(-1, 0.1, 10, 0, 0, "gaussian", 1)
		}, hmc.ErrInvalidSampleCount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.call()
			if !errors.Is(err, tc.want) {
				t.Fatalf("got err %v, want %v", err, tc.want)
			}
			if res != nil {
				t.Fatal("got a partial result alongside an error")
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	a, err := SampleSeeded(200, 0.1, 15, 0.3, -0.7, "bimodal", 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SampleSeeded(200, 0.1, 15, 0.3, -0.7, "bimodal", 42)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			t.Fatalf("sample %d differs: %+v vs %+v", i, a.Samples[i], b.Samples[i])
		}
	}
	if a.AcceptanceRate != b.AcceptanceRate {
		t.Fatalf("acceptance rates differ: %g vs %g", a.AcceptanceRate, b.AcceptanceRate)
	}

	c, err := SampleSeeded(200, 0.1, 15, 0.3, -0.7, "bimodal", 43)
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := range a.Samples {
		if a.Samples[i] != c.Samples[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical chains")
	}
}

func TestAcceptanceImprovesWithSmallerStep(t *testing.T) {
	rate := func(eps float64) float64 {
		res, err := SampleSeeded(2000, eps, 20, 0.5, 0.2, "banana", 7)
		if err != nil {
			t.Fatal(err)
		}
		return res.AcceptanceRate
	}

	coarse := rate(0.5) // beyond the stable step for the banana's curvature
	fine := rate(0.02)
	if fine <= coarse {
		t.Errorf("acceptance did not improve: eps=0.5 gives %g, eps=0.02 gives %g", coarse, fine)
	}
	if fine < 0.9 {
		t.Errorf("fine step acceptance %g, want > 0.9", fine)
	}
}

func TestRejectionKeepsPreviousPosition(t *testing.T) {
	// a step size past the stability limit rejects nearly everything;
	// every rejected iteration must re-emit the previous position
	res, err := SampleSeeded(100, 5.0, 30, 0.5, 0.2, "banana", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Samples) != 100 {
		t.Fatalf("got %d samples, want 100", len(res.Samples))
	}
	for i, s := range res.Samples {
		if !s.IsFinite() {
			t.Fatalf("sample %d is not finite: %+v", i, s)
		}
	}
	if res.Accepted == 100 {
		t.Fatal("expected rejections at an unstable step size")
	}
	// count distinct positions: accepted transitions plus the start
	distinct := 1
	for i := 1; i < len(res.Samples); i++ {
		if res.Samples[i] != res.Samples[i-1] {
			distinct++
		}
	}
	if distinct != res.Accepted+1 && distinct != res.Accepted {
		// first iteration accepting means samples[0] already moved
		t.Errorf("distinct positions %d inconsistent with accepted count %d", distinct, res.Accepted)
	}
}

func TestGaussianMoments(t *testing.T) {
	if testing.Short() {
		t.Skip("long-running moment estimation")
	}
	res, err := SampleSeeded(20000, 0.1, 20, 0, 0, "gaussian", 11)
	if err != nil {
		t.Fatal(err)
	}

	var mx, my float64
	for _, s := range res.Samples {
		mx += s.X
		my += s.Y
	}
	n := float64(len(res.Samples))
	mx /= n
	my /= n
	if math.Abs(mx) > 0.05 || math.Abs(my) > 0.05 {
		t.Errorf("sample mean (%g, %g), want within ±0.05 of origin", mx, my)
	}

	var cxx, cyy, cxy float64
	for _, s := range res.Samples {
		cxx += (s.X - mx) * (s.X - mx)
		cyy += (s.Y - my) * (s.Y - my)
		cxy += (s.X - mx) * (s.Y - my)
	}
	cxx /= n - 1
	cyy /= n - 1
	cxy /= n - 1
	if math.Abs(cxx-1) > 0.1 || math.Abs(cyy-1) > 0.1 || math.Abs(cxy) > 0.1 {
		t.Errorf("sample covariance [[%g %g][%g %g]], want identity within ±0.1",
			cxx, cxy, cxy, cyy)
	}
}

func TestChainContinuation(t *testing.T) {
	// two batches on one chain, started from the first batch's last
	// sample, must reproduce a single uninterrupted run
	full, err := SampleSeeded(40, 0.1, 10, 0.2, 0.1, "gaussian", 9)
	if err != nil {
		t.Fatal(err)
	}

	c, err := New(mustTarget(t, "gaussian"), 0.1, 10, 9)
	if err != nil {
		t.Fatal(err)
	}
	first, err := c.Run(hmc.Point{X: 0.2, Y: 0.1}, 20)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Run(first.Samples[len(first.Samples)-1], 20)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 20; i++ {
		if first.Samples[i] != full.Samples[i] {
			t.Fatalf("first batch sample %d differs", i)
		}
		if second.Samples[i] != full.Samples[20+i] {
			t.Fatalf("second batch sample %d differs", i)
		}
	}
}

func TestMetropolis(t *testing.T) {
	cases := []struct {
		h0, h1, u float64
		want      bool
	}{
		{1, 0.5, 0.99, true},                   // downhill always accepts
		{1, math.Inf(1), 0.0, false},           // divergence never accepts
		{math.Inf(1), math.Inf(1), 0.0, false}, // NaN difference rejects
		{0, 0, 0.5, true},                      // equal energy accepts (alpha = 1)
		{0, math.Log(2), 0.49, true},           // alpha = 1/2, u below
		{0, math.Log(2), 0.51, false},          // alpha = 1/2, u above
		{math.Inf(1), 0, 0.999, true},          // escaping an infinite start always accepts
	}
	for i, tc := range cases {
		if got := metropolis(tc.h0, tc.h1, tc.u); got != tc.want {
			t.Errorf("case %d: metropolis(%g, %g, %g) = %v, want %v",
				i, tc.h0, tc.h1, tc.u, got, tc.want)
		}
	}
}

func TestEnsemble(t *testing.T) {
	e := NewEnsemble("gaussian", 0.1, 10, 4, 100)
	results, err := e.Run(0, 0, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for i, r := range results {
		if len(r.Samples) != 50 {
			t.Errorf("member %d: %d samples, want 50", i, len(r.Samples))
		}
	}
	// derived seeds must differ
	if results[0].Samples[10] == results[1].Samples[10] &&
		results[0].Samples[20] == results[1].Samples[20] {
		t.Error("ensemble members produced matching chains")
	}

	if _, err := NewEnsemble("unknown", 0.1, 10, 2, 1).Run(0, 0, 10); err == nil {
		t.Error("expected error for unknown target")
	}
}
