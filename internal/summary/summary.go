// Package summary computes descriptive statistics over a chain's
// recorded positions.
package summary

import (
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/hmclab/internal/hmc"
)

// Stats describes one chain run: per-coordinate mean and variance, the
// 2x2 sample covariance, and the bounding box of the visited positions.
type Stats struct {
	N    int       `json:"n"`
	Mean hmc.Point `json:"mean"`
	Var  hmc.Point `json:"variance"`
	Cov  float64   `json:"covariance"`
	Min  hmc.Point `json:"min"`
	Max  hmc.Point `json:"max"`
}

// Compute summarizes the given positions. An empty input yields the
// zero Stats.
func Compute(samples []hmc.Point) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	min := samples[0]
	max := samples[0]
	for i, s := range samples {
		xs[i] = s.X
		ys[i] = s.Y
		if s.X < min.X {
			min.X = s.X
		}
		if s.Y < min.Y {
			min.Y = s.Y
		}
		if s.X > max.X {
			max.X = s.X
		}
		if s.Y > max.Y {
			max.Y = s.Y
		}
	}

	mx, vx := stat.MeanVariance(xs, nil)
	my, vy := stat.MeanVariance(ys, nil)

	return Stats{
		N:    len(samples),
		Mean: hmc.Point{X: mx, Y: my},
		Var:  hmc.Point{X: vx, Y: vy},
		Cov:  stat.Covariance(xs, ys, nil),
		Min:  min,
		Max:  max,
	}
}
