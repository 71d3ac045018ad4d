package target

import (
	"fmt"

	"github.com/san-kum/hmclab/internal/hmc"
)

// Gaussian is the quadratic potential U(q) = ½(q−μ)ᵀΣ⁻¹(q−μ).
type Gaussian struct {
	Mu hmc.Point

	// inverse covariance, symmetric
	ixx, ixy, iyy float64
}

// NewGaussian returns the standard normal target: zero mean, identity
// covariance.
func NewGaussian() *Gaussian {
	return &Gaussian{ixx: 1, iyy: 1}
}

// NewGaussianWith builds a Gaussian target with the given mean and
// covariance entries (sxx, syy diagonal, sxy off-diagonal). The
// covariance must be positive definite.
func NewGaussianWith(mu hmc.Point, sxx, sxy, syy float64) (*Gaussian, error) {
	det := sxx*syy - sxy*sxy
	if sxx <= 0 || syy <= 0 || det <= 0 {
		return nil, fmt.Errorf("gaussian covariance [[%g %g][%g %g]] is not positive definite", sxx, sxy, sxy, syy)
	}
	return &Gaussian{
		Mu:  mu,
		ixx: syy / det,
		ixy: -sxy / det,
		iyy: sxx / det,
	}, nil
}

func (g *Gaussian) Name() string { return "gaussian" }

func (g *Gaussian) Potential(q hmc.Point) float64 {
	dx, dy := q.X-g.Mu.X, q.Y-g.Mu.Y
	return 0.5 * (dx*(g.ixx*dx+g.ixy*dy) + dy*(g.ixy*dx+g.iyy*dy))
}

func (g *Gaussian) Gradient(q hmc.Point) hmc.Point {
	dx, dy := q.X-g.Mu.X, q.Y-g.Mu.Y
	return hmc.Point{
		X: g.ixx*dx + g.ixy*dy,
		Y: g.ixy*dx + g.iyy*dy,
	}
}
