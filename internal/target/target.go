package target

import (
	"fmt"

	"github.com/san-kum/hmclab/internal/hmc"
)

// New resolves a target distribution by name. Unknown names fail with
// hmc.ErrUnknownTarget; there is no fallback default.
func New(name string) (hmc.Target, error) {
	switch name {
	case "gaussian":
		return NewGaussian(), nil
	case "bimodal":
		return NewBimodal(), nil
	case "banana":
		return NewBanana(), nil
	default:
		return nil, fmt.Errorf("%w: %q", hmc.ErrUnknownTarget, name)
	}
}

// Names lists the supported target distributions in display order.
func Names() []string {
	return []string{"gaussian", "bimodal", "banana"}
}
