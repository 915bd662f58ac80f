// Package fusion provides the DT reaction rate and the steady-state
// thermonuclear alpha slowing-down spectrum it feeds.
package fusion

import (
	"fmt"
	"math"

	"github.com/plasmakit/alphatau/internal/plasma"
	"github.com/plasmakit/alphatau/internal/utils"
)

// Bosch-Hale DT parameterization,
// H.-S. Bosch and G.M. Hale 1992 Nucl. Fusion 32 611.
const (
	gamovConstant = 34.382   // [sqrt(keV)]
	mrc2          = 1124656. // [keV]
	bhC1          = 1.17302e-9
	bhC2          = 1.51361e-2
	bhC3          = 7.51886e-2
	bhC4          = 4.60643e-3
	bhC5          = 1.35000e-2
	bhC6          = -1.06750e-4
	bhC7          = 1.36600e-5
)

// Reactivity is the DT <sigma v> at ion temperature tIons [keV], in m^3/s.
func Reactivity(tIons float64) (float64, error) {
	if tIons <= 0 {
		return 0, fmt.Errorf("%w: ion temperature %g keV", plasma.ErrInvalidParameter, tIons)
	}
	denominator := -tIons * (bhC2 + tIons*(bhC4+tIons*bhC6))
	denominator /= 1. + tIons*(bhC3+tIons*(bhC5+tIons*bhC7))
	denominator += 1.
	theta := tIons / denominator
	xi := math.Cbrt(0.25 * gamovConstant * gamovConstant / theta)
	sigmaV := bhC1 * theta * math.Sqrt(xi/(mrc2*tIons*tIons*tIons))
	sigmaV *= math.Exp(-3. * xi)
	return sigmaV * 1e-6, nil // cm^3/s -> m^3/s
}

// ReactionRate is the volumetric DT fusion rate n_D n_T <sigma v>, which is
// also the alpha-particle source rate. [m^-3 s^-1]
func ReactionRate(deuteriumDensity, tritiumDensity, tIons float64) (float64, error) {
	if deuteriumDensity <= 0 {
		return 0, fmt.Errorf("%w: deuterium density %g m^-3", plasma.ErrInvalidParameter, deuteriumDensity)
	}
	if tritiumDensity <= 0 {
		return 0, fmt.Errorf("%w: tritium density %g m^-3", plasma.ErrInvalidParameter, tritiumDensity)
	}
	sigmaV, err := Reactivity(tIons)
	if err != nil {
		return 0, err
	}
	return deuteriumDensity * tritiumDensity * sigmaV, nil
}

// OptimalTemperature is the ion temperature [keV] maximizing fusion power at
// fixed plasma pressure, i.e. the argmax of <sigma v>/T^2 on [lo, hi].
func OptimalTemperature(lo, hi float64) float64 {
	return utils.TernarySearchMax(func(t float64) float64 {
		sigmaV, err := Reactivity(t)
		if err != nil {
			return math.Inf(-1)
		}
		return sigmaV / (t * t)
	}, lo, hi, 1e-3)
}
