package relax

import (
	"fmt"

	"github.com/plasmakit/alphatau/internal/plasma"
)

// Result holds the collision times of the test particle against one species.
type Result struct {
	Species     string
	CoulombLog  float64
	SlowingDown float64 // [s]
	Deflection  float64 // [s]
}

// Summary aggregates per-species results; total times combine as rates,
// 1/tau = sum of 1/tau_i.
type Summary struct {
	PerSpecies  []Result
	SlowingDown float64 // [s]
	Deflection  float64 // [s]
}

// Compute evaluates both relaxation times against every background species.
// A positive fixedCoulombLog is used as-is for all species; zero switches to
// the Debye-length form, which needs an electron population in the background.
func Compute(test plasma.TestParticle, background plasma.Background, fixedCoulombLog float64) (Summary, error) {
	var summary Summary
	if err := test.Validate(); err != nil {
		return summary, err
	}
	if err := background.Validate(); err != nil {
		return summary, err
	}

	electrons, haveElectrons := background.Electrons()
	if fixedCoulombLog <= 0 && !haveElectrons {
		return summary, fmt.Errorf("%w: computed Coulomb logarithm requires an electron species", plasma.ErrInvalidParameter)
	}

	var slowingRate, deflectionRate float64
	for _, species := range background {
		coulombLog := fixedCoulombLog
		if coulombLog <= 0 {
			var err error
			coulombLog, err = plasma.CoulombLogarithm(test, species, electrons.Density, electrons.Temperature)
			if err != nil {
				return summary, err
			}
		}
		tauS, err := SlowingDownTime(test, species, coulombLog)
		if err != nil {
			return summary, err
		}
		tauD, err := DeflectionTime(test, species, coulombLog)
		if err != nil {
			return summary, err
		}
		summary.PerSpecies = append(summary.PerSpecies, Result{species.Name, coulombLog, tauS, tauD})
		slowingRate += 1. / tauS
		deflectionRate += 1. / tauD
	}
	summary.SlowingDown = 1. / slowingRate
	summary.Deflection = 1. / deflectionRate
	return summary, nil
}
