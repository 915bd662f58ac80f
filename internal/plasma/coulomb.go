package plasma

import (
	"fmt"
	"math"

	"github.com/plasmakit/alphatau/internal/constants"
)

// DebyeLength is the electron screening length sqrt(e0 Te / (ne e^2)).
func DebyeLength(electronDensity, electronTemperature float64) (float64, error) {
	if electronDensity <= 0 {
		return 0, fmt.Errorf("%w: electron density %g m^-3", ErrInvalidParameter, electronDensity)
	}
	if electronTemperature <= 0 {
		return 0, fmt.Errorf("%w: electron temperature %g J", ErrInvalidParameter, electronTemperature)
	}
	return math.Sqrt(constants.FreeSpacePermittivityE0 * electronTemperature /
		(electronDensity * constants.ElectronCharge * constants.ElectronCharge)), nil
}

// CoulombLogarithm is ln(lambda_D / b_min) with b_min the classical distance
// of closest approach at relative energy 3T of the background species.
func CoulombLogarithm(test TestParticle, background Species, electronDensity, electronTemperature float64) (float64, error) {
	if err := test.Validate(); err != nil {
		return 0, err
	}
	if err := background.Validate(); err != nil {
		return 0, err
	}
	debye, err := DebyeLength(electronDensity, electronTemperature)
	if err != nil {
		return 0, err
	}
	bMin := test.ChargeNumber * background.ChargeNumber *
		constants.ElectronCharge * constants.ElectronCharge /
		(4. * math.Pi * constants.FreeSpacePermittivityE0 * 3. * background.Temperature)
	return math.Log(debye / bMin), nil
}
