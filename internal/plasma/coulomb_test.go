package plasma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasmakit/alphatau/internal/constants"
)

func TestDebyeLength(t *testing.T) {
	debye, err := DebyeLength(2e20, refTemperature)
	require.NoError(t, err)
	assert.InEpsilon(t, 5.2566e-5, debye, 1e-3)

	// screening shortens with density and lengthens with temperature
	denser, err := DebyeLength(4e20, refTemperature)
	require.NoError(t, err)
	assert.Less(t, denser, debye)

	hotter, err := DebyeLength(2e20, 2*refTemperature)
	require.NoError(t, err)
	assert.Greater(t, hotter, debye)
}

func TestDebyeLengthInvalid(t *testing.T) {
	_, err := DebyeLength(0, refTemperature)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = DebyeLength(2e20, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestCoulombLogarithmReferenceCase(t *testing.T) {
	alpha := Alpha(constants.AlphaBirthEnergy)
	electrons := Electrons(2e20, refTemperature)
	lnL, err := CoulombLogarithm(alpha, electrons, electrons.Density, electrons.Temperature)
	require.NoError(t, err)
	// Debye length over classical closest approach at the DT burn point
	assert.InEpsilon(t, 20.121, lnL, 1e-3)

	// same charge product and temperature, so ions give the same value
	lnLIons, err := CoulombLogarithm(alpha, Deuterium(1e20, refTemperature), electrons.Density, electrons.Temperature)
	require.NoError(t, err)
	assert.InDelta(t, lnL, lnLIons, 1e-9)
}

func TestCoulombLogarithmInvalid(t *testing.T) {
	alpha := Alpha(constants.AlphaBirthEnergy)
	electrons := Electrons(2e20, refTemperature)

	_, err := CoulombLogarithm(Alpha(0), electrons, electrons.Density, electrons.Temperature)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = CoulombLogarithm(alpha, Electrons(-1e20, refTemperature), electrons.Density, electrons.Temperature)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = CoulombLogarithm(alpha, electrons, 0, electrons.Temperature)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
