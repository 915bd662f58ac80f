package relax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasmakit/alphatau/internal/constants"
	"github.com/plasmakit/alphatau/internal/plasma"
)

const (
	refDensity     = 1e20                            // [m^-3]
	refTemperature = 10e3 * constants.ElectronCharge // 10 keV in [J]
	refCoulombLog  = 17.
)

func dtBackground() plasma.Background {
	return plasma.Background{
		plasma.Deuterium(refDensity, refTemperature),
		plasma.Tritium(refDensity, refTemperature),
		plasma.Electrons(2*refDensity, refTemperature),
	}
}

// Slowing down of a 3.5 MeV alpha on 10 keV electrons at 10^20 m^-3 must
// agree with the Spitzer approximation (Wesson eq. 5.4.3) to a few percent;
// the reference numbers bracket the tokamak-textbook value of ~0.4 s.
func TestSlowingDownTimeAlphaVsElectrons(t *testing.T) {
	alpha := plasma.Alpha(constants.AlphaBirthEnergy)
	electrons := plasma.Electrons(refDensity, refTemperature)

	tauS, err := SlowingDownTime(alpha, electrons, refCoulombLog)
	require.NoError(t, err)
	tauApprox, err := SpitzerTime(alpha, electrons, refCoulombLog)
	require.NoError(t, err)

	assert.InEpsilon(t, tauApprox, tauS, 0.05)
	assert.InEpsilon(t, 0.379788, tauS, 1e-3)
	assert.InEpsilon(t, 0.369090, tauApprox, 1e-3)
}

// The approximation holds along the whole sub-birth energy range, as in the
// original visual check, tightening toward low energies.
func TestSpitzerApproximationAcrossEnergies(t *testing.T) {
	electrons := plasma.Electrons(refDensity, refTemperature)
	for energyMeV := 0.01; energyMeV <= 3.5; energyMeV += 0.05 {
		alpha := plasma.Alpha(energyMeV * 1e6 * constants.ElectronCharge)
		tauS, err := SlowingDownTime(alpha, electrons, refCoulombLog)
		require.NoError(t, err)
		tauApprox, err := SpitzerTime(alpha, electrons, refCoulombLog)
		require.NoError(t, err)
		assert.InEpsilon(t, tauApprox, tauS, 0.05, "at %g MeV", energyMeV)
	}
}

func TestComputeReferenceDTCase(t *testing.T) {
	alpha := plasma.Alpha(constants.AlphaBirthEnergy)
	summary, err := Compute(alpha, dtBackground(), refCoulombLog)
	require.NoError(t, err)

	assert.InEpsilon(t, 0.181299, summary.SlowingDown, 1e-3)
	assert.InEpsilon(t, 4.58427, summary.Deflection, 1e-3)

	require.Len(t, summary.PerSpecies, 3)
	byName := map[string]Result{}
	for _, result := range summary.PerSpecies {
		byName[result.Species] = result
	}
	// electron drag dominates the energy loss of a birth-energy alpha
	assert.InEpsilon(t, 0.189894, byName["e"].SlowingDown, 1e-3)
	assert.InEpsilon(t, 7.12572, byName["D"].SlowingDown, 1e-3)
	assert.InEpsilon(t, 9.14773, byName["T"].SlowingDown, 1e-3)
	// ions dominate pitch-angle scattering
	assert.InEpsilon(t, 32.6050, byName["e"].Deflection, 1e-3)
	assert.InEpsilon(t, 10.6736, byName["D"].Deflection, 1e-3)
	assert.InEpsilon(t, 10.6635, byName["T"].Deflection, 1e-3)
}

func TestTimesPositiveFinite(t *testing.T) {
	background := dtBackground()
	for _, energyMeV := range []float64{0.05, 0.5, 1., 2., 3.5, 5.} {
		alpha := plasma.Alpha(energyMeV * 1e6 * constants.ElectronCharge)
		for _, species := range background {
			tauS, err := SlowingDownTime(alpha, species, refCoulombLog)
			require.NoError(t, err)
			tauD, err := DeflectionTime(alpha, species, refCoulombLog)
			require.NoError(t, err)
			assert.True(t, tauS > 0 && !math.IsInf(tauS, 0) && !math.IsNaN(tauS))
			assert.True(t, tauD > 0 && !math.IsInf(tauD, 0) && !math.IsNaN(tauD))
		}
	}
}

// Structural check of the formula's mass dependence: a heavier test particle
// of the same speed slows down later.
func TestSlowingDownTimeMassMonotonic(t *testing.T) {
	electrons := plasma.Electrons(refDensity, refTemperature)

	light := plasma.Alpha(constants.AlphaBirthEnergy)
	heavy := light
	heavy.Mass = 2 * light.Mass
	heavy.Energy = 2 * light.Energy // same speed

	tauLight, err := SlowingDownTime(light, electrons, refCoulombLog)
	require.NoError(t, err)
	tauHeavy, err := SlowingDownTime(heavy, electrons, refCoulombLog)
	require.NoError(t, err)
	assert.Greater(t, tauHeavy, tauLight)

	// holding the energy fixed instead of the speed gives the same ordering
	heavy.Energy = light.Energy
	tauHeavy, err = SlowingDownTime(heavy, electrons, refCoulombLog)
	require.NoError(t, err)
	assert.Greater(t, tauHeavy, tauLight)
}

func TestInvalidParameters(t *testing.T) {
	alpha := plasma.Alpha(constants.AlphaBirthEnergy)

	_, err := SlowingDownTime(alpha, plasma.Electrons(0, refTemperature), refCoulombLog)
	assert.ErrorIs(t, err, plasma.ErrInvalidParameter)

	_, err = DeflectionTime(alpha, plasma.Electrons(refDensity, -1), refCoulombLog)
	assert.ErrorIs(t, err, plasma.ErrInvalidParameter)

	_, err = SlowingDownTime(plasma.Alpha(-1), plasma.Electrons(refDensity, refTemperature), refCoulombLog)
	assert.ErrorIs(t, err, plasma.ErrInvalidParameter)

	_, err = SpitzerTime(plasma.Alpha(0), plasma.Electrons(refDensity, refTemperature), refCoulombLog)
	assert.ErrorIs(t, err, plasma.ErrInvalidParameter)
}

func TestComputeComputedCoulombLog(t *testing.T) {
	alpha := plasma.Alpha(constants.AlphaBirthEnergy)
	summary, err := Compute(alpha, dtBackground(), 0)
	require.NoError(t, err)

	for _, result := range summary.PerSpecies {
		assert.InEpsilon(t, 20.121, result.CoulombLog, 1e-3)
	}
	// larger lnL means stronger drag and shorter times
	fixed, err := Compute(alpha, dtBackground(), refCoulombLog)
	require.NoError(t, err)
	assert.Less(t, summary.SlowingDown, fixed.SlowingDown)
}

func TestComputeNeedsElectronsForComputedLog(t *testing.T) {
	alpha := plasma.Alpha(constants.AlphaBirthEnergy)
	ionsOnly := plasma.Background{plasma.Deuterium(refDensity, refTemperature)}
	_, err := Compute(alpha, ionsOnly, 0)
	assert.ErrorIs(t, err, plasma.ErrInvalidParameter)

	// fixed lnL works without electrons
	_, err = Compute(alpha, ionsOnly, refCoulombLog)
	assert.NoError(t, err)
}

func TestPsiProperties(t *testing.T) {
	// Psi rises from 0 and falls back toward 0 at large x; Phi - Psi stays
	// positive, keeping the deflection time positive.
	prev := 0.
	for _, x := range []float64{0.1, 0.3, 0.5} {
		val := psi(x)
		assert.Greater(t, val, prev)
		prev = val
	}
	assert.Less(t, psi(10.), psi(1.))
	for _, x := range []float64{0.05, 0.5, 1., 5.} {
		assert.Positive(t, phi(x)-psi(x))
	}
}
