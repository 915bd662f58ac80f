// Package relax evaluates the slowing-down and deflection times of a fast
// test particle against Maxwellian background species, following
// eqs. 2.14.1 and 2.14.2 in Wesson, Tokamaks (Oxford, 2011).
package relax

import (
	"math"

	"github.com/plasmakit/alphatau/internal/constants"
	"github.com/plasmakit/alphatau/internal/plasma"
)

// aD is the A_D diffusion coefficient prefactor (Wesson p. 63) in m^3 s^-4.
func aD(backgroundDensity, testCharge, backgroundCharge, coulombLog, testMass float64) float64 {
	e4 := constants.ElectronCharge * constants.ElectronCharge *
		constants.ElectronCharge * constants.ElectronCharge
	return backgroundDensity * e4 * testCharge * testCharge *
		backgroundCharge * backgroundCharge * coulombLog /
		(2. * math.Pi * constants.FreeSpacePermittivityE0 * constants.FreeSpacePermittivityE0 *
			testMass * testMass)
}

// phi is the Phi function of Wesson p. 62, the error function.
func phi(x float64) float64 {
	return math.Erf(x)
}

func phiPrime(x float64) float64 {
	return 2. * math.Exp(-x*x) / math.Sqrt(math.Pi)
}

// psi is the Psi function of Wesson p. 63.
func psi(x float64) float64 {
	return (phi(x) - x*phiPrime(x)) / (2. * x * x)
}

// SlowingDownTime is eq. 2.14.1: the characteristic time for the test
// particle to lose its directed momentum to one background species. [s]
func SlowingDownTime(test plasma.TestParticle, background plasma.Species, coulombLog float64) (float64, error) {
	if err := test.Validate(); err != nil {
		return 0, err
	}
	if err := background.Validate(); err != nil {
		return 0, err
	}
	v := test.Speed()
	vT := background.ThermalSpeed()
	x := v / (math.Sqrt2 * vT)
	return 2. * vT * vT * v /
		((1. + test.Mass/background.Mass) *
			aD(background.Density, test.ChargeNumber, background.ChargeNumber, coulombLog, test.Mass) *
			psi(x)), nil
}

// DeflectionTime is eq. 2.14.2: the pitch-angle scattering time on one
// background species. [s]
func DeflectionTime(test plasma.TestParticle, background plasma.Species, coulombLog float64) (float64, error) {
	if err := test.Validate(); err != nil {
		return 0, err
	}
	if err := background.Validate(); err != nil {
		return 0, err
	}
	v := test.Speed()
	x := v / (math.Sqrt2 * background.ThermalSpeed())
	return v * v * v /
		(aD(background.Density, test.ChargeNumber, background.ChargeNumber, coulombLog, test.Mass) *
			(phi(x) - psi(x))), nil
}

// SpitzerTime is the analytical electron-drag approximation of eq. 5.4.3,
// valid for a fast ion much slower than the electron thermal speed. [s]
func SpitzerTime(test plasma.TestParticle, electrons plasma.Species, coulombLog float64) (float64, error) {
	if err := test.Validate(); err != nil {
		return 0, err
	}
	if err := electrons.Validate(); err != nil {
		return 0, err
	}
	t3 := electrons.Temperature * electrons.Temperature * electrons.Temperature
	return 3. * math.Sqrt(2.*math.Pi*t3) /
		(math.Sqrt(electrons.Mass) * test.Mass *
			aD(electrons.Density, test.ChargeNumber, electrons.ChargeNumber, coulombLog, test.Mass)), nil
}
