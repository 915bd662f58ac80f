package plasma

import (
	"fmt"
	"math"

	"github.com/plasmakit/alphatau/internal/constants"
)

// Species is an immutable Maxwellian background population.
type Species struct {
	Name         string
	Density      float64 // [m^-3]
	Temperature  float64 // [J]
	ChargeNumber float64
	Mass         float64 // [kg]
}

func Deuterium(density, temperature float64) Species {
	return Species{"D", density, temperature, 1., constants.DeuteronMass}
}

func Tritium(density, temperature float64) Species {
	return Species{"T", density, temperature, 1., constants.TritonMass}
}

func Electrons(density, temperature float64) Species {
	return Species{"e", density, temperature, 1., constants.ElectronMass}
}

// HeliumAsh is the thermalized thermonuclear alpha population treated as a
// background species of its own.
func HeliumAsh(density, temperature float64) Species {
	return Species{"He", density, temperature, constants.AlphaChargeNumber, constants.AlphaMass}
}

func (s Species) Validate() error {
	if s.Density <= 0 {
		return fmt.Errorf("%w: species %q density %g m^-3", ErrInvalidParameter, s.Name, s.Density)
	}
	if s.Temperature <= 0 {
		return fmt.Errorf("%w: species %q temperature %g J", ErrInvalidParameter, s.Name, s.Temperature)
	}
	if s.Mass <= 0 {
		return fmt.Errorf("%w: species %q mass %g kg", ErrInvalidParameter, s.Name, s.Mass)
	}
	return nil
}

// ThermalSpeed is sqrt(T/m), the Maxwellian speed scale entering the
// relaxation-time formulas.
func (s Species) ThermalSpeed() float64 {
	return math.Sqrt(s.Temperature / s.Mass)
}

// TestParticle is the fast particle slowing down on the background.
type TestParticle struct {
	ChargeNumber float64
	Mass         float64 // [kg]
	Energy       float64 // [J]
}

func Alpha(energy float64) TestParticle {
	return TestParticle{constants.AlphaChargeNumber, constants.AlphaMass, energy}
}

func (p TestParticle) Validate() error {
	if p.Mass <= 0 {
		return fmt.Errorf("%w: test particle mass %g kg", ErrInvalidParameter, p.Mass)
	}
	if p.Energy <= 0 {
		return fmt.Errorf("%w: test particle energy %g J", ErrInvalidParameter, p.Energy)
	}
	return nil
}

func (p TestParticle) Speed() float64 {
	return math.Sqrt(2. * p.Energy / p.Mass)
}

// Background is the full set of field species the test particle collides with.
type Background []Species

func (bg Background) Validate() error {
	for i := range bg {
		if err := bg[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Electrons returns the electron population, identified by name.
func (bg Background) Electrons() (Species, bool) {
	for i := range bg {
		if bg[i].Name == "e" {
			return bg[i], true
		}
	}
	return Species{}, false
}

// Ions returns every non-electron species.
func (bg Background) Ions() Background {
	var ions Background
	for i := range bg {
		if bg[i].Name != "e" {
			ions = append(ions, bg[i])
		}
	}
	return ions
}
