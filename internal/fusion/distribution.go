package fusion

import (
	"fmt"
	"math"

	"github.com/plasmakit/alphatau/internal/constants"
	"github.com/plasmakit/alphatau/internal/plasma"
	"github.com/plasmakit/alphatau/internal/relax"
	"github.com/plasmakit/alphatau/internal/utils"
)

// CriticalSpeed is the Stix critical speed at which ion drag equals electron
// drag for a fast ion: vc^3 = (3 sqrt(pi)/4)(m_e/n_e) sum n_j Z_j^2/m_j
// times (2 T_e/m_e)^{3/2}. Above it electrons dominate the slowing down.
func CriticalSpeed(background plasma.Background) (float64, error) {
	if err := background.Validate(); err != nil {
		return 0, err
	}
	electrons, ok := background.Electrons()
	if !ok {
		return 0, fmt.Errorf("%w: critical speed requires an electron species", plasma.ErrInvalidParameter)
	}
	var ionSum float64 // sum n_j Z_j^2 / m_j
	for _, ion := range background.Ions() {
		ionSum += ion.Density * ion.ChargeNumber * ion.ChargeNumber / ion.Mass
	}
	if ionSum == 0 {
		return 0, fmt.Errorf("%w: critical speed requires at least one ion species", plasma.ErrInvalidParameter)
	}
	vTe := math.Sqrt(2. * electrons.Temperature / electrons.Mass)
	return vTe * math.Cbrt(3.*math.Sqrt(math.Pi)/4.*electrons.Mass*ionSum/electrons.Density), nil
}

// CriticalSpeedExact solves the full drag balance (eq. 2.14.1 rates of ions
// versus electrons) instead of the asymptotic closed form. The two agree to
// ~20% at reactor parameters; the difference is the finite-x correction of
// the Psi function.
func CriticalSpeedExact(test plasma.TestParticle, background plasma.Background, coulombLog float64) (float64, error) {
	if err := test.Validate(); err != nil {
		return 0, err
	}
	if err := background.Validate(); err != nil {
		return 0, err
	}
	electrons, ok := background.Electrons()
	if !ok {
		return 0, fmt.Errorf("%w: critical speed requires an electron species", plasma.ErrInvalidParameter)
	}
	ions := background.Ions()
	if len(ions) == 0 {
		return 0, fmt.Errorf("%w: critical speed requires at least one ion species", plasma.ErrInvalidParameter)
	}

	rateAt := func(species plasma.Species, v float64) float64 {
		probe := test
		probe.Energy = 0.5 * test.Mass * v * v
		tau, err := relax.SlowingDownTime(probe, species, coulombLog)
		if err != nil {
			return 0
		}
		return 1. / tau
	}
	electronsDominate := func(v float64) bool {
		var ionRate float64
		for _, ion := range ions {
			ionRate += rateAt(ion, v)
		}
		return ionRate < rateAt(electrons, v)
	}

	vBirth := test.Speed()
	if !electronsDominate(vBirth) {
		// no crossing below the test speed
		return vBirth, nil
	}
	_, v := utils.BinarySearch(electronsDominate, 0.02*vBirth, vBirth, vBirth*1e-8)
	return v, nil
}

// Spectrum is the steady-state slowing-down distribution of thermonuclear
// alphas: f(v) = S tau_se / (4 pi (v^3 + vc^3)) below the birth speed, zero
// at and above it.
type Spectrum struct {
	Source        float64 // alpha birth rate [m^-3 s^-1]
	SpitzerTime   float64 // tau_se [s]
	CriticalSpeed float64 // [m/s]
	BirthEnergy   float64 // [J]
	mass          float64 // [kg]
}

// NewSpectrum builds the alpha spectrum for a DT background. The background
// must contain electrons and the D and T populations; coulombLog <= 0 selects
// the computed Coulomb logarithm for the Spitzer time.
func NewSpectrum(background plasma.Background, coulombLog float64) (Spectrum, error) {
	var spectrum Spectrum
	if err := background.Validate(); err != nil {
		return spectrum, err
	}
	electrons, ok := background.Electrons()
	if !ok {
		return spectrum, fmt.Errorf("%w: spectrum requires an electron species", plasma.ErrInvalidParameter)
	}
	var deuterium, tritium *plasma.Species
	for i := range background {
		switch background[i].Name {
		case "D":
			deuterium = &background[i]
		case "T":
			tritium = &background[i]
		}
	}
	if deuterium == nil || tritium == nil {
		return spectrum, fmt.Errorf("%w: spectrum requires D and T species", plasma.ErrInvalidParameter)
	}

	birth := plasma.Alpha(constants.AlphaBirthEnergy)
	if coulombLog <= 0 {
		var err error
		coulombLog, err = plasma.CoulombLogarithm(birth, electrons, electrons.Density, electrons.Temperature)
		if err != nil {
			return spectrum, err
		}
	}

	tIonsKeV := utils.J2eV(deuterium.Temperature) * 1e-3
	source, err := ReactionRate(deuterium.Density, tritium.Density, tIonsKeV)
	if err != nil {
		return spectrum, err
	}
	tauSe, err := relax.SpitzerTime(birth, electrons, coulombLog)
	if err != nil {
		return spectrum, err
	}
	vc, err := CriticalSpeed(background)
	if err != nil {
		return spectrum, err
	}

	spectrum.Source = source
	spectrum.SpitzerTime = tauSe
	spectrum.CriticalSpeed = vc
	spectrum.BirthEnergy = constants.AlphaBirthEnergy
	spectrum.mass = birth.Mass
	return spectrum, nil
}

// AtEnergy is the distribution per unit volume and energy, f(E) [m^-3 J^-1],
// obtained from f(v) through f(E) = 4 pi v^2 f(v) / (m v). Energies at or
// above the birth energy map to zero.
func (s Spectrum) AtEnergy(energy float64) (float64, error) {
	if energy <= 0 {
		return 0, fmt.Errorf("%w: alpha energy %g J", plasma.ErrInvalidParameter, energy)
	}
	v := math.Sqrt(2. * energy / s.mass)
	if v >= s.BirthSpeed() {
		return 0, nil
	}
	vc3 := s.CriticalSpeed * s.CriticalSpeed * s.CriticalSpeed
	return s.Source * s.SpitzerTime * v / ((v*v*v + vc3) * s.mass), nil
}

func (s Spectrum) BirthSpeed() float64 {
	return math.Sqrt(2. * s.BirthEnergy / s.mass)
}

// Density integrates f(E) from 0 to the birth energy, giving the steady-state
// slowing-down alpha density. [m^-3]
func (s Spectrum) Density(points int) float64 {
	table, step := s.tabulate(points)
	return utils.TableIntegrate(table, nil, step)
}

// MeanEnergy is the density-weighted mean of the spectrum. [J]
func (s Spectrum) MeanEnergy(points int) float64 {
	table, step := s.tabulate(points)
	weighted := utils.TableIntegrate(table, func(energy float64) float64 { return energy + 0.5*step }, step)
	return weighted / utils.TableIntegrate(table, nil, step)
}

func (s Spectrum) tabulate(points int) (table []float64, step float64) {
	if points < 2 {
		points = 2
	}
	step = s.BirthEnergy / float64(points)
	table = make([]float64, points)
	for i := range table {
		energy := step * (float64(i) + 0.5) // midpoints keep both endpoints off the grid
		table[i], _ = s.AtEnergy(energy)
	}
	return
}
