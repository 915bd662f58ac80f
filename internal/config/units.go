package config

import "github.com/plasmakit/alphatau/internal/utils"

var unitToSI = map[string]float64{
	"m^-3":  1,               // [m^-3]
	"cm^-3": 1e6,             // [m^-3]
	"eV":    1.602176634e-19, // [J]
	"keV":   1.602176634e-16, // [J]
	"MeV":   1.602176634e-13, // [J]
	"J":     1,               // [J]
	"s":     1,               // [s]
	"ms":    1e-3,            // [s]
}

type UnitClass int

const (
	Density UnitClass = iota
	Temperature
	Energy
	Time
)

var unitsInClass = map[UnitClass][]string{
	Density:     {"cm^-3", "m^-3"},
	Temperature: {"eV", "keV"},
	Energy:      {"MeV", "J"},
	Time:        {"ms", "s"},
}

var classesOfUnits = map[string]UnitClass{
	"m^-3":  Density,
	"cm^-3": Density,
	"eV":    Temperature,
	"keV":   Temperature,
	"MeV":   Energy,
	"J":     Energy,
	"s":     Time,
	"ms":    Time,
}

type UnitElement = struct {
	Class UnitClass
	Power int
}

func ClassOf(unit string) UnitClass {
	return classesOfUnits[unit]
}

func checkUnits(units []string) (extended, conflicts []string) {
	classes := map[UnitClass]struct{}{}
	for _, unit := range units {
		if _, some := classes[classesOfUnits[unit]]; some {
			conflicts = append(conflicts, unit)
		} else {
			classes[classesOfUnits[unit]] = struct{}{}
		}
	}
	extended = units
	for _, unit := range defaultUnits {
		if _, some := classes[classesOfUnits[unit]]; !some {
			extended = append(extended, unit)
		}
	}
	return
}

func SI(v float64, classes []UnitElement, units []string, direct bool) float64 {
	for i := range classes {
		uc := classes[i]
		unit := utils.Intersect(unitsInClass[uc.Class], units)
		absPower := utils.IntAbs(uc.Power)
		if direct {
			if uc.Power > 0 {
				for n := 0; n < absPower; n++ {
					v *= unitToSI[*unit]
				}
			} else {
				for n := 0; n < absPower; n++ {
					v /= unitToSI[*unit]
				}
			}
		} else {
			if uc.Power > 0 {
				for n := 0; n < absPower; n++ {
					v /= unitToSI[*unit]
				}
			} else {
				for n := 0; n < absPower; n++ {
					v *= unitToSI[*unit]
				}
			}
		}
	}
	return v
}
