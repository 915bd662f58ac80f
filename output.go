package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/plasmakit/alphatau/internal/config"
	"github.com/plasmakit/alphatau/internal/fusion"
	"github.com/plasmakit/alphatau/internal/plasma"
	"github.com/plasmakit/alphatau/internal/relax"
)

type output struct {
	save        bool
	fileSuffix  string
	columnNames []string
	data        func(*scan) []float64
	scalers     []func(float64) float64
}

// scan holds the energy sweep of one scenario from MinEnergy up to the test
// energy. Energies are in SI; scalers convert columns to output units.
type scan struct {
	parameters  *config.ScenarioParameters
	energies    []float64 // [J]
	slowingDown []float64 // [s]
	deflection  []float64 // [s]
	spectrum    []float64 // [m^-3 J^-1]
}

func newScan(parameters *config.ScenarioParameters, background plasma.Background, spectrum fusion.Spectrum) (*scan, error) {
	points := parameters.EnergyPoints
	if points < 2 {
		points = 2
	}
	s := &scan{
		parameters:  parameters,
		energies:    make([]float64, points),
		slowingDown: make([]float64, points),
		deflection:  make([]float64, points),
		spectrum:    make([]float64, points),
	}
	step := (parameters.AlphaEnergy - parameters.MinEnergy) / float64(points-1)
	for i := range s.energies {
		energy := parameters.MinEnergy + step*float64(i)
		s.energies[i] = energy

		summary, err := relax.Compute(plasma.Alpha(energy), background, parameters.CoulombLog)
		if err != nil {
			return nil, err
		}
		s.slowingDown[i] = summary.SlowingDown
		s.deflection[i] = summary.Deflection

		s.spectrum[i], err = spectrum.AtEnergy(energy)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *scan) outputs() map[string]*output {
	units := s.parameters.OutputUnits()
	asEnergy := func(v float64) float64 {
		return config.SI(v, []config.UnitElement{{Class: config.Energy, Power: 1}}, units, false)
	}
	asTime := func(v float64) float64 {
		return config.SI(v, []config.UnitElement{{Class: config.Time, Power: 1}}, units, false)
	}
	asRate := func(v float64) float64 {
		return config.SI(v, []config.UnitElement{{Class: config.Time, Power: -1}}, units, false)
	}
	asPerEnergy := func(v float64) float64 {
		return config.SI(v, []config.UnitElement{{Class: config.Energy, Power: -1}}, units, false)
	}
	inverted := func(ts []float64) []float64 {
		rates := make([]float64, len(ts))
		for i := range ts {
			rates[i] = 1. / ts[i]
		}
		return rates
	}

	return map[string]*output{
		"Slowing-down time": {
			fileSuffix:  "tau_s",
			columnNames: []string{"E", "tau_s"},
			data:        func(s *scan) []float64 { return s.slowingDown },
			scalers:     []func(float64) float64{asEnergy, asTime},
		},
		"Deflection time": {
			fileSuffix:  "tau_d",
			columnNames: []string{"E", "tau_d"},
			data:        func(s *scan) []float64 { return s.deflection },
			scalers:     []func(float64) float64{asEnergy, asTime},
		},
		"Collision rates": {
			fileSuffix:  "nu_s",
			columnNames: []string{"E", "nu_s"},
			data:        func(s *scan) []float64 { return inverted(s.slowingDown) },
			scalers:     []func(float64) float64{asEnergy, asRate},
		},
		"Alpha distribution": {
			fileSuffix:  "f_alpha",
			columnNames: []string{"E", "f"},
			data:        func(s *scan) []float64 { return s.spectrum },
			scalers:     []func(float64) float64{asEnergy, asPerEnergy},
		},
	}
}

func unitOfClass(units []string, class config.UnitClass) string {
	for _, unit := range units {
		if config.ClassOf(unit) == class {
			return unit
		}
	}
	return "?"
}

func (s *scan) save(outputs map[string]*output, outputPath, scenarioName string) error {
	units := s.parameters.OutputUnits()
	energyUnit := unitOfClass(units, config.Energy)
	timeUnit := unitOfClass(units, config.Time)
	columnUnits := map[string]string{
		"E":     energyUnit,
		"tau_s": timeUnit,
		"tau_d": timeUnit,
		"nu_s":  timeUnit + "^-1",
		"f":     "m^-3 " + energyUnit + "^-1",
	}

	for name, out := range outputs {
		if !out.save {
			continue
		}
		file, err := os.Create(outputPath + scenarioName + out.fileSuffix + ".txt")
		if err != nil {
			return fmt.Errorf("unable to save %s: %w", name, err)
		}

		header := make([]string, len(out.columnNames))
		for i, column := range out.columnNames {
			header[i] = column + " (" + columnUnits[column] + ")"
		}
		rows := [][]string{header}
		values := out.data(s)
		for i := range s.energies {
			x, y := s.energies[i], values[i]
			if out.scalers[0] != nil {
				x = out.scalers[0](x)
			}
			if out.scalers[1] != nil {
				y = out.scalers[1](y)
			}
			rows = append(rows, []string{
				strconv.FormatFloat(x, 'g', -1, 64),
				strconv.FormatFloat(y, 'g', -1, 64),
			})
		}

		w := csv.NewWriter(file)
		w.WriteAll(rows)
		if err := w.Error(); err != nil {
			file.Close()
			return fmt.Errorf("error writing csv for %s: %w", name, err)
		}
		if err := file.Close(); err != nil {
			return err
		}
		if s.parameters.Verbose() {
			fmt.Println(name + " saved")
		}
	}
	return nil
}
