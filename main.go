package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/plasmakit/alphatau/internal/config"
	"github.com/plasmakit/alphatau/internal/constants"
	"github.com/plasmakit/alphatau/internal/fusion"
	"github.com/plasmakit/alphatau/internal/plasma"
	"github.com/plasmakit/alphatau/internal/relax"
	"github.com/plasmakit/alphatau/internal/utils"
)

var verbose bool

var saveFlags = map[string]*bool{
	"Slowing-down time":  new(bool),
	"Deflection time":    new(bool),
	"Collision rates":    new(bool),
	"Alpha distribution": new(bool),
}

func main() {
	root := &cobra.Command{
		Use:   "alphatau",
		Short: "Collision times and slowing-down spectrum of fast alphas in a DT plasma",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress details")

	runCmd := &cobra.Command{
		Use:   "run [config]",
		Short: "evaluate every scenario of a toml config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenarios,
	}
	runCmd.Flags().BoolVar(saveFlags["Slowing-down time"], "ts", true, "save slowing-down time scan")
	runCmd.Flags().BoolVar(saveFlags["Deflection time"], "td", true, "save deflection time scan")
	runCmd.Flags().BoolVar(saveFlags["Collision rates"], "ns", false, "save slowing-down rate scan")
	runCmd.Flags().BoolVar(saveFlags["Alpha distribution"], "fa", true, "save alpha distribution scan")

	timesCmd := &cobra.Command{
		Use:   "times",
		Short: "one-shot relaxation times from flags",
		RunE:  printTimes,
	}
	timesCmd.Flags().Float64P("density", "n", 1e20, "deuterium density [m^-3]")
	timesCmd.Flags().Float64P("temperature", "T", 10., "plasma temperature [keV]")
	timesCmd.Flags().Float64P("energy", "E", 3.5, "test alpha energy [MeV]")
	timesCmd.Flags().Float64("coulomb-log", constants.DefaultCoulombLog, "Coulomb logarithm, 0 to compute from the Debye length")
	timesCmd.Flags().Float64("ash-fraction", 0., "thermalized alpha density over electron density")

	reactivityCmd := &cobra.Command{
		Use:   "reactivity",
		Short: "DT reactivity over a temperature range",
		RunE:  printReactivity,
	}
	reactivityCmd.Flags().Float64("tmin", 2., "lower ion temperature [keV]")
	reactivityCmd.Flags().Float64("tmax", 50., "upper ion temperature [keV]")
	reactivityCmd.Flags().Int("points", 25, "table rows")

	root.AddCommand(runCmd, timesCmd, reactivityCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScenarios(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	if verbose {
		fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))
	}

	configFileName := "dt_burn"
	if len(args) > 0 {
		configFileName = strings.TrimSuffix(args[0], ".toml")
	}
	cfg, meta, err := config.LoadConfig(configFileName)
	if err != nil {
		return err
	}

	outputPath := ""
	if cfg.OutputDir != "" && cfg.OutputDir != "." {
		os.MkdirAll(cfg.OutputDir, 0750)
		outputPath += cfg.OutputDir + "/"
	}

	var summaryRows utils.CSV
	for scenarioName, parameters := range cfg.Scenarios {
		fmt.Println("\n" + scenarioName)
		if err := parameters.CheckAndUnify(scenarioName, &cfg, &meta); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		parameters.SetVerbosity(verbose)

		background, err := parameters.Background()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		test := plasma.Alpha(parameters.AlphaEnergy)
		summary, err := relax.Compute(test, background, parameters.CoulombLog)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		spectrum, err := fusion.NewSpectrum(background, parameters.CoulombLog)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		sweep, err := newScan(&parameters, background, spectrum)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		fileName := scenarioName
		if parameters.MakeDir {
			if err := os.MkdirAll(outputPath+scenarioName, 0750); err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			fileName += "/"
		} else {
			fileName += "_"
		}
		outputs := sweep.outputs()
		for name, out := range outputs {
			out.save = *saveFlags[name]
		}
		if err := sweep.save(outputs, outputPath, fileName); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		summaryRows = append(summaryRows, summaryRow(scenarioName, &parameters, summary, spectrum))
	}

	if len(summaryRows) > 0 {
		columns := []string{"scenario", "tau_s", "tau_d", "lnL_e", "E_crit", "S_alpha", "n_alpha", "E_mean"}
		if err := utils.WriteAsCSV(summaryRows, outputPath, "", "summary", columns); err != nil {
			return err
		}
	}

	if verbose {
		fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
	}
	return nil
}

func summaryRow(scenarioName string, parameters *config.ScenarioParameters, summary relax.Summary, spectrum fusion.Spectrum) []string {
	units := parameters.OutputUnits()
	asTime := func(v float64) float64 {
		return config.SI(v, []config.UnitElement{{Class: config.Time, Power: 1}}, units, false)
	}
	asEnergy := func(v float64) float64 {
		return config.SI(v, []config.UnitElement{{Class: config.Energy, Power: 1}}, units, false)
	}
	criticalEnergy := 0.5 * constants.AlphaMass * spectrum.CriticalSpeed * spectrum.CriticalSpeed

	var electronLnL float64
	for _, result := range summary.PerSpecies {
		if result.Species == "e" {
			electronLnL = result.CoulombLog
		}
	}

	const points = 2000
	return []string{
		scenarioName,
		fmt.Sprintf("%g", asTime(summary.SlowingDown)),
		fmt.Sprintf("%g", asTime(summary.Deflection)),
		fmt.Sprintf("%g", electronLnL),
		fmt.Sprintf("%g", asEnergy(criticalEnergy)),
		fmt.Sprintf("%g", spectrum.Source),
		fmt.Sprintf("%g", spectrum.Density(points)),
		fmt.Sprintf("%g", asEnergy(spectrum.MeanEnergy(points))),
	}
}

func printTimes(cmd *cobra.Command, args []string) error {
	density, _ := cmd.Flags().GetFloat64("density")
	temperatureKeV, _ := cmd.Flags().GetFloat64("temperature")
	energyMeV, _ := cmd.Flags().GetFloat64("energy")
	coulombLog, _ := cmd.Flags().GetFloat64("coulomb-log")
	ashFraction, _ := cmd.Flags().GetFloat64("ash-fraction")

	parameters := config.ScenarioParameters{
		DeuteriumDensity: density,
		IonTemperature:   utils.EV2J(temperatureKeV * 1e3),
		AlphaEnergy:      utils.EV2J(energyMeV * 1e6),
		CoulombLog:       coulombLog,
		AshFraction:      ashFraction,
	}
	background, err := parameters.Background()
	if err != nil {
		return err
	}

	test := plasma.Alpha(parameters.AlphaEnergy)
	summary, err := relax.Compute(test, background, coulombLog)
	if err != nil {
		return err
	}
	spectrum, err := fusion.NewSpectrum(background, coulombLog)
	if err != nil {
		return err
	}
	f, err := spectrum.AtEnergy(parameters.AlphaEnergy / 2.)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "species\tlnL\ttau_s (s)\ttau_d (s)\n")
	for _, result := range summary.PerSpecies {
		fmt.Fprintf(w, "%s\t%.3g\t%.4g\t%.4g\n", result.Species, result.CoulombLog, result.SlowingDown, result.Deflection)
	}
	fmt.Fprintf(w, "total\t\t%.4g\t%.4g\n", summary.SlowingDown, summary.Deflection)
	if err := w.Flush(); err != nil {
		return err
	}

	criticalEnergy := 0.5 * constants.AlphaMass * spectrum.CriticalSpeed * spectrum.CriticalSpeed
	fmt.Printf("\nalpha source rate: %.4g m^-3 s^-1\n", spectrum.Source)
	fmt.Printf("critical energy:   %.4g keV\n", utils.J2eV(criticalEnergy)*1e-3)
	fmt.Printf("f(E/2):            %.4g m^-3 J^-1\n", f)
	return nil
}

func printReactivity(cmd *cobra.Command, args []string) error {
	tMin, _ := cmd.Flags().GetFloat64("tmin")
	tMax, _ := cmd.Flags().GetFloat64("tmax")
	points, _ := cmd.Flags().GetInt("points")
	if points < 2 {
		points = 2
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "T (keV)\t<sigma v> (m^3/s)\n")
	step := (tMax - tMin) / float64(points-1)
	for i := 0; i < points; i++ {
		t := tMin + step*float64(i)
		sigmaV, err := fusion.Reactivity(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%.3g\t%.4g\n", t, sigmaV)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\npressure-optimal temperature: %.3g keV\n", fusion.OptimalTemperature(tMin, tMax))
	return nil
}
