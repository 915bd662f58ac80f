package config

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/plasmakit/alphatau/internal/constants"
	"github.com/plasmakit/alphatau/internal/plasma"
	"github.com/plasmakit/alphatau/internal/utils"
)

type Config struct {
	OutputDir string
	Scenarios map[string]ScenarioParameters
	ScenarioParameters
	// Profile lists (density, temperature) pairs, one scenario per line.
	Profile      string
	isDefinedMap map[string]struct{}

	InputUnits  []string
	OutputUnits []string
}

func (c *Config) isDefined(path []string, meta *toml.MetaData) bool {
	if _, sureDefined := c.isDefinedMap[strings.Join(path, "#")]; sureDefined {
		return true
	} else {
		return meta.IsDefined(path...)
	}
}

func LoadConfig(configFileName string) (Config, toml.MetaData, error) {
	var config Config
	config.isDefinedMap = map[string]struct{}{}
	meta, err := toml.DecodeFile(configFileName+".toml", &config)
	if err != nil {
		return config, meta, err
	}

	var unitsConflict []string
	config.InputUnits, unitsConflict = checkUnits(config.InputUnits)
	if len(unitsConflict) > 0 {
		return config, meta, fmt.Errorf("found input unit conflict: %v", unitsConflict)
	}
	if len(config.OutputUnits) == 0 {
		config.OutputUnits = config.InputUnits
	}
	config.OutputUnits, unitsConflict = checkUnits(config.OutputUnits)
	if len(unitsConflict) > 0 {
		return config, meta, fmt.Errorf("found output unit conflict: %v", unitsConflict)
	}

	if len(config.Profile) > 0 {
		if len(config.Scenarios) > 0 {
			return config, meta, fmt.Errorf("simultaneous profile file listing and direct scenario specification not supported")
		}
		profile, err := utils.ReadFloatPairs(config.Profile)
		if err != nil {
			return config, meta, fmt.Errorf("profile file reading error: %w", err)
		}
		filename := utils.GetFilename(config.Profile)
		config.Scenarios = make(map[string]ScenarioParameters, len(profile))
		for line := range profile {
			scenarioName := filename + "_l" + strconv.Itoa(line+1)
			config.Scenarios[scenarioName] = ScenarioParameters{
				DeuteriumDensity: profile[line][0],
				IonTemperature:   profile[line][1],
			}
			config.isDefinedMap[strings.Join([]string{"Scenarios", scenarioName, "DeuteriumDensity"}, "#")] = struct{}{}
			config.isDefinedMap[strings.Join([]string{"Scenarios", scenarioName, "IonTemperature"}, "#")] = struct{}{}
		}
	} else {
		if len(config.Scenarios) == 0 {
			return config, meta, fmt.Errorf("no scenarios provided")
		}
	}

	return config, meta, nil
}

type ScenarioParameters struct {
	DeuteriumDensity float64 // [m^-3], tritium density is fixed equal to it
	IonTemperature   float64 // [J], electrons share it
	AlphaEnergy      float64 // [J]
	MinEnergy        float64 // [J], lower bound of the energy scan
	CoulombLog       float64 // 0 selects the computed Debye-length form
	AshFraction      float64 // thermalized alpha density over electron density
	EnergyPoints     int
	MakeDir          bool

	_outputUnits []string
	_verbose     bool
}

func (p *ScenarioParameters) OutputUnits() []string {
	return p._outputUnits
}

func (p *ScenarioParameters) SetOutputUnits(u []string) {
	p._outputUnits = u
}

func (p *ScenarioParameters) Verbose() bool {
	return p._verbose
}

func (p *ScenarioParameters) SetVerbosity(verbose bool) {
	p._verbose = verbose
}

var defaultValues = map[string]any{ // in SI
	"IonTemperature": 10e3 * constants.ElectronCharge,  // [J]
	"AlphaEnergy":    constants.AlphaBirthEnergy,       // [J]
	"MinEnergy":      10e3 * constants.ElectronCharge,  // [J]
	"CoulombLog":     constants.DefaultCoulombLog,
	"AshFraction":    0.0,
	"EnergyPoints":   200,
	"MakeDir":        true,
}

var defaultUnits = []string{"m^-3", "keV", "MeV", "s"}

var valueUnits = map[string][]UnitElement{
	"DeuteriumDensity": {
		{Class: Density, Power: 1},
	},
	"IonTemperature": {
		{Class: Temperature, Power: 1},
	},
	"AlphaEnergy": {
		{Class: Energy, Power: 1},
	},
	"MinEnergy": {
		{Class: Energy, Power: 1},
	},
}

func (scenario *ScenarioParameters) toSI(parameterNames, units []string) {
	scenarioReflect := reflect.ValueOf(scenario).Elem()
	for name := range parameterNames {
		if scenarioReflect.FieldByName(parameterNames[name]).CanFloat() {
			value := scenarioReflect.FieldByName(parameterNames[name]).Float()
			value = SI(value, valueUnits[parameterNames[name]], units, true)
			scenarioReflect.FieldByName(parameterNames[name]).SetFloat(value)
		}
	}
}

// CheckAndUnify resolves every scenario field with priority local value,
// then global value, then default, converting input units to SI.
func (scenario *ScenarioParameters) CheckAndUnify(scenarioName string, config *Config, meta *toml.MetaData) error {
	var discoveredParameters []string

	scenarioReflect := reflect.ValueOf(scenario).Elem()
	scenarioType := scenarioReflect.Type()
	for i := 0; i < scenarioReflect.NumField(); i++ {
		fieldName := scenarioType.Field(i).Name
		if config.isDefined([]string{"Scenarios", scenarioName, fieldName}, meta) {
			discoveredParameters = append(discoveredParameters, fieldName)
		}
	}

	globalReflect := reflect.ValueOf(config).Elem()
	globalType := globalReflect.Type()
	for i := 0; i < globalReflect.NumField(); i++ { // dive into embedded ScenarioParameters
		if globalType.Field(i).Anonymous && globalType.Field(i).Type.Kind() == reflect.Struct {
			globalType = globalReflect.Field(i).Type()
			globalReflect = globalReflect.Field(i)
			break
		}
	}

	for i := 0; i < globalReflect.NumField(); i++ {
		fieldName := globalType.Field(i).Name
		if !slices.Contains(discoveredParameters, fieldName) && meta.IsDefined(fieldName) {
			scenarioReflect.FieldByName(fieldName).Set(globalReflect.Field(i))
			discoveredParameters = append(discoveredParameters, fieldName)
		}
	}

	scenario.toSI(discoveredParameters, config.InputUnits)

	for fieldName := range defaultValues {
		if !slices.Contains(discoveredParameters, fieldName) {
			scenarioReflect.FieldByName(fieldName).Set(reflect.ValueOf(defaultValues[fieldName]))
			discoveredParameters = append(discoveredParameters, fieldName)
		}
	}

	if !slices.Contains(discoveredParameters, "DeuteriumDensity") {
		return fmt.Errorf("scenario %s lacks DeuteriumDensity", scenarioName)
	}
	if scenario.AshFraction < 0 || scenario.AshFraction >= 0.5 {
		return fmt.Errorf("scenario %s: AshFraction %g outside [0, 0.5)", scenarioName, scenario.AshFraction)
	}

	var conflict []string
	units, conflict := checkUnits(config.OutputUnits)
	if len(conflict) > 0 {
		fmt.Printf("found output unit conflict: %v\n Data will be saved in input units", conflict)
		scenario._outputUnits = config.InputUnits
	} else {
		scenario._outputUnits = units
	}

	return nil
}

// Background bakes the modeling invariants into the species set: tritium
// density equals deuterium density, electrons share the ion temperature, and
// quasineutrality fixes the electron density.
func (scenario *ScenarioParameters) Background() (plasma.Background, error) {
	nD := scenario.DeuteriumDensity
	temperature := scenario.IonTemperature
	electronDensity := 2. * nD / (1. - 2.*scenario.AshFraction)

	background := plasma.Background{
		plasma.Deuterium(nD, temperature),
		plasma.Tritium(nD, temperature),
		plasma.Electrons(electronDensity, temperature),
	}
	if scenario.AshFraction > 0 {
		background = append(background, plasma.HeliumAsh(scenario.AshFraction*electronDensity, temperature))
	}
	if err := background.Validate(); err != nil {
		return nil, err
	}
	return background, nil
}
