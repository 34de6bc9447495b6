// Package catalog indexes every generated type across the toolbox
// families. Tooling goes through it instead of importing the family
// packages directly: the conformance checker walks a family's specs
// against its OpenAPI document, and the composer builds fresh models by
// component name.
package catalog

import (
	"fmt"
	"sort"

	"github.com/labctrl/go-toolbox-api/pkg/sensor"
	"github.com/labctrl/go-toolbox-api/pkg/shutter"
	"github.com/labctrl/go-toolbox-api/pkg/spectrometer"
	"github.com/labctrl/go-toolbox-api/pkg/stage"
	"github.com/labctrl/go-toolbox-api/pkg/validation"
	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

// Family names one toolbox server's model family. The same component
// name may appear in several families, so lookups always carry both.
type Family string

const (
	FamilyShutter      Family = "shutter"
	FamilyStage        Family = "linear_stage"
	FamilySensor       Family = "sensor"
	FamilySpectrometer Family = "spectrometer"
)

// Entry pairs a component's declared spec with a constructor for its
// generated type.
type Entry struct {
	Family Family
	Spec   wire.TypeSpec
	New    func() wire.Model
}

// Name returns the entry's OpenAPI component name.
func (e Entry) Name() string {
	return e.Spec.Name
}

func constructors(f Family) map[string]func() wire.Model {
	switch f {
	case FamilyShutter:
		return map[string]func() wire.Model{
			"ServerStatusReport":      func() wire.Model { return shutter.NewStatusReport() },
			"ShutterChannelList":      func() wire.Model { return shutter.NewChannelList() },
			"ShutterChannelOperation": func() wire.Model { return shutter.NewChannelOperation() },
			"ShutterStateReport":      func() wire.Model { return shutter.NewStateReport() },
			"ShutterCommandResult":    func() wire.Model { return shutter.NewCommandResult() },
		}
	case FamilyStage:
		return map[string]func() wire.Model{
			"ServerStatusReport":   func() wire.Model { return stage.NewStatusReport() },
			"ServerResourceNames":  func() wire.Model { return stage.NewResourceNames() },
			"StagePosition":        func() wire.Model { return stage.NewPosition() },
			"StageDisplacement":    func() wire.Model { return stage.NewDisplacement() },
			"StageVelocity":        func() wire.Model { return stage.NewVelocity() },
			"StageAcceleration":    func() wire.Model { return stage.NewAcceleration() },
			"StageOperation":       func() wire.Model { return stage.NewOperation() },
			"StageOperationResult": func() wire.Model { return stage.NewOperationResult() },
		}
	case FamilySensor:
		return map[string]func() wire.Model{
			"ServerStatusReport":          func() wire.Model { return sensor.NewStatusReport() },
			"ServerResourceNames":         func() wire.Model { return sensor.NewResourceNames() },
			"LogicalQuantity":             func() wire.Model { return sensor.NewLogicalQuantity() },
			"TemperatureQuantity":         func() wire.Model { return sensor.NewTemperatureQuantity() },
			"HumidityQuantity":            func() wire.Model { return sensor.NewHumidityQuantity() },
			"TimeQuantity":                func() wire.Model { return sensor.NewTimeQuantity() },
			"SensorDataReport":            func() wire.Model { return sensor.NewDataReport() },
			"SensorParameterSetOperation": func() wire.Model { return sensor.NewParameterSetOperation() },
			"SensorOperationResult":       func() wire.Model { return sensor.NewOperationResult() },
			"SamplingIntervalConfig":      func() wire.Model { return sensor.NewSamplingIntervalConfig() },
			"TemperatureSensorConfig":     func() wire.Model { return sensor.NewTemperatureSensorConfig() },
			"HumiditySensorConfig":        func() wire.Model { return sensor.NewHumiditySensorConfig() },
			"SensorConfig":                func() wire.Model { return sensor.NewConfig() },
			"SensorParameterReport":       func() wire.Model { return sensor.NewParameterReport() },
		}
	case FamilySpectrometer:
		return map[string]func() wire.Model{
			"ServerStatusReport":                func() wire.Model { return spectrometer.NewStatusReport() },
			"ServerResourceNames":               func() wire.Model { return spectrometer.NewResourceNames() },
			"TimeQuantity":                      func() wire.Model { return spectrometer.NewTimeQuantity() },
			"IntegrationTimeConfig":             func() wire.Model { return spectrometer.NewIntegrationTimeConfig() },
			"BoxcarWidthConfig":                 func() wire.Model { return spectrometer.NewBoxcarWidthConfig() },
			"AverageTimesConfig":                func() wire.Model { return spectrometer.NewAverageTimesConfig() },
			"SpectrometerConfig":                func() wire.Model { return spectrometer.NewConfig() },
			"SpectrometerParameterReport":       func() wire.Model { return spectrometer.NewParameterReport() },
			"SpectrometerParameterSetOperation": func() wire.Model { return spectrometer.NewParameterSetOperation() },
			"SpectrometerWavelengthsReport":     func() wire.Model { return spectrometer.NewWavelengthsReport() },
			"SpectrometerSpectrumReport":        func() wire.Model { return spectrometer.NewSpectrumReport() },
			"SpectrometerOperationResult":       func() wire.Model { return spectrometer.NewOperationResult() },
		}
	}
	return nil
}

func familySpecs(f Family) []wire.TypeSpec {
	var specs []wire.TypeSpec
	switch f {
	case FamilyShutter:
		specs = shutter.Specs()
	case FamilyStage:
		specs = stage.Specs()
	case FamilySensor:
		specs = sensor.Specs()
	case FamilySpectrometer:
		specs = spectrometer.Specs()
	default:
		return nil
	}
	// Every server document embeds the same FastAPI 422 fragments.
	return append(specs, validation.Specs()...)
}

func validationConstructors() map[string]func() wire.Model {
	return map[string]func() wire.Model{
		"ValidationError":     func() wire.Model { return validation.NewError() },
		"HTTPValidationError": func() wire.Model { return validation.NewHTTPError() },
	}
}

// Families lists the registered families in a stable order.
func Families() []Family {
	return []Family{FamilyShutter, FamilyStage, FamilySensor, FamilySpectrometer}
}

// Entries returns a family's catalog ordered by component name.
func Entries(f Family) []Entry {
	news := constructors(f)
	if news == nil {
		return nil
	}
	for name, fn := range validationConstructors() {
		news[name] = fn
	}
	var out []Entry
	for _, spec := range familySpecs(f) {
		out = append(out, Entry{Family: f, Spec: spec, New: news[spec.Name]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Spec.Name < out[j].Spec.Name })
	return out
}

// Lookup resolves a component name within a family.
func Lookup(f Family, name string) (Entry, error) {
	for _, e := range Entries(f) {
		if e.Spec.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("catalog: no component %q in family %q", name, f)
}
