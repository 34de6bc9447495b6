package sensor

import "github.com/labctrl/go-toolbox-api/pkg/wire"

func temperatureUnitTokens() []string {
	return []string{UnitKelvin, UnitDegreeCelsius, UnitDegreeFahrenheit}
}

func humidityUnitTokens() []string {
	return []string{UnitGramPerCubicMeter, UnitRelativeHumidity, UnitPercentRelativeHumidity}
}

func timeUnitTokens() []string {
	return []string{UnitSecond, UnitMillisecond, UnitMicrosecond, UnitNanosecond}
}

// Specs describes the package's types under their OpenAPI component names.
func Specs() []wire.TypeSpec {
	return []wire.TypeSpec{
		{
			Name: "ServerStatusReport",
			Fields: []wire.FieldSpec{
				{Key: "status", Kind: wire.KindString, Required: true},
			},
		},
		{
			Name: "ServerResourceNames",
			Fields: []wire.FieldSpec{
				{Key: "resources", Kind: wire.KindList, Required: true, Elem: &wire.FieldSpec{Kind: wire.KindString}},
			},
		},
		{
			Name: "LogicalQuantity",
			Fields: []wire.FieldSpec{
				{Key: "value", Kind: wire.KindInteger, Required: true},
			},
		},
		{
			Name: "TemperatureQuantity",
			Fields: []wire.FieldSpec{
				{Key: "value", Kind: wire.KindNumber, Required: true},
				{Key: "unit", Kind: wire.KindEnum, Required: true, Ref: "SensorTemperatureUnit", Enum: temperatureUnitTokens()},
			},
		},
		{
			Name: "HumidityQuantity",
			Fields: []wire.FieldSpec{
				{Key: "value", Kind: wire.KindNumber, Required: true},
				{Key: "unit", Kind: wire.KindEnum, Required: true, Ref: "SensorHumidityUnit", Enum: humidityUnitTokens()},
			},
		},
		{
			Name: "TimeQuantity",
			Fields: []wire.FieldSpec{
				{Key: "value", Kind: wire.KindNumber, Required: true},
				{Key: "unit", Kind: wire.KindEnum, Required: true, Ref: "SensorTimeUnit", Enum: timeUnitTokens()},
			},
		},
		{
			Name: "SensorDataReport",
			Fields: []wire.FieldSpec{
				{Key: "temperature", Kind: wire.KindObject, Ref: "LogicalQuantity"},
				{Key: "humidity", Kind: wire.KindObject, Ref: "LogicalQuantity"},
				{Key: "absolute_temperature", Kind: wire.KindObject, Ref: "TemperatureQuantity"},
				{Key: "absolute_humidity", Kind: wire.KindObject, Ref: "HumidityQuantity"},
			},
		},
		{
			Name: "SamplingIntervalConfig",
			Fields: []wire.FieldSpec{
				{Key: "unit_step", Kind: wire.KindObject, Required: true, Ref: "TimeQuantity"},
				{Key: "value", Kind: wire.KindInteger, Required: true},
				{Key: "minimum", Kind: wire.KindInteger, Required: true},
				{Key: "maximum", Kind: wire.KindInteger, Required: true},
			},
		},
		{
			Name: "TemperatureSensorConfig",
			Fields: []wire.FieldSpec{
				{Key: "unit_step", Kind: wire.KindObject, Required: true, Ref: "TemperatureQuantity"},
				{Key: "sampling_interval", Kind: wire.KindObject, Required: true, Ref: "SamplingIntervalConfig"},
			},
		},
		{
			Name: "HumiditySensorConfig",
			Fields: []wire.FieldSpec{
				{Key: "unit_step", Kind: wire.KindObject, Required: true, Ref: "HumidityQuantity"},
				{Key: "sampling_interval", Kind: wire.KindObject, Required: true, Ref: "SamplingIntervalConfig"},
			},
		},
		{
			Name: "SensorConfig",
			Fields: []wire.FieldSpec{
				{Key: "temperature", Kind: wire.KindObject, Required: true, Ref: "TemperatureSensorConfig"},
				{Key: "humidity", Kind: wire.KindObject, Required: true, Ref: "HumiditySensorConfig"},
			},
		},
		{
			Name: "SensorParameterReport",
			Fields: []wire.FieldSpec{
				{Key: "parameter", Kind: wire.KindObject, Required: true, Ref: "SensorConfig"},
			},
		},
		{
			Name: "SensorParameterSetOperation",
			Fields: []wire.FieldSpec{
				{Key: "temperature_sampling_interval", Kind: wire.KindObject, Ref: "TimeQuantity"},
				{Key: "humidity_sampling_interval", Kind: wire.KindObject, Ref: "TimeQuantity"},
				{Key: "continuous_sampling_mode", Kind: wire.KindBoolean},
			},
		},
		{
			Name: "SensorOperationResult",
			Fields: []wire.FieldSpec{
				{Key: "result", Kind: wire.KindEnum, Required: true, Ref: "SensorActionResult", Enum: actionResultTokens()},
			},
		},
	}
}
