package spectrometer

import "github.com/labctrl/go-toolbox-api/pkg/wire"

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
			Name: "TimeQuantity",
			Fields: []wire.FieldSpec{
				{Key: "value", Kind: wire.KindNumber, Required: true},
				{Key: "unit", Kind: wire.KindEnum, Required: true, Ref: "SpectrometerTimeUnit", Enum: timeUnitTokens()},
			},
		},
		{
			Name: "IntegrationTimeConfig",
			Fields: []wire.FieldSpec{
				{Key: "unit_step", Kind: wire.KindObject, Required: true, Ref: "TimeQuantity"},
				{Key: "value", Kind: wire.KindInteger, Required: true},
				{Key: "minimum", Kind: wire.KindInteger, Required: true},
				{Key: "maximum", Kind: wire.KindInteger, Required: true},
			},
		},
		{
			Name: "BoxcarWidthConfig",
			Fields: []wire.FieldSpec{
				{Key: "value", Kind: wire.KindInteger, Required: true},
				{Key: "minimum", Kind: wire.KindInteger, Required: true},
				{Key: "maximum", Kind: wire.KindInteger, Required: true},
			},
		},
		{
			Name: "AverageTimesConfig",
			Fields: []wire.FieldSpec{
				{Key: "value", Kind: wire.KindInteger, Required: true},
				{Key: "minimum", Kind: wire.KindInteger, Required: true},
				{Key: "maximum", Kind: wire.KindInteger, Required: true},
			},
		},
		{
			Name: "SpectrometerConfig",
			Fields: []wire.FieldSpec{
				{Key: "integration_time", Kind: wire.KindObject, Required: true, Ref: "IntegrationTimeConfig"},
				{Key: "boxcar_width", Kind: wire.KindObject, Required: true, Ref: "BoxcarWidthConfig"},
				{Key: "average_times", Kind: wire.KindObject, Required: true, Ref: "AverageTimesConfig"},
			},
		},
		{
			Name: "SpectrometerParameterReport",
			Fields: []wire.FieldSpec{
				{Key: "parameter", Kind: wire.KindObject, Required: true, Ref: "SpectrometerConfig"},
			},
		},
		{
			Name: "SpectrometerParameterSetOperation",
			Fields: []wire.FieldSpec{
				{Key: "integration_time", Kind: wire.KindObject, Ref: "TimeQuantity"},
				{Key: "boxcar_width", Kind: wire.KindInteger},
				{Key: "average_times", Kind: wire.KindInteger},
			},
		},
		{
			Name: "SpectrometerWavelengthsReport",
			Fields: []wire.FieldSpec{
				{Key: "wavelengths", Kind: wire.KindList, Required: true, Elem: &wire.FieldSpec{Kind: wire.KindNumber}},
			},
		},
		{
			Name: "SpectrometerSpectrumReport",
			Fields: []wire.FieldSpec{
				{Key: "spectrum", Kind: wire.KindList, Required: true, Elem: &wire.FieldSpec{Kind: wire.KindInteger}},
			},
		},
		{
			Name: "SpectrometerOperationResult",
			Fields: []wire.FieldSpec{
				{Key: "result", Kind: wire.KindEnum, Required: true, Ref: "SpectrometerActionResult", Enum: actionResultTokens()},
			},
		},
	}
}
