package stage

import "github.com/labctrl/go-toolbox-api/pkg/wire"

func displacementUnitTokens() []string {
	return []string{UnitNanometer, UnitMicrometer, UnitMillimeter, UnitMeter}
}

func velocityUnitTokens() []string {
	return []string{UnitNanometerPerSecond, UnitMicrometerPerSecond, UnitMillimeterPerSecond, UnitMeterPerSecond}
}

func accelerationUnitTokens() []string {
	return []string{UnitNanometerPerSecondSquared, UnitMicrometerPerSecondSquared, UnitMillimeterPerSecondSquared, UnitMeterPerSecondSquared}
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
			Name: "StagePosition",
			Fields: []wire.FieldSpec{
				{Key: "value", Kind: wire.KindInteger, Required: true},
			},
		},
		{
			Name: "StageDisplacement",
			Fields: []wire.FieldSpec{
				{Key: "value", Kind: wire.KindNumber, Required: true},
				{Key: "unit", Kind: wire.KindEnum, Required: true, Ref: "StageDisplacementUnit", Enum: displacementUnitTokens()},
			},
		},
		{
			Name: "StageVelocity",
			Fields: []wire.FieldSpec{
				{Key: "value", Kind: wire.KindNumber, Required: true},
				{Key: "unit", Kind: wire.KindEnum, Required: true, Ref: "StageVelocityUnit", Enum: velocityUnitTokens()},
			},
		},
		{
			Name: "StageAcceleration",
			Fields: []wire.FieldSpec{
				{Key: "value", Kind: wire.KindNumber, Required: true},
				{Key: "unit", Kind: wire.KindEnum, Required: true, Ref: "StageAccelerationUnit", Enum: accelerationUnitTokens()},
			},
		},
		{
			Name: "StageOperation",
			Fields: []wire.FieldSpec{
				{Key: "position", Kind: wire.KindObject, Ref: "StagePosition"},
				{Key: "absolute_position", Kind: wire.KindObject, Ref: "StageDisplacement"},
				{Key: "velocity", Kind: wire.KindObject, Ref: "StageVelocity"},
				{Key: "acceleration", Kind: wire.KindObject, Ref: "StageAcceleration"},
			},
		},
		{
			Name: "StageOperationResult",
			Fields: []wire.FieldSpec{
				{Key: "result", Kind: wire.KindEnum, Required: true, Ref: "LinearStageActionResult", Enum: actionResultTokens()},
			},
		},
	}
}
