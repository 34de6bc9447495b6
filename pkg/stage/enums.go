package stage

import (
	"encoding/json"

	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

// DisplacementUnit is the length vocabulary for stage displacements.
type DisplacementUnit struct{ wire.Enum }

// Permitted DisplacementUnit tokens.
const (
	UnitNanometer  = "nm"
	UnitMicrometer = "um"
	UnitMillimeter = "mm"
	UnitMeter      = "m"
)

// NewDisplacementUnit returns an unset DisplacementUnit.
func NewDisplacementUnit() DisplacementUnit {
	return DisplacementUnit{wire.MakeEnum(UnitNanometer, UnitMicrometer, UnitMillimeter, UnitMeter)}
}

// DisplacementUnitOf returns a DisplacementUnit carrying the given token.
func DisplacementUnitOf(token string) DisplacementUnit {
	u := NewDisplacementUnit()
	u.Assign(token)
	return u
}

func decodeDisplacementUnit(raw json.RawMessage) (DisplacementUnit, bool) {
	u := NewDisplacementUnit()
	ok := u.FromJSONValue(raw)
	return u, ok
}

// VelocityUnit is the speed vocabulary for stage velocities.
type VelocityUnit struct{ wire.Enum }

// Permitted VelocityUnit tokens.
const (
	UnitNanometerPerSecond  = "nm/s"
	UnitMicrometerPerSecond = "um/s"
	UnitMillimeterPerSecond = "mm/s"
	UnitMeterPerSecond      = "m/s"
)

// NewVelocityUnit returns an unset VelocityUnit.
func NewVelocityUnit() VelocityUnit {
	return VelocityUnit{wire.MakeEnum(UnitNanometerPerSecond, UnitMicrometerPerSecond, UnitMillimeterPerSecond, UnitMeterPerSecond)}
}

// VelocityUnitOf returns a VelocityUnit carrying the given token.
func VelocityUnitOf(token string) VelocityUnit {
	u := NewVelocityUnit()
	u.Assign(token)
	return u
}

func decodeVelocityUnit(raw json.RawMessage) (VelocityUnit, bool) {
	u := NewVelocityUnit()
	ok := u.FromJSONValue(raw)
	return u, ok
}

// AccelerationUnit is the acceleration vocabulary for stage ramps.
type AccelerationUnit struct{ wire.Enum }

// Permitted AccelerationUnit tokens.
const (
	UnitNanometerPerSecondSquared  = "nm/(s^2)"
	UnitMicrometerPerSecondSquared = "um/(s^2)"
	UnitMillimeterPerSecondSquared = "mm/(s^2)"
	UnitMeterPerSecondSquared      = "m/(s^2)"
)

// NewAccelerationUnit returns an unset AccelerationUnit.
func NewAccelerationUnit() AccelerationUnit {
	return AccelerationUnit{wire.MakeEnum(UnitNanometerPerSecondSquared, UnitMicrometerPerSecondSquared, UnitMillimeterPerSecondSquared, UnitMeterPerSecondSquared)}
}

// AccelerationUnitOf returns an AccelerationUnit carrying the given token.
func AccelerationUnitOf(token string) AccelerationUnit {
	u := NewAccelerationUnit()
	u.Assign(token)
	return u
}

func decodeAccelerationUnit(raw json.RawMessage) (AccelerationUnit, bool) {
	u := NewAccelerationUnit()
	ok := u.FromJSONValue(raw)
	return u, ok
}

// ActionResult is the controller's verdict on a stage operation.
type ActionResult struct{ wire.Enum }

// Permitted ActionResult tokens.
const (
	ResultOK                 = "OK"
	ResultErrorGeneric       = "error_generic"
	ResultWarnNoAction       = "warn_no_action"
	ResultSoftLimitExceeded  = "soft_limit_exceeded"
	ResultSerialRWFailure    = "serial_RW_failure"
	ResultInvalidAction      = "invalid_action"
	ResultResponseValidation = "response_validation_failure"
)

func actionResultTokens() []string {
	return []string{
		ResultOK,
		ResultErrorGeneric,
		ResultWarnNoAction,
		ResultSoftLimitExceeded,
		ResultSerialRWFailure,
		ResultInvalidAction,
		ResultResponseValidation,
	}
}

// NewActionResult returns an unset ActionResult.
func NewActionResult() ActionResult {
	return ActionResult{wire.MakeEnum(actionResultTokens()...)}
}

// ActionResultOf returns an ActionResult carrying the given token.
func ActionResultOf(token string) ActionResult {
	r := NewActionResult()
	r.Assign(token)
	return r
}

func decodeActionResult(raw json.RawMessage) (ActionResult, bool) {
	r := NewActionResult()
	ok := r.FromJSONValue(raw)
	return r, ok
}
