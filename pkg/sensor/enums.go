package sensor

import (
	"encoding/json"

	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

// TemperatureUnit is the vocabulary for absolute temperatures.
type TemperatureUnit struct{ wire.Enum }

// Permitted TemperatureUnit tokens.
const (
	UnitKelvin           = "K"
	UnitDegreeCelsius    = "degC"
	UnitDegreeFahrenheit = "degF"
)

// NewTemperatureUnit returns an unset TemperatureUnit.
func NewTemperatureUnit() TemperatureUnit {
	return TemperatureUnit{wire.MakeEnum(UnitKelvin, UnitDegreeCelsius, UnitDegreeFahrenheit)}
}

// TemperatureUnitOf returns a TemperatureUnit carrying the given token.
func TemperatureUnitOf(token string) TemperatureUnit {
	u := NewTemperatureUnit()
	u.Assign(token)
	return u
}

func decodeTemperatureUnit(raw json.RawMessage) (TemperatureUnit, bool) {
	u := NewTemperatureUnit()
	ok := u.FromJSONValue(raw)
	return u, ok
}

// HumidityUnit is the vocabulary for absolute humidities.
type HumidityUnit struct{ wire.Enum }

// Permitted HumidityUnit tokens.
const (
	UnitGramPerCubicMeter       = "g/(m^3)"
	UnitRelativeHumidity        = "RH"
	UnitPercentRelativeHumidity = "%RH"
)

// NewHumidityUnit returns an unset HumidityUnit.
func NewHumidityUnit() HumidityUnit {
	return HumidityUnit{wire.MakeEnum(UnitGramPerCubicMeter, UnitRelativeHumidity, UnitPercentRelativeHumidity)}
}

// HumidityUnitOf returns a HumidityUnit carrying the given token.
func HumidityUnitOf(token string) HumidityUnit {
	u := NewHumidityUnit()
	u.Assign(token)
	return u
}

func decodeHumidityUnit(raw json.RawMessage) (HumidityUnit, bool) {
	u := NewHumidityUnit()
	ok := u.FromJSONValue(raw)
	return u, ok
}

// TimeUnit is the vocabulary for sampling intervals.
type TimeUnit struct{ wire.Enum }

// Permitted TimeUnit tokens.
const (
	UnitSecond      = "s"
	UnitMillisecond = "ms"
	UnitMicrosecond = "us"
	UnitNanosecond  = "ns"
)

// NewTimeUnit returns an unset TimeUnit.
func NewTimeUnit() TimeUnit {
	return TimeUnit{wire.MakeEnum(UnitSecond, UnitMillisecond, UnitMicrosecond, UnitNanosecond)}
}

// TimeUnitOf returns a TimeUnit carrying the given token.
func TimeUnitOf(token string) TimeUnit {
	u := NewTimeUnit()
	u.Assign(token)
	return u
}

func decodeTimeUnit(raw json.RawMessage) (TimeUnit, bool) {
	u := NewTimeUnit()
	ok := u.FromJSONValue(raw)
	return u, ok
}

// ActionResult is the controller's verdict on a sensor operation.
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
	ResultDeviceError        = "device_error"
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
		ResultDeviceError,
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
