package spectrometer

import (
	"encoding/json"

	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

// TimeUnit is the vocabulary for integration times.
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

// ActionResult is the controller's verdict on a spectrometer operation.
// The spectrometer talks USB, not serial, so its failure vocabulary has
// "disconnected" where the other families have a serial failure token.
type ActionResult struct{ wire.Enum }

// Permitted ActionResult tokens.
const (
	ResultOK                 = "OK"
	ResultErrorGeneric       = "error_generic"
	ResultWarnNoAction       = "warn_no_action"
	ResultSoftLimitExceeded  = "soft_limit_exceeded"
	ResultDisconnected       = "disconnected"
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
		ResultDisconnected,
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
