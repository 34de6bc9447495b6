package shutter

import (
	"encoding/json"

	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

// Action is the command verb accepted by the shutter channel endpoints.
type Action struct{ wire.Enum }

// Permitted Action tokens.
const (
	ActionOn     = "ON"
	ActionOff    = "OFF"
	ActionSwitch = "SWITCH"
)

// NewAction returns an unset Action.
func NewAction() Action {
	return Action{wire.MakeEnum(ActionOn, ActionOff, ActionSwitch)}
}

// ActionOf returns an Action carrying the given token.
func ActionOf(token string) Action {
	a := NewAction()
	a.Assign(token)
	return a
}

func decodeAction(raw json.RawMessage) (Action, bool) {
	a := NewAction()
	ok := a.FromJSONValue(raw)
	return a, ok
}

// State is the reported position of a shutter channel.
type State struct{ wire.Enum }

// Permitted State tokens.
const (
	StateOn  = "ON"
	StateOff = "OFF"
)

// NewState returns an unset State.
func NewState() State {
	return State{wire.MakeEnum(StateOn, StateOff)}
}

// StateOf returns a State carrying the given token.
func StateOf(token string) State {
	s := NewState()
	s.Assign(token)
	return s
}

func decodeState(raw json.RawMessage) (State, bool) {
	s := NewState()
	ok := s.FromJSONValue(raw)
	return s, ok
}

// ActionResult is the controller's verdict on a command.
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
