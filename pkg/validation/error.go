package validation

import (
	"encoding/json"

	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

// Error mirrors the ValidationError schema: one rejected constraint, with
// the path to the offending value, a human-readable message and the
// machine-readable error type. All three fields are required.
type Error struct {
	loc wire.Field[[]Location]
	msg wire.Field[string]
	typ wire.Field[string]
}

var _ wire.Model = (*Error)(nil)

func decodeLocation(raw json.RawMessage) (Location, bool) {
	var l Location
	ok := l.FromJSONValue(raw)
	return l, ok
}

func encodeLocations(items []Location) json.RawMessage {
	parts := make([]json.RawMessage, 0, len(items))
	for _, l := range items {
		parts = append(parts, l.JSONValue())
	}
	data, _ := json.Marshal(parts)
	return data
}

// NewError returns an empty error record.
func NewError() *Error {
	return &Error{}
}

// NewErrorFromJSON builds an error record and populates it from text.
func NewErrorFromJSON(text string) *Error {
	e := NewError()
	e.FromJSON(text)
	return e
}

func (e *Error) FromJSON(text string) {
	e.FromJSONObject(wire.Parse(text))
}

func (e *Error) FromJSONObject(obj wire.JSONObject) {
	e.loc.Extract(obj, "loc", wire.ListDecoder(decodeLocation))
	e.msg.Extract(obj, "msg", wire.DecodeString)
	e.typ.Extract(obj, "type", wire.DecodeString)
}

func (e *Error) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if len(e.loc.Get()) > 0 {
		obj["loc"] = encodeLocations(e.loc.Get())
	}
	if e.msg.IsSet() {
		obj["msg"] = wire.EncodeString(e.msg.Get())
	}
	if e.typ.IsSet() {
		obj["type"] = wire.EncodeString(e.typ.Get())
	}
	return obj
}

func (e *Error) ToJSON() string {
	return wire.Compact(e.AsJSONObject())
}

// Loc returns a copy of the path; mutating it does not change what the
// error emits.
func (e *Error) Loc() []Location {
	return append([]Location(nil), e.loc.Get()...)
}

func (e *Error) SetLoc(v []Location) { e.loc.Set(v) }
func (e *Error) LocSet() bool        { return e.loc.IsSet() }
func (e *Error) LocValid() bool      { return e.loc.IsValid() }

func (e *Error) Msg() string     { return e.msg.Get() }
func (e *Error) SetMsg(v string) { e.msg.Set(v) }
func (e *Error) MsgSet() bool    { return e.msg.IsSet() }
func (e *Error) MsgValid() bool  { return e.msg.IsValid() }

func (e *Error) Type() string     { return e.typ.Get() }
func (e *Error) SetType(v string) { e.typ.Set(v) }
func (e *Error) TypeSet() bool    { return e.typ.IsSet() }
func (e *Error) TypeValid() bool  { return e.typ.IsValid() }

func (e *Error) IsSet() bool {
	return len(e.loc.Get()) > 0 || e.msg.IsSet() || e.typ.IsSet()
}

func (e *Error) IsValid() bool {
	return e.loc.IsValid() && e.msg.IsValid() && e.typ.IsValid()
}

func (e *Error) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "loc", Required: true, Set: e.loc.IsSet(), Valid: e.loc.IsValid()},
		{Key: "msg", Required: true, Set: e.msg.IsSet(), Valid: e.msg.IsValid()},
		{Key: "type", Required: true, Set: e.typ.IsSet(), Valid: e.typ.IsValid()},
	}
}
