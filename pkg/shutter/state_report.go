package shutter

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// StateReport mirrors the ShutterStateReport schema: the current state of
// one channel, returned by channel GETs and pushed over the state
// WebSocket.
type StateReport struct {
	shutterName wire.Field[string]
	state       wire.Field[State]
}

var _ wire.Model = (*StateReport)(nil)

// NewStateReport returns an empty report with every field unset.
func NewStateReport() *StateReport {
	r := &StateReport{}
	r.state = wire.NewField(NewState())
	return r
}

// NewStateReportFromJSON builds a report and populates it from text.
func NewStateReportFromJSON(text string) *StateReport {
	r := NewStateReport()
	r.FromJSON(text)
	return r
}

func (r *StateReport) FromJSON(text string) {
	r.FromJSONObject(wire.Parse(text))
}

func (r *StateReport) FromJSONObject(obj wire.JSONObject) {
	r.shutterName.Extract(obj, "shutter_name", wire.DecodeString)
	r.state.Extract(obj, "state", decodeState)
}

func (r *StateReport) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if r.shutterName.IsSet() {
		obj["shutter_name"] = wire.EncodeString(r.shutterName.Get())
	}
	if r.state.Get().IsSet() {
		obj["state"] = r.state.Get().JSONValue()
	}
	return obj
}

func (r *StateReport) ToJSON() string {
	return wire.Compact(r.AsJSONObject())
}

func (r *StateReport) ShutterName() string     { return r.shutterName.Get() }
func (r *StateReport) SetShutterName(v string) { r.shutterName.Set(v) }
func (r *StateReport) ShutterNameSet() bool    { return r.shutterName.IsSet() }
func (r *StateReport) ShutterNameValid() bool  { return r.shutterName.IsValid() }

func (r *StateReport) State() State     { return r.state.Get() }
func (r *StateReport) SetState(s State) { r.state.Set(s) }
func (r *StateReport) StateSet() bool   { return r.state.IsSet() }
func (r *StateReport) StateValid() bool { return r.state.IsValid() }

func (r *StateReport) IsSet() bool {
	return r.shutterName.IsSet() || r.state.Get().IsSet()
}

func (r *StateReport) IsValid() bool {
	return r.shutterName.IsValid() && r.state.IsValid()
}

func (r *StateReport) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "shutter_name", Required: true, Set: r.shutterName.IsSet(), Valid: r.shutterName.IsValid()},
		{Key: "state", Required: true, Set: r.state.IsSet(), Valid: r.state.IsValid()},
	}
}
