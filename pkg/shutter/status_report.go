package shutter

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// StatusReport mirrors the ServerStatusReport schema: the health payload
// of the /status endpoint.
type StatusReport struct {
	status wire.Field[string]
}

var _ wire.Model = (*StatusReport)(nil)

// NewStatusReport returns an empty report with every field unset.
func NewStatusReport() *StatusReport {
	return &StatusReport{}
}

// NewStatusReportFromJSON builds a report and populates it from text.
func NewStatusReportFromJSON(text string) *StatusReport {
	r := NewStatusReport()
	r.FromJSON(text)
	return r
}

func (r *StatusReport) FromJSON(text string) {
	r.FromJSONObject(wire.Parse(text))
}

func (r *StatusReport) FromJSONObject(obj wire.JSONObject) {
	r.status.Extract(obj, "status", wire.DecodeString)
}

func (r *StatusReport) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if r.status.IsSet() {
		obj["status"] = wire.EncodeString(r.status.Get())
	}
	return obj
}

func (r *StatusReport) ToJSON() string {
	return wire.Compact(r.AsJSONObject())
}

func (r *StatusReport) Status() string     { return r.status.Get() }
func (r *StatusReport) SetStatus(v string) { r.status.Set(v) }
func (r *StatusReport) StatusSet() bool    { return r.status.IsSet() }
func (r *StatusReport) StatusValid() bool  { return r.status.IsValid() }

func (r *StatusReport) IsSet() bool {
	return r.status.IsSet()
}

func (r *StatusReport) IsValid() bool {
	return r.status.IsValid()
}

func (r *StatusReport) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "status", Required: true, Set: r.status.IsSet(), Valid: r.status.IsValid()},
	}
}
