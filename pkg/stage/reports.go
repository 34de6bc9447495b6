package stage

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// StatusReport mirrors the ServerStatusReport schema of the stage server.
type StatusReport struct {
	status wire.Field[string]
}

var _ wire.Model = (*StatusReport)(nil)

// NewStatusReport returns an empty report.
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

func (r *StatusReport) IsSet() bool   { return r.status.IsSet() }
func (r *StatusReport) IsValid() bool { return r.status.IsValid() }

func (r *StatusReport) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "status", Required: true, Set: r.status.IsSet(), Valid: r.status.IsValid()},
	}
}

// ResourceNames mirrors the ServerResourceNames schema: the stage names
// the server exposes at its root endpoint.
type ResourceNames struct {
	resources wire.Field[[]string]
}

var _ wire.Model = (*ResourceNames)(nil)

// NewResourceNames returns an empty name list.
func NewResourceNames() *ResourceNames {
	return &ResourceNames{}
}

// NewResourceNamesFromJSON builds a name list and populates it from text.
func NewResourceNamesFromJSON(text string) *ResourceNames {
	n := NewResourceNames()
	n.FromJSON(text)
	return n
}

func (n *ResourceNames) FromJSON(text string) {
	n.FromJSONObject(wire.Parse(text))
}

func (n *ResourceNames) FromJSONObject(obj wire.JSONObject) {
	n.resources.Extract(obj, "resources", wire.ListDecoder(wire.DecodeString))
}

func (n *ResourceNames) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if len(n.resources.Get()) > 0 {
		obj["resources"] = wire.EncodeStrings(n.resources.Get())
	}
	return obj
}

func (n *ResourceNames) ToJSON() string {
	return wire.Compact(n.AsJSONObject())
}

// Resources returns a copy of the names; mutating it does not change
// what the report emits.
func (n *ResourceNames) Resources() []string {
	return append([]string(nil), n.resources.Get()...)
}

func (n *ResourceNames) SetResources(v []string) { n.resources.Set(v) }
func (n *ResourceNames) ResourcesSet() bool      { return n.resources.IsSet() }
func (n *ResourceNames) ResourcesValid() bool    { return n.resources.IsValid() }

func (n *ResourceNames) IsSet() bool   { return len(n.resources.Get()) > 0 }
func (n *ResourceNames) IsValid() bool { return n.resources.IsValid() }

func (n *ResourceNames) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "resources", Required: true, Set: n.resources.IsSet(), Valid: n.resources.IsValid()},
	}
}

// OperationResult mirrors the StageOperationResult schema: the verdict
// returned by the operation endpoint.
type OperationResult struct {
	result wire.Field[ActionResult]
}

var _ wire.Model = (*OperationResult)(nil)

// NewOperationResult returns an empty result.
func NewOperationResult() *OperationResult {
	r := &OperationResult{}
	r.result = wire.NewField(NewActionResult())
	return r
}

// NewOperationResultFromJSON builds a result and populates it from text.
func NewOperationResultFromJSON(text string) *OperationResult {
	r := NewOperationResult()
	r.FromJSON(text)
	return r
}

func (r *OperationResult) FromJSON(text string) {
	r.FromJSONObject(wire.Parse(text))
}

func (r *OperationResult) FromJSONObject(obj wire.JSONObject) {
	r.result.Extract(obj, "result", decodeActionResult)
}

func (r *OperationResult) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if r.result.Get().IsSet() {
		obj["result"] = r.result.Get().JSONValue()
	}
	return obj
}

func (r *OperationResult) ToJSON() string {
	return wire.Compact(r.AsJSONObject())
}

func (r *OperationResult) Result() ActionResult     { return r.result.Get() }
func (r *OperationResult) SetResult(v ActionResult) { r.result.Set(v) }
func (r *OperationResult) ResultSet() bool          { return r.result.IsSet() }
func (r *OperationResult) ResultValid() bool        { return r.result.IsValid() }

func (r *OperationResult) IsSet() bool   { return r.result.Get().IsSet() }
func (r *OperationResult) IsValid() bool { return r.result.IsValid() }

func (r *OperationResult) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "result", Required: true, Set: r.result.IsSet(), Valid: r.result.IsValid()},
	}
}
