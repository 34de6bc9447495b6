package shutter

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// CommandResult is the acknowledgement sent over the command WebSocket:
// the controller's verdict plus the optional client-chosen command id
// echoed back so callers can match responses to requests. It is not part
// of the REST document.
type CommandResult struct {
	result wire.Field[ActionResult]
	id     wire.Field[int64]
}

var _ wire.Model = (*CommandResult)(nil)

// NewCommandResult returns an empty acknowledgement.
func NewCommandResult() *CommandResult {
	r := &CommandResult{}
	r.result = wire.NewField(NewActionResult())
	return r
}

// NewCommandResultFromJSON builds an acknowledgement and populates it
// from text.
func NewCommandResultFromJSON(text string) *CommandResult {
	r := NewCommandResult()
	r.FromJSON(text)
	return r
}

func (r *CommandResult) FromJSON(text string) {
	r.FromJSONObject(wire.Parse(text))
}

func (r *CommandResult) FromJSONObject(obj wire.JSONObject) {
	r.result.Extract(obj, "result", decodeActionResult)
	r.id.Extract(obj, "id", wire.DecodeInteger)
}

func (r *CommandResult) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if r.result.Get().IsSet() {
		obj["result"] = r.result.Get().JSONValue()
	}
	if r.id.IsSet() {
		obj["id"] = wire.EncodeInteger(r.id.Get())
	}
	return obj
}

func (r *CommandResult) ToJSON() string {
	return wire.Compact(r.AsJSONObject())
}

func (r *CommandResult) Result() ActionResult     { return r.result.Get() }
func (r *CommandResult) SetResult(v ActionResult) { r.result.Set(v) }
func (r *CommandResult) ResultSet() bool          { return r.result.IsSet() }
func (r *CommandResult) ResultValid() bool        { return r.result.IsValid() }

func (r *CommandResult) ID() int64     { return r.id.Get() }
func (r *CommandResult) SetID(v int64) { r.id.Set(v) }
func (r *CommandResult) IDSet() bool   { return r.id.IsSet() }
func (r *CommandResult) IDValid() bool { return r.id.IsValid() }

func (r *CommandResult) IsSet() bool {
	return r.result.Get().IsSet() || r.id.IsSet()
}

// IsValid ignores id: the echo is optional.
func (r *CommandResult) IsValid() bool {
	return r.result.IsValid()
}

func (r *CommandResult) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "result", Required: true, Set: r.result.IsSet(), Valid: r.result.IsValid()},
		{Key: "id", Required: false, Set: r.id.IsSet(), Valid: r.id.IsValid()},
	}
}
