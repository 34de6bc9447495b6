package shutter

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// ChannelOperation mirrors the ShutterChannelOperation schema: one command
// verb posted to a shutter channel. Emission follows the action value's
// own set flag, so an operation carrying a blank Action stays off the
// wire even after SetAction.
type ChannelOperation struct {
	action wire.Field[Action]
}

var _ wire.Model = (*ChannelOperation)(nil)

// NewChannelOperation returns an empty operation with a default Action.
func NewChannelOperation() *ChannelOperation {
	op := &ChannelOperation{}
	op.action = wire.NewField(NewAction())
	return op
}

// NewChannelOperationFromJSON builds an operation and populates it from text.
func NewChannelOperationFromJSON(text string) *ChannelOperation {
	op := NewChannelOperation()
	op.FromJSON(text)
	return op
}

func (op *ChannelOperation) FromJSON(text string) {
	op.FromJSONObject(wire.Parse(text))
}

func (op *ChannelOperation) FromJSONObject(obj wire.JSONObject) {
	op.action.Extract(obj, "action", decodeAction)
}

func (op *ChannelOperation) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if op.action.Get().IsSet() {
		obj["action"] = op.action.Get().JSONValue()
	}
	return obj
}

func (op *ChannelOperation) ToJSON() string {
	return wire.Compact(op.AsJSONObject())
}

func (op *ChannelOperation) Action() Action     { return op.action.Get() }
func (op *ChannelOperation) SetAction(a Action) { op.action.Set(a) }
func (op *ChannelOperation) ActionSet() bool    { return op.action.IsSet() }
func (op *ChannelOperation) ActionValid() bool  { return op.action.IsValid() }

func (op *ChannelOperation) IsSet() bool {
	return op.action.Get().IsSet()
}

func (op *ChannelOperation) IsValid() bool {
	return op.action.IsValid()
}

func (op *ChannelOperation) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "action", Required: true, Set: op.action.IsSet(), Valid: op.action.IsValid()},
	}
}
