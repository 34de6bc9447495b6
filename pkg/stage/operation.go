package stage

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// Operation mirrors the StageOperation schema: every field is optional
// and nested, so a payload can move, retune, or both in a single POST.
// An operation with no parts set serialises to "{}" and is always valid.
type Operation struct {
	position         wire.Field[*Position]
	absolutePosition wire.Field[*Displacement]
	velocity         wire.Field[*Velocity]
	acceleration     wire.Field[*Acceleration]
}

var _ wire.Model = (*Operation)(nil)

// NewOperation returns an empty operation.
func NewOperation() *Operation {
	return &Operation{}
}

// NewOperationFromJSON builds an operation and populates it from text.
func NewOperationFromJSON(text string) *Operation {
	op := NewOperation()
	op.FromJSON(text)
	return op
}

func (op *Operation) FromJSON(text string) {
	op.FromJSONObject(wire.Parse(text))
}

func (op *Operation) FromJSONObject(obj wire.JSONObject) {
	op.position.Extract(obj, "position", wire.ModelDecoder(NewPosition))
	op.absolutePosition.Extract(obj, "absolute_position", wire.ModelDecoder(NewDisplacement))
	op.velocity.Extract(obj, "velocity", wire.ModelDecoder(NewVelocity))
	op.acceleration.Extract(obj, "acceleration", wire.ModelDecoder(NewAcceleration))
}

func (op *Operation) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if p := op.position.Get(); p != nil && p.IsSet() {
		obj["position"] = wire.EncodeModel(p)
	}
	if d := op.absolutePosition.Get(); d != nil && d.IsSet() {
		obj["absolute_position"] = wire.EncodeModel(d)
	}
	if v := op.velocity.Get(); v != nil && v.IsSet() {
		obj["velocity"] = wire.EncodeModel(v)
	}
	if a := op.acceleration.Get(); a != nil && a.IsSet() {
		obj["acceleration"] = wire.EncodeModel(a)
	}
	return obj
}

func (op *Operation) ToJSON() string {
	return wire.Compact(op.AsJSONObject())
}

func (op *Operation) Position() *Position     { return op.position.Get() }
func (op *Operation) SetPosition(p *Position) { op.position.Set(p) }
func (op *Operation) PositionSet() bool       { return op.position.IsSet() }
func (op *Operation) PositionValid() bool     { return op.position.IsValid() }

func (op *Operation) AbsolutePosition() *Displacement     { return op.absolutePosition.Get() }
func (op *Operation) SetAbsolutePosition(d *Displacement) { op.absolutePosition.Set(d) }
func (op *Operation) AbsolutePositionSet() bool           { return op.absolutePosition.IsSet() }
func (op *Operation) AbsolutePositionValid() bool         { return op.absolutePosition.IsValid() }

func (op *Operation) Velocity() *Velocity     { return op.velocity.Get() }
func (op *Operation) SetVelocity(v *Velocity) { op.velocity.Set(v) }
func (op *Operation) VelocitySet() bool       { return op.velocity.IsSet() }
func (op *Operation) VelocityValid() bool     { return op.velocity.IsValid() }

func (op *Operation) Acceleration() *Acceleration     { return op.acceleration.Get() }
func (op *Operation) SetAcceleration(a *Acceleration) { op.acceleration.Set(a) }
func (op *Operation) AccelerationSet() bool           { return op.acceleration.IsSet() }
func (op *Operation) AccelerationValid() bool         { return op.acceleration.IsValid() }

func (op *Operation) IsSet() bool {
	if p := op.position.Get(); p != nil && p.IsSet() {
		return true
	}
	if d := op.absolutePosition.Get(); d != nil && d.IsSet() {
		return true
	}
	if v := op.velocity.Get(); v != nil && v.IsSet() {
		return true
	}
	if a := op.acceleration.Get(); a != nil && a.IsSet() {
		return true
	}
	return false
}

// IsValid is trivially true: the schema marks no field required, and a
// nested part's own validity is an independent property.
func (op *Operation) IsValid() bool {
	return true
}

func (op *Operation) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "position", Set: op.position.IsSet(), Valid: op.position.IsValid()},
		{Key: "absolute_position", Set: op.absolutePosition.IsSet(), Valid: op.absolutePosition.IsValid()},
		{Key: "velocity", Set: op.velocity.IsSet(), Valid: op.velocity.IsValid()},
		{Key: "acceleration", Set: op.acceleration.IsSet(), Valid: op.acceleration.IsValid()},
	}
}
