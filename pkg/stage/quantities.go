package stage

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// Position mirrors the StagePosition schema: a logical (unitless) stage
// coordinate.
type Position struct {
	value wire.Field[int64]
}

var _ wire.Model = (*Position)(nil)

// NewPosition returns an empty position.
func NewPosition() *Position {
	return &Position{}
}

// NewPositionFromJSON builds a position and populates it from text.
func NewPositionFromJSON(text string) *Position {
	p := NewPosition()
	p.FromJSON(text)
	return p
}

func (p *Position) FromJSON(text string) {
	p.FromJSONObject(wire.Parse(text))
}

func (p *Position) FromJSONObject(obj wire.JSONObject) {
	p.value.Extract(obj, "value", wire.DecodeInteger)
}

func (p *Position) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if p.value.IsSet() {
		obj["value"] = wire.EncodeInteger(p.value.Get())
	}
	return obj
}

func (p *Position) ToJSON() string {
	return wire.Compact(p.AsJSONObject())
}

func (p *Position) Value() int64     { return p.value.Get() }
func (p *Position) SetValue(v int64) { p.value.Set(v) }
func (p *Position) ValueSet() bool   { return p.value.IsSet() }
func (p *Position) ValueValid() bool { return p.value.IsValid() }

func (p *Position) IsSet() bool   { return p.value.IsSet() }
func (p *Position) IsValid() bool { return p.value.IsValid() }

func (p *Position) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "value", Required: true, Set: p.value.IsSet(), Valid: p.value.IsValid()},
	}
}

// Displacement mirrors the StageDisplacement schema: a physical length
// with its unit.
type Displacement struct {
	value wire.Field[float64]
	unit  wire.Field[DisplacementUnit]
}

var _ wire.Model = (*Displacement)(nil)

// NewDisplacement returns an empty displacement with a default unit.
func NewDisplacement() *Displacement {
	d := &Displacement{}
	d.unit = wire.NewField(NewDisplacementUnit())
	return d
}

// NewDisplacementFromJSON builds a displacement and populates it from text.
func NewDisplacementFromJSON(text string) *Displacement {
	d := NewDisplacement()
	d.FromJSON(text)
	return d
}

func (d *Displacement) FromJSON(text string) {
	d.FromJSONObject(wire.Parse(text))
}

func (d *Displacement) FromJSONObject(obj wire.JSONObject) {
	d.value.Extract(obj, "value", wire.DecodeNumber)
	d.unit.Extract(obj, "unit", decodeDisplacementUnit)
}

func (d *Displacement) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if d.value.IsSet() {
		obj["value"] = wire.EncodeNumber(d.value.Get())
	}
	if d.unit.Get().IsSet() {
		obj["unit"] = d.unit.Get().JSONValue()
	}
	return obj
}

func (d *Displacement) ToJSON() string {
	return wire.Compact(d.AsJSONObject())
}

func (d *Displacement) Value() float64             { return d.value.Get() }
func (d *Displacement) SetValue(v float64)         { d.value.Set(v) }
func (d *Displacement) ValueSet() bool             { return d.value.IsSet() }
func (d *Displacement) ValueValid() bool           { return d.value.IsValid() }
func (d *Displacement) Unit() DisplacementUnit     { return d.unit.Get() }
func (d *Displacement) SetUnit(u DisplacementUnit) { d.unit.Set(u) }
func (d *Displacement) UnitSet() bool              { return d.unit.IsSet() }
func (d *Displacement) UnitValid() bool            { return d.unit.IsValid() }

func (d *Displacement) IsSet() bool {
	return d.value.IsSet() || d.unit.Get().IsSet()
}

func (d *Displacement) IsValid() bool {
	return d.value.IsValid() && d.unit.IsValid()
}

func (d *Displacement) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "value", Required: true, Set: d.value.IsSet(), Valid: d.value.IsValid()},
		{Key: "unit", Required: true, Set: d.unit.IsSet(), Valid: d.unit.IsValid()},
	}
}

// Velocity mirrors the StageVelocity schema.
type Velocity struct {
	value wire.Field[float64]
	unit  wire.Field[VelocityUnit]
}

var _ wire.Model = (*Velocity)(nil)

// NewVelocity returns an empty velocity with a default unit.
func NewVelocity() *Velocity {
	v := &Velocity{}
	v.unit = wire.NewField(NewVelocityUnit())
	return v
}

// NewVelocityFromJSON builds a velocity and populates it from text.
func NewVelocityFromJSON(text string) *Velocity {
	v := NewVelocity()
	v.FromJSON(text)
	return v
}

func (v *Velocity) FromJSON(text string) {
	v.FromJSONObject(wire.Parse(text))
}

func (v *Velocity) FromJSONObject(obj wire.JSONObject) {
	v.value.Extract(obj, "value", wire.DecodeNumber)
	v.unit.Extract(obj, "unit", decodeVelocityUnit)
}

func (v *Velocity) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if v.value.IsSet() {
		obj["value"] = wire.EncodeNumber(v.value.Get())
	}
	if v.unit.Get().IsSet() {
		obj["unit"] = v.unit.Get().JSONValue()
	}
	return obj
}

func (v *Velocity) ToJSON() string {
	return wire.Compact(v.AsJSONObject())
}

func (v *Velocity) Value() float64         { return v.value.Get() }
func (v *Velocity) SetValue(x float64)     { v.value.Set(x) }
func (v *Velocity) ValueSet() bool         { return v.value.IsSet() }
func (v *Velocity) ValueValid() bool       { return v.value.IsValid() }
func (v *Velocity) Unit() VelocityUnit     { return v.unit.Get() }
func (v *Velocity) SetUnit(u VelocityUnit) { v.unit.Set(u) }
func (v *Velocity) UnitSet() bool          { return v.unit.IsSet() }
func (v *Velocity) UnitValid() bool        { return v.unit.IsValid() }

func (v *Velocity) IsSet() bool {
	return v.value.IsSet() || v.unit.Get().IsSet()
}

func (v *Velocity) IsValid() bool {
	return v.value.IsValid() && v.unit.IsValid()
}

func (v *Velocity) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "value", Required: true, Set: v.value.IsSet(), Valid: v.value.IsValid()},
		{Key: "unit", Required: true, Set: v.unit.IsSet(), Valid: v.unit.IsValid()},
	}
}

// Acceleration mirrors the StageAcceleration schema.
type Acceleration struct {
	value wire.Field[float64]
	unit  wire.Field[AccelerationUnit]
}

var _ wire.Model = (*Acceleration)(nil)

// NewAcceleration returns an empty acceleration with a default unit.
func NewAcceleration() *Acceleration {
	a := &Acceleration{}
	a.unit = wire.NewField(NewAccelerationUnit())
	return a
}

// NewAccelerationFromJSON builds an acceleration and populates it from text.
func NewAccelerationFromJSON(text string) *Acceleration {
	a := NewAcceleration()
	a.FromJSON(text)
	return a
}

func (a *Acceleration) FromJSON(text string) {
	a.FromJSONObject(wire.Parse(text))
}

func (a *Acceleration) FromJSONObject(obj wire.JSONObject) {
	a.value.Extract(obj, "value", wire.DecodeNumber)
	a.unit.Extract(obj, "unit", decodeAccelerationUnit)
}

func (a *Acceleration) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if a.value.IsSet() {
		obj["value"] = wire.EncodeNumber(a.value.Get())
	}
	if a.unit.Get().IsSet() {
		obj["unit"] = a.unit.Get().JSONValue()
	}
	return obj
}

func (a *Acceleration) ToJSON() string {
	return wire.Compact(a.AsJSONObject())
}

func (a *Acceleration) Value() float64             { return a.value.Get() }
func (a *Acceleration) SetValue(x float64)         { a.value.Set(x) }
func (a *Acceleration) ValueSet() bool             { return a.value.IsSet() }
func (a *Acceleration) ValueValid() bool           { return a.value.IsValid() }
func (a *Acceleration) Unit() AccelerationUnit     { return a.unit.Get() }
func (a *Acceleration) SetUnit(u AccelerationUnit) { a.unit.Set(u) }
func (a *Acceleration) UnitSet() bool              { return a.unit.IsSet() }
func (a *Acceleration) UnitValid() bool            { return a.unit.IsValid() }

func (a *Acceleration) IsSet() bool {
	return a.value.IsSet() || a.unit.Get().IsSet()
}

func (a *Acceleration) IsValid() bool {
	return a.value.IsValid() && a.unit.IsValid()
}

func (a *Acceleration) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "value", Required: true, Set: a.value.IsSet(), Valid: a.value.IsValid()},
		{Key: "unit", Required: true, Set: a.unit.IsSet(), Valid: a.unit.IsValid()},
	}
}
