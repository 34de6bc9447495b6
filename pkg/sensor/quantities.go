package sensor

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// LogicalQuantity mirrors the LogicalQuantity schema: a raw device
// reading before unit conversion.
type LogicalQuantity struct {
	value wire.Field[int64]
}

var _ wire.Model = (*LogicalQuantity)(nil)

// NewLogicalQuantity returns an empty quantity.
func NewLogicalQuantity() *LogicalQuantity {
	return &LogicalQuantity{}
}

// NewLogicalQuantityFromJSON builds a quantity and populates it from text.
func NewLogicalQuantityFromJSON(text string) *LogicalQuantity {
	q := NewLogicalQuantity()
	q.FromJSON(text)
	return q
}

func (q *LogicalQuantity) FromJSON(text string) {
	q.FromJSONObject(wire.Parse(text))
}

func (q *LogicalQuantity) FromJSONObject(obj wire.JSONObject) {
	q.value.Extract(obj, "value", wire.DecodeInteger)
}

func (q *LogicalQuantity) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if q.value.IsSet() {
		obj["value"] = wire.EncodeInteger(q.value.Get())
	}
	return obj
}

func (q *LogicalQuantity) ToJSON() string {
	return wire.Compact(q.AsJSONObject())
}

func (q *LogicalQuantity) Value() int64     { return q.value.Get() }
func (q *LogicalQuantity) SetValue(v int64) { q.value.Set(v) }
func (q *LogicalQuantity) ValueSet() bool   { return q.value.IsSet() }
func (q *LogicalQuantity) ValueValid() bool { return q.value.IsValid() }

func (q *LogicalQuantity) IsSet() bool   { return q.value.IsSet() }
func (q *LogicalQuantity) IsValid() bool { return q.value.IsValid() }

func (q *LogicalQuantity) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "value", Required: true, Set: q.value.IsSet(), Valid: q.value.IsValid()},
	}
}

// TemperatureQuantity mirrors the TemperatureQuantity schema.
type TemperatureQuantity struct {
	value wire.Field[float64]
	unit  wire.Field[TemperatureUnit]
}

var _ wire.Model = (*TemperatureQuantity)(nil)

// NewTemperatureQuantity returns an empty quantity with a default unit.
func NewTemperatureQuantity() *TemperatureQuantity {
	q := &TemperatureQuantity{}
	q.unit = wire.NewField(NewTemperatureUnit())
	return q
}

// NewTemperatureQuantityFromJSON builds a quantity and populates it from text.
func NewTemperatureQuantityFromJSON(text string) *TemperatureQuantity {
	q := NewTemperatureQuantity()
	q.FromJSON(text)
	return q
}

func (q *TemperatureQuantity) FromJSON(text string) {
	q.FromJSONObject(wire.Parse(text))
}

func (q *TemperatureQuantity) FromJSONObject(obj wire.JSONObject) {
	q.value.Extract(obj, "value", wire.DecodeNumber)
	q.unit.Extract(obj, "unit", decodeTemperatureUnit)
}

func (q *TemperatureQuantity) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if q.value.IsSet() {
		obj["value"] = wire.EncodeNumber(q.value.Get())
	}
	if q.unit.Get().IsSet() {
		obj["unit"] = q.unit.Get().JSONValue()
	}
	return obj
}

func (q *TemperatureQuantity) ToJSON() string {
	return wire.Compact(q.AsJSONObject())
}

func (q *TemperatureQuantity) Value() float64            { return q.value.Get() }
func (q *TemperatureQuantity) SetValue(v float64)        { q.value.Set(v) }
func (q *TemperatureQuantity) ValueSet() bool            { return q.value.IsSet() }
func (q *TemperatureQuantity) ValueValid() bool          { return q.value.IsValid() }
func (q *TemperatureQuantity) Unit() TemperatureUnit     { return q.unit.Get() }
func (q *TemperatureQuantity) SetUnit(u TemperatureUnit) { q.unit.Set(u) }
func (q *TemperatureQuantity) UnitSet() bool             { return q.unit.IsSet() }
func (q *TemperatureQuantity) UnitValid() bool           { return q.unit.IsValid() }

func (q *TemperatureQuantity) IsSet() bool {
	return q.value.IsSet() || q.unit.Get().IsSet()
}

func (q *TemperatureQuantity) IsValid() bool {
	return q.value.IsValid() && q.unit.IsValid()
}

func (q *TemperatureQuantity) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "value", Required: true, Set: q.value.IsSet(), Valid: q.value.IsValid()},
		{Key: "unit", Required: true, Set: q.unit.IsSet(), Valid: q.unit.IsValid()},
	}
}

// HumidityQuantity mirrors the HumidityQuantity schema.
type HumidityQuantity struct {
	value wire.Field[float64]
	unit  wire.Field[HumidityUnit]
}

var _ wire.Model = (*HumidityQuantity)(nil)

// NewHumidityQuantity returns an empty quantity with a default unit.
func NewHumidityQuantity() *HumidityQuantity {
	q := &HumidityQuantity{}
	q.unit = wire.NewField(NewHumidityUnit())
	return q
}

// NewHumidityQuantityFromJSON builds a quantity and populates it from text.
func NewHumidityQuantityFromJSON(text string) *HumidityQuantity {
	q := NewHumidityQuantity()
	q.FromJSON(text)
	return q
}

func (q *HumidityQuantity) FromJSON(text string) {
	q.FromJSONObject(wire.Parse(text))
}

func (q *HumidityQuantity) FromJSONObject(obj wire.JSONObject) {
	q.value.Extract(obj, "value", wire.DecodeNumber)
	q.unit.Extract(obj, "unit", decodeHumidityUnit)
}

func (q *HumidityQuantity) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if q.value.IsSet() {
		obj["value"] = wire.EncodeNumber(q.value.Get())
	}
	if q.unit.Get().IsSet() {
		obj["unit"] = q.unit.Get().JSONValue()
	}
	return obj
}

func (q *HumidityQuantity) ToJSON() string {
	return wire.Compact(q.AsJSONObject())
}

func (q *HumidityQuantity) Value() float64         { return q.value.Get() }
func (q *HumidityQuantity) SetValue(v float64)     { q.value.Set(v) }
func (q *HumidityQuantity) ValueSet() bool         { return q.value.IsSet() }
func (q *HumidityQuantity) ValueValid() bool       { return q.value.IsValid() }
func (q *HumidityQuantity) Unit() HumidityUnit     { return q.unit.Get() }
func (q *HumidityQuantity) SetUnit(u HumidityUnit) { q.unit.Set(u) }
func (q *HumidityQuantity) UnitSet() bool          { return q.unit.IsSet() }
func (q *HumidityQuantity) UnitValid() bool        { return q.unit.IsValid() }

func (q *HumidityQuantity) IsSet() bool {
	return q.value.IsSet() || q.unit.Get().IsSet()
}

func (q *HumidityQuantity) IsValid() bool {
	return q.value.IsValid() && q.unit.IsValid()
}

func (q *HumidityQuantity) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "value", Required: true, Set: q.value.IsSet(), Valid: q.value.IsValid()},
		{Key: "unit", Required: true, Set: q.unit.IsSet(), Valid: q.unit.IsValid()},
	}
}

// TimeQuantity mirrors the TimeQuantity schema: a sampling interval.
type TimeQuantity struct {
	value wire.Field[float64]
	unit  wire.Field[TimeUnit]
}

var _ wire.Model = (*TimeQuantity)(nil)

// NewTimeQuantity returns an empty quantity with a default unit.
func NewTimeQuantity() *TimeQuantity {
	q := &TimeQuantity{}
	q.unit = wire.NewField(NewTimeUnit())
	return q
}

// NewTimeQuantityFromJSON builds a quantity and populates it from text.
func NewTimeQuantityFromJSON(text string) *TimeQuantity {
	q := NewTimeQuantity()
	q.FromJSON(text)
	return q
}

func (q *TimeQuantity) FromJSON(text string) {
	q.FromJSONObject(wire.Parse(text))
}

func (q *TimeQuantity) FromJSONObject(obj wire.JSONObject) {
	q.value.Extract(obj, "value", wire.DecodeNumber)
	q.unit.Extract(obj, "unit", decodeTimeUnit)
}

func (q *TimeQuantity) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if q.value.IsSet() {
		obj["value"] = wire.EncodeNumber(q.value.Get())
	}
	if q.unit.Get().IsSet() {
		obj["unit"] = q.unit.Get().JSONValue()
	}
	return obj
}

func (q *TimeQuantity) ToJSON() string {
	return wire.Compact(q.AsJSONObject())
}

func (q *TimeQuantity) Value() float64     { return q.value.Get() }
func (q *TimeQuantity) SetValue(v float64) { q.value.Set(v) }
func (q *TimeQuantity) ValueSet() bool     { return q.value.IsSet() }
func (q *TimeQuantity) ValueValid() bool   { return q.value.IsValid() }
func (q *TimeQuantity) Unit() TimeUnit     { return q.unit.Get() }
func (q *TimeQuantity) SetUnit(u TimeUnit) { q.unit.Set(u) }
func (q *TimeQuantity) UnitSet() bool      { return q.unit.IsSet() }
func (q *TimeQuantity) UnitValid() bool    { return q.unit.IsValid() }

func (q *TimeQuantity) IsSet() bool {
	return q.value.IsSet() || q.unit.Get().IsSet()
}

func (q *TimeQuantity) IsValid() bool {
	return q.value.IsValid() && q.unit.IsValid()
}

func (q *TimeQuantity) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "value", Required: true, Set: q.value.IsSet(), Valid: q.value.IsValid()},
		{Key: "unit", Required: true, Set: q.unit.IsSet(), Valid: q.unit.IsValid()},
	}
}
