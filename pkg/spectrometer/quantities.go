package spectrometer

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// TimeQuantity mirrors the TimeQuantity schema: an integration time with
// its unit.
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
