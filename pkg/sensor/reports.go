package sensor

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// StatusReport mirrors the ServerStatusReport schema of the sensor server.
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

// ResourceNames mirrors the ServerResourceNames schema.
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

// DataReport mirrors the SensorDataReport schema: the latest readings,
// logical and absolute, each part optional because the device reports
// only the channels it sampled.
type DataReport struct {
	temperature         wire.Field[*LogicalQuantity]
	humidity            wire.Field[*LogicalQuantity]
	absoluteTemperature wire.Field[*TemperatureQuantity]
	absoluteHumidity    wire.Field[*HumidityQuantity]
}

var _ wire.Model = (*DataReport)(nil)

// NewDataReport returns an empty report.
func NewDataReport() *DataReport {
	return &DataReport{}
}

// NewDataReportFromJSON builds a report and populates it from text.
func NewDataReportFromJSON(text string) *DataReport {
	r := NewDataReport()
	r.FromJSON(text)
	return r
}

func (r *DataReport) FromJSON(text string) {
	r.FromJSONObject(wire.Parse(text))
}

func (r *DataReport) FromJSONObject(obj wire.JSONObject) {
	r.temperature.Extract(obj, "temperature", wire.ModelDecoder(NewLogicalQuantity))
	r.humidity.Extract(obj, "humidity", wire.ModelDecoder(NewLogicalQuantity))
	r.absoluteTemperature.Extract(obj, "absolute_temperature", wire.ModelDecoder(NewTemperatureQuantity))
	r.absoluteHumidity.Extract(obj, "absolute_humidity", wire.ModelDecoder(NewHumidityQuantity))
}

func (r *DataReport) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if q := r.temperature.Get(); q != nil && q.IsSet() {
		obj["temperature"] = wire.EncodeModel(q)
	}
	if q := r.humidity.Get(); q != nil && q.IsSet() {
		obj["humidity"] = wire.EncodeModel(q)
	}
	if q := r.absoluteTemperature.Get(); q != nil && q.IsSet() {
		obj["absolute_temperature"] = wire.EncodeModel(q)
	}
	if q := r.absoluteHumidity.Get(); q != nil && q.IsSet() {
		obj["absolute_humidity"] = wire.EncodeModel(q)
	}
	return obj
}

func (r *DataReport) ToJSON() string {
	return wire.Compact(r.AsJSONObject())
}

func (r *DataReport) Temperature() *LogicalQuantity     { return r.temperature.Get() }
func (r *DataReport) SetTemperature(q *LogicalQuantity) { r.temperature.Set(q) }
func (r *DataReport) TemperatureSet() bool              { return r.temperature.IsSet() }
func (r *DataReport) TemperatureValid() bool            { return r.temperature.IsValid() }

func (r *DataReport) Humidity() *LogicalQuantity     { return r.humidity.Get() }
func (r *DataReport) SetHumidity(q *LogicalQuantity) { r.humidity.Set(q) }
func (r *DataReport) HumiditySet() bool              { return r.humidity.IsSet() }
func (r *DataReport) HumidityValid() bool            { return r.humidity.IsValid() }

func (r *DataReport) AbsoluteTemperature() *TemperatureQuantity     { return r.absoluteTemperature.Get() }
func (r *DataReport) SetAbsoluteTemperature(q *TemperatureQuantity) { r.absoluteTemperature.Set(q) }
func (r *DataReport) AbsoluteTemperatureSet() bool                  { return r.absoluteTemperature.IsSet() }
func (r *DataReport) AbsoluteTemperatureValid() bool                { return r.absoluteTemperature.IsValid() }

func (r *DataReport) AbsoluteHumidity() *HumidityQuantity     { return r.absoluteHumidity.Get() }
func (r *DataReport) SetAbsoluteHumidity(q *HumidityQuantity) { r.absoluteHumidity.Set(q) }
func (r *DataReport) AbsoluteHumiditySet() bool               { return r.absoluteHumidity.IsSet() }
func (r *DataReport) AbsoluteHumidityValid() bool             { return r.absoluteHumidity.IsValid() }

func (r *DataReport) IsSet() bool {
	if q := r.temperature.Get(); q != nil && q.IsSet() {
		return true
	}
	if q := r.humidity.Get(); q != nil && q.IsSet() {
		return true
	}
	if q := r.absoluteTemperature.Get(); q != nil && q.IsSet() {
		return true
	}
	if q := r.absoluteHumidity.Get(); q != nil && q.IsSet() {
		return true
	}
	return false
}

// IsValid is trivially true: every reading is optional.
func (r *DataReport) IsValid() bool {
	return true
}

func (r *DataReport) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "temperature", Set: r.temperature.IsSet(), Valid: r.temperature.IsValid()},
		{Key: "humidity", Set: r.humidity.IsSet(), Valid: r.humidity.IsValid()},
		{Key: "absolute_temperature", Set: r.absoluteTemperature.IsSet(), Valid: r.absoluteTemperature.IsValid()},
		{Key: "absolute_humidity", Set: r.absoluteHumidity.IsSet(), Valid: r.absoluteHumidity.IsValid()},
	}
}
