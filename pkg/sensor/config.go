package sensor

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// SamplingIntervalConfig mirrors the SamplingIntervalConfig schema: the
// current sampling interval and its adjustable range, counted in steps
// of unit_step.
type SamplingIntervalConfig struct {
	unitStep wire.Field[*TimeQuantity]
	value    wire.Field[int64]
	minimum  wire.Field[int64]
	maximum  wire.Field[int64]
}

var _ wire.Model = (*SamplingIntervalConfig)(nil)

// NewSamplingIntervalConfig returns an empty config.
func NewSamplingIntervalConfig() *SamplingIntervalConfig {
	return &SamplingIntervalConfig{}
}

// NewSamplingIntervalConfigFromJSON builds a config and populates it from text.
func NewSamplingIntervalConfigFromJSON(text string) *SamplingIntervalConfig {
	c := NewSamplingIntervalConfig()
	c.FromJSON(text)
	return c
}

func (c *SamplingIntervalConfig) FromJSON(text string) {
	c.FromJSONObject(wire.Parse(text))
}

func (c *SamplingIntervalConfig) FromJSONObject(obj wire.JSONObject) {
	c.unitStep.Extract(obj, "unit_step", wire.ModelDecoder(NewTimeQuantity))
	c.value.Extract(obj, "value", wire.DecodeInteger)
	c.minimum.Extract(obj, "minimum", wire.DecodeInteger)
	c.maximum.Extract(obj, "maximum", wire.DecodeInteger)
}

func (c *SamplingIntervalConfig) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if q := c.unitStep.Get(); q != nil && q.IsSet() {
		obj["unit_step"] = wire.EncodeModel(q)
	}
	if c.value.IsSet() {
		obj["value"] = wire.EncodeInteger(c.value.Get())
	}
	if c.minimum.IsSet() {
		obj["minimum"] = wire.EncodeInteger(c.minimum.Get())
	}
	if c.maximum.IsSet() {
		obj["maximum"] = wire.EncodeInteger(c.maximum.Get())
	}
	return obj
}

func (c *SamplingIntervalConfig) ToJSON() string {
	return wire.Compact(c.AsJSONObject())
}

func (c *SamplingIntervalConfig) UnitStep() *TimeQuantity     { return c.unitStep.Get() }
func (c *SamplingIntervalConfig) SetUnitStep(q *TimeQuantity) { c.unitStep.Set(q) }
func (c *SamplingIntervalConfig) UnitStepSet() bool           { return c.unitStep.IsSet() }
func (c *SamplingIntervalConfig) UnitStepValid() bool         { return c.unitStep.IsValid() }
func (c *SamplingIntervalConfig) Value() int64                { return c.value.Get() }
func (c *SamplingIntervalConfig) SetValue(v int64)            { c.value.Set(v) }
func (c *SamplingIntervalConfig) ValueSet() bool              { return c.value.IsSet() }
func (c *SamplingIntervalConfig) ValueValid() bool            { return c.value.IsValid() }
func (c *SamplingIntervalConfig) Minimum() int64              { return c.minimum.Get() }
func (c *SamplingIntervalConfig) SetMinimum(v int64)          { c.minimum.Set(v) }
func (c *SamplingIntervalConfig) MinimumSet() bool            { return c.minimum.IsSet() }
func (c *SamplingIntervalConfig) MinimumValid() bool          { return c.minimum.IsValid() }
func (c *SamplingIntervalConfig) Maximum() int64              { return c.maximum.Get() }
func (c *SamplingIntervalConfig) SetMaximum(v int64)          { c.maximum.Set(v) }
func (c *SamplingIntervalConfig) MaximumSet() bool            { return c.maximum.IsSet() }
func (c *SamplingIntervalConfig) MaximumValid() bool          { return c.maximum.IsValid() }

func (c *SamplingIntervalConfig) IsSet() bool {
	if q := c.unitStep.Get(); q != nil && q.IsSet() {
		return true
	}
	return c.value.IsSet() || c.minimum.IsSet() || c.maximum.IsSet()
}

func (c *SamplingIntervalConfig) IsValid() bool {
	return c.unitStep.IsValid() && c.value.IsValid() && c.minimum.IsValid() && c.maximum.IsValid()
}

func (c *SamplingIntervalConfig) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "unit_step", Required: true, Set: c.unitStep.IsSet(), Valid: c.unitStep.IsValid()},
		{Key: "value", Required: true, Set: c.value.IsSet(), Valid: c.value.IsValid()},
		{Key: "minimum", Required: true, Set: c.minimum.IsSet(), Valid: c.minimum.IsValid()},
		{Key: "maximum", Required: true, Set: c.maximum.IsSet(), Valid: c.maximum.IsValid()},
	}
}

// TemperatureSensorConfig mirrors the TemperatureSensorConfig schema.
type TemperatureSensorConfig struct {
	unitStep         wire.Field[*TemperatureQuantity]
	samplingInterval wire.Field[*SamplingIntervalConfig]
}

var _ wire.Model = (*TemperatureSensorConfig)(nil)

// NewTemperatureSensorConfig returns an empty config.
func NewTemperatureSensorConfig() *TemperatureSensorConfig {
	return &TemperatureSensorConfig{}
}

// NewTemperatureSensorConfigFromJSON builds a config and populates it
// from text.
func NewTemperatureSensorConfigFromJSON(text string) *TemperatureSensorConfig {
	c := NewTemperatureSensorConfig()
	c.FromJSON(text)
	return c
}

func (c *TemperatureSensorConfig) FromJSON(text string) {
	c.FromJSONObject(wire.Parse(text))
}

func (c *TemperatureSensorConfig) FromJSONObject(obj wire.JSONObject) {
	c.unitStep.Extract(obj, "unit_step", wire.ModelDecoder(NewTemperatureQuantity))
	c.samplingInterval.Extract(obj, "sampling_interval", wire.ModelDecoder(NewSamplingIntervalConfig))
}

func (c *TemperatureSensorConfig) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if q := c.unitStep.Get(); q != nil && q.IsSet() {
		obj["unit_step"] = wire.EncodeModel(q)
	}
	if v := c.samplingInterval.Get(); v != nil && v.IsSet() {
		obj["sampling_interval"] = wire.EncodeModel(v)
	}
	return obj
}

func (c *TemperatureSensorConfig) ToJSON() string {
	return wire.Compact(c.AsJSONObject())
}

func (c *TemperatureSensorConfig) UnitStep() *TemperatureQuantity {
	return c.unitStep.Get()
}

func (c *TemperatureSensorConfig) SetUnitStep(q *TemperatureQuantity) {
	c.unitStep.Set(q)
}

func (c *TemperatureSensorConfig) UnitStepSet() bool {
	return c.unitStep.IsSet()
}

func (c *TemperatureSensorConfig) UnitStepValid() bool {
	return c.unitStep.IsValid()
}

func (c *TemperatureSensorConfig) SamplingInterval() *SamplingIntervalConfig {
	return c.samplingInterval.Get()
}

func (c *TemperatureSensorConfig) SetSamplingInterval(v *SamplingIntervalConfig) {
	c.samplingInterval.Set(v)
}

func (c *TemperatureSensorConfig) SamplingIntervalSet() bool {
	return c.samplingInterval.IsSet()
}

func (c *TemperatureSensorConfig) SamplingIntervalValid() bool {
	return c.samplingInterval.IsValid()
}

func (c *TemperatureSensorConfig) IsSet() bool {
	if q := c.unitStep.Get(); q != nil && q.IsSet() {
		return true
	}
	v := c.samplingInterval.Get()
	return v != nil && v.IsSet()
}

func (c *TemperatureSensorConfig) IsValid() bool {
	return c.unitStep.IsValid() && c.samplingInterval.IsValid()
}

func (c *TemperatureSensorConfig) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "unit_step", Required: true, Set: c.unitStep.IsSet(), Valid: c.unitStep.IsValid()},
		{Key: "sampling_interval", Required: true, Set: c.samplingInterval.IsSet(), Valid: c.samplingInterval.IsValid()},
	}
}

// HumiditySensorConfig mirrors the HumiditySensorConfig schema.
type HumiditySensorConfig struct {
	unitStep         wire.Field[*HumidityQuantity]
	samplingInterval wire.Field[*SamplingIntervalConfig]
}

var _ wire.Model = (*HumiditySensorConfig)(nil)

// NewHumiditySensorConfig returns an empty config.
func NewHumiditySensorConfig() *HumiditySensorConfig {
	return &HumiditySensorConfig{}
}

// NewHumiditySensorConfigFromJSON builds a config and populates it from
// text.
func NewHumiditySensorConfigFromJSON(text string) *HumiditySensorConfig {
	c := NewHumiditySensorConfig()
	c.FromJSON(text)
	return c
}

func (c *HumiditySensorConfig) FromJSON(text string) {
	c.FromJSONObject(wire.Parse(text))
}

func (c *HumiditySensorConfig) FromJSONObject(obj wire.JSONObject) {
	c.unitStep.Extract(obj, "unit_step", wire.ModelDecoder(NewHumidityQuantity))
	c.samplingInterval.Extract(obj, "sampling_interval", wire.ModelDecoder(NewSamplingIntervalConfig))
}

func (c *HumiditySensorConfig) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if q := c.unitStep.Get(); q != nil && q.IsSet() {
		obj["unit_step"] = wire.EncodeModel(q)
	}
	if v := c.samplingInterval.Get(); v != nil && v.IsSet() {
		obj["sampling_interval"] = wire.EncodeModel(v)
	}
	return obj
}

func (c *HumiditySensorConfig) ToJSON() string {
	return wire.Compact(c.AsJSONObject())
}

func (c *HumiditySensorConfig) UnitStep() *HumidityQuantity {
	return c.unitStep.Get()
}

func (c *HumiditySensorConfig) SetUnitStep(q *HumidityQuantity) {
	c.unitStep.Set(q)
}

func (c *HumiditySensorConfig) UnitStepSet() bool {
	return c.unitStep.IsSet()
}

func (c *HumiditySensorConfig) UnitStepValid() bool {
	return c.unitStep.IsValid()
}

func (c *HumiditySensorConfig) SamplingInterval() *SamplingIntervalConfig {
	return c.samplingInterval.Get()
}

func (c *HumiditySensorConfig) SetSamplingInterval(v *SamplingIntervalConfig) {
	c.samplingInterval.Set(v)
}

func (c *HumiditySensorConfig) SamplingIntervalSet() bool {
	return c.samplingInterval.IsSet()
}

func (c *HumiditySensorConfig) SamplingIntervalValid() bool {
	return c.samplingInterval.IsValid()
}

func (c *HumiditySensorConfig) IsSet() bool {
	if q := c.unitStep.Get(); q != nil && q.IsSet() {
		return true
	}
	v := c.samplingInterval.Get()
	return v != nil && v.IsSet()
}

func (c *HumiditySensorConfig) IsValid() bool {
	return c.unitStep.IsValid() && c.samplingInterval.IsValid()
}

func (c *HumiditySensorConfig) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "unit_step", Required: true, Set: c.unitStep.IsSet(), Valid: c.unitStep.IsValid()},
		{Key: "sampling_interval", Required: true, Set: c.samplingInterval.IsSet(), Valid: c.samplingInterval.IsValid()},
	}
}

// Config mirrors the SensorConfig schema: the server's full hardware
// parameter state, one member per measurement channel.
type Config struct {
	temperature wire.Field[*TemperatureSensorConfig]
	humidity    wire.Field[*HumiditySensorConfig]
}

var _ wire.Model = (*Config)(nil)

// NewConfig returns an empty config.
func NewConfig() *Config {
	return &Config{}
}

// NewConfigFromJSON builds a config and populates it from text.
func NewConfigFromJSON(text string) *Config {
	c := NewConfig()
	c.FromJSON(text)
	return c
}

func (c *Config) FromJSON(text string) {
	c.FromJSONObject(wire.Parse(text))
}

func (c *Config) FromJSONObject(obj wire.JSONObject) {
	c.temperature.Extract(obj, "temperature", wire.ModelDecoder(NewTemperatureSensorConfig))
	c.humidity.Extract(obj, "humidity", wire.ModelDecoder(NewHumiditySensorConfig))
}

func (c *Config) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if v := c.temperature.Get(); v != nil && v.IsSet() {
		obj["temperature"] = wire.EncodeModel(v)
	}
	if v := c.humidity.Get(); v != nil && v.IsSet() {
		obj["humidity"] = wire.EncodeModel(v)
	}
	return obj
}

func (c *Config) ToJSON() string {
	return wire.Compact(c.AsJSONObject())
}

func (c *Config) Temperature() *TemperatureSensorConfig     { return c.temperature.Get() }
func (c *Config) SetTemperature(v *TemperatureSensorConfig) { c.temperature.Set(v) }
func (c *Config) TemperatureSet() bool                      { return c.temperature.IsSet() }
func (c *Config) TemperatureValid() bool                    { return c.temperature.IsValid() }
func (c *Config) Humidity() *HumiditySensorConfig           { return c.humidity.Get() }
func (c *Config) SetHumidity(v *HumiditySensorConfig)       { c.humidity.Set(v) }
func (c *Config) HumiditySet() bool                         { return c.humidity.IsSet() }
func (c *Config) HumidityValid() bool                       { return c.humidity.IsValid() }

func (c *Config) IsSet() bool {
	if v := c.temperature.Get(); v != nil && v.IsSet() {
		return true
	}
	v := c.humidity.Get()
	return v != nil && v.IsSet()
}

func (c *Config) IsValid() bool {
	return c.temperature.IsValid() && c.humidity.IsValid()
}

func (c *Config) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "temperature", Required: true, Set: c.temperature.IsSet(), Valid: c.temperature.IsValid()},
		{Key: "humidity", Required: true, Set: c.humidity.IsSet(), Valid: c.humidity.IsValid()},
	}
}

// ParameterReport mirrors the SensorParameterReport schema: the server's
// answer when asked for its current hardware parameters.
type ParameterReport struct {
	parameter wire.Field[*Config]
}

var _ wire.Model = (*ParameterReport)(nil)

// NewParameterReport returns an empty report.
func NewParameterReport() *ParameterReport {
	return &ParameterReport{}
}

// NewParameterReportFromJSON builds a report and populates it from text.
func NewParameterReportFromJSON(text string) *ParameterReport {
	r := NewParameterReport()
	r.FromJSON(text)
	return r
}

func (r *ParameterReport) FromJSON(text string) {
	r.FromJSONObject(wire.Parse(text))
}

func (r *ParameterReport) FromJSONObject(obj wire.JSONObject) {
	r.parameter.Extract(obj, "parameter", wire.ModelDecoder(NewConfig))
}

func (r *ParameterReport) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if v := r.parameter.Get(); v != nil && v.IsSet() {
		obj["parameter"] = wire.EncodeModel(v)
	}
	return obj
}

func (r *ParameterReport) ToJSON() string {
	return wire.Compact(r.AsJSONObject())
}

func (r *ParameterReport) Parameter() *Config     { return r.parameter.Get() }
func (r *ParameterReport) SetParameter(v *Config) { r.parameter.Set(v) }
func (r *ParameterReport) ParameterSet() bool     { return r.parameter.IsSet() }
func (r *ParameterReport) ParameterValid() bool   { return r.parameter.IsValid() }

func (r *ParameterReport) IsSet() bool {
	v := r.parameter.Get()
	return v != nil && v.IsSet()
}

func (r *ParameterReport) IsValid() bool {
	return r.parameter.IsValid()
}

func (r *ParameterReport) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "parameter", Required: true, Set: r.parameter.IsSet(), Valid: r.parameter.IsValid()},
	}
}
