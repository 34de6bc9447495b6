package spectrometer

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// IntegrationTimeConfig mirrors the IntegrationTimeConfig schema: the
// current integration time and its adjustable range, counted in steps
// of unit_step.
type IntegrationTimeConfig struct {
	unitStep wire.Field[*TimeQuantity]
	value    wire.Field[int64]
	minimum  wire.Field[int64]
	maximum  wire.Field[int64]
}

var _ wire.Model = (*IntegrationTimeConfig)(nil)

// NewIntegrationTimeConfig returns an empty config.
func NewIntegrationTimeConfig() *IntegrationTimeConfig {
	return &IntegrationTimeConfig{}
}

// NewIntegrationTimeConfigFromJSON builds a config and populates it from text.
func NewIntegrationTimeConfigFromJSON(text string) *IntegrationTimeConfig {
	c := NewIntegrationTimeConfig()
	c.FromJSON(text)
	return c
}

func (c *IntegrationTimeConfig) FromJSON(text string) {
	c.FromJSONObject(wire.Parse(text))
}

func (c *IntegrationTimeConfig) FromJSONObject(obj wire.JSONObject) {
	c.unitStep.Extract(obj, "unit_step", wire.ModelDecoder(NewTimeQuantity))
	c.value.Extract(obj, "value", wire.DecodeInteger)
	c.minimum.Extract(obj, "minimum", wire.DecodeInteger)
	c.maximum.Extract(obj, "maximum", wire.DecodeInteger)
}

func (c *IntegrationTimeConfig) AsJSONObject() wire.JSONObject {
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

func (c *IntegrationTimeConfig) ToJSON() string {
	return wire.Compact(c.AsJSONObject())
}

func (c *IntegrationTimeConfig) UnitStep() *TimeQuantity     { return c.unitStep.Get() }
func (c *IntegrationTimeConfig) SetUnitStep(q *TimeQuantity) { c.unitStep.Set(q) }
func (c *IntegrationTimeConfig) UnitStepSet() bool           { return c.unitStep.IsSet() }
func (c *IntegrationTimeConfig) UnitStepValid() bool         { return c.unitStep.IsValid() }
func (c *IntegrationTimeConfig) Value() int64                { return c.value.Get() }
func (c *IntegrationTimeConfig) SetValue(v int64)            { c.value.Set(v) }
func (c *IntegrationTimeConfig) ValueSet() bool              { return c.value.IsSet() }
func (c *IntegrationTimeConfig) ValueValid() bool            { return c.value.IsValid() }
func (c *IntegrationTimeConfig) Minimum() int64              { return c.minimum.Get() }
func (c *IntegrationTimeConfig) SetMinimum(v int64)          { c.minimum.Set(v) }
func (c *IntegrationTimeConfig) MinimumSet() bool            { return c.minimum.IsSet() }
func (c *IntegrationTimeConfig) MinimumValid() bool          { return c.minimum.IsValid() }
func (c *IntegrationTimeConfig) Maximum() int64              { return c.maximum.Get() }
func (c *IntegrationTimeConfig) SetMaximum(v int64)          { c.maximum.Set(v) }
func (c *IntegrationTimeConfig) MaximumSet() bool            { return c.maximum.IsSet() }
func (c *IntegrationTimeConfig) MaximumValid() bool          { return c.maximum.IsValid() }

func (c *IntegrationTimeConfig) IsSet() bool {
	if q := c.unitStep.Get(); q != nil && q.IsSet() {
		return true
	}
	return c.value.IsSet() || c.minimum.IsSet() || c.maximum.IsSet()
}

func (c *IntegrationTimeConfig) IsValid() bool {
	return c.unitStep.IsValid() && c.value.IsValid() && c.minimum.IsValid() && c.maximum.IsValid()
}

func (c *IntegrationTimeConfig) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "unit_step", Required: true, Set: c.unitStep.IsSet(), Valid: c.unitStep.IsValid()},
		{Key: "value", Required: true, Set: c.value.IsSet(), Valid: c.value.IsValid()},
		{Key: "minimum", Required: true, Set: c.minimum.IsSet(), Valid: c.minimum.IsValid()},
		{Key: "maximum", Required: true, Set: c.maximum.IsSet(), Valid: c.maximum.IsValid()},
	}
}

// BoxcarWidthConfig mirrors the BoxcarWidthConfig schema: the smoothing
// window and its adjustable range.
type BoxcarWidthConfig struct {
	value   wire.Field[int64]
	minimum wire.Field[int64]
	maximum wire.Field[int64]
}

var _ wire.Model = (*BoxcarWidthConfig)(nil)

// NewBoxcarWidthConfig returns an empty config.
func NewBoxcarWidthConfig() *BoxcarWidthConfig {
	return &BoxcarWidthConfig{}
}

// NewBoxcarWidthConfigFromJSON builds a config and populates it from text.
func NewBoxcarWidthConfigFromJSON(text string) *BoxcarWidthConfig {
	c := NewBoxcarWidthConfig()
	c.FromJSON(text)
	return c
}

func (c *BoxcarWidthConfig) FromJSON(text string) {
	c.FromJSONObject(wire.Parse(text))
}

func (c *BoxcarWidthConfig) FromJSONObject(obj wire.JSONObject) {
	c.value.Extract(obj, "value", wire.DecodeInteger)
	c.minimum.Extract(obj, "minimum", wire.DecodeInteger)
	c.maximum.Extract(obj, "maximum", wire.DecodeInteger)
}

func (c *BoxcarWidthConfig) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
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

func (c *BoxcarWidthConfig) ToJSON() string {
	return wire.Compact(c.AsJSONObject())
}

func (c *BoxcarWidthConfig) Value() int64       { return c.value.Get() }
func (c *BoxcarWidthConfig) SetValue(v int64)   { c.value.Set(v) }
func (c *BoxcarWidthConfig) ValueSet() bool     { return c.value.IsSet() }
func (c *BoxcarWidthConfig) ValueValid() bool   { return c.value.IsValid() }
func (c *BoxcarWidthConfig) Minimum() int64     { return c.minimum.Get() }
func (c *BoxcarWidthConfig) SetMinimum(v int64) { c.minimum.Set(v) }
func (c *BoxcarWidthConfig) MinimumSet() bool   { return c.minimum.IsSet() }
func (c *BoxcarWidthConfig) MinimumValid() bool { return c.minimum.IsValid() }
func (c *BoxcarWidthConfig) Maximum() int64     { return c.maximum.Get() }
func (c *BoxcarWidthConfig) SetMaximum(v int64) { c.maximum.Set(v) }
func (c *BoxcarWidthConfig) MaximumSet() bool   { return c.maximum.IsSet() }
func (c *BoxcarWidthConfig) MaximumValid() bool { return c.maximum.IsValid() }

func (c *BoxcarWidthConfig) IsSet() bool {
	return c.value.IsSet() || c.minimum.IsSet() || c.maximum.IsSet()
}

func (c *BoxcarWidthConfig) IsValid() bool {
	return c.value.IsValid() && c.minimum.IsValid() && c.maximum.IsValid()
}

func (c *BoxcarWidthConfig) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "value", Required: true, Set: c.value.IsSet(), Valid: c.value.IsValid()},
		{Key: "minimum", Required: true, Set: c.minimum.IsSet(), Valid: c.minimum.IsValid()},
		{Key: "maximum", Required: true, Set: c.maximum.IsSet(), Valid: c.maximum.IsValid()},
	}
}

// AverageTimesConfig mirrors the AverageTimesConfig schema: how many
// scans are averaged per reading, with the adjustable range.
type AverageTimesConfig struct {
	value   wire.Field[int64]
	minimum wire.Field[int64]
	maximum wire.Field[int64]
}

var _ wire.Model = (*AverageTimesConfig)(nil)

// NewAverageTimesConfig returns an empty config.
func NewAverageTimesConfig() *AverageTimesConfig {
	return &AverageTimesConfig{}
}

// NewAverageTimesConfigFromJSON builds a config and populates it from text.
func NewAverageTimesConfigFromJSON(text string) *AverageTimesConfig {
	c := NewAverageTimesConfig()
	c.FromJSON(text)
	return c
}

func (c *AverageTimesConfig) FromJSON(text string) {
	c.FromJSONObject(wire.Parse(text))
}

func (c *AverageTimesConfig) FromJSONObject(obj wire.JSONObject) {
	c.value.Extract(obj, "value", wire.DecodeInteger)
	c.minimum.Extract(obj, "minimum", wire.DecodeInteger)
	c.maximum.Extract(obj, "maximum", wire.DecodeInteger)
}

func (c *AverageTimesConfig) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
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

func (c *AverageTimesConfig) ToJSON() string {
	return wire.Compact(c.AsJSONObject())
}

func (c *AverageTimesConfig) Value() int64       { return c.value.Get() }
func (c *AverageTimesConfig) SetValue(v int64)   { c.value.Set(v) }
func (c *AverageTimesConfig) ValueSet() bool     { return c.value.IsSet() }
func (c *AverageTimesConfig) ValueValid() bool   { return c.value.IsValid() }
func (c *AverageTimesConfig) Minimum() int64     { return c.minimum.Get() }
func (c *AverageTimesConfig) SetMinimum(v int64) { c.minimum.Set(v) }
func (c *AverageTimesConfig) MinimumSet() bool   { return c.minimum.IsSet() }
func (c *AverageTimesConfig) MinimumValid() bool { return c.minimum.IsValid() }
func (c *AverageTimesConfig) Maximum() int64     { return c.maximum.Get() }
func (c *AverageTimesConfig) SetMaximum(v int64) { c.maximum.Set(v) }
func (c *AverageTimesConfig) MaximumSet() bool   { return c.maximum.IsSet() }
func (c *AverageTimesConfig) MaximumValid() bool { return c.maximum.IsValid() }

func (c *AverageTimesConfig) IsSet() bool {
	return c.value.IsSet() || c.minimum.IsSet() || c.maximum.IsSet()
}

func (c *AverageTimesConfig) IsValid() bool {
	return c.value.IsValid() && c.minimum.IsValid() && c.maximum.IsValid()
}

func (c *AverageTimesConfig) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "value", Required: true, Set: c.value.IsSet(), Valid: c.value.IsValid()},
		{Key: "minimum", Required: true, Set: c.minimum.IsSet(), Valid: c.minimum.IsValid()},
		{Key: "maximum", Required: true, Set: c.maximum.IsSet(), Valid: c.maximum.IsValid()},
	}
}

// Config mirrors the SpectrometerConfig schema: the server's full
// hardware parameter state.
type Config struct {
	integrationTime wire.Field[*IntegrationTimeConfig]
	boxcarWidth     wire.Field[*BoxcarWidthConfig]
	averageTimes    wire.Field[*AverageTimesConfig]
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
	c.integrationTime.Extract(obj, "integration_time", wire.ModelDecoder(NewIntegrationTimeConfig))
	c.boxcarWidth.Extract(obj, "boxcar_width", wire.ModelDecoder(NewBoxcarWidthConfig))
	c.averageTimes.Extract(obj, "average_times", wire.ModelDecoder(NewAverageTimesConfig))
}

func (c *Config) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if v := c.integrationTime.Get(); v != nil && v.IsSet() {
		obj["integration_time"] = wire.EncodeModel(v)
	}
	if v := c.boxcarWidth.Get(); v != nil && v.IsSet() {
		obj["boxcar_width"] = wire.EncodeModel(v)
	}
	if v := c.averageTimes.Get(); v != nil && v.IsSet() {
		obj["average_times"] = wire.EncodeModel(v)
	}
	return obj
}

func (c *Config) ToJSON() string {
	return wire.Compact(c.AsJSONObject())
}

func (c *Config) IntegrationTime() *IntegrationTimeConfig     { return c.integrationTime.Get() }
func (c *Config) SetIntegrationTime(v *IntegrationTimeConfig) { c.integrationTime.Set(v) }
func (c *Config) IntegrationTimeSet() bool                    { return c.integrationTime.IsSet() }
func (c *Config) IntegrationTimeValid() bool                  { return c.integrationTime.IsValid() }
func (c *Config) BoxcarWidth() *BoxcarWidthConfig             { return c.boxcarWidth.Get() }
func (c *Config) SetBoxcarWidth(v *BoxcarWidthConfig)         { c.boxcarWidth.Set(v) }
func (c *Config) BoxcarWidthSet() bool                        { return c.boxcarWidth.IsSet() }
func (c *Config) BoxcarWidthValid() bool                      { return c.boxcarWidth.IsValid() }
func (c *Config) AverageTimes() *AverageTimesConfig           { return c.averageTimes.Get() }
func (c *Config) SetAverageTimes(v *AverageTimesConfig)       { c.averageTimes.Set(v) }
func (c *Config) AverageTimesSet() bool                       { return c.averageTimes.IsSet() }
func (c *Config) AverageTimesValid() bool                     { return c.averageTimes.IsValid() }

func (c *Config) IsSet() bool {
	if v := c.integrationTime.Get(); v != nil && v.IsSet() {
		return true
	}
	if v := c.boxcarWidth.Get(); v != nil && v.IsSet() {
		return true
	}
	if v := c.averageTimes.Get(); v != nil && v.IsSet() {
		return true
	}
	return false
}

func (c *Config) IsValid() bool {
	return c.integrationTime.IsValid() && c.boxcarWidth.IsValid() && c.averageTimes.IsValid()
}

func (c *Config) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "integration_time", Required: true, Set: c.integrationTime.IsSet(), Valid: c.integrationTime.IsValid()},
		{Key: "boxcar_width", Required: true, Set: c.boxcarWidth.IsSet(), Valid: c.boxcarWidth.IsValid()},
		{Key: "average_times", Required: true, Set: c.averageTimes.IsSet(), Valid: c.averageTimes.IsValid()},
	}
}

// ParameterReport mirrors the SpectrometerParameterReport schema: the
// server's answer when asked for its current hardware parameters.
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
