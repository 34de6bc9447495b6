package sensor

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// ParameterSetOperation mirrors the SensorParameterSetOperation schema.
// Every field is optional; the boolean toggles continuous sampling and
// its absence means "leave the mode alone", which is why a three-way
// distinction (absent / false / true) matters here.
type ParameterSetOperation struct {
	temperatureSamplingInterval wire.Field[*TimeQuantity]
	humiditySamplingInterval    wire.Field[*TimeQuantity]
	continuousSamplingMode      wire.Field[bool]
}

var _ wire.Model = (*ParameterSetOperation)(nil)

// NewParameterSetOperation returns an empty operation.
func NewParameterSetOperation() *ParameterSetOperation {
	return &ParameterSetOperation{}
}

// NewParameterSetOperationFromJSON builds an operation and populates it
// from text.
func NewParameterSetOperationFromJSON(text string) *ParameterSetOperation {
	op := NewParameterSetOperation()
	op.FromJSON(text)
	return op
}

func (op *ParameterSetOperation) FromJSON(text string) {
	op.FromJSONObject(wire.Parse(text))
}

func (op *ParameterSetOperation) FromJSONObject(obj wire.JSONObject) {
	op.temperatureSamplingInterval.Extract(obj, "temperature_sampling_interval", wire.ModelDecoder(NewTimeQuantity))
	op.humiditySamplingInterval.Extract(obj, "humidity_sampling_interval", wire.ModelDecoder(NewTimeQuantity))
	op.continuousSamplingMode.Extract(obj, "continuous_sampling_mode", wire.DecodeBoolean)
}

func (op *ParameterSetOperation) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if q := op.temperatureSamplingInterval.Get(); q != nil && q.IsSet() {
		obj["temperature_sampling_interval"] = wire.EncodeModel(q)
	}
	if q := op.humiditySamplingInterval.Get(); q != nil && q.IsSet() {
		obj["humidity_sampling_interval"] = wire.EncodeModel(q)
	}
	if op.continuousSamplingMode.IsSet() {
		obj["continuous_sampling_mode"] = wire.EncodeBoolean(op.continuousSamplingMode.Get())
	}
	return obj
}

func (op *ParameterSetOperation) ToJSON() string {
	return wire.Compact(op.AsJSONObject())
}

func (op *ParameterSetOperation) TemperatureSamplingInterval() *TimeQuantity {
	return op.temperatureSamplingInterval.Get()
}

func (op *ParameterSetOperation) SetTemperatureSamplingInterval(q *TimeQuantity) {
	op.temperatureSamplingInterval.Set(q)
}

func (op *ParameterSetOperation) TemperatureSamplingIntervalSet() bool {
	return op.temperatureSamplingInterval.IsSet()
}

func (op *ParameterSetOperation) TemperatureSamplingIntervalValid() bool {
	return op.temperatureSamplingInterval.IsValid()
}

func (op *ParameterSetOperation) HumiditySamplingInterval() *TimeQuantity {
	return op.humiditySamplingInterval.Get()
}

func (op *ParameterSetOperation) SetHumiditySamplingInterval(q *TimeQuantity) {
	op.humiditySamplingInterval.Set(q)
}

func (op *ParameterSetOperation) HumiditySamplingIntervalSet() bool {
	return op.humiditySamplingInterval.IsSet()
}

func (op *ParameterSetOperation) HumiditySamplingIntervalValid() bool {
	return op.humiditySamplingInterval.IsValid()
}

func (op *ParameterSetOperation) ContinuousSamplingMode() bool {
	return op.continuousSamplingMode.Get()
}

func (op *ParameterSetOperation) SetContinuousSamplingMode(v bool) {
	op.continuousSamplingMode.Set(v)
}

func (op *ParameterSetOperation) ContinuousSamplingModeSet() bool {
	return op.continuousSamplingMode.IsSet()
}

func (op *ParameterSetOperation) ContinuousSamplingModeValid() bool {
	return op.continuousSamplingMode.IsValid()
}

func (op *ParameterSetOperation) IsSet() bool {
	if q := op.temperatureSamplingInterval.Get(); q != nil && q.IsSet() {
		return true
	}
	if q := op.humiditySamplingInterval.Get(); q != nil && q.IsSet() {
		return true
	}
	return op.continuousSamplingMode.IsSet()
}

// IsValid is trivially true: every field is optional.
func (op *ParameterSetOperation) IsValid() bool {
	return true
}

func (op *ParameterSetOperation) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "temperature_sampling_interval", Set: op.temperatureSamplingInterval.IsSet(), Valid: op.temperatureSamplingInterval.IsValid()},
		{Key: "humidity_sampling_interval", Set: op.humiditySamplingInterval.IsSet(), Valid: op.humiditySamplingInterval.IsValid()},
		{Key: "continuous_sampling_mode", Set: op.continuousSamplingMode.IsSet(), Valid: op.continuousSamplingMode.IsValid()},
	}
}

// OperationResult mirrors the SensorOperationResult schema.
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
