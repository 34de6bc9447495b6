package spectrometer

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// ParameterSetOperation mirrors the SpectrometerParameterSetOperation
// schema. Every field is optional; the server applies only the fields
// present in the payload.
type ParameterSetOperation struct {
	integrationTime wire.Field[*TimeQuantity]
	boxcarWidth     wire.Field[int64]
	averageTimes    wire.Field[int64]
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
	op.integrationTime.Extract(obj, "integration_time", wire.ModelDecoder(NewTimeQuantity))
	op.boxcarWidth.Extract(obj, "boxcar_width", wire.DecodeInteger)
	op.averageTimes.Extract(obj, "average_times", wire.DecodeInteger)
}

func (op *ParameterSetOperation) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if q := op.integrationTime.Get(); q != nil && q.IsSet() {
		obj["integration_time"] = wire.EncodeModel(q)
	}
	if op.boxcarWidth.IsSet() {
		obj["boxcar_width"] = wire.EncodeInteger(op.boxcarWidth.Get())
	}
	if op.averageTimes.IsSet() {
		obj["average_times"] = wire.EncodeInteger(op.averageTimes.Get())
	}
	return obj
}

func (op *ParameterSetOperation) ToJSON() string {
	return wire.Compact(op.AsJSONObject())
}

func (op *ParameterSetOperation) IntegrationTime() *TimeQuantity     { return op.integrationTime.Get() }
func (op *ParameterSetOperation) SetIntegrationTime(q *TimeQuantity) { op.integrationTime.Set(q) }
func (op *ParameterSetOperation) IntegrationTimeSet() bool           { return op.integrationTime.IsSet() }
func (op *ParameterSetOperation) IntegrationTimeValid() bool         { return op.integrationTime.IsValid() }
func (op *ParameterSetOperation) BoxcarWidth() int64                 { return op.boxcarWidth.Get() }
func (op *ParameterSetOperation) SetBoxcarWidth(v int64)             { op.boxcarWidth.Set(v) }
func (op *ParameterSetOperation) BoxcarWidthSet() bool               { return op.boxcarWidth.IsSet() }
func (op *ParameterSetOperation) BoxcarWidthValid() bool             { return op.boxcarWidth.IsValid() }
func (op *ParameterSetOperation) AverageTimes() int64                { return op.averageTimes.Get() }
func (op *ParameterSetOperation) SetAverageTimes(v int64)            { op.averageTimes.Set(v) }
func (op *ParameterSetOperation) AverageTimesSet() bool              { return op.averageTimes.IsSet() }
func (op *ParameterSetOperation) AverageTimesValid() bool            { return op.averageTimes.IsValid() }

func (op *ParameterSetOperation) IsSet() bool {
	if q := op.integrationTime.Get(); q != nil && q.IsSet() {
		return true
	}
	return op.boxcarWidth.IsSet() || op.averageTimes.IsSet()
}

// IsValid is trivially true: every field is optional.
func (op *ParameterSetOperation) IsValid() bool {
	return true
}

func (op *ParameterSetOperation) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "integration_time", Set: op.integrationTime.IsSet(), Valid: op.integrationTime.IsValid()},
		{Key: "boxcar_width", Set: op.boxcarWidth.IsSet(), Valid: op.boxcarWidth.IsValid()},
		{Key: "average_times", Set: op.averageTimes.IsSet(), Valid: op.averageTimes.IsValid()},
	}
}

// OperationResult mirrors the SpectrometerOperationResult schema.
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
