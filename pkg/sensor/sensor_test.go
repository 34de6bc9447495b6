package sensor_test

import (
	"testing"

	"github.com/labctrl/go-toolbox-api/pkg/sensor"
)

func TestDataReportPartialChannels(t *testing.T) {
	r := sensor.NewDataReportFromJSON(`{"temperature":{"value":512},"absolute_temperature":{"value":23.4,"unit":"degC"}}`)
	if !r.TemperatureSet() || r.Temperature().Value() != 512 {
		t.Fatal("logical temperature not extracted")
	}
	if !r.AbsoluteTemperatureSet() || r.AbsoluteTemperature().Unit().Value() != sensor.UnitDegreeCelsius {
		t.Fatal("absolute temperature not extracted")
	}
	if r.HumiditySet() || r.AbsoluteHumiditySet() {
		t.Fatal("absent channels reported set")
	}
	if !r.IsValid() {
		t.Fatal("data report has no required fields and must always be valid")
	}
	if got := r.ToJSON(); got != `{"absolute_temperature":{"unit":"degC","value":23.4},"temperature":{"value":512}}` {
		t.Fatalf("ToJSON = %q", got)
	}
}

func TestParameterSetOperationBooleanThreeWay(t *testing.T) {
	// Absent: mode untouched.
	op := sensor.NewParameterSetOperationFromJSON(`{}`)
	if op.ContinuousSamplingModeSet() {
		t.Fatal("absent boolean reported set")
	}
	if op.ToJSON() != "{}" {
		t.Fatalf("ToJSON = %q", op.ToJSON())
	}

	// Explicit false still travels: false and absent mean different
	// things to the server.
	op = sensor.NewParameterSetOperationFromJSON(`{"continuous_sampling_mode":false}`)
	if !op.ContinuousSamplingModeSet() || op.ContinuousSamplingMode() {
		t.Fatal("explicit false lost")
	}
	if got := op.ToJSON(); got != `{"continuous_sampling_mode":false}` {
		t.Fatalf("ToJSON = %q", got)
	}

	// Wrong type fails silently.
	op = sensor.NewParameterSetOperationFromJSON(`{"continuous_sampling_mode":"yes"}`)
	if op.ContinuousSamplingModeSet() || op.ContinuousSamplingModeValid() {
		t.Fatal("string coerced to boolean")
	}
	if !op.IsValid() {
		t.Fatal("optional field failure must not invalidate the operation")
	}
}

func TestParameterSetOperationIntervals(t *testing.T) {
	op := sensor.NewParameterSetOperationFromJSON(`{"temperature_sampling_interval":{"value":100,"unit":"ms"}}`)
	q := op.TemperatureSamplingInterval()
	if !op.TemperatureSamplingIntervalSet() || q.Value() != 100 || q.Unit().Value() != sensor.UnitMillisecond {
		t.Fatal("interval not extracted")
	}
	if op.HumiditySamplingIntervalSet() {
		t.Fatal("absent interval reported set")
	}
}

func TestOperationResultDeviceError(t *testing.T) {
	r := sensor.NewOperationResultFromJSON(`{"result":"device_error"}`)
	if r.Result().Value() != sensor.ResultDeviceError || !r.IsValid() {
		t.Fatalf("result %q valid %v", r.Result().Value(), r.IsValid())
	}
}

func TestParameterReportNestedConfig(t *testing.T) {
	text := `{"parameter":{` +
		`"temperature":{"unit_step":{"value":0.1,"unit":"degC"},` +
		`"sampling_interval":{"unit_step":{"value":1,"unit":"s"},"value":2,"minimum":1,"maximum":3600}},` +
		`"humidity":{"unit_step":{"value":0.5,"unit":"%RH"},` +
		`"sampling_interval":{"unit_step":{"value":1,"unit":"s"},"value":2,"minimum":1,"maximum":3600}}}}`
	r := sensor.NewParameterReportFromJSON(text)
	if !r.ParameterSet() || !r.IsValid() {
		t.Fatal("parameter not extracted")
	}
	cfg := r.Parameter()
	if cfg.Temperature().UnitStep().Unit().Value() != sensor.UnitDegreeCelsius {
		t.Fatal("temperature unit step not extracted")
	}
	interval := cfg.Humidity().SamplingInterval()
	if interval.Maximum() != 3600 || interval.UnitStep().Unit().Value() != sensor.UnitSecond {
		t.Fatal("humidity sampling interval not extracted")
	}
	if got := sensor.NewParameterReportFromJSON(r.ToJSON()).ToJSON(); got != r.ToJSON() {
		t.Fatalf("round trip drifted: %q", got)
	}
}

func TestParameterReportPartialConfig(t *testing.T) {
	r := sensor.NewParameterReportFromJSON(`{"parameter":{"temperature":{"unit_step":{"value":0.1,"unit":"degC"}}}}`)
	if !r.ParameterSet() || !r.IsValid() {
		t.Fatal("partial parameter must stay set and valid at the envelope level")
	}
	// Validity does not recurse; drilling in shows the missing members.
	cfg := r.Parameter()
	if cfg.IsValid() || cfg.Temperature().IsValid() {
		t.Fatal("config missing required members reported valid")
	}
	if cfg.HumiditySet() {
		t.Fatal("absent channel reported set")
	}
}

func TestQuantityRoundTrip(t *testing.T) {
	q := sensor.NewHumidityQuantity()
	q.SetValue(45.5)
	q.SetUnit(sensor.HumidityUnitOf(sensor.UnitPercentRelativeHumidity))
	first := q.ToJSON()
	if got := sensor.NewHumidityQuantityFromJSON(first).ToJSON(); got != first {
		t.Fatalf("round trip drifted: %q vs %q", first, got)
	}
}
