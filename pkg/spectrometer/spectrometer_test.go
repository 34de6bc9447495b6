package spectrometer_test

import (
	"testing"

	"github.com/labctrl/go-toolbox-api/pkg/spectrometer"
)

func TestWavelengthsReportRoundTrip(t *testing.T) {
	r := spectrometer.NewWavelengthsReportFromJSON(`{"wavelengths":[348.5,350.25,352]}`)
	if !r.WavelengthsSet() || !r.IsValid() {
		t.Fatal("axis not extracted")
	}
	if got := r.Wavelengths(); len(got) != 3 || got[0] != 348.5 || got[2] != 352 {
		t.Fatalf("wavelengths = %v", got)
	}
	if got := r.ToJSON(); got != `{"wavelengths":[348.5,350.25,352]}` {
		t.Fatalf("ToJSON = %q", got)
	}
}

func TestWavelengthsReportBadElementFailsWholeList(t *testing.T) {
	r := spectrometer.NewWavelengthsReportFromJSON(`{"wavelengths":[348.5,"nm",352]}`)
	if r.WavelengthsSet() || r.WavelengthsValid() || r.IsValid() {
		t.Fatal("mixed-type axis accepted")
	}
	if r.ToJSON() != "{}" {
		t.Fatalf("ToJSON = %q", r.ToJSON())
	}
}

func TestSpectrumReportRejectsFractionalCounts(t *testing.T) {
	r := spectrometer.NewSpectrumReportFromJSON(`{"spectrum":[0,1024,65535]}`)
	if !r.SpectrumSet() || !r.IsValid() {
		t.Fatal("counts not extracted")
	}
	if got := r.ToJSON(); got != `{"spectrum":[0,1024,65535]}` {
		t.Fatalf("ToJSON = %q", got)
	}

	r = spectrometer.NewSpectrumReportFromJSON(`{"spectrum":[0,10.5]}`)
	if r.SpectrumSet() || r.SpectrumValid() {
		t.Fatal("fractional count accepted")
	}
}

func TestReportedSlicesAreCopies(t *testing.T) {
	r := spectrometer.NewSpectrumReportFromJSON(`{"spectrum":[1,2,3]}`)
	first := r.ToJSON()
	counts := r.Spectrum()
	counts[0] = 999
	if got := r.ToJSON(); got != first {
		t.Fatalf("caller mutation leaked into the report: %q vs %q", first, got)
	}

	w := spectrometer.NewWavelengthsReportFromJSON(`{"wavelengths":[1.5,2.5]}`)
	axis := w.Wavelengths()
	axis[1] = 0
	if got := w.ToJSON(); got != `{"wavelengths":[1.5,2.5]}` {
		t.Fatalf("caller mutation leaked into the report: %q", got)
	}
}

func TestParameterReportNestedConfig(t *testing.T) {
	text := `{"parameter":{` +
		`"integration_time":{"unit_step":{"value":1,"unit":"ms"},"value":100,"minimum":1,"maximum":65535},` +
		`"boxcar_width":{"value":2,"minimum":0,"maximum":10},` +
		`"average_times":{"value":4,"minimum":1,"maximum":255}}}`
	r := spectrometer.NewParameterReportFromJSON(text)
	if !r.ParameterSet() || !r.IsValid() {
		t.Fatal("parameter not extracted")
	}
	cfg := r.Parameter()
	it := cfg.IntegrationTime()
	if it.Value() != 100 || it.UnitStep().Unit().Value() != spectrometer.UnitMillisecond {
		t.Fatal("integration time config not extracted")
	}
	if cfg.BoxcarWidth().Maximum() != 10 || cfg.AverageTimes().Value() != 4 {
		t.Fatal("range configs not extracted")
	}
}

func TestParameterReportPartialConfig(t *testing.T) {
	r := spectrometer.NewParameterReportFromJSON(`{"parameter":{"boxcar_width":{"value":2,"minimum":0,"maximum":10}}}`)
	if !r.ParameterSet() || !r.IsValid() {
		t.Fatal("partial parameter must stay set and valid at the envelope level")
	}
	// Validity does not recurse; drilling in shows the missing members.
	if r.Parameter().IsValid() {
		t.Fatal("config missing required members reported valid")
	}
	if r.Parameter().IntegrationTimeSet() {
		t.Fatal("absent member reported set")
	}
}

func TestParameterSetOperationPartialUpdate(t *testing.T) {
	op := spectrometer.NewParameterSetOperationFromJSON(`{"boxcar_width":5}`)
	if !op.BoxcarWidthSet() || op.BoxcarWidth() != 5 {
		t.Fatal("boxcar width not extracted")
	}
	if op.IntegrationTimeSet() || op.AverageTimesSet() {
		t.Fatal("absent fields reported set")
	}
	if !op.IsValid() {
		t.Fatal("every field is optional and the operation must stay valid")
	}
	if got := op.ToJSON(); got != `{"boxcar_width":5}` {
		t.Fatalf("ToJSON = %q", got)
	}
}

func TestParameterSetOperationIntegrationTime(t *testing.T) {
	op := spectrometer.NewParameterSetOperation()
	q := spectrometer.NewTimeQuantity()
	q.SetValue(50)
	q.SetUnit(spectrometer.TimeUnitOf(spectrometer.UnitMicrosecond))
	op.SetIntegrationTime(q)
	if got := op.ToJSON(); got != `{"integration_time":{"unit":"us","value":50}}` {
		t.Fatalf("ToJSON = %q", got)
	}
}

func TestOperationResultDisconnected(t *testing.T) {
	r := spectrometer.NewOperationResultFromJSON(`{"result":"disconnected"}`)
	if r.Result().Value() != spectrometer.ResultDisconnected || !r.IsValid() {
		t.Fatalf("result %q valid %v", r.Result().Value(), r.IsValid())
	}

	r = spectrometer.NewOperationResultFromJSON(`{"result":"serial_RW_failure"}`)
	if r.ResultValid() {
		t.Fatal("serial token accepted by a USB device family")
	}
}
