package spectrometer

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// StatusReport mirrors the ServerStatusReport schema.
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

// NewResourceNames returns an empty list.
func NewResourceNames() *ResourceNames {
	return &ResourceNames{}
}

// NewResourceNamesFromJSON builds a list and populates it from text.
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

// WavelengthsReport mirrors the SpectrometerWavelengthsReport schema:
// the wavelength axis, one entry per pixel, in nanometers.
type WavelengthsReport struct {
	wavelengths wire.Field[[]float64]
}

var _ wire.Model = (*WavelengthsReport)(nil)

// NewWavelengthsReport returns an empty report.
func NewWavelengthsReport() *WavelengthsReport {
	return &WavelengthsReport{}
}

// NewWavelengthsReportFromJSON builds a report and populates it from text.
func NewWavelengthsReportFromJSON(text string) *WavelengthsReport {
	r := NewWavelengthsReport()
	r.FromJSON(text)
	return r
}

func (r *WavelengthsReport) FromJSON(text string) {
	r.FromJSONObject(wire.Parse(text))
}

func (r *WavelengthsReport) FromJSONObject(obj wire.JSONObject) {
	r.wavelengths.Extract(obj, "wavelengths", wire.ListDecoder(wire.DecodeNumber))
}

func (r *WavelengthsReport) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if len(r.wavelengths.Get()) > 0 {
		obj["wavelengths"] = wire.EncodeNumbers(r.wavelengths.Get())
	}
	return obj
}

func (r *WavelengthsReport) ToJSON() string {
	return wire.Compact(r.AsJSONObject())
}

// Wavelengths returns a copy of the axis; mutating it does not change
// what the report emits.
func (r *WavelengthsReport) Wavelengths() []float64 {
	return append([]float64(nil), r.wavelengths.Get()...)
}

func (r *WavelengthsReport) SetWavelengths(v []float64) { r.wavelengths.Set(v) }
func (r *WavelengthsReport) WavelengthsSet() bool       { return r.wavelengths.IsSet() }
func (r *WavelengthsReport) WavelengthsValid() bool     { return r.wavelengths.IsValid() }

func (r *WavelengthsReport) IsSet() bool   { return len(r.wavelengths.Get()) > 0 }
func (r *WavelengthsReport) IsValid() bool { return r.wavelengths.IsValid() }

func (r *WavelengthsReport) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "wavelengths", Required: true, Set: r.wavelengths.IsSet(), Valid: r.wavelengths.IsValid()},
	}
}

// SpectrumReport mirrors the SpectrometerSpectrumReport schema: raw
// detector counts, one entry per pixel, aligned with the wavelength
// axis.
type SpectrumReport struct {
	spectrum wire.Field[[]int64]
}

var _ wire.Model = (*SpectrumReport)(nil)

// NewSpectrumReport returns an empty report.
func NewSpectrumReport() *SpectrumReport {
	return &SpectrumReport{}
}

// NewSpectrumReportFromJSON builds a report and populates it from text.
func NewSpectrumReportFromJSON(text string) *SpectrumReport {
	r := NewSpectrumReport()
	r.FromJSON(text)
	return r
}

func (r *SpectrumReport) FromJSON(text string) {
	r.FromJSONObject(wire.Parse(text))
}

func (r *SpectrumReport) FromJSONObject(obj wire.JSONObject) {
	r.spectrum.Extract(obj, "spectrum", wire.ListDecoder(wire.DecodeInteger))
}

func (r *SpectrumReport) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if len(r.spectrum.Get()) > 0 {
		obj["spectrum"] = wire.EncodeIntegers(r.spectrum.Get())
	}
	return obj
}

func (r *SpectrumReport) ToJSON() string {
	return wire.Compact(r.AsJSONObject())
}

// Spectrum returns a copy of the counts; mutating it does not change
// what the report emits.
func (r *SpectrumReport) Spectrum() []int64 {
	return append([]int64(nil), r.spectrum.Get()...)
}

func (r *SpectrumReport) SetSpectrum(v []int64) { r.spectrum.Set(v) }
func (r *SpectrumReport) SpectrumSet() bool     { return r.spectrum.IsSet() }
func (r *SpectrumReport) SpectrumValid() bool   { return r.spectrum.IsValid() }

func (r *SpectrumReport) IsSet() bool   { return len(r.spectrum.Get()) > 0 }
func (r *SpectrumReport) IsValid() bool { return r.spectrum.IsValid() }

func (r *SpectrumReport) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "spectrum", Required: true, Set: r.spectrum.IsSet(), Valid: r.spectrum.IsValid()},
	}
}
