package validation

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// HTTPError mirrors the HTTPValidationError envelope a server answers a
// 422 with: an optional list of Error records under detail.
type HTTPError struct {
	detail wire.Field[[]*Error]
}

var _ wire.Model = (*HTTPError)(nil)

// NewHTTPError returns an empty envelope.
func NewHTTPError() *HTTPError {
	return &HTTPError{}
}

// NewHTTPErrorFromJSON builds an envelope and populates it from text.
func NewHTTPErrorFromJSON(text string) *HTTPError {
	h := NewHTTPError()
	h.FromJSON(text)
	return h
}

func (h *HTTPError) FromJSON(text string) {
	h.FromJSONObject(wire.Parse(text))
}

func (h *HTTPError) FromJSONObject(obj wire.JSONObject) {
	h.detail.Extract(obj, "detail", wire.ListDecoder(wire.ModelDecoder(NewError)))
}

func (h *HTTPError) AsJSONObject() wire.JSONObject {
	obj := wire.JSONObject{}
	if len(h.detail.Get()) > 0 {
		obj["detail"] = wire.EncodeModels(h.detail.Get())
	}
	return obj
}

func (h *HTTPError) ToJSON() string {
	return wire.Compact(h.AsJSONObject())
}

// Detail returns a copy of the list; mutating it does not change what
// the envelope emits. The elements are shared.
func (h *HTTPError) Detail() []*Error {
	return append([]*Error(nil), h.detail.Get()...)
}

func (h *HTTPError) SetDetail(v []*Error) { h.detail.Set(v) }
func (h *HTTPError) DetailSet() bool      { return h.detail.IsSet() }
func (h *HTTPError) DetailValid() bool    { return h.detail.IsValid() }

func (h *HTTPError) IsSet() bool {
	return len(h.detail.Get()) > 0
}

// IsValid is unconditionally true: detail is the envelope's only field
// and it is optional.
func (h *HTTPError) IsValid() bool {
	return true
}

func (h *HTTPError) FieldStates() []wire.FieldState {
	return []wire.FieldState{
		{Key: "detail", Required: false, Set: h.detail.IsSet(), Valid: h.detail.IsValid()},
	}
}
