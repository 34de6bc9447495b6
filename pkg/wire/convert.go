package wire

import "encoding/json"

// DecodeString accepts only a JSON string.
func DecodeString(raw json.RawMessage) (string, bool) {
	if IsNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// DecodeNumber accepts any JSON number.
func DecodeNumber(raw json.RawMessage) (float64, bool) {
	if IsNull(raw) {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, true
}

// DecodeInteger accepts a JSON number with no fractional part.
func DecodeInteger(raw json.RawMessage) (int64, bool) {
	if IsNull(raw) {
		return 0, false
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, true
}

// DecodeBoolean accepts only a JSON boolean.
func DecodeBoolean(raw json.RawMessage) (bool, bool) {
	if IsNull(raw) {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, false
	}
	return b, true
}

// ListDecoder lifts an element decoder over a JSON array. Extraction fails
// as a whole when the value is not an array or any element fails; partial
// lists are never produced.
func ListDecoder[T any](elem Decoder[T]) Decoder[[]T] {
	return func(raw json.RawMessage) ([]T, bool) {
		if IsNull(raw) {
			return nil, false
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, false
		}
		out := make([]T, 0, len(items))
		for _, item := range items {
			v, ok := elem(item)
			if !ok {
				return nil, false
			}
			out = append(out, v)
		}
		return out, true
	}
}

// ModelDecoder builds a nested model from a raw JSON object. Conversion
// fails only when the value is not an object; the nested model's own
// required-field validity stays an independent property the caller can
// query separately.
func ModelDecoder[M Model](newModel func() M) Decoder[M] {
	return func(raw json.RawMessage) (M, bool) {
		m := newModel()
		tree, ok := TreeOf(raw)
		if !ok {
			return m, false
		}
		m.FromJSONObject(tree)
		return m, true
	}
}

// EncodeString emits a JSON string.
func EncodeString(v string) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

// EncodeNumber emits a JSON number.
func EncodeNumber(v float64) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

// EncodeInteger emits a JSON integer.
func EncodeInteger(v int64) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

// EncodeBoolean emits a JSON boolean.
func EncodeBoolean(v bool) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

// EncodeStrings emits a JSON array of strings.
func EncodeStrings(items []string) json.RawMessage {
	if items == nil {
		items = []string{}
	}
	data, _ := json.Marshal(items)
	return data
}

// EncodeNumbers emits a JSON array of numbers.
func EncodeNumbers(items []float64) json.RawMessage {
	if items == nil {
		items = []float64{}
	}
	data, _ := json.Marshal(items)
	return data
}

// EncodeIntegers emits a JSON array of integers.
func EncodeIntegers(items []int64) json.RawMessage {
	if items == nil {
		items = []int64{}
	}
	data, _ := json.Marshal(items)
	return data
}

// EncodeModel emits a nested model through its own inclusion rules.
func EncodeModel(m Model) json.RawMessage {
	return json.RawMessage(m.ToJSON())
}

// EncodeModels emits a JSON array of nested models.
func EncodeModels[M Model](items []M) json.RawMessage {
	parts := make([]json.RawMessage, 0, len(items))
	for _, m := range items {
		parts = append(parts, EncodeModel(m))
	}
	data, _ := json.Marshal(parts)
	return data
}
