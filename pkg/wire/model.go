package wire

import (
	"bytes"
	"encoding/json"
)

// JSONObject is the parsed JSON tree a model reads from and emits into.
// Values stay raw until a field decoder claims them.
type JSONObject = map[string]json.RawMessage

// Model is the contract every generated wire type satisfies. Transport and
// test code handle any payload type through this interface without knowing
// its field list.
type Model interface {
	// FromJSON parses text and repopulates every field from scratch. A
	// syntax error or a non-object top level behaves like an empty
	// document: all fields end up unset. It never fails loudly.
	FromJSON(text string)
	// FromJSONObject repopulates every field from an already-parsed tree.
	// Passing nil resets the model to its empty state.
	FromJSONObject(obj JSONObject)
	// ToJSON serialises AsJSONObject to compact JSON text.
	ToJSON() string
	// AsJSONObject emits exactly the fields whose inclusion predicate
	// holds: scalars and nested values when set, lists when non-empty.
	AsJSONObject() JSONObject
	// IsSet reports whether the model carries any data at all.
	IsSet() bool
	// IsValid reports whether every required field extracted cleanly.
	// Optional fields never affect it, even when present and malformed.
	IsValid() bool
	// FieldStates exposes the per-field flags for callers that need to
	// tell "absent" apart from "present but malformed".
	FieldStates() []FieldState
}

// FieldState is the introspection record for one field.
type FieldState struct {
	Key      string
	Required bool
	Set      bool
	Valid    bool
}

// InvalidFields returns the wire keys of required fields that did not
// extract cleanly. An empty result means m.IsValid() is true.
func InvalidFields(m Model) []string {
	var keys []string
	for _, st := range m.FieldStates() {
		if st.Required && !st.Valid {
			keys = append(keys, st.Key)
		}
	}
	return keys
}

// Parse converts JSON text into a tree. Malformed input and non-object
// top-level values both yield nil, which FromJSONObject treats as an
// empty document.
func Parse(text string) JSONObject {
	var obj JSONObject
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil
	}
	return obj
}

// TreeOf returns the object tree behind raw, or false when raw is not a
// JSON object.
func TreeOf(raw json.RawMessage) (JSONObject, bool) {
	if IsNull(raw) {
		return nil, false
	}
	var obj JSONObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// IsNull reports whether raw is absent or the JSON null literal.
func IsNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Compact serialises a tree to compact JSON text with deterministic key
// order. An empty tree becomes "{}" so round-trips stay stable.
func Compact(obj JSONObject) string {
	if len(obj) == 0 {
		return "{}"
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return "{}"
	}
	return string(data)
}
