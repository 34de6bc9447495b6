package wire

import "encoding/json"

// Enum is a closed-vocabulary string carrying its own set/valid flags, so
// enumeration values obey the same presence rules as any nested model
// value. Concrete enum types embed it and supply their token set through
// their constructors.
type Enum struct {
	value  string
	tokens []string
	set    bool
	valid  bool
}

// MakeEnum returns an unset Enum restricted to the given tokens.
func MakeEnum(tokens ...string) Enum {
	return Enum{tokens: tokens}
}

// Value returns the current token, empty when unset.
func (e Enum) Value() string {
	return e.value
}

// Tokens returns the permitted token set.
func (e Enum) Tokens() []string {
	return append([]string(nil), e.tokens...)
}

// Assign stores a token and marks the enum set. Like field setters it is
// trusted and does not validate against the token set.
func (e *Enum) Assign(token string) {
	e.value = token
	e.set = true
}

// IsSet reports whether a token was assigned or extracted.
func (e Enum) IsSet() bool {
	return e.set
}

// IsValid reports whether the most recent extraction matched the token set.
func (e Enum) IsValid() bool {
	return e.valid
}

// FromJSONValue extracts the enum from a raw JSON value. Anything other
// than a JSON string naming a permitted token resets the enum and fails;
// unrecognised tokens are rejected, never coerced to a default.
func (e *Enum) FromJSONValue(raw json.RawMessage) bool {
	s, ok := DecodeString(raw)
	if ok {
		ok = false
		for _, t := range e.tokens {
			if s == t {
				ok = true
				break
			}
		}
	}
	if !ok {
		e.value = ""
		e.set = false
		e.valid = false
		return false
	}
	e.value = s
	e.set = true
	e.valid = true
	return true
}

// JSONValue emits the token as a JSON string.
func (e Enum) JSONValue() json.RawMessage {
	return EncodeString(e.value)
}
