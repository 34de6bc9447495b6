package validation

import (
	"encoding/json"
	"strconv"

	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

// Location is one step of a validation error path. The schema declares it
// as anyOf string or integer: an object key while descending a body, an
// array index while descending a list.
type Location struct {
	key   string
	index int64
	isKey bool
	set   bool
	valid bool
}

// LocationKey returns a set, valid Location naming an object key.
func LocationKey(key string) Location {
	return Location{key: key, isKey: true, set: true, valid: true}
}

// LocationIndex returns a set, valid Location naming an array index.
func LocationIndex(index int64) Location {
	return Location{index: index, set: true, valid: true}
}

// Key returns the object key variant. The second result is false when the
// location is unset or holds an index.
func (l Location) Key() (string, bool) {
	return l.key, l.set && l.isKey
}

// Index returns the array index variant. The second result is false when
// the location is unset or holds a key.
func (l Location) Index() (int64, bool) {
	return l.index, l.set && !l.isKey
}

// IsSet reports whether either variant was assigned or extracted.
func (l Location) IsSet() bool {
	return l.set
}

// IsValid reports whether the most recent extraction matched one of the
// two variants.
func (l Location) IsValid() bool {
	return l.valid
}

// String renders the step for diagnostics: keys verbatim, indices in
// brackets.
func (l Location) String() string {
	switch {
	case !l.set:
		return ""
	case l.isKey:
		return l.key
	default:
		return "[" + strconv.FormatInt(l.index, 10) + "]"
	}
}

// FromJSONValue extracts the location from a raw JSON value. A string
// becomes the key variant, an integral number the index variant; anything
// else resets the location and fails.
func (l *Location) FromJSONValue(raw json.RawMessage) bool {
	if s, ok := wire.DecodeString(raw); ok {
		*l = LocationKey(s)
		return true
	}
	if n, ok := wire.DecodeInteger(raw); ok {
		*l = LocationIndex(n)
		return true
	}
	*l = Location{}
	return false
}

// JSONValue emits whichever variant is held.
func (l Location) JSONValue() json.RawMessage {
	if l.isKey {
		return wire.EncodeString(l.key)
	}
	return wire.EncodeInteger(l.index)
}
