package wire

import (
	"encoding/json"
	"testing"
)

func TestFieldExtractStates(t *testing.T) {
	cases := []struct {
		name  string
		obj   JSONObject
		set   bool
		valid bool
		want  string
	}{
		{name: "absent", obj: JSONObject{}},
		{name: "null", obj: JSONObject{"status": json.RawMessage(`null`)}},
		{name: "malformed", obj: JSONObject{"status": json.RawMessage(`12`)}},
		{name: "well formed", obj: JSONObject{"status": json.RawMessage(`"ok"`)}, set: true, valid: true, want: "ok"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f Field[string]
			f.Extract(tc.obj, "status", DecodeString)
			if f.IsSet() != tc.set || f.IsValid() != tc.valid {
				t.Fatalf("flags = set:%v valid:%v; want set:%v valid:%v", f.IsSet(), f.IsValid(), tc.set, tc.valid)
			}
			if f.Get() != tc.want {
				t.Fatalf("value = %q, want %q", f.Get(), tc.want)
			}
		})
	}
}

func TestFieldExtractDiscardsPriorState(t *testing.T) {
	var f Field[string]
	f.Extract(JSONObject{"status": json.RawMessage(`"ok"`)}, "status", DecodeString)
	if !f.IsSet() {
		t.Fatal("extraction did not set the field")
	}

	// A re-parse against a malformed value resets to unset, not to the
	// previous value.
	f.Extract(JSONObject{"status": json.RawMessage(`7`)}, "status", DecodeString)
	if f.IsSet() || f.IsValid() || f.Get() != "" {
		t.Fatalf("stale state survived re-parse: set:%v valid:%v value:%q", f.IsSet(), f.IsValid(), f.Get())
	}
}

func TestFieldSetDoesNotTouchValidity(t *testing.T) {
	var f Field[string]
	f.Set("manual")
	if !f.IsSet() {
		t.Fatal("Set must mark the field set")
	}
	if f.IsValid() {
		t.Fatal("Set must not mark the field valid; only extraction does")
	}

	f.Extract(JSONObject{"k": json.RawMessage(`"wire"`)}, "k", DecodeString)
	f.Set("manual again")
	if !f.IsValid() {
		t.Fatal("Set must leave a previously earned valid flag alone")
	}
}
