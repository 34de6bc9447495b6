package wire

import (
	"encoding/json"
	"testing"
)

func TestEnumFromJSONValue(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		ok   bool
		want string
	}{
		{name: "permitted token", raw: `"ON"`, ok: true, want: "ON"},
		{name: "another token", raw: `"SWITCH"`, ok: true, want: "SWITCH"},
		{name: "unknown token", raw: `"TOGGLE"`},
		{name: "case sensitive", raw: `"on"`},
		{name: "number", raw: `123`},
		{name: "null", raw: `null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := MakeEnum("ON", "OFF", "SWITCH")
			ok := e.FromJSONValue(json.RawMessage(tc.raw))
			if ok != tc.ok {
				t.Fatalf("FromJSONValue(%s) = %v, want %v", tc.raw, ok, tc.ok)
			}
			if e.Value() != tc.want || e.IsSet() != tc.ok || e.IsValid() != tc.ok {
				t.Fatalf("enum state value:%q set:%v valid:%v after %s", e.Value(), e.IsSet(), e.IsValid(), tc.raw)
			}
		})
	}
}

func TestEnumRejectionClearsPriorValue(t *testing.T) {
	e := MakeEnum("ON", "OFF")
	if !e.FromJSONValue(json.RawMessage(`"ON"`)) {
		t.Fatal("setup extraction failed")
	}
	if e.FromJSONValue(json.RawMessage(`"BROKEN"`)) {
		t.Fatal("unknown token accepted")
	}
	if e.Value() != "" || e.IsSet() {
		t.Fatalf("prior value retained after rejection: %q", e.Value())
	}
	// The token set survives the reset.
	if got := e.Tokens(); len(got) != 2 {
		t.Fatalf("token set lost: %v", got)
	}
}

func TestEnumAssignIsTrusted(t *testing.T) {
	e := MakeEnum("ON", "OFF")
	e.Assign("anything")
	if !e.IsSet() {
		t.Fatal("Assign must mark the enum set")
	}
	if e.IsValid() {
		t.Fatal("Assign must not validate")
	}
	if string(e.JSONValue()) != `"anything"` {
		t.Fatalf("JSONValue = %s", e.JSONValue())
	}
}
