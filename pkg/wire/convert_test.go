package wire

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeString(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "string", raw: `"ok"`, want: "ok", ok: true},
		{name: "empty string", raw: `""`, want: "", ok: true},
		{name: "number", raw: `1`, ok: false},
		{name: "boolean", raw: `true`, ok: false},
		{name: "null", raw: `null`, ok: false},
		{name: "object", raw: `{}`, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DecodeString(json.RawMessage(tc.raw))
			if ok != tc.ok || got != tc.want {
				t.Fatalf("DecodeString(%s) = %q, %v; want %q, %v", tc.raw, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestDecodeNumber(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
		ok   bool
	}{
		{name: "integer", raw: `42`, want: 42, ok: true},
		{name: "fraction", raw: `2.54`, want: 2.54, ok: true},
		{name: "negative", raw: `-1e3`, want: -1000, ok: true},
		{name: "string", raw: `"42"`, ok: false},
		{name: "null", raw: `null`, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DecodeNumber(json.RawMessage(tc.raw))
			if ok != tc.ok || got != tc.want {
				t.Fatalf("DecodeNumber(%s) = %v, %v; want %v, %v", tc.raw, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestDecodeInteger(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int64
		ok   bool
	}{
		{name: "integer", raw: `114514`, want: 114514, ok: true},
		{name: "negative", raw: `-7`, want: -7, ok: true},
		{name: "fraction rejected", raw: `1.5`, ok: false},
		{name: "string rejected", raw: `"1"`, ok: false},
		{name: "null", raw: `null`, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DecodeInteger(json.RawMessage(tc.raw))
			if ok != tc.ok || got != tc.want {
				t.Fatalf("DecodeInteger(%s) = %v, %v; want %v, %v", tc.raw, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestDecodeBoolean(t *testing.T) {
	if got, ok := DecodeBoolean(json.RawMessage(`true`)); !ok || !got {
		t.Fatalf("DecodeBoolean(true) = %v, %v", got, ok)
	}
	if _, ok := DecodeBoolean(json.RawMessage(`"true"`)); ok {
		t.Fatal("string coerced to boolean")
	}
	if _, ok := DecodeBoolean(json.RawMessage(`null`)); ok {
		t.Fatal("null coerced to boolean")
	}
}

func TestListDecoderWholeListFails(t *testing.T) {
	dec := ListDecoder(DecodeString)

	got, ok := dec(json.RawMessage(`["a","b"]`))
	if !ok {
		t.Fatal("well-formed list rejected")
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	if _, ok := dec(json.RawMessage(`["a",2]`)); ok {
		t.Fatal("list with one bad element must fail as a whole")
	}
	if _, ok := dec(json.RawMessage(`["a",null]`)); ok {
		t.Fatal("null element must fail the list")
	}
	if _, ok := dec(json.RawMessage(`"a"`)); ok {
		t.Fatal("non-array must fail")
	}

	got, ok = dec(json.RawMessage(`[]`))
	if !ok || len(got) != 0 {
		t.Fatalf("empty list = %v, %v; want [], true", got, ok)
	}
}

func TestNumericListRoundTrip(t *testing.T) {
	numbers, ok := ListDecoder(DecodeNumber)(json.RawMessage(`[348.5,350.25,352]`))
	if !ok {
		t.Fatal("well-formed number list rejected")
	}
	if got := string(EncodeNumbers(numbers)); got != `[348.5,350.25,352]` {
		t.Fatalf("EncodeNumbers = %s", got)
	}

	integers, ok := ListDecoder(DecodeInteger)(json.RawMessage(`[0,1024,65535]`))
	if !ok {
		t.Fatal("well-formed integer list rejected")
	}
	if got := string(EncodeIntegers(integers)); got != `[0,1024,65535]` {
		t.Fatalf("EncodeIntegers = %s", got)
	}

	if _, ok := ListDecoder(DecodeInteger)(json.RawMessage(`[1,2.5]`)); ok {
		t.Fatal("fractional element must fail an integer list")
	}
	if got := string(EncodeNumbers(nil)); got != `[]` {
		t.Fatalf("EncodeNumbers(nil) = %s", got)
	}
}

func TestParse(t *testing.T) {
	obj := Parse(`{"status":"ok"}`)
	if len(obj) != 1 {
		t.Fatalf("Parse returned %d keys, want 1", len(obj))
	}
	if Parse(`{"status":`) != nil {
		t.Fatal("syntax error must yield nil tree")
	}
	if Parse(`[1,2]`) != nil {
		t.Fatal("non-object top level must yield nil tree")
	}
	if Parse(`null`) != nil {
		t.Fatal("null top level must yield nil tree")
	}
}

func TestCompact(t *testing.T) {
	if got := Compact(nil); got != "{}" {
		t.Fatalf("Compact(nil) = %q", got)
	}
	obj := JSONObject{
		"b": EncodeInteger(2),
		"a": EncodeString("x"),
	}
	// Key order is deterministic, so serialisation is stable.
	if got := Compact(obj); got != `{"a":"x","b":2}` {
		t.Fatalf("Compact = %q", got)
	}
}
