package shutter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/labctrl/go-toolbox-api/pkg/shutter"
	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

func TestStatusReportEmpty(t *testing.T) {
	r := shutter.NewStatusReport()
	if r.IsSet() {
		t.Fatal("empty report claims to carry data")
	}
	if r.IsValid() {
		t.Fatal("empty report claims validity with its required field unset")
	}
	if got := r.ToJSON(); got != "{}" {
		t.Fatalf("ToJSON = %q, want {}", got)
	}
}

func TestStatusReportFromJSON(t *testing.T) {
	r := shutter.NewStatusReportFromJSON(`{"status":"ok"}`)
	if r.Status() != "ok" {
		t.Fatalf("Status = %q", r.Status())
	}
	if !r.StatusSet() || !r.StatusValid() {
		t.Fatalf("flags set:%v valid:%v", r.StatusSet(), r.StatusValid())
	}
	if !r.IsValid() {
		t.Fatal("report with its required field extracted must be valid")
	}
}

func TestStatusReportMalformedPayloads(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{name: "syntax error", text: `{"status":`},
		{name: "wrong type", text: `{"status":123}`},
		{name: "explicit null", text: `{"status":null}`},
		{name: "top level array", text: `["status"]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := shutter.NewStatusReportFromJSON(tc.text)
			if r.StatusSet() || r.StatusValid() || r.IsValid() {
				t.Fatalf("payload %q leaked into field state", tc.text)
			}
			if got := r.ToJSON(); got != "{}" {
				t.Fatalf("ToJSON = %q after bad payload", got)
			}
		})
	}
}

func TestStatusReportReparseDiscardsState(t *testing.T) {
	r := shutter.NewStatusReportFromJSON(`{"status":"ok"}`)
	r.FromJSON(`{"status":123}`)
	if r.StatusSet() || r.Status() != "" {
		t.Fatalf("prior parse survived: set:%v value:%q", r.StatusSet(), r.Status())
	}
}

func TestChannelListEmptyListOmitted(t *testing.T) {
	// Key present with a well-formed empty array: the field is set and
	// valid, but the empty list stays off the wire.
	l := shutter.NewChannelListFromJSON(`{"shutter_list":[]}`)
	if !l.ShutterListSet() || !l.ShutterListValid() {
		t.Fatalf("flags set:%v valid:%v", l.ShutterListSet(), l.ShutterListValid())
	}
	if got := l.ToJSON(); got != "{}" {
		t.Fatalf("ToJSON = %q, want {}", got)
	}
	if l.IsSet() {
		t.Fatal("IsSet must follow the non-empty predicate for lists")
	}
}

func TestChannelListRoundTrip(t *testing.T) {
	l := shutter.NewChannelListFromJSON(`{"shutter_list":["1","2"]}`)
	if diff := cmp.Diff([]string{"1", "2"}, l.ShutterList()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	first := l.ToJSON()
	again := shutter.NewChannelListFromJSON(first).ToJSON()
	if first != again {
		t.Fatalf("round trip drifted: %q vs %q", first, again)
	}
}

func TestChannelListGetterReturnsCopy(t *testing.T) {
	l := shutter.NewChannelListFromJSON(`{"shutter_list":["1","2"]}`)
	first := l.ToJSON()
	names := l.ShutterList()
	names[0] = "tampered"
	if got := l.ToJSON(); got != first {
		t.Fatalf("caller mutation leaked into the list: %q vs %q", first, got)
	}
}

func TestChannelListPartialElementFailure(t *testing.T) {
	l := shutter.NewChannelListFromJSON(`{"shutter_list":["1",2]}`)
	if l.ShutterListSet() || l.ShutterListValid() {
		t.Fatal("list with a bad element must fail extraction as a whole")
	}
	if len(l.ShutterList()) != 0 {
		t.Fatalf("partial list produced: %v", l.ShutterList())
	}
}

func TestChannelOperationEnum(t *testing.T) {
	op := shutter.NewChannelOperationFromJSON(`{"action":"SWITCH"}`)
	if op.Action().Value() != shutter.ActionSwitch {
		t.Fatalf("Action = %q", op.Action().Value())
	}
	if !op.ActionSet() || !op.ActionValid() || !op.IsValid() {
		t.Fatalf("flags set:%v valid:%v object valid:%v", op.ActionSet(), op.ActionValid(), op.IsValid())
	}
	if got := op.ToJSON(); got != `{"action":"SWITCH"}` {
		t.Fatalf("ToJSON = %q", got)
	}
}

func TestChannelOperationRejectsNonEnumValues(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{name: "number for enum", text: `{"action":123}`},
		{name: "unknown token", text: `{"action":"TOGGLE"}`},
		{name: "nested object", text: `{"action":{"value":"ON"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op := shutter.NewChannelOperationFromJSON(tc.text)
			if op.ActionSet() {
				t.Fatal("failed extraction left the field set")
			}
			if op.IsValid() {
				t.Fatal("object valid despite failed required field")
			}
		})
	}
}

func TestChannelOperationSetterEmission(t *testing.T) {
	op := shutter.NewChannelOperation()
	op.SetAction(shutter.ActionOf(shutter.ActionOn))
	if got := op.ToJSON(); got != `{"action":"ON"}` {
		t.Fatalf("ToJSON = %q", got)
	}
	// The setter marks the container flag but never recomputes validity.
	if !op.ActionSet() || op.ActionValid() {
		t.Fatalf("flags set:%v valid:%v after setter", op.ActionSet(), op.ActionValid())
	}

	// A blank Action is set-on-the-container but unset itself, so the
	// field stays off the wire.
	op = shutter.NewChannelOperation()
	op.SetAction(shutter.NewAction())
	if got := op.ToJSON(); got != "{}" {
		t.Fatalf("blank action emitted: %q", got)
	}
}

func TestStateReportValidityDerivation(t *testing.T) {
	r := shutter.NewStateReportFromJSON(`{"shutter_name":"1","state":"OFF"}`)
	if !r.IsValid() {
		t.Fatal("both required fields extracted, object must be valid")
	}

	r = shutter.NewStateReportFromJSON(`{"shutter_name":"1"}`)
	if r.IsValid() {
		t.Fatal("missing required state must invalidate the object")
	}
	if !r.ShutterNameValid() || r.StateValid() {
		t.Fatalf("per-field flags name:%v state:%v", r.ShutterNameValid(), r.StateValid())
	}
	if diff := cmp.Diff([]string{"state"}, wire.InvalidFields(r)); diff != "" {
		t.Fatalf("InvalidFields (-want +got):\n%s", diff)
	}
}

func TestCommandResultOptionalID(t *testing.T) {
	r := shutter.NewCommandResultFromJSON(`{"result":"OK"}`)
	if !r.IsValid() || r.IDSet() {
		t.Fatalf("valid:%v idSet:%v", r.IsValid(), r.IDSet())
	}

	r = shutter.NewCommandResultFromJSON(`{"result":"OK","id":114514}`)
	if r.ID() != 114514 || !r.IDValid() {
		t.Fatalf("id = %d valid:%v", r.ID(), r.IDValid())
	}
	if got := r.ToJSON(); got != `{"id":114514,"result":"OK"}` {
		t.Fatalf("ToJSON = %q", got)
	}

	// A malformed optional field never invalidates the object.
	r = shutter.NewCommandResultFromJSON(`{"result":"OK","id":"114514"}`)
	if r.IDSet() || r.IDValid() {
		t.Fatal("malformed id leaked into field state")
	}
	if !r.IsValid() {
		t.Fatal("optional field failure must not invalidate the object")
	}
}

func TestRoundTripStability(t *testing.T) {
	payloads := []string{
		`{"status":"ok"}`,
		`{"shutter_list":["1","2","3"]}`,
		`{"action":"OFF"}`,
		`{"shutter_name":"2","state":"ON"}`,
		`{"id":7,"result":"warn_no_action"}`,
	}
	models := []func() wire.Model{
		func() wire.Model { return shutter.NewStatusReport() },
		func() wire.Model { return shutter.NewChannelList() },
		func() wire.Model { return shutter.NewChannelOperation() },
		func() wire.Model { return shutter.NewStateReport() },
		func() wire.Model { return shutter.NewCommandResult() },
	}
	for i, text := range payloads {
		m := models[i]()
		m.FromJSON(text)
		first := m.ToJSON()
		m2 := models[i]()
		m2.FromJSON(first)
		if got := m2.ToJSON(); got != first {
			t.Fatalf("payload %q drifted to %q", first, got)
		}
	}
}
