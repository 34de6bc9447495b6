package compose

import (
	"context"
	"errors"
	"testing"

	"github.com/labctrl/go-toolbox-api/pkg/shutter"
	"github.com/labctrl/go-toolbox-api/pkg/stage"
	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	inputPos     int
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func specByName(t *testing.T, specs []wire.TypeSpec, name string) wire.TypeSpec {
	t.Helper()
	for _, s := range specs {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("no spec named %q", name)
	return wire.TypeSpec{}
}

func resolver(specs []wire.TypeSpec) Resolver {
	return func(ref string) (wire.TypeSpec, bool) {
		for _, s := range specs {
			if s.Name == ref {
				return s, true
			}
		}
		return wire.TypeSpec{}, false
	}
}

func TestComposeEnumField(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{2}}
	c := New(driver, resolver(shutter.Specs()))

	obj, err := c.Compose(context.Background(), specByName(t, shutter.Specs(), "ShutterChannelOperation"))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := wire.Compact(obj); got != `{"action":"SWITCH"}` {
		t.Fatalf("payload = %q", got)
	}

	op := shutter.NewChannelOperation()
	op.FromJSONObject(obj)
	if !op.IsValid() {
		t.Fatal("composed payload failed model extraction")
	}
}

func TestComposeListCollectsUntilDeclined(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"1", "2"},
		confirm: []bool{true, true, false},
	}
	c := New(driver, resolver(shutter.Specs()))

	obj, err := c.Compose(context.Background(), specByName(t, shutter.Specs(), "ShutterChannelList"))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := wire.Compact(obj); got != `{"shutter_list":["1","2"]}` {
		t.Fatalf("payload = %q", got)
	}
}

func TestComposeEmptyListStaysOffTheWire(t *testing.T) {
	driver := &stubDriver{confirm: []bool{false}}
	c := New(driver, resolver(shutter.Specs()))

	obj, err := c.Compose(context.Background(), specByName(t, shutter.Specs(), "ShutterChannelList"))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := wire.Compact(obj); got != "{}" {
		t.Fatalf("payload = %q", got)
	}
}

func TestComposeNestedOptionalFields(t *testing.T) {
	// StageOperation: include velocity only. The nested StageVelocity
	// prompts for its number value and unit enum.
	driver := &stubDriver{
		confirm:   []bool{false, false, true, false},
		inputs:    []string{"1.5"},
		selectIdx: []int{2},
	}
	c := New(driver, resolver(stage.Specs()))

	obj, err := c.Compose(context.Background(), specByName(t, stage.Specs(), "StageOperation"))
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := wire.Compact(obj); got != `{"velocity":{"unit":"mm/s","value":1.5}}` {
		t.Fatalf("payload = %q", got)
	}

	op := stage.NewOperation()
	op.FromJSONObject(obj)
	if !op.Velocity().IsSet() || !op.Velocity().IsValid() {
		t.Fatal("composed nested payload failed model extraction")
	}
}

func TestComposeUnresolvedReference(t *testing.T) {
	driver := &stubDriver{confirm: []bool{true}}
	c := New(driver, func(string) (wire.TypeSpec, bool) { return wire.TypeSpec{}, false })

	spec := wire.TypeSpec{
		Name: "Broken",
		Fields: []wire.FieldSpec{
			{Key: "part", Kind: wire.KindObject, Ref: "Missing"},
		},
	}
	if _, err := c.Compose(context.Background(), spec); !errors.Is(err, ErrUnresolvedRef) {
		t.Fatalf("err = %v, want ErrUnresolvedRef", err)
	}
}

func TestComposeUnionLocation(t *testing.T) {
	driver := &stubDriver{
		confirm:   []bool{true, true, false},
		selectIdx: []int{0, 1},
		inputs:    []string{"body", "3", "field required", "value_error.missing"},
	}
	c := New(driver, resolver(nil))

	spec := wire.TypeSpec{
		Name: "ValidationError",
		Fields: []wire.FieldSpec{
			{Key: "loc", Kind: wire.KindList, Required: true, Elem: &wire.FieldSpec{Kind: wire.KindUnion}},
			{Key: "msg", Kind: wire.KindString, Required: true},
			{Key: "type", Kind: wire.KindString, Required: true},
		},
	}
	obj, err := c.Compose(context.Background(), spec)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := wire.Compact(obj); got != `{"loc":["body",3],"msg":"field required","type":"value_error.missing"}` {
		t.Fatalf("payload = %q", got)
	}
}
