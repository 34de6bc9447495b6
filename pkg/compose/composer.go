// Package compose builds request payloads interactively by walking a
// declared type spec and prompting for each field. The resulting object
// obeys the same inclusion rules the generated types use: optional
// fields the user skips and empty lists stay off the wire.
package compose

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

// Resolver maps a component reference to its declared spec. The catalog
// provides one per family.
type Resolver func(ref string) (wire.TypeSpec, bool)

// Composer walks type specs and collects field values through a
// PromptDriver.
type Composer struct {
	driver  PromptDriver
	resolve Resolver
}

// New returns a Composer using the given driver and resolver.
func New(driver PromptDriver, resolve Resolver) *Composer {
	return &Composer{driver: driver, resolve: resolve}
}

// Compose prompts for each field of the spec and returns the assembled
// object. Optional fields are gated behind a confirmation; declining one
// leaves it out entirely.
func (c *Composer) Compose(ctx context.Context, spec wire.TypeSpec) (wire.JSONObject, error) {
	obj := wire.JSONObject{}
	for _, field := range spec.Fields {
		if !field.Required {
			include, err := c.driver.Confirm(ctx, ConfirmConfig{
				Message: fmt.Sprintf("Include optional field %q?", field.Key),
			})
			if err != nil {
				return nil, err
			}
			if !include {
				continue
			}
		}
		raw, err := c.composeField(ctx, spec.Name, field)
		if err != nil {
			return nil, err
		}
		if raw != nil {
			obj[field.Key] = raw
		}
	}
	return obj, nil
}

func (c *Composer) composeField(ctx context.Context, component string, field wire.FieldSpec) (json.RawMessage, error) {
	label := component + "." + field.Key
	switch field.Kind {
	case wire.KindString:
		out, err := c.driver.Input(ctx, InputConfig{Message: label + " (string)"})
		if err != nil {
			return nil, err
		}
		return wire.EncodeString(out), nil
	case wire.KindNumber:
		out, err := c.driver.Input(ctx, InputConfig{
			Message:   label + " (number)",
			Validator: validNumber,
		})
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseFloat(out, 64)
		if err != nil {
			return nil, fmt.Errorf("compose: %s: %w", label, err)
		}
		return wire.EncodeNumber(n), nil
	case wire.KindInteger:
		out, err := c.driver.Input(ctx, InputConfig{
			Message:   label + " (integer)",
			Validator: validInteger,
		})
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(out, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("compose: %s: %w", label, err)
		}
		return wire.EncodeInteger(n), nil
	case wire.KindBoolean:
		out, err := c.driver.Confirm(ctx, ConfirmConfig{Message: label + "?"})
		if err != nil {
			return nil, err
		}
		return wire.EncodeBoolean(out), nil
	case wire.KindEnum:
		idx, err := c.driver.Select(ctx, SelectConfig{
			Message: label,
			Options: field.Enum,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(field.Enum) {
			return nil, fmt.Errorf("compose: %s: selection out of range", label)
		}
		return wire.EncodeString(field.Enum[idx]), nil
	case wire.KindList:
		return c.composeList(ctx, component, field)
	case wire.KindObject:
		nested, ok := c.resolve(field.Ref)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedRef, field.Ref)
		}
		obj, err := c.Compose(ctx, nested)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("compose: %s: %w", label, err)
		}
		return data, nil
	case wire.KindUnion:
		return c.composeUnion(ctx, label)
	}
	return nil, fmt.Errorf("compose: %s: unhandled kind %q", label, field.Kind)
}

// composeList collects elements until the user declines to add more. An
// empty list is returned as nil so it stays off the wire.
func (c *Composer) composeList(ctx context.Context, component string, field wire.FieldSpec) (json.RawMessage, error) {
	elem := wire.FieldSpec{Kind: wire.KindString}
	if field.Elem != nil {
		elem = *field.Elem
	}
	elem.Key = field.Key + "[]"

	var items []json.RawMessage
	for {
		more, err := c.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Add an element to %q?", field.Key),
		})
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		raw, err := c.composeField(ctx, component, elem)
		if err != nil {
			return nil, err
		}
		items = append(items, raw)
	}
	if len(items) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("compose: %s.%s: %w", component, field.Key, err)
	}
	return data, nil
}

func (c *Composer) composeUnion(ctx context.Context, label string) (json.RawMessage, error) {
	idx, err := c.driver.Select(ctx, SelectConfig{
		Message: label,
		Options: []string{"object key (string)", "array index (integer)"},
	})
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		out, err := c.driver.Input(ctx, InputConfig{Message: label + " (string)"})
		if err != nil {
			return nil, err
		}
		return wire.EncodeString(out), nil
	case 1:
		out, err := c.driver.Input(ctx, InputConfig{
			Message:   label + " (integer)",
			Validator: validInteger,
		})
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(out, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("compose: %s: %w", label, err)
		}
		return wire.EncodeInteger(n), nil
	}
	return nil, fmt.Errorf("compose: %s: selection out of range", label)
}

func validNumber(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	return nil
}

func validInteger(s string) error {
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("not an integer: %q", s)
	}
	return nil
}
