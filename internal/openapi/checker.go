package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

// Mismatch records one point where a declared model spec and the OpenAPI
// document disagree.
type Mismatch struct {
	Component string
	Location  string
	Message   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s -> %s", m.Component, m.Location, m.Message)
}

// Check walks each declared spec against the document's component
// schemas and reports every disagreement, sorted for stable output. An
// empty result means the models mirror the document.
func Check(doc *openapi3.T, specs []wire.TypeSpec) []Mismatch {
	var out []Mismatch
	add := func(component, location, format string, args ...any) {
		out = append(out, Mismatch{
			Component: component,
			Location:  location,
			Message:   fmt.Sprintf(format, args...),
		})
	}

	for _, spec := range specs {
		ref, ok := doc.Components.Schemas[spec.Name]
		if !ok {
			add(spec.Name, "components.schemas", "component not documented")
			continue
		}
		sch := ref.Value
		if sch == nil {
			add(spec.Name, "components.schemas", "component schema is empty")
			continue
		}
		if !sch.Type.Is(openapi3.TypeObject) {
			add(spec.Name, "type", "declared type is not object")
			continue
		}

		checkRequired(spec, sch, add)

		for _, field := range spec.Fields {
			prop, ok := sch.Properties[field.Key]
			if !ok {
				add(spec.Name, "properties."+field.Key, "property not documented")
				continue
			}
			checkField(spec.Name, "properties."+field.Key, field, prop, add)
		}
		for key := range sch.Properties {
			if _, ok := spec.Field(key); !ok {
				add(spec.Name, "properties."+key, "property not modelled")
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Component == out[j].Component {
			if out[i].Location == out[j].Location {
				return out[i].Message < out[j].Message
			}
			return out[i].Location < out[j].Location
		}
		return out[i].Component < out[j].Component
	})
	return out
}

func checkRequired(spec wire.TypeSpec, sch *openapi3.Schema, add func(string, string, string, ...any)) {
	documented := make(map[string]bool, len(sch.Required))
	for _, key := range sch.Required {
		documented[key] = true
	}
	declared := make(map[string]bool)
	for _, key := range spec.Required() {
		declared[key] = true
		if !documented[key] {
			add(spec.Name, "required."+key, "required in model, optional in document")
		}
	}
	for _, key := range sch.Required {
		if !declared[key] {
			add(spec.Name, "required."+key, "required in document, optional in model")
		}
	}
}

func checkField(component, location string, field wire.FieldSpec, ref *openapi3.SchemaRef, add func(string, string, string, ...any)) {
	sch := ref.Value
	if sch == nil {
		add(component, location, "property schema is empty")
		return
	}

	switch field.Kind {
	case wire.KindString:
		if !sch.Type.Is(openapi3.TypeString) {
			add(component, location, "modelled as string, documented as %s", typeName(sch))
		}
	case wire.KindNumber:
		if !sch.Type.Is(openapi3.TypeNumber) {
			add(component, location, "modelled as number, documented as %s", typeName(sch))
		}
	case wire.KindInteger:
		if !sch.Type.Is(openapi3.TypeInteger) {
			add(component, location, "modelled as integer, documented as %s", typeName(sch))
		}
	case wire.KindBoolean:
		if !sch.Type.Is(openapi3.TypeBoolean) {
			add(component, location, "modelled as boolean, documented as %s", typeName(sch))
		}
	case wire.KindEnum:
		checkEnumField(component, location, field, ref, add)
	case wire.KindList:
		if !sch.Type.Is(openapi3.TypeArray) {
			add(component, location, "modelled as list, documented as %s", typeName(sch))
			return
		}
		if sch.Items == nil {
			add(component, location+".items", "array items undocumented")
			return
		}
		if field.Elem != nil {
			checkField(component, location+".items", *field.Elem, sch.Items, add)
		}
	case wire.KindObject:
		if got := refTarget(ref.Ref); got != field.Ref {
			add(component, location, "modelled as reference to %s, documented as %s", field.Ref, refOrType(ref))
		}
	case wire.KindUnion:
		checkUnionField(component, location, sch, add)
	default:
		add(component, location, "unhandled model kind %q", field.Kind)
	}
}

func checkEnumField(component, location string, field wire.FieldSpec, ref *openapi3.SchemaRef, add func(string, string, string, ...any)) {
	if got := refTarget(ref.Ref); got != field.Ref {
		add(component, location, "modelled as reference to %s, documented as %s", field.Ref, refOrType(ref))
		return
	}
	sch := ref.Value
	if !sch.Type.Is(openapi3.TypeString) {
		add(component, location, "enum base type is not string")
		return
	}
	documented := enumTokens(sch)
	declared := append([]string(nil), field.Enum...)
	sort.Strings(documented)
	sort.Strings(declared)
	if strings.Join(documented, "\x00") != strings.Join(declared, "\x00") {
		add(component, location, "token set mismatch: model %v, document %v", declared, documented)
	}
}

func checkUnionField(component, location string, sch *openapi3.Schema, add func(string, string, string, ...any)) {
	var variants []string
	for _, variant := range sch.AnyOf {
		if variant.Value != nil {
			variants = append(variants, typeName(variant.Value))
		}
	}
	sort.Strings(variants)
	if strings.Join(variants, ",") != "integer,string" {
		add(component, location, "modelled as string or integer union, documented variants %v", variants)
	}
}

func enumTokens(sch *openapi3.Schema) []string {
	var tokens []string
	for _, v := range sch.Enum {
		if s, ok := v.(string); ok {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

func refTarget(ref string) string {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}

func refOrType(ref *openapi3.SchemaRef) string {
	if ref.Ref != "" {
		return refTarget(ref.Ref)
	}
	if ref.Value != nil {
		return "inline " + typeName(ref.Value)
	}
	return "nothing"
}

func typeName(sch *openapi3.Schema) string {
	if sch.Type == nil {
		return "untyped"
	}
	return strings.Join(*sch.Type, " or ")
}
