package wire

// Kind is the semantic type of a field as declared by the API schema.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindEnum    Kind = "enum"
	KindList    Kind = "list"
	KindObject  Kind = "object"
	// KindUnion covers anyOf fragments such as the validation-error
	// location, which accepts either a string or an integer.
	KindUnion Kind = "union"
)

// FieldSpec describes one declared field: its wire key, semantic kind, and
// whether the schema marks it required. Enum fields carry their token set,
// list fields their element spec, and object/enum fields the component
// schema they reference.
type FieldSpec struct {
	Key      string
	Kind     Kind
	Required bool
	Enum     []string
	Elem     *FieldSpec
	Ref      string
}

// TypeSpec describes one generated type under its OpenAPI component name.
// Tooling uses these to check the hand-maintained Go types against the
// documents they mirror and to drive payload composition.
type TypeSpec struct {
	Name   string
	Fields []FieldSpec
}

// Field returns the spec for a wire key.
func (t TypeSpec) Field(key string) (FieldSpec, bool) {
	for _, f := range t.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Required lists the wire keys the schema marks required, in declaration
// order.
func (t TypeSpec) Required() []string {
	var keys []string
	for _, f := range t.Fields {
		if f.Required {
			keys = append(keys, f.Key)
		}
	}
	return keys
}
