package validation

import "github.com/labctrl/go-toolbox-api/pkg/wire"

// Specs describes the package's types under their OpenAPI component
// names. Every toolbox server document carries the same two fragments,
// emitted by FastAPI for 422 responses.
func Specs() []wire.TypeSpec {
	return []wire.TypeSpec{
		{
			Name: "ValidationError",
			Fields: []wire.FieldSpec{
				{Key: "loc", Kind: wire.KindList, Required: true, Elem: &wire.FieldSpec{Kind: wire.KindUnion}},
				{Key: "msg", Kind: wire.KindString, Required: true},
				{Key: "type", Kind: wire.KindString, Required: true},
			},
		},
		{
			Name: "HTTPValidationError",
			Fields: []wire.FieldSpec{
				{Key: "detail", Kind: wire.KindList, Elem: &wire.FieldSpec{Kind: wire.KindObject, Ref: "ValidationError"}},
			},
		},
	}
}
