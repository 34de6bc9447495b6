// Package openapi loads the toolbox server documents and checks the
// hand-maintained model specs against them. The generated types under
// pkg/ mirror components.schemas entries; this package is how drift
// between the two gets caught.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadData parses an OpenAPI document from raw bytes using kin-openapi.
func LoadData(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document declares no component schemas")
	}
	return doc, nil
}

// LoadFile reads and parses an OpenAPI document from disk.
func LoadFile(ctx context.Context, path string) (*openapi3.T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: read document: %w", err)
	}
	doc, err := LoadData(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: %s: %w", path, err)
	}
	return doc, nil
}
