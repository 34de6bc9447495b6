// Package testsupport carries the fixture and golden helpers shared by
// the package tests and the CLI tests.
package testsupport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	intopenapi "github.com/labctrl/go-toolbox-api/internal/openapi"
	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

// LoadDocument reads a schema fixture and parses it with kin-openapi.
func LoadDocument(t *testing.T, path string) *openapi3.T {
	t.Helper()

	doc, err := intopenapi.LoadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// MustParseObject parses a JSON object literal, failing the test on
// anything the lenient wire parser would discard.
func MustParseObject(t *testing.T, text string) wire.JSONObject {
	t.Helper()

	obj := wire.Parse(text)
	if obj == nil {
		t.Fatalf("fixture is not a JSON object: %q", text)
	}
	return obj
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set.
// Returns true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// WriteGolden writes a value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, append(payload, '\n'))
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
