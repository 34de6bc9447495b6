package catalog_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/labctrl/go-toolbox-api/pkg/catalog"
	"github.com/labctrl/go-toolbox-api/pkg/testsupport"
)

func TestEveryEntryHasSpecAndConstructor(t *testing.T) {
	for _, f := range catalog.Families() {
		entries := catalog.Entries(f)
		if len(entries) == 0 {
			t.Fatalf("family %q has no entries", f)
		}
		for _, e := range entries {
			if e.Spec.Name == "" {
				t.Fatalf("family %q carries an unnamed spec", f)
			}
			if e.New == nil {
				t.Fatalf("%s/%s has no constructor", f, e.Spec.Name)
			}
			m := e.New()
			if m.IsSet() {
				t.Fatalf("%s/%s constructor returned a non-empty model", f, e.Spec.Name)
			}
			if got := m.ToJSON(); got != "{}" {
				t.Fatalf("%s/%s fresh model ToJSON = %q", f, e.Spec.Name, got)
			}
		}
	}
}

func TestEntriesSortedAndDistinct(t *testing.T) {
	for _, f := range catalog.Families() {
		entries := catalog.Entries(f)
		for i := 1; i < len(entries); i++ {
			if entries[i-1].Spec.Name >= entries[i].Spec.Name {
				t.Fatalf("family %q entries out of order at %q", f, entries[i].Spec.Name)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	e, err := catalog.Lookup(catalog.FamilyShutter, "ShutterStateReport")
	if err != nil {
		t.Fatal(err)
	}
	if got := e.Spec.Required(); len(got) != 2 || got[0] != "shutter_name" || got[1] != "state" {
		t.Fatalf("required keys = %v", got)
	}

	if _, err := catalog.Lookup(catalog.FamilyStage, "ShutterStateReport"); err == nil {
		t.Fatal("cross-family lookup succeeded")
	}
}

func TestValidationFragmentsPresentEverywhere(t *testing.T) {
	for _, f := range catalog.Families() {
		for _, name := range []string{"ValidationError", "HTTPValidationError"} {
			if _, err := catalog.Lookup(f, name); err != nil {
				t.Fatalf("family %q missing %s: %v", f, name, err)
			}
		}
	}
}

func TestInventoryGolden(t *testing.T) {
	inventory := map[string][]string{}
	for _, f := range catalog.Families() {
		for _, e := range catalog.Entries(f) {
			inventory[string(f)] = append(inventory[string(f)], e.Spec.Name)
		}
	}
	payload, err := json.MarshalIndent(inventory, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	payload = append(payload, '\n')

	golden := filepath.Join("testdata", "inventory.golden.json")
	if testsupport.WriteMaybeGolden(t, golden, payload) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := testsupport.CompareGolden(want, string(payload)); diff != "" {
		t.Fatalf("inventory drifted (-want +got):\n%s", diff)
	}
}

func TestFieldStatesMatchSpecKeys(t *testing.T) {
	for _, f := range catalog.Families() {
		for _, e := range catalog.Entries(f) {
			states := e.New().FieldStates()
			if len(states) != len(e.Spec.Fields) {
				t.Fatalf("%s/%s reports %d field states for %d declared fields",
					f, e.Spec.Name, len(states), len(e.Spec.Fields))
			}
			for _, s := range states {
				fs, ok := e.Spec.Field(s.Key)
				if !ok {
					t.Fatalf("%s/%s reports undeclared key %q", f, e.Spec.Name, s.Key)
				}
				if fs.Required != s.Required {
					t.Fatalf("%s/%s key %q required mismatch: spec %v states %v",
						f, e.Spec.Name, s.Key, fs.Required, s.Required)
				}
			}
		}
	}
}
