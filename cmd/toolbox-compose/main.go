package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/labctrl/go-toolbox-api/pkg/catalog"
	"github.com/labctrl/go-toolbox-api/pkg/compose"
	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

func main() {
	familyName := flag.String("family", string(catalog.FamilyShutter), "model family to compose for")
	typeName := flag.String("type", "", "component name; prompted when omitted")
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-family name] [-type component]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nCompose a toolbox request payload interactively and print it as compact JSON.\n\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx := context.Background()
	family := catalog.Family(*familyName)
	entries := catalog.Entries(family)
	if entries == nil {
		fmt.Fprintf(os.Stderr, "compose: unknown family %q (known: %v)\n", *familyName, catalog.Families())
		os.Exit(1)
	}

	driver := compose.NewSurveyDriver()
	name := *typeName
	if name == "" {
		options := make([]string, 0, len(entries))
		for _, e := range entries {
			options = append(options, e.Spec.Name)
		}
		idx, err := driver.Select(ctx, compose.SelectConfig{Message: "Component", Options: options})
		if err != nil {
			fail(err)
		}
		name = options[idx]
	}

	entry, err := catalog.Lookup(family, name)
	if err != nil {
		fail(err)
	}

	composer := compose.New(driver, func(ref string) (wire.TypeSpec, bool) {
		e, err := catalog.Lookup(family, ref)
		if err != nil {
			return wire.TypeSpec{}, false
		}
		return e.Spec, true
	})
	obj, err := composer.Compose(ctx, entry.Spec)
	if err != nil {
		fail(err)
	}

	// Run the payload through the generated type so the printed JSON
	// follows the same inclusion rules the clients use, and so missing
	// required fields get flagged before the payload is pasted anywhere.
	m := entry.New()
	m.FromJSONObject(obj)
	if invalid := wire.InvalidFields(m); len(invalid) > 0 {
		fmt.Fprintf(os.Stderr, "compose: warning: required fields not satisfied: %v\n", invalid)
	}
	fmt.Fprintln(os.Stdout, m.ToJSON())
}

func fail(err error) {
	if errors.Is(err, compose.ErrAborted) {
		fmt.Fprintln(os.Stderr, "compose: aborted")
		os.Exit(130)
	}
	fmt.Fprintf(os.Stderr, "compose: %v\n", err)
	os.Exit(1)
}
