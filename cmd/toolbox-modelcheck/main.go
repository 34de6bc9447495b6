package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	intopenapi "github.com/labctrl/go-toolbox-api/internal/openapi"
	"github.com/labctrl/go-toolbox-api/pkg/catalog"
	"github.com/labctrl/go-toolbox-api/pkg/wire"
)

func main() {
	configPath := flag.String("config", "schemas/modelcheck.yaml", "modelcheck configuration file")
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config path]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nCheck the generated model specs against the toolbox server documents.\n\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := intopenapi.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "modelcheck: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	failed := false
	for _, family := range cfg.Families {
		specs, err := familySpecs(family)
		if err != nil {
			fmt.Fprintf(os.Stderr, "modelcheck: %v\n", err)
			os.Exit(1)
		}
		doc, err := intopenapi.LoadFile(ctx, family.Document)
		if err != nil {
			fmt.Fprintf(os.Stderr, "modelcheck: %v\n", err)
			os.Exit(1)
		}
		mismatches := intopenapi.Check(doc, specs)
		for _, m := range mismatches {
			fmt.Fprintf(os.Stderr, "%s: %s\n", family.Document, m)
		}
		if len(mismatches) > 0 {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func familySpecs(fc intopenapi.FamilyConfig) ([]wire.TypeSpec, error) {
	entries := catalog.Entries(catalog.Family(fc.Name))
	if entries == nil {
		return nil, fmt.Errorf("unknown family %q", fc.Name)
	}
	skip := make(map[string]bool, len(fc.Exclude))
	for _, name := range fc.Exclude {
		skip[name] = true
	}
	var specs []wire.TypeSpec
	for _, e := range entries {
		if skip[e.Spec.Name] {
			continue
		}
		specs = append(specs, e.Spec)
	}
	return specs, nil
}
