package openapi

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FamilyConfig names one model family and the document it is checked
// against. Excluded components are declared in the catalog but absent
// from the REST document, such as WebSocket-only acknowledgements.
type FamilyConfig struct {
	Name     string   `yaml:"name"`
	Document string   `yaml:"document"`
	Exclude  []string `yaml:"exclude"`
}

// Config drives the modelcheck run.
type Config struct {
	Families []FamilyConfig `yaml:"families"`
}

// LoadConfig reads a modelcheck configuration. Relative document paths
// are resolved against the config file's directory.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("openapi: read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("openapi: parse config: %w", err)
	}
	if len(cfg.Families) == 0 {
		return Config{}, fmt.Errorf("openapi: config %s declares no families", path)
	}

	base := filepath.Dir(path)
	for i, family := range cfg.Families {
		if family.Name == "" {
			return Config{}, fmt.Errorf("openapi: config %s: family %d has no name", path, i)
		}
		if family.Document == "" {
			return Config{}, fmt.Errorf("openapi: config %s: family %q has no document", path, family.Name)
		}
		if !filepath.IsAbs(family.Document) {
			cfg.Families[i].Document = filepath.Join(base, family.Document)
		}
	}
	return cfg, nil
}
