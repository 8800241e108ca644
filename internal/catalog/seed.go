package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedCategory struct {
	Category `yaml:",inline"`
	Noun     string   `yaml:"noun"`
	Images   []string `yaml:"images"`
}

type seedTables struct {
	Suffixes     []string       `yaml:"suffixes"`
	Highlights   []string       `yaml:"highlights"`
	ReturnPolicy string         `yaml:"return_policy"`
	Categories   []seedCategory `yaml:"categories"`
}

func parseSeed(raw []byte) (*seedTables, error) {
	var t seedTables
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	if len(t.Suffixes) == 0 || len(t.Categories) == 0 {
		return nil, fmt.Errorf("parse catalog seed: missing suffixes or categories")
	}
	for _, c := range t.Categories {
		if c.ID == "" || len(c.Brands) == 0 || len(c.Images) == 0 {
			return nil, fmt.Errorf("parse catalog seed: category %q is incomplete", c.ID)
		}
	}
	return &t, nil
}

// defaultSeed is parsed once; the embedded file is part of the binary so a
// failure here is a build defect.
var defaultSeed = func() *seedTables {
	t, err := parseSeed(seedYAML)
	if err != nil {
		panic(err)
	}
	return t
}()

func (t *seedTables) categories() []Category {
	out := make([]Category, 0, len(t.Categories))
	for _, c := range t.Categories {
		out = append(out, c.Category)
	}
	return out
}
