package menu

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Items []Item `yaml:"items"`
}

// LoadSeed decodes a catalog document. Unknown keys are rejected so a typo
// in the seed fails at boot instead of silently dropping a field.
func LoadSeed(data []byte) ([]Item, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode menu seed: %w", err)
	}

	for i := range f.Items {
		if f.Items[i].Tags == nil {
			f.Items[i].Tags = []string{}
		}
	}

	if err := validateCatalog(f.Items); err != nil {
		return nil, err
	}
	return f.Items, nil
}

// DefaultSeed is the house menu shipped with the binary.
func DefaultSeed() ([]Item, error) {
	return LoadSeed(defaultSeed)
}
