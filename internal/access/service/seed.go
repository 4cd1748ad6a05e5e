package service

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aussiebroadwan/access/internal/access/domain"
)

// LoadSeedFile reads a YAML seed. Unknown fields are rejected so typos do not
// silently drop grants.
func LoadSeedFile(path string) (domain.Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Seed{}, fmt.Errorf("read seed file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var seed domain.Seed
	if err := dec.Decode(&seed); err != nil {
		return domain.Seed{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return seed, nil
}
