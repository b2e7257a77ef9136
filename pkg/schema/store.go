package schema

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	//go:embed data/schemas-v1.yaml
	catalogData []byte

	catalogOnce sync.Once
	cachedReg   *Registry
	cachedErr   error
)

// catalog is the on-disk shape of a schema catalog file.
type catalog struct {
	Schemas []*Schema `yaml:"schemas"`
}

// DefaultRegistry returns the registry built from the embedded schema catalog.
// Because the catalog is embedded at build time, it is parsed once and the
// in-memory registry is reused for the lifetime of the process.
func DefaultRegistry() (*Registry, error) {
	catalogOnce.Do(func() {
		cachedReg, cachedErr = parseCatalog(catalogData)
	})

	if cachedErr != nil {
		return nil, fmt.Errorf("embedded schema catalog: %w", cachedErr)
	}
	return cachedReg, nil
}

// LoadFile builds a registry from an external YAML catalog, allowing new table
// schemas to be added without recompiling.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema catalog: %w", err)
	}
	reg, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("schema catalog %s: %w", path, err)
	}
	return reg, nil
}

func parseCatalog(data []byte) (*Registry, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if len(c.Schemas) == 0 {
		return nil, fmt.Errorf("catalog defines no schemas")
	}
	return NewRegistry(c.Schemas...)
}
