package shop

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/cui/internal/config"
	cuierrors "github.com/alexisbeaulieu97/cui/pkg/errors"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// DefaultCatalog returns the built-in coffee catalog.
func DefaultCatalog() Catalog {
	c, err := ParseCatalog("catalog.yaml", builtinCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog file. An empty path returns the built-in
// catalog.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, cuierrors.NewParseError(path, 0, err)
	}
	return ParseCatalog(path, data)
}

// ParseCatalog decodes and validates catalog YAML. Variant IDs must be
// unique across the catalog.
func ParseCatalog(path string, data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, cuierrors.NewParseError(path, config.ExtractLine(err), err)
	}

	if err := config.GetValidator().Struct(c); err != nil {
		return Catalog{}, config.ConvertValidationError(err)
	}

	seen := make(map[string]bool)
	for i, p := range c.Products {
		for j, v := range p.Variants {
			if seen[v.ID] {
				field := fmt.Sprintf("products[%d].variants[%d].id", i, j)
				return Catalog{}, cuierrors.NewValidationError(field, "duplicate variant id "+v.ID, nil)
			}
			seen[v.ID] = true
		}
	}
	return c, nil
}
