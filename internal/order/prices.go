package order

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PriceEntry maps one sticker size to its per-unit production cost.
type PriceEntry struct {
	Size  float64 `yaml:"size"`
	Price float64 `yaml:"price"`
}

// PriceTable is the size-to-cost list from a prices configuration file.
type PriceTable struct {
	Sizes []PriceEntry `yaml:"sizes"`
}

// LoadPrices reads a prices configuration file.
func LoadPrices(path string) (*PriceTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prices config: %w", err)
	}
	var table PriceTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse prices config %s: %w", path, err)
	}
	return &table, nil
}

// UnitPrice returns the cost for an exact size match, or zero when the
// table has no entry for that size.
func (t *PriceTable) UnitPrice(size float64) float64 {
	price := 0.0
	for _, entry := range t.Sizes {
		if entry.Size == size {
			price = entry.Price
		}
	}
	return price
}
