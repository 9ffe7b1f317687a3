// Package order builds print-shop order manifests from processed design
// records and an order configuration file.
package order

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dandybouquet/dandy-merch-tools/internal/design"
)

// Entry is one design's order fields. Nil fields inherit from the cached
// design record first, then from the file-level settings.
type Entry struct {
	Quantity    *int     `yaml:"quantity"`
	Material    *string  `yaml:"material"`
	Laminate    *string  `yaml:"laminate"`
	SizeInches  *float64 `yaml:"size_inches"`
	ResalePrice *float64 `yaml:"resale_price"`
}

// Settings is the file-level section: paths plus default order fields
// applied to every design that leaves them unset.
type Settings struct {
	DesignDir    string `yaml:"design_dir"`
	PricesConfig string `yaml:"prices_config"`
	Defaults     Entry  `yaml:",inline"`
}

// File is a parsed order configuration.
type File struct {
	Path     string
	Root     string
	Settings Settings
	Entries  map[string]Entry
}

// LoadFile reads an order configuration. The design directory and prices
// path resolve relative to the configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read order config: %w", err)
	}
	var raw struct {
		Settings Settings         `yaml:"settings"`
		Order    map[string]Entry `yaml:"order"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse order config %s: %w", path, err)
	}
	if len(raw.Order) == 0 {
		return nil, fmt.Errorf("order config %s: no designs ordered", path)
	}

	root := raw.Settings.DesignDir
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(filepath.Dir(path), root)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("order config %s: not a directory: %s", path, root)
	}

	return &File{Path: path, Root: root, Settings: raw.Settings, Entries: raw.Order}, nil
}

// PricesPath returns the prices file from settings, resolved relative to
// the order configuration, or the fallback when settings name none.
func (f *File) PricesPath(fallback string) string {
	p := f.Settings.PricesConfig
	if p == "" {
		p = fallback
	}
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(f.Path), p)
}

// Item is one fully resolved manifest row.
type Item struct {
	Name        string
	Quantity    int
	Material    string
	Laminate    string
	SizeInches  float64
	ResalePrice float64
}

// Resolve merges every ordered design into an Item, reading the design's
// cached processing record when present. Field precedence is order entry,
// then cached record, then file settings. Designs are returned sorted by
// name. A design missing a required field after all three layers is an
// error.
func (f *File) Resolve() ([]Item, error) {
	names := make([]string, 0, len(f.Entries))
	for name := range f.Entries {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]Item, 0, len(names))
	for _, name := range names {
		entry := f.Entries[name]

		rec, err := loadRecordIfPresent(design.InfoPath(f.Root, name))
		if err != nil {
			return nil, fmt.Errorf("design %s: %w", name, err)
		}
		if entry.SizeInches == nil && rec != nil {
			entry.SizeInches = &rec.SizeInches
		}

		defaults := f.Settings.Defaults
		if entry.Quantity == nil {
			entry.Quantity = defaults.Quantity
		}
		if entry.Material == nil {
			entry.Material = defaults.Material
		}
		if entry.Laminate == nil {
			entry.Laminate = defaults.Laminate
		}
		if entry.SizeInches == nil {
			entry.SizeInches = defaults.SizeInches
		}
		if entry.ResalePrice == nil {
			entry.ResalePrice = defaults.ResalePrice
		}

		item := Item{Name: name}
		switch {
		case entry.Quantity == nil:
			return nil, missingField(name, "quantity")
		case entry.Material == nil:
			return nil, missingField(name, "material")
		case entry.Laminate == nil:
			return nil, missingField(name, "laminate")
		case entry.SizeInches == nil:
			return nil, missingField(name, "size_inches")
		}
		item.Quantity = *entry.Quantity
		item.Material = *entry.Material
		item.Laminate = *entry.Laminate
		item.SizeInches = *entry.SizeInches
		if entry.ResalePrice != nil {
			item.ResalePrice = *entry.ResalePrice
		}
		if item.Quantity < 0 {
			return nil, fmt.Errorf("design %s: quantity must be non-negative, got %d", name, item.Quantity)
		}
		items = append(items, item)
	}
	return items, nil
}

func loadRecordIfPresent(path string) (*design.Record, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return design.LoadRecord(path)
}

func missingField(name, field string) error {
	return fmt.Errorf("design %s: %s not set by order entry, cached record, or settings", name, field)
}
