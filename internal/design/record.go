package design

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Record is the per-design processing result persisted beside the design
// artwork. The order tool reads it back to price and size manifest rows
// without reprocessing the artwork.
type Record struct {
	Name       string  `yaml:"name"`
	DPI        float64 `yaml:"dpi"`
	SizeInches float64 `yaml:"size_inches"`
	SizePixels int     `yaml:"size_pixels"`
}

// LoadRecord reads a previously written design record.
func LoadRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse record %s: %w", path, err)
	}
	return &r, nil
}

// Save writes the record through a temp file and rename, so a crashed run
// can never leave a truncated record that a later run mistakes for a
// complete one.
func (r *Record) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
