// Package design resolves sticker design configuration: catalog-level
// settings, per-design overrides, file paths, and the per-design record
// written after processing.
package design

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DefaultDPI applies when a design does not specify its printed width.
const DefaultDPI = 300.0

// Settings holds the fully resolved processing parameters for one design.
// All lengths are inches; conversion to pixels happens once the DPI is
// known.
type Settings struct {
	Thickness       float64   `yaml:"thickness"`
	BleedThickness  float64   `yaml:"bleed_thickness"`
	MinCornerRadius float64   `yaml:"min_corner_radius"`
	AlphaThreshold  uint8     `yaml:"alpha_threshold"`
	DesignDir       string    `yaml:"design_dir"`
	Sizes           []float64 `yaml:"sizes"`
}

// DefaultSettings returns the hardcoded defaults: a 1/16" cut border and
// bleed, 1/32" minimum corner radius, and square stock from 1" to 10" in
// half-inch steps.
func DefaultSettings() Settings {
	sizes := make([]float64, 19)
	floats.Span(sizes, 1, 10)
	return Settings{
		Thickness:       0.0625,
		BleedThickness:  0.0625,
		MinCornerRadius: 0.03125,
		AlphaThreshold:  100,
		DesignDir:       ".",
		Sizes:           sizes,
	}
}

// Validate checks that the resolved settings are usable.
func (s Settings) Validate() error {
	if s.Thickness < 0 {
		return fmt.Errorf("thickness must be non-negative, got %g", s.Thickness)
	}
	if s.BleedThickness < 0 {
		return fmt.Errorf("bleed_thickness must be non-negative, got %g", s.BleedThickness)
	}
	if s.MinCornerRadius < 0 {
		return fmt.Errorf("min_corner_radius must be non-negative, got %g", s.MinCornerRadius)
	}
	if len(s.Sizes) == 0 {
		return fmt.Errorf("sizes must list at least one stock size")
	}
	for _, size := range s.Sizes {
		if size <= 0 {
			return fmt.Errorf("stock sizes must be positive, got %g", size)
		}
	}
	return nil
}

// Overrides carries optional parameter overrides from one configuration
// layer. Nil fields inherit from the layer below; per-design entries also
// carry the design-specific fields (width, art, mask).
type Overrides struct {
	Thickness       *float64  `yaml:"thickness"`
	BleedThickness  *float64  `yaml:"bleed_thickness"`
	MinCornerRadius *float64  `yaml:"min_corner_radius"`
	AlphaThreshold  *uint8    `yaml:"alpha_threshold"`
	DesignDir       *string   `yaml:"design_dir"`
	Sizes           []float64 `yaml:"sizes"`

	// Per-design only.
	Width *float64 `yaml:"width"`
	Art   string   `yaml:"art"`
	Mask  string   `yaml:"mask"`
}

// Apply returns a copy of s with every non-nil override field replaced.
func (s Settings) Apply(o Overrides) Settings {
	out := s
	if o.Thickness != nil {
		out.Thickness = *o.Thickness
	}
	if o.BleedThickness != nil {
		out.BleedThickness = *o.BleedThickness
	}
	if o.MinCornerRadius != nil {
		out.MinCornerRadius = *o.MinCornerRadius
	}
	if o.AlphaThreshold != nil {
		out.AlphaThreshold = *o.AlphaThreshold
	}
	if o.DesignDir != nil {
		out.DesignDir = *o.DesignDir
	}
	if o.Sizes != nil {
		out.Sizes = o.Sizes
	}
	return out
}
