package design

import (
	"math"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Thickness != 0.0625 {
		t.Errorf("Thickness = %g, want 0.0625", s.Thickness)
	}
	if s.BleedThickness != 0.0625 {
		t.Errorf("BleedThickness = %g, want 0.0625", s.BleedThickness)
	}
	if s.MinCornerRadius != 0.03125 {
		t.Errorf("MinCornerRadius = %g, want 0.03125", s.MinCornerRadius)
	}
	if s.AlphaThreshold != 100 {
		t.Errorf("AlphaThreshold = %d, want 100", s.AlphaThreshold)
	}
	if s.DesignDir != "." {
		t.Errorf("DesignDir = %q, want %q", s.DesignDir, ".")
	}

	// The stock ladder runs 1" to 10" in half-inch steps.
	if len(s.Sizes) != 19 {
		t.Fatalf("len(Sizes) = %d, want 19", len(s.Sizes))
	}
	for i, size := range s.Sizes {
		want := 1.0 + 0.5*float64(i)
		if math.Abs(size-want) > 1e-9 {
			t.Errorf("Sizes[%d] = %g, want %g", i, size, want)
		}
	}

	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestSettingsApplyLayering(t *testing.T) {
	catalogThickness := 0.2
	designRadius := 0.05

	base := DefaultSettings()
	catalog := base.Apply(Overrides{Thickness: &catalogThickness})
	resolved := catalog.Apply(Overrides{MinCornerRadius: &designRadius})

	if resolved.Thickness != 0.2 {
		t.Errorf("Thickness = %g, want catalog override 0.2", resolved.Thickness)
	}
	if resolved.MinCornerRadius != 0.05 {
		t.Errorf("MinCornerRadius = %g, want design override 0.05", resolved.MinCornerRadius)
	}
	if resolved.BleedThickness != base.BleedThickness {
		t.Errorf("BleedThickness = %g, want inherited default %g", resolved.BleedThickness, base.BleedThickness)
	}

	// A design override beats the catalog value for the same field.
	designThickness := 0.3
	resolved = catalog.Apply(Overrides{Thickness: &designThickness})
	if resolved.Thickness != 0.3 {
		t.Errorf("Thickness = %g, want design override 0.3", resolved.Thickness)
	}

	// Sizes replace wholesale rather than merging.
	resolved = base.Apply(Overrides{Sizes: []float64{2, 4}})
	if len(resolved.Sizes) != 2 || resolved.Sizes[0] != 2 || resolved.Sizes[1] != 4 {
		t.Errorf("Sizes = %v, want [2 4]", resolved.Sizes)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"negative thickness", func(s *Settings) { s.Thickness = -0.1 }},
		{"negative bleed", func(s *Settings) { s.BleedThickness = -0.1 }},
		{"negative radius", func(s *Settings) { s.MinCornerRadius = -0.1 }},
		{"no sizes", func(s *Settings) { s.Sizes = nil }},
		{"zero size entry", func(s *Settings) { s.Sizes = []float64{1, 0} }},
	}
	for _, tt := range tests {
		s := DefaultSettings()
		tt.mutate(&s)
		if err := s.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tt.name)
		}
	}
}

func TestDesignDPI(t *testing.T) {
	d := Design{WidthInches: 3.5}
	if got := d.DPI(1050); got != 300 {
		t.Errorf("DPI(1050) = %g, want 300", got)
	}
	d = Design{WidthInches: 2}
	if got := d.DPI(1050); got != 525 {
		t.Errorf("DPI(1050) = %g, want 525", got)
	}
	d = Design{}
	if got := d.DPI(1050); got != DefaultDPI {
		t.Errorf("unspecified width: DPI = %g, want %g", got, DefaultDPI)
	}
}
