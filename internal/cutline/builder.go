// Package cutline derives die-cut geometry from an artwork alpha mask: the
// cut mask itself, its one-pixel contour, and the surrounding print bleed.
package cutline

import (
	"fmt"

	"github.com/dandybouquet/dandy-merch-tools/internal/mask"
)

// Params are the cut geometry dimensions in pixels. Callers convert from
// inches using the design's resolved DPI.
type Params struct {
	// Thickness is the sticker border width beyond the artwork edge.
	Thickness float64
	// CornerRadius is the minimum radius for outside corners of the cut
	// line. Zero produces sharp corners a die cutter may reject.
	CornerRadius float64
	// Bleed is the printed margin beyond the cut line.
	Bleed float64
}

// Validate checks that the parameters are usable.
func (p Params) Validate() error {
	if p.Thickness < 0 {
		return fmt.Errorf("cut thickness must be non-negative, got %g", p.Thickness)
	}
	if p.CornerRadius < 0 {
		return fmt.Errorf("corner radius must be non-negative, got %g", p.CornerRadius)
	}
	if p.Bleed < 0 {
		return fmt.Errorf("bleed thickness must be non-negative, got %g", p.Bleed)
	}
	return nil
}

// CutSet holds the derived geometry for one design, all on the artwork's
// pixel grid.
type CutSet struct {
	// Cut is the region the die cutter keeps.
	Cut *mask.Mask
	// Contour is the one-pixel cut line ring just outside Cut.
	Contour *mask.Mask
	// Bleed is Cut grown by the bleed margin; print coverage must reach
	// its edge.
	Bleed *mask.Mask
	// HolesFilled counts the interior negative-space regions swallowed
	// into the cut.
	HolesFilled int
}

// DegenerateMaskError reports artwork whose alpha mask cannot produce cut
// geometry: nothing to cut, or a cut that collapses to nothing.
type DegenerateMaskError struct {
	Stage string
	Err   error
}

func (e *DegenerateMaskError) Error() string {
	return fmt.Sprintf("degenerate %s mask: %v", e.Stage, e.Err)
}

func (e *DegenerateMaskError) Unwrap() error {
	return e.Err
}

// Build derives the cut geometry for one artwork alpha mask.
//
// The cut mask is produced by growing the artwork by thickness plus the
// corner radius and shrinking the result back by the radius. The shrink is
// expressed as expanding the complement. Round-tripping through the corner
// radius rounds every outside corner to at least that radius while leaving
// straight runs of the outline at the plain thickness offset. Interior
// holes in the grown outline are filled before the shrink so stickers come
// out as one solid piece.
func Build(art *mask.Mask, p Params) (*CutSet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if art.Empty() {
		return nil, &DegenerateMaskError{Stage: "alpha", Err: mask.ErrEmptyMask}
	}
	if art.Full() {
		return nil, &DegenerateMaskError{Stage: "alpha", Err: mask.ErrFullMask}
	}

	grown, err := mask.Expand(art, p.Thickness+p.CornerRadius)
	if err != nil {
		return nil, fmt.Errorf("grow art mask: %w", err)
	}
	outside := grown.Invert()
	if outside.Empty() {
		// The grown outline swallowed the whole canvas.
		return nil, &DegenerateMaskError{Stage: "cut", Err: mask.ErrFullMask}
	}

	regions := mask.Regions(outside)
	holes := len(regions) - 1
	if holes > 0 {
		outside = mask.RemoveMinorRegions(outside)
	}

	reshrunk, err := mask.Expand(outside, p.CornerRadius)
	if err != nil {
		return nil, fmt.Errorf("shrink outside mask: %w", err)
	}
	cut := reshrunk.Invert()
	if cut.Empty() {
		return nil, &DegenerateMaskError{Stage: "cut", Err: mask.ErrEmptyMask}
	}

	bleed, err := mask.Expand(cut, p.Bleed)
	if err != nil {
		return nil, fmt.Errorf("grow bleed mask: %w", err)
	}

	return &CutSet{
		Cut:         cut,
		Contour:     cut.Outline(),
		Bleed:       bleed,
		HolesFilled: holes,
	}, nil
}
