// Package pipeline drives sticker designs from artwork to print-ready
// outputs: cut geometry, canvas fitting, composited images, and the
// per-design record.
package pipeline

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sync"

	"github.com/dandybouquet/dandy-merch-tools/internal/artwork"
	"github.com/dandybouquet/dandy-merch-tools/internal/canvas"
	"github.com/dandybouquet/dandy-merch-tools/internal/cutline"
	"github.com/dandybouquet/dandy-merch-tools/internal/design"
	"github.com/dandybouquet/dandy-merch-tools/internal/mask"
	"github.com/dandybouquet/dandy-merch-tools/internal/render"
)

// Result is the outcome for one design. Err is nil on success; a failed
// design never aborts the rest of the run.
type Result struct {
	Name   string
	Record *design.Record
	Err    error
}

// Filter returns the designs whose names appear in names, preserving
// configuration order. An empty filter keeps everything.
func Filter(designs []design.Design, names []string) []design.Design {
	if len(names) == 0 {
		return designs
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []design.Design
	for _, d := range designs {
		if want[d.Name] {
			out = append(out, d)
		}
	}
	return out
}

// Run processes designs through a fixed-size worker pool and returns one
// Result per design, in input order. Designs share no mutable state, so
// workers need no synchronization beyond the results slots.
func Run(designs []design.Design, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(designs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := range designs {
		wg.Add(1)
		sem <- struct{}{} // Acquire semaphore
		go func(i int, d design.Design) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore
			rec, err := Process(d)
			results[i] = Result{Name: d.Name, Record: rec, Err: err}
		}(i, designs[i])
	}
	wg.Wait()
	return results
}

// Process runs one design end to end and returns its record. The record
// file is written last, so an earlier failure leaves no record for later
// runs to trust.
func Process(d design.Design) (*design.Record, error) {
	fmt.Printf("Processing design: %s\n", d.Name)
	fmt.Printf("  Path: %s\n", d.Paths.Dir)

	fmt.Printf("  Loading art: %s\n", filepath.Base(d.Paths.Art))
	art, err := artwork.Load(d.Paths.Art)
	if err != nil {
		return nil, err
	}
	maskImg := art
	if d.Paths.Mask != d.Paths.Art {
		fmt.Printf("  Loading mask: %s\n", filepath.Base(d.Paths.Mask))
		maskImg, err = artwork.Load(d.Paths.Mask)
		if err != nil {
			return nil, err
		}
	}
	if maskImg.Bounds() != art.Bounds() {
		return nil, fmt.Errorf("mask %dx%d does not match artwork %dx%d",
			maskImg.Bounds().Dx(), maskImg.Bounds().Dy(),
			art.Bounds().Dx(), art.Bounds().Dy())
	}

	if d.WidthInches <= 0 {
		fmt.Printf("  Width not specified, defaulting to %.0f dpi\n", design.DefaultDPI)
	}
	dpi := d.DPI(art.Bounds().Dx())
	fmt.Printf("  DPI = %.0f px/inch\n", dpi)

	params := cutline.Params{
		Thickness:    d.Settings.Thickness * dpi,
		CornerRadius: d.Settings.MinCornerRadius * dpi,
		Bleed:        d.Settings.BleedThickness * dpi,
	}
	fmt.Printf("  Creating cut mask with thickness %.4f\" (%.0f px)\n",
		d.Settings.Thickness, params.Thickness)
	alpha := mask.FromAlpha(maskImg, d.Settings.AlphaThreshold)
	cs, err := cutline.Build(alpha, params)
	if err != nil {
		return nil, err
	}
	fmt.Printf("    Removed %d holes\n", cs.HolesFilled)

	fmt.Printf("  Creating full bleed mask with bleed thickness %g\" (%d px)\n",
		d.Settings.BleedThickness, int(params.Bleed))
	fmt.Printf("  Computing bounding box\n")
	fit, err := canvas.Fit(canvas.Buffers{
		Color:   art,
		Bleed:   cs.Bleed,
		Cut:     cs.Cut,
		Contour: cs.Contour,
	}, dpi, canvas.Catalog(d.Settings.Sizes), color.NRGBA{})
	if err != nil {
		return nil, err
	}
	fmt.Printf("    Full bleed size = %.1f\" (%d px)\n", fit.ArtInches, fit.ArtPixels)
	fmt.Printf("  Placing image into %.1f\" square\n", fit.SizeInches)

	fmt.Printf("  Saving full bleed image: %s\n", filepath.Base(d.Paths.FullBleed))
	if err := artwork.Save(render.FullBleed(fit.Color, fit.Bleed), d.Paths.FullBleed); err != nil {
		return nil, err
	}
	fmt.Printf("  Saving cut mask image: %s\n", filepath.Base(d.Paths.CutMask))
	if err := artwork.Save(render.CutTrace(fit.Cut), d.Paths.CutMask); err != nil {
		return nil, err
	}
	fmt.Printf("  Saving preview: %s\n", filepath.Base(d.Paths.Preview))
	preview := render.Preview(fit.Color, fit.Bleed, fit.Contour,
		render.Title(d.Name, fit.SizeInches, dpi))
	if err := artwork.Save(preview, d.Paths.Preview); err != nil {
		return nil, err
	}

	rec := &design.Record{
		Name:       d.Name,
		DPI:        dpi,
		SizeInches: fit.SizeInches,
		SizePixels: fit.SizePixels,
	}
	fmt.Printf("  Saving %s\n", filepath.Base(d.Paths.Info))
	if err := rec.Save(d.Paths.Info); err != nil {
		return nil, err
	}
	return rec, nil
}
