// Package canvas fits processed sticker buffers onto square print stock:
// it picks the smallest catalog size the bleed extent fits into and centers
// every buffer on a canvas of that size.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/dandybouquet/dandy-merch-tools/internal/mask"
	"github.com/dandybouquet/dandy-merch-tools/pkg/geometry"
)

// Catalog is the list of available square stock sizes in inches. Order does
// not matter; selection always scans ascending.
type Catalog []float64

// SizingError reports artwork that exceeds every catalog size.
type SizingError struct {
	ArtInches float64
	MaxInches float64
}

func (e *SizingError) Error() string {
	return fmt.Sprintf("no available size fits %.1f\" artwork (largest is %.1f\")",
		e.ArtInches, e.MaxInches)
}

// Select returns the smallest catalog size strictly greater than artInches.
// An exact match is not usable: cut geometry needs slack inside the stock
// square, so equal sizes bump up to the next entry.
func (c Catalog) Select(artInches float64) (float64, error) {
	sorted := make([]float64, len(c))
	copy(sorted, c)
	sort.Float64s(sorted)
	for _, size := range sorted {
		if artInches < size {
			return size, nil
		}
	}
	largest := 0.0
	if len(sorted) > 0 {
		largest = sorted[len(sorted)-1]
	}
	return 0, &SizingError{ArtInches: artInches, MaxInches: largest}
}

// Buffers are the per-design rasters sharing one pixel grid.
type Buffers struct {
	Color   *image.NRGBA
	Bleed   *mask.Mask
	Cut     *mask.Mask
	Contour *mask.Mask
}

// FitResult holds the selected stock size and every buffer cropped to the
// bleed extent and centered on the square canvas. All rasters measure
// SizePixels on both axes.
type FitResult struct {
	SizeInches float64
	SizePixels int
	ArtInches  float64
	ArtPixels  int
	Color      *image.NRGBA
	Bleed      *mask.Mask
	Cut        *mask.Mask
	Contour    *mask.Mask
}

// Fit measures the bleed mask's largest connected region, selects the
// smallest catalog size that fits it, and re-centers all buffers on the
// square target canvas. The color buffer pads with fill; masks pad with
// false. When the remainder is odd the extra padding pixel goes after the
// centered content.
func Fit(b Buffers, dpi float64, catalog Catalog, fill color.Color) (*FitResult, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("dpi must be positive, got %g", dpi)
	}
	region, ok := mask.LargestRegion(b.Bleed)
	if !ok {
		return nil, errors.New("bleed mask has no regions to fit")
	}
	bbox := region.BBox

	artPixels := bbox.MaxDim()
	artInches := float64(artPixels) / dpi
	sizeInches, err := catalog.Select(artInches)
	if err != nil {
		return nil, err
	}
	sizePixels := int(sizeInches * dpi)

	background := imaging.New(sizePixels, sizePixels, fill)
	colorOut := imaging.PasteCenter(background, imaging.Crop(b.Color, bbox.ImageRect()))

	return &FitResult{
		SizeInches: sizeInches,
		SizePixels: sizePixels,
		ArtInches:  artInches,
		ArtPixels:  artPixels,
		Color:      colorOut,
		Bleed:      cropPadMask(b.Bleed, bbox, sizePixels),
		Cut:        cropPadMask(b.Cut, bbox, sizePixels),
		Contour:    cropPadMask(b.Contour, bbox, sizePixels),
	}, nil
}

// cropPadMask crops a mask to bbox and centers it on a size x size grid,
// using the same floor-divided leading pad as imaging.PasteCenter so masks
// stay registered with the color raster.
func cropPadMask(m *mask.Mask, bbox geometry.RectInt, size int) *mask.Mask {
	out := mask.New(size, size)
	x0 := (size - bbox.Width) / 2
	y0 := (size - bbox.Height) / 2
	for y := 0; y < bbox.Height; y++ {
		for x := 0; x < bbox.Width; x++ {
			if m.At(bbox.X+x, bbox.Y+y) {
				out.Set(x0+x, y0+y, true)
			}
		}
	}
	return out
}
