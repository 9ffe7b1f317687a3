// Package render composes the printable output images for a processed
// design: the full-bleed artwork, the cut-line trace, and an annotated
// preview.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dandybouquet/dandy-merch-tools/internal/mask"
)

// Output colors. Transparent pixels stay white underneath so print shops
// that flatten transparency get white stock, not black.
var (
	whiteTransparent = color.NRGBA{R: 255, G: 255, B: 255, A: 0}
	whiteOpaque      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	blackOpaque      = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	grayOpaque       = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

const titleBarHeight = 18

// FullBleed returns the artwork with everything outside the bleed mask
// cleared to transparent. This is the image the print shop actually prints.
func FullBleed(art *image.NRGBA, bleed *mask.Mask) *image.NRGBA {
	out := imaging.Clone(art)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !bleed.At(x, y) {
				out.SetNRGBA(x, y, whiteTransparent)
			}
		}
	}
	return out
}

// CutTrace returns a black-on-transparent silhouette of the cut mask,
// suitable for tracing the cut line in an external vector tool.
func CutTrace(cut *mask.Mask) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, cut.Width(), cut.Height()))
	for y := 0; y < cut.Height(); y++ {
		for x := 0; x < cut.Width(); x++ {
			if cut.At(x, y) {
				out.SetNRGBA(x, y, blackOpaque)
			} else {
				out.SetNRGBA(x, y, whiteTransparent)
			}
		}
	}
	return out
}

// Title formats the preview caption for a design.
func Title(name string, sizeInches, dpi float64) string {
	return fmt.Sprintf("%s (%.1f\", %.0f DPI)", name, sizeInches, dpi)
}

// Preview returns the annotated proof image: artwork with the region
// outside the bleed grayed out, the cut contour drawn in black, and a
// caption bar above.
func Preview(art *image.NRGBA, bleed, contour *mask.Mask, title string) *image.NRGBA {
	base := imaging.Clone(art)
	b := base.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !bleed.At(x, y) {
				base.SetNRGBA(x, y, grayOpaque)
			}
			if contour.At(x, y) {
				base.SetNRGBA(x, y, blackOpaque)
			}
		}
	}

	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h+titleBarHeight))
	draw.Draw(out, image.Rect(0, 0, w, titleBarHeight), image.NewUniform(whiteOpaque), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, titleBarHeight, w, h+titleBarHeight), base, b.Min, draw.Src)

	d := font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(blackOpaque),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 13),
	}
	d.DrawString(title)
	return out
}
