// Package mask provides binary pixel masks and the distance-field and
// region operations used to derive sticker cut geometry from artwork alpha.
package mask

import (
	"image"
)

// Mask is a binary raster over a fixed-size pixel grid. Pixels are addressed
// by (x, y) with the origin at the top-left, matching image coordinates.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// New creates an all-false mask of the given dimensions.
func New(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// FromAlpha builds a mask from the alpha channel of an image. A pixel is set
// when its alpha value is strictly greater than the threshold, so a fully
// transparent image with threshold 0 still produces an empty mask.
func FromAlpha(img *image.NRGBA, threshold uint8) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		row := img.Pix[(y+b.Min.Y-img.Rect.Min.Y)*img.Stride:]
		for x := 0; x < m.width; x++ {
			alpha := row[(x+b.Min.X-img.Rect.Min.X)*4+3]
			if alpha > threshold {
				m.bits[y*m.width+x] = true
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// At reports whether the pixel at (x, y) is set. Out-of-bounds reads
// return false.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Set assigns the pixel at (x, y). Out-of-bounds writes are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.bits[y*m.width+x] = v
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	out := New(m.width, m.height)
	copy(out.bits, m.bits)
	return out
}

// Invert returns a new mask with every pixel flipped.
func (m *Mask) Invert() *Mask {
	out := New(m.width, m.height)
	for i, v := range m.bits {
		out.bits[i] = !v
	}
	return out
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.bits {
		if v {
			n++
		}
	}
	return n
}

// Full reports whether every pixel is set.
func (m *Mask) Full() bool {
	for _, v := range m.bits {
		if !v {
			return false
		}
	}
	return len(m.bits) > 0
}

// Empty reports whether no pixel is set.
func (m *Mask) Empty() bool {
	for _, v := range m.bits {
		if v {
			return false
		}
	}
	return true
}

// Equal reports whether two masks have identical dimensions and pixels.
func (m *Mask) Equal(other *Mask) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i, v := range m.bits {
		if v != other.bits[i] {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every set pixel of m is also set in other.
// Masks of different dimensions are never subsets.
func (m *Mask) SubsetOf(other *Mask) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i, v := range m.bits {
		if v && !other.bits[i] {
			return false
		}
	}
	return true
}

// Dilate returns the mask grown by one pixel using a cross-shaped
// footprint: a pixel is set when it or any of its 4-neighbors is set.
func (m *Mask) Dilate() *Mask {
	out := m.Clone()
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.bits[y*m.width+x] {
				continue
			}
			if m.At(x-1, y) || m.At(x+1, y) || m.At(x, y-1) || m.At(x, y+1) {
				out.bits[y*m.width+x] = true
			}
		}
	}
	return out
}

// Outline returns the one-pixel ring immediately outside the mask: the
// pixels added by a single cross dilation. Pixels of the mask itself are
// never part of the outline.
func (m *Mask) Outline() *Mask {
	out := New(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.bits[y*m.width+x] {
				continue
			}
			if m.At(x-1, y) || m.At(x+1, y) || m.At(x, y-1) || m.At(x, y+1) {
				out.bits[y*m.width+x] = true
			}
		}
	}
	return out
}
