package mask

import (
	"image"

	"github.com/dandybouquet/dandy-merch-tools/pkg/geometry"
)

// Region describes one 8-connected component of set pixels.
type Region struct {
	Label int
	Area  int
	BBox  geometry.RectInt
}

// Regions labels the 8-connected components of the mask and returns one
// Region per component. Labels start at 1 and are assigned in raster-scan
// order of each component's first pixel, so the returned slice is stable
// for a given mask.
func Regions(m *Mask) []Region {
	_, regions := labelComponents(m)
	return regions
}

// LargestRegion returns the region with the most pixels, or false when the
// mask is empty. Ties go to the region first encountered in raster order.
func LargestRegion(m *Mask) (Region, bool) {
	regions := Regions(m)
	if len(regions) == 0 {
		return Region{}, false
	}
	best := regions[0]
	for _, r := range regions[1:] {
		if r.Area > best.Area {
			best = r
		}
	}
	return best, true
}

// RemoveMinorRegions keeps only the largest 8-connected component and
// clears every other set pixel. Masks with zero or one region are returned
// unchanged. Ties go to the region first encountered in raster order.
func RemoveMinorRegions(m *Mask) *Mask {
	labels, regions := labelComponents(m)
	if len(regions) <= 1 {
		return m.Clone()
	}
	best := regions[0]
	for _, r := range regions[1:] {
		if r.Area > best.Area {
			best = r
		}
	}
	out := New(m.width, m.height)
	want := int32(best.Label)
	for i, l := range labels {
		if l == want {
			out.bits[i] = true
		}
	}
	return out
}

// labelComponents runs BFS flood fill over every unlabeled set pixel.
// The labels slice holds 0 for unset pixels and the 1-based region label
// otherwise.
func labelComponents(m *Mask) ([]int32, []Region) {
	w, h := m.width, m.height
	labels := make([]int32, len(m.bits))
	var regions []Region

	// 8-connected neighbors
	dx := [8]int{-1, 0, 1, -1, 1, -1, 0, 1}
	dy := [8]int{-1, -1, -1, 0, 0, 1, 1, 1}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			seed := y*w + x
			if !m.bits[seed] || labels[seed] != 0 {
				continue
			}

			label := int32(len(regions) + 1)
			labels[seed] = label
			minX, maxX := x, x
			minY, maxY := y, y
			area := 0

			queue := []image.Point{{X: x, Y: y}}
			for len(queue) > 0 {
				pt := queue[0]
				queue = queue[1:]
				area++

				if pt.X < minX {
					minX = pt.X
				}
				if pt.X > maxX {
					maxX = pt.X
				}
				if pt.Y < minY {
					minY = pt.Y
				}
				if pt.Y > maxY {
					maxY = pt.Y
				}

				for d := 0; d < 8; d++ {
					nx, ny := pt.X+dx[d], pt.Y+dy[d]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					ni := ny*w + nx
					if !m.bits[ni] || labels[ni] != 0 {
						continue
					}
					labels[ni] = label
					queue = append(queue, image.Point{X: nx, Y: ny})
				}
			}

			regions = append(regions, Region{
				Label: int(label),
				Area:  area,
				BBox:  geometry.NewRectInt(minX, minY, maxX-minX+1, maxY-minY+1),
			})
		}
	}
	return labels, regions
}
