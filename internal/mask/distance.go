package mask

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
)

// Degenerate mask errors. A mask with no boundary has no distance field.
var (
	ErrEmptyMask = errors.New("mask is empty: boundary distance is undefined")
	ErrFullMask  = errors.New("mask is full: boundary distance is undefined")
)

// interfaceOffset is the distance from a pixel center to the mask boundary
// when the neighboring pixel across that boundary has the opposite value.
// The boundary is taken to run halfway between the two pixel centers.
const interfaceOffset = 0.5

// Expand returns the mask grown outward by dist pixels: every pixel whose
// signed boundary distance is at most dist is set. Inside distances are
// negative and outside distances strictly positive, so expanding by 0
// reproduces the mask exactly. Distances come from a first-order fast
// marching solve, so large expansions stay Euclidean around corners instead
// of taking on the square shape a naive per-pixel dilation loop would
// produce.
func Expand(m *Mask, dist float64) (*Mask, error) {
	if dist < 0 {
		return nil, fmt.Errorf("negative expansion distance %g", dist)
	}
	field, err := SignedDistance(m)
	if err != nil {
		return nil, err
	}
	out := New(m.width, m.height)
	for i, d := range field {
		if d <= dist {
			out.bits[i] = true
		}
	}
	return out, nil
}

// SignedDistance computes the Euclidean distance from each pixel center to
// the mask boundary: negative inside the mask, positive outside. The
// boundary lies halfway between adjacent pixels of opposite value, so the
// smallest magnitudes are 0.5 for pixels straddling a straight edge.
// Returns ErrEmptyMask or ErrFullMask when no boundary exists.
func SignedDistance(m *Mask) ([]float64, error) {
	n := m.Count()
	if n == 0 {
		return nil, ErrEmptyMask
	}
	if n == len(m.bits) {
		return nil, ErrFullMask
	}

	w, h := m.width, m.height
	dist := make([]float64, len(m.bits))
	frozen := make([]bool, len(m.bits))
	for i := range dist {
		dist[i] = math.Inf(1)
	}

	// Freeze the initial band: every pixel with an opposite-valued
	// 4-neighbor sits interfaceOffset away from the boundary along that
	// axis. Crossings on both axes combine like perpendicular planes.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			v := m.bits[i]
			invSq := 0.0
			if (x > 0 && m.bits[i-1] != v) || (x < w-1 && m.bits[i+1] != v) {
				invSq += 1.0 / (interfaceOffset * interfaceOffset)
			}
			if (y > 0 && m.bits[i-w] != v) || (y < h-1 && m.bits[i+w] != v) {
				invSq += 1.0 / (interfaceOffset * interfaceOffset)
			}
			if invSq > 0 {
				dist[i] = 1.0 / math.Sqrt(invSq)
				frozen[i] = true
			}
		}
	}

	// March outward from the band in order of increasing distance.
	pq := &bandQueue{}
	heap.Init(pq)
	relax := func(x, y int) {
		i := y*w + x
		if frozen[i] {
			return
		}
		d := solveEikonal(m, dist, frozen, x, y)
		if d < dist[i] {
			dist[i] = d
			heap.Push(pq, &bandItem{x: x, y: y, dist: d})
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !frozen[y*w+x] {
				continue
			}
			if x > 0 {
				relax(x-1, y)
			}
			if x < w-1 {
				relax(x+1, y)
			}
			if y > 0 {
				relax(x, y-1)
			}
			if y < h-1 {
				relax(x, y+1)
			}
		}
	}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*bandItem)
		i := item.y*w + item.x
		if frozen[i] {
			continue
		}
		frozen[i] = true
		dist[i] = item.dist

		if item.x > 0 {
			relax(item.x-1, item.y)
		}
		if item.x < w-1 {
			relax(item.x+1, item.y)
		}
		if item.y > 0 {
			relax(item.x, item.y-1)
		}
		if item.y < h-1 {
			relax(item.x, item.y+1)
		}
	}

	// The march is one-sided; membership supplies the sign.
	for i, v := range m.bits {
		if v {
			dist[i] = -dist[i]
		}
	}
	return dist, nil
}

// solveEikonal computes the first-order update for the pixel at (x, y) from
// its frozen 4-neighbors, taking the smaller frozen value along each axis.
func solveEikonal(m *Mask, dist []float64, frozen []bool, x, y int) float64 {
	w := m.width
	i := y*w + x

	a := math.Inf(1)
	if x > 0 && frozen[i-1] {
		a = dist[i-1]
	}
	if x < w-1 && frozen[i+1] && dist[i+1] < a {
		a = dist[i+1]
	}

	b := math.Inf(1)
	if y > 0 && frozen[i-w] {
		b = dist[i-w]
	}
	if y < m.height-1 && frozen[i+w] && dist[i+w] < b {
		b = dist[i+w]
	}

	if a > b {
		a, b = b, a
	}
	if math.IsInf(b, 1) || b-a >= 1 {
		return a + 1
	}
	diff := a - b
	return (a + b + math.Sqrt(2-diff*diff)) / 2
}

// bandItem is a narrow-band entry in the fast marching priority queue.
type bandItem struct {
	x, y  int
	dist  float64
	index int
}

// bandQueue implements heap.Interface ordered by tentative distance.
type bandQueue []*bandItem

func (pq bandQueue) Len() int           { return len(pq) }
func (pq bandQueue) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq bandQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *bandQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*bandItem)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *bandQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
