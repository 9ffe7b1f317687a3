package mask

import (
	"testing"

	"github.com/dandybouquet/dandy-merch-tools/pkg/geometry"
)

func TestRegionsSeparateBlobs(t *testing.T) {
	m := parseMask(t,
		"##....",
		"##....",
		"....#.",
		"....##",
	)
	regions := Regions(m)
	if len(regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(regions))
	}
	if regions[0].Label != 1 || regions[1].Label != 2 {
		t.Errorf("labels = %d,%d, want 1,2", regions[0].Label, regions[1].Label)
	}
	if regions[0].Area != 4 {
		t.Errorf("region 1 area = %d, want 4", regions[0].Area)
	}
	if want := geometry.NewRectInt(0, 0, 2, 2); regions[0].BBox != want {
		t.Errorf("region 1 bbox = %+v, want %+v", regions[0].BBox, want)
	}
	if regions[1].Area != 3 {
		t.Errorf("region 2 area = %d, want 3", regions[1].Area)
	}
	if want := geometry.NewRectInt(4, 2, 2, 2); regions[1].BBox != want {
		t.Errorf("region 2 bbox = %+v, want %+v", regions[1].BBox, want)
	}
}

func TestRegionsDiagonalConnectivity(t *testing.T) {
	// Diagonal touch joins pixels under 8-connectivity.
	m := parseMask(t,
		"#..",
		".#.",
		"..#",
	)
	if n := len(Regions(m)); n != 1 {
		t.Errorf("diagonal chain regions = %d, want 1", n)
	}
}

func TestRegionsEmpty(t *testing.T) {
	if n := len(Regions(New(4, 3))); n != 0 {
		t.Errorf("empty mask regions = %d, want 0", n)
	}
}

func TestLargestRegion(t *testing.T) {
	m := parseMask(t,
		"#.###",
		"..###",
		".....",
		"##...",
	)
	r, ok := LargestRegion(m)
	if !ok {
		t.Fatal("LargestRegion found nothing")
	}
	if r.Area != 6 {
		t.Errorf("largest area = %d, want 6", r.Area)
	}
	if want := geometry.NewRectInt(2, 0, 3, 2); r.BBox != want {
		t.Errorf("largest bbox = %+v, want %+v", r.BBox, want)
	}

	if _, ok := LargestRegion(New(2, 2)); ok {
		t.Error("LargestRegion on empty mask should report false")
	}
}

func TestRemoveMinorRegionsKeepsLargest(t *testing.T) {
	m := parseMask(t,
		"#..##",
		"...##",
		"#....",
	)
	want := parseMask(t,
		"...##",
		"...##",
		".....",
	)
	if got := RemoveMinorRegions(m); !got.Equal(want) {
		t.Error("RemoveMinorRegions did not keep only the largest region")
	}
}

func TestRemoveMinorRegionsTieKeepsFirst(t *testing.T) {
	// Equal areas: the region whose first pixel comes earlier in raster
	// order wins.
	m := parseMask(t,
		".##..",
		".....",
		"...##",
	)
	want := parseMask(t,
		".##..",
		".....",
		".....",
	)
	if got := RemoveMinorRegions(m); !got.Equal(want) {
		t.Error("tie should keep the first region in raster order")
	}
}

func TestRemoveMinorRegionsSingleRegionUnchanged(t *testing.T) {
	m := parseMask(t,
		".##.",
		".##.",
	)
	got := RemoveMinorRegions(m)
	if !got.Equal(m) {
		t.Error("single region should be returned unchanged")
	}
	// The result is a copy, not the same mask.
	got.Set(0, 0, true)
	if m.At(0, 0) {
		t.Error("RemoveMinorRegions should not alias the input")
	}
}

func TestRemoveMinorRegionsEmpty(t *testing.T) {
	m := New(3, 3)
	if got := RemoveMinorRegions(m); !got.Equal(m) {
		t.Error("empty mask should be returned unchanged")
	}
}
