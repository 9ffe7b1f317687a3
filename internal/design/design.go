package design

import (
	"os"
	"path/filepath"
)

// Design is one fully resolved unit of work for the pipeline.
type Design struct {
	Name     string
	Settings Settings
	// WidthInches is the printed artwork width. Zero means unspecified,
	// in which case DefaultDPI applies.
	WidthInches float64
	Paths       Paths
}

// DPI returns the print resolution for artwork of the given pixel width.
func (d *Design) DPI(pixelWidth int) float64 {
	if d.WidthInches > 0 {
		return float64(pixelWidth) / d.WidthInches
	}
	return DefaultDPI
}

// Paths is the standard file layout inside a design directory. Every
// artifact for a design named "fox" lives under <design_dir>/fox/ as
// fox_art.png, fox_mask.png, fox_full_bleed.png and so on.
type Paths struct {
	Dir       string
	Art       string
	Mask      string
	FullBleed string
	CutMask   string
	Preview   string
	Info      string
}

// PathsFor computes the file layout for one design directory, honoring the
// art and mask overrides. When no mask override is given and the standard
// mask file does not exist, the artwork doubles as its own mask.
func PathsFor(dir, name string, o Overrides) Paths {
	p := Paths{
		Dir:       dir,
		Art:       filepath.Join(dir, name+"_art.png"),
		Mask:      filepath.Join(dir, name+"_mask.png"),
		FullBleed: filepath.Join(dir, name+"_full_bleed.png"),
		CutMask:   filepath.Join(dir, name+"_cut_mask.png"),
		Preview:   filepath.Join(dir, name+"_preview.png"),
		Info:      filepath.Join(dir, name+"_info.yaml"),
	}
	if o.Art != "" {
		p.Art = filepath.Join(dir, o.Art)
	}
	if o.Mask != "" {
		p.Mask = filepath.Join(dir, o.Mask)
	} else if _, err := os.Stat(p.Mask); err != nil {
		p.Mask = p.Art
	}
	return p
}

// InfoPath returns the record path for a design under the given root
// directory, for readers that never load the full configuration.
func InfoPath(rootDir, name string) string {
	return filepath.Join(rootDir, name, name+"_info.yaml")
}
