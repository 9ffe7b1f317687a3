// Package artwork loads and saves design rasters, normalizing every
// decoded image to NRGBA so downstream stages can index pixels directly.
package artwork

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// imaging registers PNG, JPEG, GIF, TIFF and BMP decoders itself;
	// WebP artwork shows up often enough to register it as well.
	_ "golang.org/x/image/webp"
)

// LoadError reports a raster that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads an image file and returns it as NRGBA. Formats without an
// alpha channel decode with every pixel fully opaque.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return imaging.Clone(img), nil
}

// Save writes an image to disk, choosing the encoder from the file
// extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save image %s: %w", path, err)
	}
	return nil
}
