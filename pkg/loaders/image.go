package loaders

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// ImageData contains loaded image data as a linear Vec3 color array in [0,1]
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// LoadImageOptions controls optional processing applied while loading
type LoadImageOptions struct {
	// MaxDimension downscales images whose width or height exceeds it, preserving aspect.
	// Zero disables resizing.
	MaxDimension int
}

// IsValid reports whether the image holds any pixel data
func (d *ImageData) IsValid() bool {
	return d != nil && d.Width > 0 && d.Height > 0 && len(d.Pixels) == d.Width*d.Height
}

// PixelData returns the color at (x, y), clamping coordinates to the image bounds.
// Invalid images return magenta so missing data is obvious in a render.
func (d *ImageData) PixelData(x, y int) core.Vec3 {
	if !d.IsValid() {
		return core.NewVec3(1, 0, 1)
	}
	x = max(0, min(x, d.Width-1))
	y = max(0, min(y, d.Height-1))
	return d.Pixels[y*d.Width+x]
}

// LoadImage decodes a PNG, JPEG, BMP, TIFF or WebP image and converts it to a Vec3 color array
func LoadImage(filename string, opts LoadImageOptions) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (format detected from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	if opts.MaxDimension > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > opts.MaxDimension || bounds.Dy() > opts.MaxDimension {
			img = resize.Thumbnail(uint(opts.MaxDimension), uint(opts.MaxDimension), img, resize.Bilinear)
		}
	}

	return NewImageData(img), nil
}

// NewImageData converts any image.Image into an ImageData
func NewImageData(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// SaveImage encodes img to filename, choosing the format from the file extension
func SaveImage(filename string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	switch ext {
	case ".png":
		err = png.Encode(file, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		err = bmp.Encode(file, img)
	case ".tif", ".tiff":
		err = tiff.Encode(file, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
