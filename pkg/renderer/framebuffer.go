package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// Framebuffer is the render output: 8-bit RGB pixels, row-major, row 0 at the top
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint8 // 3 bytes per pixel
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Set quantizes a linear color and stores it at (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	rgb := ColorToRGB8(c)
	offset := (y*fb.Width + x) * 3
	copy(fb.Pix[offset:offset+3], rgb[:])
}

// At returns the stored bytes at (x, y)
func (fb *Framebuffer) At(x, y int) [3]uint8 {
	offset := (y*fb.Width + x) * 3
	return [3]uint8{fb.Pix[offset], fb.Pix[offset+1], fb.Pix[offset+2]}
}

// ToImage copies the framebuffer into an opaque RGBA image for the encoders
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			p := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return img
}

// ColorToRGB8 converts a linear color to gamma-2 bytes. NaN channels become 0 and
// each channel is clamped to [0, 0.999] before scaling by 256.
func ColorToRGB8(c core.Vec3) [3]uint8 {
	return [3]uint8{channelToByte(c.X), channelToByte(c.Y), channelToByte(c.Z)}
}

func channelToByte(linear float64) uint8 {
	if math.IsNaN(linear) {
		linear = 0
	}
	g := linearToGamma(linear)
	return uint8(256 * math.Max(0, math.Min(g, 0.999)))
}

func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}
