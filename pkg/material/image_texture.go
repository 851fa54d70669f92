package material

import (
	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/loaders"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	image *loaders.ImageData
}

// NewImageTexture creates a new image texture from decoded image data
func NewImageTexture(image *loaders.ImageData) *ImageTexture {
	return &ImageTexture{image: image}
}

// NewImageTextureFromFile loads an image texture from disk. Load failures are
// logged and produce a texture that renders as the missing-data color.
func NewImageTextureFromFile(filename string, logger core.Logger) *ImageTexture {
	image, err := loaders.LoadImage(filename, loaders.LoadImageOptions{})
	if err != nil {
		logger.Printf("ERROR loading image texture %s: %v\n", filename, err)
		return &ImageTexture{}
	}
	return &ImageTexture{image: image}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	// Solid cyan marks a texture with no image data
	if t.image == nil || t.image.Height <= 0 {
		return core.NewVec3(0, 1, 1)
	}

	// Clamp to [0,1], flipping V because image row 0 is at the top
	u := core.NewInterval(0, 1).Clamp(uv.X)
	v := core.NewInterval(0, 1).Clamp(1.0 - uv.Y)

	x := int(u * float64(t.image.Width))
	y := int(v * float64(t.image.Height))
	return t.image.PixelData(x, y)
}
