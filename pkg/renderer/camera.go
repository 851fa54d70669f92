package renderer

import (
	"math"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// Camera generates primary rays through a thin lens. Rays carry a random time in
// [0,1) so moving geometry is motion blurred.
type Camera struct {
	config       CameraConfig
	imageHeight  int
	center       core.Vec3
	pixel00      core.Vec3 // Location of pixel (0, 0)
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	u, v, w      core.Vec3 // Camera frame basis vectors
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera from the given configuration. Invalid values are clamped.
func NewCamera(config CameraConfig) *Camera {
	config = config.Clamped()
	imageHeight := config.Height()

	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(imageHeight)

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport edges; v runs down the image
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	upperLeft := config.Center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		imageHeight:  imageHeight,
		center:       config.Center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// GetRay returns a ray through pixel (i, j). offset is the sample position inside
// the pixel, relative to its center, in [-0.5, 0.5).
func (c *Camera) GetRay(i, j int, offset core.Vec2, sampler core.Sampler) core.Ray {
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// StratifiedOffset jitters a sample inside stratum (si, sj) of an n x n pixel grid
// and returns it relative to the pixel center
func StratifiedOffset(si, sj, n int, sampler core.Sampler) core.Vec2 {
	recip := 1.0 / float64(n)
	jitter := sampler.Get2D()
	return core.NewVec2(
		(float64(si)+jitter.X)*recip-0.5,
		(float64(sj)+jitter.Y)*recip-0.5,
	)
}

// StrataPerAxis returns ⌊√samplesPerPixel⌋, at least 1
func StrataPerAxis(samplesPerPixel int) int {
	return max(1, int(math.Sqrt(float64(samplesPerPixel))))
}
