package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a lattice value-noise field with Hermite-smoothed trilinear interpolation
type Perlin struct {
	randFloat [perlinPointCount]float64
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds a noise field from random. The same seed always produces the same field.
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.randFloat {
		p.randFloat[i] = random.Float64()
	}
	generatePerm(&p.permX, random)
	generatePerm(&p.permY, random)
	generatePerm(&p.permZ, random)
	return p
}

// generatePerm fills perm with a Fisher-Yates shuffle of 0..n-1
func generatePerm(perm *[perlinPointCount]int, random *rand.Rand) {
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns the smoothed noise value in [0,1) at p
func (n *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	// Hermite cubic smoothing removes grid artifacts
	u = u * u * (3 - 2*u)
	v = v * v * (3 - 2*v)
	w = w * w * (3 - 2*w)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var accum float64
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c := n.randFloat[n.permX[(i+di)&255]^n.permY[(j+dj)&255]^n.permZ[(k+dk)&255]]
				fi, fj, fk := float64(di), float64(dj), float64(dk)
				accum += (fi*u + (1-fi)*(1-u)) *
					(fj*v + (1-fj)*(1-v)) *
					(fk*w + (1-fk)*(1-w)) * c
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise, halving weight and doubling frequency each octave
func (n *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * n.Noise(p)
		weight *= 0.5
		p = p.Multiply(2)
	}
	return math.Abs(accum)
}

// NoiseTexture is a marble-like pattern driven by Perlin turbulence
type NoiseTexture struct {
	noise *Perlin
	scale float64
}

// NewNoiseTexture creates a noise texture. scale controls the stripe frequency along Z.
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{noise: noise, scale: scale}
}

// Evaluate returns a gray level 0.5·(1 + sin(scale·z + 10·turbulence))
func (t *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	gray := 0.5 * (1 + math.Sin(t.scale*point.Z+10*t.noise.Turbulence(point, 7)))
	return core.NewVec3(gray, gray, gray)
}
