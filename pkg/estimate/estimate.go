// Package estimate holds small Monte-Carlo experiments that check the sampling
// primitives against integrals with known values.
package estimate

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/df07/go-importance-raytracer/pkg/core"
)

// Pi estimates π from the fraction of uniform points in [-1,1]² that land inside the unit circle
func Pi(random *rand.Rand, samples int) float64 {
	inside := 0
	for i := 0; i < samples; i++ {
		x := 2*random.Float64() - 1
		y := 2*random.Float64() - 1
		if x*x+y*y < 1 {
			inside++
		}
	}
	return 4 * float64(inside) / float64(samples)
}

// StratifiedPi is Pi with one jittered point per cell of a ⌊√samples⌋² grid
func StratifiedPi(random *rand.Rand, samples int) float64 {
	n := max(1, int(math.Sqrt(float64(samples))))
	inside := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := 2*((float64(i)+random.Float64())/float64(n)) - 1
			y := 2*((float64(j)+random.Float64())/float64(n)) - 1
			if x*x+y*y < 1 {
				inside++
			}
		}
	}
	return 4 * float64(inside) / float64(n*n)
}

// IntegrateXSquared estimates ∫₀² x² dx with uniform samples, p(x) = 1/2
func IntegrateXSquared(random *rand.Rand, samples int) float64 {
	const pdf = 0.5
	sum := 0.0
	for i := 0; i < samples; i++ {
		x := 2 * random.Float64()
		sum += x * x / pdf
	}
	return sum / float64(samples)
}

// IntegrateXSquaredImportance estimates ∫₀² x² dx with samples drawn from p(x) = x/2
func IntegrateXSquaredImportance(random *rand.Rand, samples int) float64 {
	sum := 0.0
	for i := 0; i < samples; i++ {
		// Inverse of the cumulative x²/4
		x := 2 * math.Sqrt(random.Float64())
		if x == 0 {
			continue
		}
		sum += x * x / (x / 2)
	}
	return sum / float64(samples)
}

// SphereImportance estimates ∫ cos²θ dω over the unit sphere with uniform directions
func SphereImportance(random *rand.Rand, samples int) float64 {
	sampler := core.NewRandomSampler(random)
	const pdf = 1 / (4 * math.Pi)
	sum := 0.0
	for i := 0; i < samples; i++ {
		d := core.RandomUnitVector(sampler)
		sum += d.Z * d.Z / pdf
	}
	return sum / float64(samples)
}

// CosCubed estimates ∫ cos³θ dω over the hemisphere with uniform hemisphere directions.
// Under that density cosθ itself is uniform on [0,1).
func CosCubed(random *rand.Rand, samples int) float64 {
	const pdf = 1 / (2 * math.Pi)
	sum := 0.0
	for i := 0; i < samples; i++ {
		cosTheta := 1 - random.Float64()
		sum += cosTheta * cosTheta * cosTheta / pdf
	}
	return sum / float64(samples)
}

// CosDensity estimates the same integral as CosCubed with cosine-weighted directions
func CosDensity(random *rand.Rand, samples int) float64 {
	sampler := core.NewRandomSampler(random)
	sum := 0.0
	for i := 0; i < samples; i++ {
		d := core.RandomCosineDirection(sampler)
		pdf := d.Z / math.Pi
		if pdf <= 0 {
			continue
		}
		sum += d.Z * d.Z * d.Z / pdf
	}
	return sum / float64(samples)
}

// halfwayDensity is the unnormalized density whose median Halfway looks for
func halfwayDensity(x float64) float64 {
	s := math.Sin(x)
	return math.Exp(-x/(2*math.Pi)) * s * s
}

// Halfway estimates the point in [0, 2π] that splits the area under
// exp(-x/2π)·sin²x in half, from sorted uniform samples
func Halfway(random *rand.Rand, samples int) float64 {
	xs := make([]float64, samples)
	for i := range xs {
		xs[i] = 2 * math.Pi * random.Float64()
	}
	sort.Float64s(xs)
	return median(xs)
}

// median returns the first sorted x whose running density sum reaches half the total
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	weights := make([]float64, len(xs))
	for i, x := range xs {
		weights[i] = halfwayDensity(x)
	}
	cumulative := floats.CumSum(make([]float64, len(weights)), weights)
	half := 0.5 * cumulative[len(cumulative)-1]
	i := sort.SearchFloat64s(cumulative, half)
	return xs[min(i, len(xs)-1)]
}

// halfwayReference evaluates the halfway point on a fine regular grid
func halfwayReference() float64 {
	const n = 1 << 18
	xs := floats.Span(make([]float64, n), 0, 2*math.Pi)
	return median(xs)
}
