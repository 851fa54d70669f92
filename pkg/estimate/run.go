package estimate

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// Estimator is a named Monte-Carlo experiment with its known answer
type Estimator struct {
	Name        string
	Description string
	Exact       float64
	Estimate    func(random *rand.Rand, samples int) float64
}

// halfwayExact caches the fine-grid reference for Halfway
var halfwayExact = sync.OnceValue(halfwayReference)

// Estimators returns every experiment in display order
func Estimators() []Estimator {
	return []Estimator{
		{"pi", "π by dart throwing", math.Pi, Pi},
		{"stratified-pi", "π by jittered dart throwing", math.Pi, StratifiedPi},
		{"x-squared", "∫₀² x² dx, uniform", 8.0 / 3.0, IntegrateXSquared},
		{"x-squared-importance", "∫₀² x² dx with p(x)=x/2", 8.0 / 3.0, IntegrateXSquaredImportance},
		{"sphere-importance", "∫ cos²θ dω over the sphere", 4 * math.Pi / 3, SphereImportance},
		{"cos-cubed", "∫ cos³θ dω over the hemisphere, uniform", math.Pi / 2, CosCubed},
		{"cos-density", "∫ cos³θ dω over the hemisphere, cosine-weighted", math.Pi / 2, CosDensity},
		{"halfway", "median of exp(-x/2π)·sin²x on [0,2π]", halfwayExact(), Halfway},
	}
}

// Lookup finds an estimator by name
func Lookup(name string) (Estimator, error) {
	for _, e := range Estimators() {
		if e.Name == name {
			return e, nil
		}
	}
	return Estimator{}, fmt.Errorf("unknown estimator %q", name)
}

// Summary describes repeated runs of one estimator
type Summary struct {
	Name    string
	Samples int
	Runs    int
	Mean    float64
	StdDev  float64
	StdErr  float64
	Exact   float64
}

// RelativeError returns |mean - exact| / |exact|
func (s Summary) RelativeError() float64 {
	return math.Abs(s.Mean-s.Exact) / math.Abs(s.Exact)
}

// Run repeats the estimator runs times, each with its own generator seeded from seed
func Run(e Estimator, samples, runs int, seed int64) Summary {
	samples = max(1, samples)
	runs = max(1, runs)

	values := make([]float64, runs)
	for r := range values {
		values[r] = e.Estimate(rand.New(rand.NewSource(seed+int64(r))), samples)
	}

	summary := Summary{Name: e.Name, Samples: samples, Runs: runs, Exact: e.Exact}
	if runs == 1 {
		summary.Mean = values[0]
		return summary
	}
	summary.Mean, summary.StdDev = stat.MeanStdDev(values, nil)
	summary.StdErr = stat.StdErr(summary.StdDev, float64(runs))
	return summary
}

// Point is one step of a convergence study
type Point struct {
	Samples  int
	AbsError float64
}

// Convergence runs the estimator once per sample count and records the absolute error
func Convergence(e Estimator, sampleCounts []int, seed int64) []Point {
	points := make([]Point, len(sampleCounts))
	for i, n := range sampleCounts {
		estimate := e.Estimate(rand.New(rand.NewSource(seed)), max(1, n))
		points[i] = Point{Samples: n, AbsError: math.Abs(estimate - e.Exact)}
	}
	return points
}

// GeometricCounts returns steps sample counts growing by factor from start
func GeometricCounts(start, factor, steps int) []int {
	counts := make([]int, 0, steps)
	n := max(1, start)
	for i := 0; i < steps; i++ {
		counts = append(counts, n)
		n *= max(2, factor)
	}
	return counts
}
