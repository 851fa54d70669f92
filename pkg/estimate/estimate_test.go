package estimate

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestEstimators_ConvergeToExact(t *testing.T) {
	for _, e := range Estimators() {
		t.Run(e.Name, func(t *testing.T) {
			summary := Run(e, 20000, 20, 1)
			// Halfway is biased by sample spacing, so it gets an absolute floor
			if math.Abs(summary.Mean-summary.Exact) > 5*summary.StdErr+0.01*math.Abs(summary.Exact) {
				t.Errorf("Expected %f, got %f (stderr %f)", summary.Exact, summary.Mean, summary.StdErr)
			}
		})
	}
}

func TestHalfwayReference(t *testing.T) {
	// The density favors small x, so the median sits left of π
	h := halfwayExact()
	if h <= 0 || h >= math.Pi {
		t.Errorf("Expected halfway point in (0, π), got %f", h)
	}
}

func TestStratifiedPi_BeatsPlainPi(t *testing.T) {
	plain, _ := Lookup("pi")
	stratified, _ := Lookup("stratified-pi")
	a := Run(plain, 10000, 30, 5)
	b := Run(stratified, 10000, 30, 5)
	if b.StdDev >= a.StdDev {
		t.Errorf("Expected stratification to reduce spread: plain %f, stratified %f", a.StdDev, b.StdDev)
	}
}

func TestCosDensity_BeatsUniform(t *testing.T) {
	uniform, _ := Lookup("cos-cubed")
	cosine, _ := Lookup("cos-density")
	a := Run(uniform, 1000, 30, 9)
	b := Run(cosine, 1000, 30, 9)
	if b.StdDev >= a.StdDev {
		t.Errorf("Expected importance sampling to reduce spread: uniform %f, cosine %f", a.StdDev, b.StdDev)
	}
}

func TestXSquaredImportance_BeatsUniform(t *testing.T) {
	uniform, _ := Lookup("x-squared")
	importance, _ := Lookup("x-squared-importance")
	a := Run(uniform, 1000, 30, 5)
	b := Run(importance, 1000, 30, 5)
	if b.StdDev >= a.StdDev {
		t.Errorf("Expected p(x)=x/2 to reduce spread: uniform %f, importance %f", a.StdDev, b.StdDev)
	}
}

func TestIntegrateXSquared_UniformMean(t *testing.T) {
	got := IntegrateXSquared(rand.New(rand.NewSource(3)), 200000)
	if math.Abs(got-8.0/3.0) > 0.03 {
		t.Errorf("Expected ~%f, got %f", 8.0/3.0, got)
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup("nope"); err == nil {
		t.Error("Expected error for unknown estimator")
	}
}

func TestGeometricCounts(t *testing.T) {
	got := GeometricCounts(10, 10, 4)
	expected := []int{10, 100, 1000, 10000}
	if len(got) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, got)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	}
}

func TestWriteConvergencePlot(t *testing.T) {
	var series []Series
	for _, name := range []string{"pi", "stratified-pi"} {
		e, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		series = append(series, Series{Name: name, Points: Convergence(e, GeometricCounts(16, 4, 5), 3)})
	}

	for _, file := range []string{"convergence.png", "convergence.svg"} {
		t.Run(file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), file)
			if err := WriteConvergencePlot(path, series); err != nil {
				t.Fatalf("WriteConvergencePlot failed: %v", err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Plot not written: %v", err)
			}
			if info.Size() == 0 {
				t.Error("Plot file is empty")
			}
		})
	}
}
