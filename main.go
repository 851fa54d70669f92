package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/df07/go-importance-raytracer/pkg/core"
	"github.com/df07/go-importance-raytracer/pkg/estimate"
	"github.com/df07/go-importance-raytracer/pkg/loaders"
	"github.com/df07/go-importance-raytracer/pkg/renderer"
	"github.com/df07/go-importance-raytracer/pkg/scene"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "go-importance-raytracer"
	app.Usage = "render scenes with an importance-sampled path tracer"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image file",
			Description: `
Build the named scene, construct its BVH and render it with tile-parallel workers.
Width and spp left at zero keep the scene's recommended setting. Depth, seed, defocus
and focus override the scene only when given, so --depth 0 and --defocus 0 are honored.
The output format is chosen from the file extension: png, jpg, jpeg, bmp, tif or tiff.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell-box",
					Usage: "scene name (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounce depth (0 renders black)",
				},
				cli.Float64Flag{
					Name:  "defocus",
					Usage: "defocus angle in degrees (0 = pinhole)",
				},
				cli.Float64Flag{
					Name:  "focus",
					Usage: "distance to the plane of perfect focus",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "base seed for tile samplers",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "worker goroutines (0 uses every CPU)",
				},
				cli.IntFlag{
					Name:  "tile",
					Value: renderer.DefaultRenderConfig().TileSize,
					Usage: "tile edge length in pixels",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output image (default output/<scene>.png)",
				},
				cli.StringFlag{
					Name:  "texture",
					Value: scene.DefaultTexturePath,
					Usage: "image used by the earth texture",
				},
				cli.BoolFlag{
					Name:  "quiet, q",
					Usage: "suppress progress logging",
				},
			},
			Action: renderAction,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: scenesAction,
		},
		{
			Name:      "estimate",
			Usage:     "run the Monte-Carlo estimators",
			ArgsUsage: "[estimator ...]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "samples",
					Value: 100000,
					Usage: "samples per run",
				},
				cli.IntFlag{
					Name:  "runs",
					Value: 10,
					Usage: "independent runs per estimator",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed of the first run",
				},
				cli.StringFlag{
					Name:  "plot",
					Usage: "write a convergence plot (png, svg or pdf) to this file",
				},
			},
			Action: estimateAction,
		},
	}
	return app
}

// createScene builds a registered scene by name
func createScene(name string, opts scene.Options) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name is required")
	}
	s, err := scene.Build(name, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	return s, nil
}

// defaultOutputPath returns output/<scene>.png
func defaultOutputPath(sceneName string) string {
	return filepath.Join("output", sceneName+".png")
}

func newLogger(quiet bool) core.Logger {
	if quiet {
		return renderer.NewNopLogger()
	}
	return renderer.NewDefaultLogger()
}

// applyRenderFlags overrides the scene's sampling config in place and returns its camera config
// with the command-line overrides applied. Flags that accept zero as a meaningful value
// are applied only when set.
func applyRenderFlags(c *cli.Context, s *scene.Scene) renderer.CameraConfig {
	s.SamplingConfig = renderer.MergeSamplingConfig(s.SamplingConfig, renderer.SamplingConfig{
		SamplesPerPixel: c.Int("spp"),
	})
	if c.IsSet("depth") {
		s.SamplingConfig.MaxDepth = c.Int("depth")
	}
	if c.IsSet("seed") {
		s.SamplingConfig.Seed = c.Int64("seed")
	}

	cameraConfig := renderer.MergeCameraConfig(s.CameraConfig, renderer.CameraConfig{Width: c.Int("width")})
	if c.IsSet("defocus") {
		cameraConfig.DefocusAngle = c.Float64("defocus")
	}
	if c.IsSet("focus") {
		cameraConfig.FocusDistance = c.Float64("focus")
	}
	return cameraConfig
}

func renderAction(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))
	sceneName := c.String("scene")

	s, err := createScene(sceneName, scene.Options{
		Random:      rand.New(rand.NewSource(42)),
		TexturePath: c.String("texture"),
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	cameraConfig := applyRenderFlags(c, s)
	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.TileSize = c.Int("tile")
	renderConfig.NumWorkers = c.Int("workers")

	s.Preprocess(rand.New(rand.NewSource(s.SamplingConfig.Seed)), logger)

	logger.Printf("Scene %s, max depth %d\n", s.Name, s.SamplingConfig.Clamped().MaxDepth)
	rt := renderer.NewRaytracer(renderer.NewCamera(cameraConfig), s.NewIntegrator(), s.SamplingConfig, renderConfig, logger)
	fb, _, err := rt.Render()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	out := c.String("out")
	if out == "" {
		out = defaultOutputPath(s.Name)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := loaders.SaveImage(out, fb.ToImage()); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", out)
	return nil
}

func scenesAction(c *cli.Context) error {
	w := c.App.Writer
	for _, r := range scene.Recipes() {
		fmt.Fprintf(w, "  %-20s %s\n", r.Name, r.Description)
	}
	return nil
}

// selectEstimators resolves estimator names; no names selects all of them
func selectEstimators(names []string) ([]estimate.Estimator, error) {
	if len(names) == 0 {
		return estimate.Estimators(), nil
	}
	selected := make([]estimate.Estimator, 0, len(names))
	for _, name := range names {
		e, err := estimate.Lookup(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		selected = append(selected, e)
	}
	return selected, nil
}

func estimateAction(c *cli.Context) error {
	estimators, err := selectEstimators(c.Args())
	if err != nil {
		return err
	}
	samples := c.Int("samples")
	seed := c.Int64("seed")

	w := c.App.Writer
	fmt.Fprintf(w, "%-22s %10s %14s %12s %14s %10s\n", "estimator", "samples", "mean", "stderr", "exact", "rel.err")
	for _, e := range estimators {
		s := estimate.Run(e, samples, c.Int("runs"), seed)
		fmt.Fprintf(w, "%-22s %10d %14.8f %12.2e %14.8f %10.2e\n",
			s.Name, s.Samples, s.Mean, s.StdErr, s.Exact, s.RelativeError())
	}

	plotPath := c.String("plot")
	if plotPath == "" {
		return nil
	}
	counts := estimate.GeometricCounts(16, 4, 7)
	series := make([]estimate.Series, len(estimators))
	for i, e := range estimators {
		series[i] = estimate.Series{Name: e.Name, Points: estimate.Convergence(e, counts, seed)}
	}
	if err := estimate.WriteConvergencePlot(plotPath, series); err != nil {
		return err
	}
	fmt.Fprintf(w, "Convergence plot saved as %s\n", plotPath)
	return nil
}
