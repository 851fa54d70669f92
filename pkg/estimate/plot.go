package estimate

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is a named convergence curve
type Series struct {
	Name   string
	Points []Point
}

// WriteConvergencePlot saves a log-log plot of absolute error against sample count.
// The format follows the file extension (png, svg, pdf, ...).
func WriteConvergencePlot(path string, series []Series) error {
	p := plot.New()
	p.Title.Text = "Monte-Carlo convergence"
	p.X.Label.Text = "samples"
	p.Y.Label.Text = "absolute error"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{}
	p.Y.Tick.Marker = plot.LogTicks{}
	p.Add(plotter.NewGrid())

	for i, s := range series {
		xys := make(plotter.XYs, 0, len(s.Points))
		for _, pt := range s.Points {
			// Log axes cannot show an exact hit
			if pt.AbsError <= 0 || math.IsNaN(pt.AbsError) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(pt.Samples), Y: pt.AbsError})
		}
		if len(xys) == 0 {
			continue
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("failed to build series %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", path, err)
	}
	return nil
}
