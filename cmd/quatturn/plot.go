package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"quaternion"
)

// pixels per inch assumed by the PNG canvas
const dpi = 96

func components(points []quaternion.Quaternion[float64]) (x, y, z plotter.XYs) {
	x = make(plotter.XYs, len(points))
	y = make(plotter.XYs, len(points))
	z = make(plotter.XYs, len(points))
	for n, p := range points {
		step := float64(n)
		x[n] = plotter.XY{X: step, Y: p.I}
		y[n] = plotter.XY{X: step, Y: p.J}
		z[n] = plotter.XY{X: step, Y: p.K}
	}
	return x, y, z
}

func plotTrajectory(points []quaternion.Quaternion[float64], path string, width, height int) error {
	if height <= 0 {
		return fmt.Errorf("plot height must be greater than 0, got %d", height)
	}
	p := plot.New()
	p.Title.Text = "Vector trajectory"
	p.X.Label.Text = "step"
	p.Y.Label.Text = "component"

	x, y, z := components(points)
	if err := plotutil.AddLinePoints(p, "x", x, "y", y, "z", z); err != nil {
		return fmt.Errorf("failed to add trajectory lines: %w", err)
	}

	w := vg.Length(width) * vg.Inch / dpi
	h := vg.Length(height) * vg.Inch / dpi
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
