package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveCostChart renders the per-iteration cost history as a line chart and
// writes it to path. The image format is inferred from the extension
// (e.g. .png).
func SaveCostChart(history []float64, path string) error {
	if len(history) == 0 {
		return fmt.Errorf("report: empty cost history")
	}

	p := plot.New()
	p.Title.Text = "Cost function history"
	p.X.Label.Text = "Iterations"
	p.Y.Label.Text = "Cost"

	pts := make(plotter.XYs, len(history))
	for i, c := range history {
		pts[i].X = float64(i)
		pts[i].Y = c
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("report: build cost line: %w", err)
	}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save cost chart: %w", err)
	}
	return nil
}
