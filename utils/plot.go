package utils

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveLossPlot draws the loss curve and writes it to filename. losses[i] is
// the mean loss of the report window ending at epoch (i+1)*every. The image
// format follows the file extension.
func SaveLossPlot(filename string, losses []float64, every int) error {
	if len(losses) == 0 {
		return fmt.Errorf("no loss values to plot")
	}
	if every <= 0 {
		every = 1
	}

	p := plot.New()
	p.Title.Text = "Training loss"
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "Mean squared error"

	pts := make(plotter.XYs, len(losses))
	for i, l := range losses {
		pts[i].X = float64((i + 1) * every)
		pts[i].Y = l
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("creating loss line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("saving loss plot: %w", err)
	}
	return nil
}
