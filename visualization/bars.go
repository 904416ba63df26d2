package visualization

import (
	"strconv"

	"github.com/YuminosukeSato/arules/dataset"
	"github.com/YuminosukeSato/arules/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ClassBalance plots the value counts of the target column, most frequent first.
func ClassBalance(t *dataset.Table, column, path string, size Size) error {
	counts, err := dataset.ValueCounts(t, column)
	if err != nil {
		return err
	}
	p, err := countsPlot(counts, "Target Variable Distribution ("+column+")", "Class")
	if err != nil {
		return err
	}
	return save(p, path, size)
}

// FeatureDistribution plots the topN most frequent values of column.
// topN ≤ 0 plots every value.
func FeatureDistribution(t *dataset.Table, column string, topN int, path string, size Size) error {
	counts, err := dataset.ValueCounts(t, column)
	if err != nil {
		return err
	}
	if topN > 0 && len(counts) > topN {
		counts = counts[:topN]
	}
	p, err := countsPlot(counts, "Distribution of Feature: "+column, column)
	if err != nil {
		return err
	}
	p.X.Tick.Label.Rotation = 0.8
	return save(p, path, size)
}

func countsPlot(counts []dataset.ValueCount, title, xlabel string) (*plot.Plot, error) {
	if len(counts) == 0 {
		return nil, ErrNothingToPlot
	}
	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	xys := make(plotter.XYs, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		names[i] = c.Value
		xys[i] = plotter.XY{X: float64(i), Y: float64(c.Count)}
		labels[i] = strconv.Itoa(c.Count)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, errors.Wrap(err, "bar chart")
	}
	bars.Color = plotter.DefaultLineStyle.Color
	ann, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, errors.Wrap(err, "bar labels")
	}
	for i := range ann.TextStyle {
		ann.TextStyle[i].XAlign = -0.5
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Count"
	p.Add(plotter.NewGrid(), bars, ann)
	p.NominalX(names...)
	return p, nil
}
