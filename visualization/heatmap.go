package visualization

import (
	"strconv"

	"github.com/YuminosukeSato/arules/dataset"
	"github.com/YuminosukeSato/arules/metrics"
	"github.com/YuminosukeSato/arules/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

// matrixGrid adapts a square matrix to plotter.GridXYZ.
type matrixGrid struct {
	m mat.Matrix
}

func (g matrixGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g matrixGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }

// AssociationHeatmap computes Cramér's V for every column pair of t and plots
// the matrix with the value annotated in each cell.
func AssociationHeatmap(t *dataset.Table, path string, size Size) (*mat.SymDense, error) {
	m, err := metrics.AssociationMatrix(t)
	if err != nil {
		return nil, err
	}
	p, err := heatmapPlot(m, t.Columns)
	if err != nil {
		return nil, err
	}
	if err := save(p, path, size); err != nil {
		return nil, err
	}
	return m, nil
}

func heatmapPlot(m mat.Symmetric, names []string) (*plot.Plot, error) {
	n := m.SymmetricDim()
	if n == 0 {
		return nil, ErrNothingToPlot
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(matrixGrid{m: m}, cm.Palette(64))
	// V は常に [0, 1]
	hm.Min, hm.Max = 0, 1

	xys := make(plotter.XYs, 0, n*n)
	labels := make([]string, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			labels = append(labels, strconv.FormatFloat(m.At(r, c), 'f', 2, 64))
		}
	}
	ann, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, errors.Wrap(err, "heatmap labels")
	}
	for i := range ann.TextStyle {
		ann.TextStyle[i].XAlign = -0.5
		ann.TextStyle[i].YAlign = -0.5
	}

	p := plot.New()
	p.Title.Text = "Categorical Feature Correlation (Cramér's V)"
	p.Add(hm, ann)
	p.NominalX(names...)
	p.NominalY(names...)
	p.X.Tick.Label.Rotation = 0.8
	return p, nil
}
