package visualization

import (
	"image/color"
	"math"

	"github.com/YuminosukeSato/arules/pipeline"
	"github.com/YuminosukeSato/arules/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNothingToPlot is returned when the input holds no data points.
var ErrNothingToPlot = errors.New("nothing to plot")

const (
	minMarkerRadius = 3.0
	maxMarkerRadius = 9.0
	axisPadding     = 0.02
)

// Size is the rendered image size.
type Size struct {
	Width, Height vg.Length
}

// DefaultSize is 8×6 inches.
var DefaultSize = Size{Width: 8 * vg.Inch, Height: 6 * vg.Inch}

// RuleScatter plots support against confidence. Marker colour and radius both
// grow with lift.
func RuleScatter(records []pipeline.Record, path string, size Size) error {
	if len(records) == 0 {
		return errors.Wrap(ErrNothingToPlot, "no rules to visualize")
	}
	p, err := ruleScatterPlot(records)
	if err != nil {
		return err
	}
	return save(p, path, size)
}

func ruleScatterPlot(records []pipeline.Record) (*plot.Plot, error) {
	xys := make(plotter.XYs, len(records))
	lifts := make([]float64, len(records))
	for i, r := range records {
		xys[i].X = r.Support
		xys[i].Y = r.Confidence
		lifts[i] = r.Lift
	}

	cm := liftColorMap(lifts)
	radii := markerRadii(lifts, minMarkerRadius, maxMarkerRadius)

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, errors.Wrap(err, "scatter")
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, err := cm.At(lifts[i])
		if err != nil {
			c = color.Gray{Y: 128}
		}
		return draw.GlyphStyle{Color: withAlpha(c, 180), Radius: vg.Points(radii[i]), Shape: draw.CircleGlyph{}}
	}

	p := plot.New()
	p.Title.Text = "Association Rules: Support vs Confidence (colour & size indicate lift)"
	p.X.Label.Text = "Support (Frequency)"
	p.Y.Label.Text = "Confidence (Reliability)"
	p.Add(plotter.NewGrid(), sc)

	xmin, xmax := bounds(xys, func(xy plotter.XY) float64 { return xy.X })
	ymin, ymax := bounds(xys, func(xy plotter.XY) float64 { return xy.Y })
	p.X.Min = math.Max(0, xmin-axisPadding)
	p.X.Max = xmax + axisPadding
	p.Y.Min = math.Max(0, ymin-axisPadding)
	p.Y.Max = math.Min(1, ymax+axisPadding)
	if p.Y.Max <= p.Y.Min {
		p.Y.Max = p.Y.Min + axisPadding
	}
	return p, nil
}

// markerRadii maps lifts linearly onto [minR, maxR]. Equal lifts get the midpoint.
func markerRadii(lifts []float64, minR, maxR float64) []float64 {
	out := make([]float64, len(lifts))
	lo, hi := minMax(lifts)
	for i, l := range lifts {
		if hi == lo {
			out[i] = (minR + maxR) / 2
			continue
		}
		out[i] = minR + (l-lo)/(hi-lo)*(maxR-minR)
	}
	return out
}

func liftColorMap(lifts []float64) palette.ColorMap {
	lo, hi := minMax(lifts)
	if hi == lo {
		hi = lo + 1
	}
	cm := moreland.ExtendedBlackBody()
	cm.SetMin(lo)
	cm.SetMax(hi)
	return cm
}

func minMax(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func bounds(xys plotter.XYs, get func(plotter.XY) float64) (float64, float64) {
	vals := make([]float64, len(xys))
	for i, xy := range xys {
		vals[i] = get(xy)
	}
	return minMax(vals)
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}

func save(p *plot.Plot, path string, size Size) error {
	if size.Width == 0 || size.Height == 0 {
		size = DefaultSize
	}
	if err := p.Save(size.Width, size.Height, path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}
