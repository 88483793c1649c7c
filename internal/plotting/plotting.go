// SPDX-License-Identifier: MIT

// Package plotting renders a polynomial curve and its real roots with gonum/plot.
package plotting

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/analytica/complexnum"
	"github.com/katalvlaran/analytica/polynomial"
)

// realTol is the largest |Im| for a root to be drawn on the x axis.
const realTol = 1e-9

// ErrOptions is returned for non-positive sizes or fewer than two samples.
var ErrOptions = errors.New("plotting: invalid options")

// Options sizes the figure. Width and Height are in inches.
type Options struct {
	Title   string
	Width   float64
	Height  float64
	Samples int
	Padding float64 // margin added on both sides of the real roots
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 || o.Samples < 2 || o.Padding <= 0 {
		return fmt.Errorf("%+v: %w", o, ErrOptions)
	}

	return nil
}

// RealRoots keeps the roots whose imaginary part is within realTol of 0 and
// returns their real parts.
func RealRoots(roots []complexnum.Complex) []float64 {
	out := make([]float64, 0, len(roots))
	for _, r := range roots {
		if math.Abs(r.Imag()) <= realTol {
			out = append(out, r.Real())
		}
	}

	return out
}

// XRange returns [min-pad, max+pad] over xs, or [-pad, pad] when xs is empty.
func XRange(xs []float64, pad float64) (lo, hi float64) {
	if len(xs) == 0 {
		return -pad, pad
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}

	return lo - pad, hi + pad
}

// New builds a plot of p over the x range spanned by its real roots, with a
// marker on each real root.
//
// Errors:
//   - ErrOptions for bad sizes.
//   - plotter errors for the scatter layer.
func New(p *polynomial.Polynomial, roots []complexnum.Complex, opts Options) (*plot.Plot, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	xs := RealRoots(roots)
	lo, hi := XRange(xs, opts.Padding)

	plt := plot.New()
	plt.Title.Text = opts.Title
	if plt.Title.Text == "" {
		plt.Title.Text = "f(x) = " + p.String()
	}
	plt.X.Label.Text = "x"
	plt.Y.Label.Text = "f(x)"
	plt.X.Min, plt.X.Max = lo, hi
	plt.Add(plotter.NewGrid())

	curve := plotter.NewFunction(p.Eval)
	curve.XMin, curve.XMax = lo, hi
	curve.Samples = opts.Samples
	curve.Color = color.RGBA{B: 200, A: 255}
	curve.Width = vg.Points(1.5)
	plt.Add(curve)
	plt.Legend.Add(p.String(), curve)

	// Y range from the sampled curve so the function is fully visible.
	ymin, ymax := 0.0, 0.0
	step := (hi - lo) / float64(opts.Samples-1)
	for i := 0; i < opts.Samples; i++ {
		y := p.Eval(lo + float64(i)*step)
		ymin = math.Min(ymin, y)
		ymax = math.Max(ymax, y)
	}
	if ymin == ymax {
		ymin, ymax = ymin-1, ymax+1
	}
	plt.Y.Min, plt.Y.Max = ymin, ymax

	if len(xs) > 0 {
		pts := make(plotter.XYs, len(xs))
		for i, x := range xs {
			pts[i] = plotter.XY{X: x, Y: 0}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("plotting: roots layer: %w", err)
		}
		sc.GlyphStyle.Color = color.RGBA{R: 220, A: 255}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(4)
		plt.Add(sc)
		plt.Legend.Add("real roots", sc)
	}

	return plt, nil
}

// Save writes plt to path; the extension (png, svg, pdf, ...) picks the format.
func Save(plt *plot.Plot, opts Options, path string) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if err := plt.Save(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", filepath.Base(path), err)
	}

	return nil
}

// Write encodes plt into w in the given format ("png", "svg", ...).
func Write(w io.Writer, plt *plot.Plot, opts Options, format string) error {
	if err := opts.validate(); err != nil {
		return err
	}
	wt, err := plt.WriterTo(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("plotting: %s writer: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("plotting: write: %w", err)
	}

	return nil
}
