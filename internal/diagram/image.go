package diagram

import (
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goifd/internal/frame"
	"github.com/alexiusacademia/goifd/internal/loads"
	"github.com/pkg/errors"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	shearColor  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	axialColor  = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	momentColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	sepColor    = color.Gray{Y: 128}
)

// Formats lists the image formats ExportDiagram and WriteDiagram accept
var Formats = []string{"png", "svg", "pdf"}

// ImageSize is the size of the three stacked charts
var (
	ImageWidth  = 12 * vg.Inch
	ImageHeight = 10 * vg.Inch
)

// ExportDiagram writes the shear, axial and moment charts to an image file.
// The format follows the extension; anything else is saved as png.
func ExportDiagram(d *frame.Diagram, filename string) (string, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !SupportedFormat(format) {
		format = "png"
		filename += ".png"
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", errors.Wrapf(err, "could not create directory (%s)", dir)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", errors.Wrapf(err, "could not create image (%s)", filename)
	}
	defer f.Close()

	if err := WriteDiagram(d, f, format); err != nil {
		return "", err
	}
	return filename, f.Close()
}

// SupportedFormat reports whether format is one of Formats
func SupportedFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// WriteDiagram renders the three charts stacked vertically to w
func WriteDiagram(d *frame.Diagram, w io.Writer, format string) error {
	xs := make([]float64, len(d.Positions))
	for i, x := range d.Positions {
		xs[i] = loads.Millimeters(x)
	}

	colors := []color.Color{shearColor, axialColor, momentColor}
	units := []string{"Shear Force (N)", "Axial Force (N)", "Bending Moment (N·m)"}

	quantities := Quantities(d)
	plots := make([][]*plot.Plot, len(quantities))
	for i, q := range quantities {
		p, err := forcePlot(d, xs, q, units[i], colors[i])
		if err != nil {
			return err
		}
		plots[i] = []*plot.Plot{p}
	}
	plots[len(plots)-1][0].X.Label.Text = "Position along A-D-E-C-B (mm)"

	c, err := draw.NewFormattedCanvas(ImageWidth, ImageHeight, format)
	if err != nil {
		return errors.Wrapf(err, "unsupported image format (%s)", format)
	}

	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadTop:    vg.Points(8),
		PadBottom: vg.Points(8),
		PadLeft:   vg.Points(8),
		PadRight:  vg.Points(8),
		PadY:      vg.Points(12),
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	if _, err := c.WriteTo(w); err != nil {
		return errors.Wrap(err, "could not write diagram")
	}
	return nil
}

// forcePlot draws one quantity with its zero line, section separators and
// section labels
func forcePlot(d *frame.Diagram, xs []float64, q Quantity, ylabel string, c color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = ylabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	lo, hi := valueRange(q.Values)
	p.Y.Min, p.Y.Max = lo, hi
	p.X.Min, p.X.Max = 0, loads.Millimeters(d.End())

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: q.Values[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = c
	p.Add(line)
	p.Legend.Add(q.Name, line)

	// Zero reference line
	zero, err := plotter.NewLine(plotter.XYs{{X: p.X.Min, Y: 0}, {X: p.X.Max, Y: 0}})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Width = vg.Points(0.8)
	zero.LineStyle.Color = color.Black
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(zero)

	// Section separators
	edges := make([]float64, 0, len(d.Boundaries)+1)
	for _, b := range d.Boundaries {
		edges = append(edges, loads.Millimeters(b.Start))
	}
	if n := len(d.Boundaries); n > 0 {
		edges = append(edges, loads.Millimeters(d.Boundaries[n-1].End))
	}
	for _, x := range edges {
		sep, err := plotter.NewLine(plotter.XYs{{X: x, Y: lo}, {X: x, Y: hi}})
		if err != nil {
			return nil, err
		}
		sep.LineStyle.Width = vg.Points(1)
		sep.LineStyle.Color = sepColor
		sep.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
		p.Add(sep)
	}

	// Section labels, centred at the top of each range
	var lbl plotter.XYLabels
	for _, b := range d.Boundaries {
		lbl.XYs = append(lbl.XYs, plotter.XY{X: loads.Millimeters(b.Mid()), Y: hi})
		lbl.Labels = append(lbl.Labels, b.Name)
	}
	labels, err := plotter.NewLabels(lbl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Weight = xfont.WeightBold
		labels.TextStyle[i].Font.Size = vg.Points(10)
		labels.TextStyle[i].Color = color.Black
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YTop
	}
	p.Add(labels)

	return p, nil
}

// valueRange returns y-axis limits that include zero and leave headroom for
// the section labels
func valueRange(values []float64) (lo, hi float64) {
	lo, hi = 0, 0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	return lo - 0.05*span, hi + 0.15*span
}
