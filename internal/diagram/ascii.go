package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/goifd/internal/frame"
	"github.com/alexiusacademia/goifd/internal/loads"
	"github.com/guptarohit/asciigraph"
)

// Quantity is one of the three sampled internal forces
type Quantity struct {
	Name   string // e.g. "Shear Force (T_y)"
	Unit   string
	Values []float64
}

// Quantities returns shear, axial and moment in the order they are drawn
func Quantities(d *frame.Diagram) []Quantity {
	return []Quantity{
		{Name: "Shear Force (T_y)", Unit: "N", Values: d.Shear},
		{Name: "Axial Force (N_x)", Unit: "N", Values: d.Axial},
		{Name: "Bending Moment (M_z)", Unit: "N·m", Values: d.Moment},
	}
}

// ASCIIOptions controls the size of terminal charts
type ASCIIOptions struct {
	Width  int // columns of the plot area
	Height int // rows of the plot area
}

// DefaultASCIIOptions fits an 80 column terminal
func DefaultASCIIOptions() ASCIIOptions {
	return ASCIIOptions{Width: 64, Height: 10}
}

// DrawASCIIDiagram renders the three force charts for a terminal, each
// followed by a ruler marking the sections. Every column of a chart is one
// position along the centreline, so the ruler lines up with the curve.
func DrawASCIIDiagram(d *frame.Diagram, opts ASCIIOptions) string {
	var sb strings.Builder

	for _, q := range Quantities(d) {
		values := resample(d, q.Values, opts.Width)
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(q.Name)))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(q.Name)))))

		graph := asciigraph.Plot(values,
			asciigraph.Height(opts.Height),
			asciigraph.Width(opts.Width),
			asciigraph.Precision(1),
			asciigraph.Caption(fmt.Sprintf("%s (%s) along 0 – %.0f mm", q.Name, q.Unit, loads.Millimeters(d.End()))),
		)
		sb.WriteString(graph)
		sb.WriteString("\n")

		// asciigraph pads the plot area by its widest axis label
		sb.WriteString(strings.Repeat(" ", axisLabelWidth(values)))
		sb.WriteString(DrawSectionRuler(d, opts.Width))
		sb.WriteString("\n")
	}

	return sb.String()
}

// resample interpolates values onto width evenly spaced positions from 0 to
// the end of the diagram, the same grid DrawSectionRuler uses. Positions
// repeat where two segments meet; a point past such a joint takes the values
// of the following segment.
func resample(d *frame.Diagram, values []float64, width int) []float64 {
	n := min(len(d.Positions), len(values))
	if width < 2 || n == 0 {
		return values
	}

	pos := d.Positions[:n]
	end := d.End()
	out := make([]float64, width)
	for c := range out {
		x := float64(c) / float64(width-1) * end
		if c == width-1 {
			x = end
		}

		i := sort.SearchFloat64s(pos, x)
		switch {
		case i == 0:
			out[c] = values[0]
		case i == n:
			out[c] = values[n-1]
		default:
			x0, x1 := pos[i-1], pos[i]
			if x1 == x0 {
				out[c] = values[i]
				continue
			}
			f := (x - x0) / (x1 - x0)
			out[c] = values[i-1] + f*(values[i]-values[i-1])
		}
	}
	return out
}

// axisLabelWidth approximates the label gutter asciigraph draws at Precision(1)
func axisLabelWidth(values []float64) int {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	w := len(fmt.Sprintf("%.1f", lo))
	if n := len(fmt.Sprintf("%.1f", hi)); n > w {
		w = n
	}
	// label, space and the axis tick
	return w + 2
}

// DrawSectionRuler draws a line of the given width with a separator at each
// section boundary and the section name centred in its range
func DrawSectionRuler(d *frame.Diagram, width int) string {
	if width < 2 || len(d.Boundaries) == 0 {
		return ""
	}

	end := d.Boundaries[len(d.Boundaries)-1].End
	col := func(x float64) int {
		c := int(math.Round(x / end * float64(width-1)))
		return min(max(c, 0), width-1)
	}

	line := []rune(strings.Repeat("─", width))
	for _, b := range d.Boundaries {
		line[col(b.Start)] = '┆'
	}
	line[width-1] = '┆'

	for _, b := range d.Boundaries {
		name := []rune(b.Name)
		start := col(b.Mid()) - len(name)/2
		if start < 0 || start+len(name) > width {
			continue
		}
		copy(line[start:], name)
	}

	return string(line)
}

// DrawSectionTable lists the global range of every section in millimetres
func DrawSectionTable(d *frame.Diagram) string {
	var sb strings.Builder

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section\tStart (mm)\tEnd (mm)\tLength (mm)\n")
	fmt.Fprintf(w, "  ───────\t──────────\t────────\t───────────\n")
	for _, b := range d.Boundaries {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\n",
			b.Name, loads.Millimeters(b.Start), loads.Millimeters(b.End), loads.Millimeters(b.End-b.Start))
	}
	w.Flush()

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-fills s to n runes; %-*s counts bytes and breaks on "·"
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}

// SummaryLines describes the derived geometry and the peak of every force
func SummaryLines(d *frame.Diagram) []string {
	lines := []string{
		fmt.Sprintf("L2 (diagonal DE)      = %.2f mm", d.L2),
		fmt.Sprintf("Horizontal span       = %.2f mm (limit %.0f mm)", d.Span, loads.MaxSpan),
		fmt.Sprintf("Unrolled length       = %.2f mm", loads.Millimeters(d.End())),
	}
	for _, q := range Quantities(d) {
		p := d.PeakOf(q.Values)
		lines = append(lines, fmt.Sprintf("Peak %-17s = %.2f %s in %s at %.1f mm",
			shortName(q.Name), p.Value, q.Unit, p.Segment, loads.Millimeters(p.Position)))
	}
	return lines
}

func shortName(name string) string {
	if i := strings.Index(name, " ("); i > 0 {
		return name[:i]
	}
	return name
}
