package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexiusacademia/goifd/internal/diagram"
	"github.com/alexiusacademia/goifd/internal/frame"
	"github.com/alexiusacademia/goifd/internal/loads"
	"github.com/phpdave11/gofpdf"
)

// ReportTitle heads the PDF report
var ReportTitle = "Internal Force Diagrams"

// WritePDF writes a report of the inputs, derived geometry, section ranges
// and peak forces, with the stacked charts on a second page
func WritePDF(d *frame.Diagram, w io.Writer) error {
	var chart bytes.Buffer
	if err := diagram.WriteDiagram(d, &chart, "png"); err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, ReportTitle)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(8)

	section(pdf, "Geometry")
	rows := [][2]string{
		{"L1 (AD)", fmt.Sprintf("%.2f mm", d.Geometry.L1)},
		{"Angle of DE", fmt.Sprintf("%.2f deg", d.Geometry.Angle)},
		{"L3 (EC)", fmt.Sprintf("%.2f mm", d.Geometry.L3)},
		{"L2 (DE) = 120 / sin(angle)", fmt.Sprintf("%.2f mm", d.L2)},
		{"Horizontal span", fmt.Sprintf("%.2f mm (limit %.0f mm)", d.Span, loads.MaxSpan)},
		{"Samples per segment", fmt.Sprintf("%d", d.Samples)},
	}
	for _, r := range rows {
		pdf.CellFormat(70, 6, r[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, r[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	section(pdf, "Sections")
	table(pdf, []string{"Section", "Start (mm)", "End (mm)", "Length (mm)"}, func(add func(...string)) {
		for _, b := range d.Boundaries {
			add(b.Name,
				fmt.Sprintf("%.2f", loads.Millimeters(b.Start)),
				fmt.Sprintf("%.2f", loads.Millimeters(b.End)),
				fmt.Sprintf("%.2f", loads.Millimeters(b.End-b.Start)))
		}
	})
	pdf.Ln(4)

	section(pdf, "Peak values")
	table(pdf, []string{"Quantity", "Value", "Section", "Position (mm)"}, func(add func(...string)) {
		for _, q := range diagram.Quantities(d) {
			p := d.PeakOf(q.Values)
			add(q.Name,
				fmt.Sprintf("%.2f %s", p.Value, strings.ReplaceAll(q.Unit, "·", "-")),
				p.Segment,
				fmt.Sprintf("%.1f", loads.Millimeters(p.Position)))
		}
	})

	pdf.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("diagram", opts, &chart)
	pdf.ImageOptions("diagram", 10, 20, 190, 0, false, opts, 0, "")

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
}

func table(pdf *gofpdf.Fpdf, header []string, rows func(add func(...string))) {
	const width = 45.0

	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range header {
		pdf.CellFormat(width, 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	rows(func(cells ...string) {
		for _, c := range cells {
			pdf.CellFormat(width, 6, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	})
}
