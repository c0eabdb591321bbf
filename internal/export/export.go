package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexiusacademia/goifd/internal/diagram"
	"github.com/alexiusacademia/goifd/internal/frame"
	"github.com/alexiusacademia/goifd/internal/loads"
	"github.com/pkg/errors"
)

// Header is the column layout shared by the CSV and XLSX exports
var Header = []string{"position_mm", "segment", "axial_N", "shear_N", "moment_Nm"}

// Formats lists the tabular and report formats handled here. Image formats
// are delegated to the diagram package.
var Formats = []string{"csv", "xlsx", "pdf"}

// ToFile writes the diagram in the format given by the file extension
// (csv, xlsx, pdf, png or svg) and returns the path written.
func ToFile(d *frame.Diagram, filename string) (string, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")

	var write func(*frame.Diagram, io.Writer) error
	switch format {
	case "csv":
		write = WriteCSV
	case "xlsx":
		write = WriteXLSX
	case "pdf":
		write = WritePDF
	default:
		if diagram.SupportedFormat(format) {
			return diagram.ExportDiagram(d, filename)
		}
		return "", errors.Errorf("unsupported export format %q (use csv, xlsx, pdf, png or svg)", filepath.Ext(filename))
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", errors.Wrapf(err, "could not create directory (%s)", dir)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", errors.Wrapf(err, "could not create file (%s)", filename)
	}
	defer f.Close()

	if err := write(d, f); err != nil {
		return "", errors.Wrapf(err, "could not write %s export", format)
	}
	return filename, f.Close()
}

// WriteCSV writes one row per sample
func WriteCSV(d *frame.Diagram, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}
	for i := 0; i < d.Len(); i++ {
		record := []string{
			formatFloat(loads.Millimeters(d.Positions[i])),
			d.SegmentAt(i),
			formatFloat(d.Axial[i]),
			formatFloat(d.Shear[i]),
			formatFloat(d.Moment[i]),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
