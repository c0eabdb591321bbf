package export

import (
	"io"

	"github.com/alexiusacademia/goifd/internal/frame"
	"github.com/alexiusacademia/goifd/internal/loads"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook
const (
	ForcesSheet   = "Forces"
	SectionsSheet = "Sections"
	InputsSheet   = "Inputs"
)

// WriteXLSX writes a workbook with the sampled forces, the section ranges
// and the inputs that produced them
func WriteXLSX(d *frame.Diagram, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ForcesSheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(ForcesSheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", toRow(Header)); err != nil {
		return err
	}
	for i := 0; i < d.Len(); i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		err = sw.SetRow(cell, []interface{}{
			loads.Millimeters(d.Positions[i]),
			d.SegmentAt(i),
			d.Axial[i],
			d.Shear[i],
			d.Moment[i],
		})
		if err != nil {
			return errors.Wrapf(err, "row %d", i+2)
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	if _, err := f.NewSheet(SectionsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(SectionsSheet, "A1", &[]interface{}{"section", "start_mm", "end_mm", "length_mm"}); err != nil {
		return err
	}
	for i, b := range d.Boundaries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			b.Name,
			loads.Millimeters(b.Start),
			loads.Millimeters(b.End),
			loads.Millimeters(b.End - b.Start),
		}
		if err := f.SetSheetRow(SectionsSheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(InputsSheet); err != nil {
		return err
	}
	inputs := [][]interface{}{
		{"L1_mm", d.Geometry.L1},
		{"angle_deg", d.Geometry.Angle},
		{"L3_mm", d.Geometry.L3},
		{"L2_mm", d.L2},
		{"span_mm", d.Span},
		{"samples_per_segment", d.Samples},
	}
	for i, row := range inputs {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(InputsSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
