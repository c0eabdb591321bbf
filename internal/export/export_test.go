package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/alexiusacademia/goifd/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func reference(t *testing.T, n int) *frame.Diagram {
	t.Helper()
	d, err := frame.Compute(frame.DefaultGeometry(), n)
	require.NoError(t, err)
	return d
}

func TestWriteCSV(t *testing.T) {
	d := reference(t, 10)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(d, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 41)
	assert.Equal(t, Header, records[0])

	assert.Equal(t, []string{"0.000000", "AD", "0.000000", "105.000000", "0.000000"}, records[1])
	assert.Equal(t, "DE", records[11][1])
	assert.Equal(t, "BC", records[40][1])

	last, err := strconv.ParseFloat(records[40][0], 64)
	require.NoError(t, err)
	assert.InDelta(t, 204+d.L2+234+175, last, 1e-5)
}

func TestWriteXLSX(t *testing.T) {
	d := reference(t, 20)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(d, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ForcesSheet, SectionsSheet, InputsSheet}, f.GetSheetList())

	rows, err := f.GetRows(ForcesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 81)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "AD", rows[1][1])
	assert.Equal(t, "-195", rows[80][3])

	sections, err := f.GetRows(SectionsSheet)
	require.NoError(t, err)
	require.Len(t, sections, 5)
	assert.Equal(t, []string{"AD", "DE", "EC", "BC"}, []string{sections[1][0], sections[2][0], sections[3][0], sections[4][0]})

	l1, err := f.GetCellValue(InputsSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "204", l1)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(reference(t, 50), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()
	d := reference(t, 10)

	for _, name := range []string{"forces.csv", "forces.xlsx", "report.pdf", "charts.png", "nested/charts.svg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			got, err := ToFile(d, path)
			require.NoError(t, err)
			assert.Equal(t, path, got)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		})
	}
}

func TestToFileRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	_, err := ToFile(reference(t, 10), filepath.Join(dir, "forces.doc"))
	assert.ErrorContains(t, err, "unsupported export format")

	_, err = os.Stat(filepath.Join(dir, "forces.doc"))
	assert.True(t, os.IsNotExist(err))
}
