package diagram

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/goifd/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reference(t *testing.T) *frame.Diagram {
	t.Helper()
	d, err := frame.Compute(frame.DefaultGeometry(), 100)
	require.NoError(t, err)
	return d
}

func TestDrawASCIIDiagram(t *testing.T) {
	d := reference(t)
	opts := DefaultASCIIOptions()
	out := DrawASCIIDiagram(d, opts)

	assert.Contains(t, out, "SHEAR FORCE (T_Y)")
	assert.Contains(t, out, "AXIAL FORCE (N_X)")
	assert.Contains(t, out, "BENDING MOMENT (M_Z)")
	assert.Contains(t, out, "along 0 – 745 mm")
	assert.Equal(t, 3, strings.Count(out, DrawSectionRuler(d, opts.Width)))
}

func TestDrawSectionRuler(t *testing.T) {
	d := reference(t)
	ruler := DrawSectionRuler(d, 60)

	require.Len(t, []rune(ruler), 60)
	for _, name := range []string{"AD", "DE", "EC", "BC"} {
		assert.Contains(t, ruler, name)
	}
	assert.True(t, strings.HasPrefix(ruler, "┆"))
	assert.True(t, strings.HasSuffix(ruler, "┆"))
	assert.Equal(t, 5, strings.Count(ruler, "┆"))

	assert.Empty(t, DrawSectionRuler(d, 1))
	assert.Empty(t, DrawSectionRuler(&frame.Diagram{}, 60))
}

func TestChartColumnsFollowRuler(t *testing.T) {
	d, err := frame.Compute(frame.NewGeometry(50, 80, 300), 100)
	require.NoError(t, err)

	const width = 64
	var seps []int
	for c, r := range []rune(DrawSectionRuler(d, width)) {
		if r == '┆' {
			seps = append(seps, c)
		}
	}
	require.Len(t, seps, 5)

	shear := resample(d, d.Shear, width)
	require.Len(t, shear, width)

	de := 105 * math.Cos(80*math.Pi/180)
	for c := seps[0]; c < seps[1]; c++ {
		assert.InDelta(t, 105, shear[c], 1e-9, "AD column %d", c)
	}
	for c := seps[1] + 1; c < seps[2]; c++ {
		assert.InDelta(t, de, shear[c], 1e-9, "DE column %d", c)
	}
	for c := seps[3] + 1; c < width; c++ {
		assert.InDelta(t, -195, shear[c], 1e-9, "BC column %d", c)
	}

	// the first and last columns are the end samples
	moment := resample(d, d.Moment, width)
	assert.InDelta(t, 0, moment[0], 1e-12)
	assert.InDelta(t, d.Moment[len(d.Moment)-1], moment[width-1], 1e-9)
}

func TestResampleLeavesShortInputAlone(t *testing.T) {
	d := reference(t)
	assert.Equal(t, d.Shear, resample(d, d.Shear, 1))
	assert.Empty(t, resample(&frame.Diagram{}, nil, 10))
}

func TestDrawSectionTable(t *testing.T) {
	out := DrawSectionTable(reference(t))
	assert.Contains(t, out, "Section")
	assert.Contains(t, out, "204.00")
	assert.Contains(t, out, "175.00")
	assert.Equal(t, 6, strings.Count(out, "\n"))
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("RESULT", []string{"M = 21.42 N·m", "short"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 5)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
	assert.Contains(t, box, "RESULT")
}

func TestSummaryLines(t *testing.T) {
	lines := SummaryLines(reference(t))
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "132.41 mm")
	assert.Contains(t, lines[3], "-195.00 N in BC")
}

func TestWriteDiagram(t *testing.T) {
	d := reference(t)

	tests := []struct {
		format string
		magic  string
	}{
		{"png", "\x89PNG"},
		{"svg", "<svg"},
		{"pdf", "%PDF"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteDiagram(d, &buf, tt.format))
			head := buf.String()
			if len(head) > 512 {
				head = head[:512]
			}
			assert.Contains(t, head, tt.magic)
		})
	}
}

func TestWriteDiagramUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteDiagram(reference(t), &buf, "bmp"))
}

func TestExportDiagram(t *testing.T) {
	dir := t.TempDir()
	d := reference(t)

	name, err := ExportDiagram(d, filepath.Join(dir, "out", "forces.svg"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "forces.svg"), name)

	name, err = ExportDiagram(d, filepath.Join(dir, "forces"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "forces.png"), name)

	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSupportedFormat(t *testing.T) {
	assert.True(t, SupportedFormat("png"))
	assert.True(t, SupportedFormat("pdf"))
	assert.False(t, SupportedFormat("jpg"))
	assert.False(t, SupportedFormat(""))
}
