package frame

import (
	"math"

	"github.com/alexiusacademia/goifd/internal/loads"
	"github.com/alexiusacademia/goifd/internal/segment"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Boundary marks the global range (m) covered by one segment
type Boundary struct {
	Name  string  `json:"name"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Mid returns the centre of the range, where the section label goes
func (b Boundary) Mid() float64 {
	return (b.Start + b.End) / 2
}

// Diagram holds the internal forces of the whole frame, sampled segment
// after segment in AD, DE, EC, BC order.
type Diagram struct {
	Geometry Geometry `json:"geometry"`
	L2       float64  `json:"l2"`   // mm
	Span     float64  `json:"span"` // mm
	Samples  int      `json:"samples"`

	Positions []float64 `json:"positions"` // m
	Axial     []float64 `json:"axial"`     // N
	Shear     []float64 `json:"shear"`     // N
	Moment    []float64 `json:"moment"`    // N·m

	Boundaries []Boundary `json:"boundaries"`
}

// Compute evaluates the four segments for the given geometry with n samples
// per segment. Invalid geometry yields an error and no diagram.
func Compute(g Geometry, n int) (*Diagram, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, &DomainError{Field: "samples", Value: float64(n), msg: "at least 2 samples per segment are required"}
	}

	l2 := g.L2()
	segs, err := build(g, l2)
	if err != nil {
		return nil, err
	}

	total := n * len(segs)
	d := &Diagram{
		Geometry:   g,
		L2:         l2,
		Span:       g.Span(),
		Samples:    n,
		Positions:  make([]float64, 0, total),
		Axial:      make([]float64, 0, total),
		Shear:      make([]float64, 0, total),
		Moment:     make([]float64, 0, total),
		Boundaries: make([]Boundary, 0, len(segs)),
	}

	var offset float64
	for _, s := range segs {
		smp, err := s.Sample(n)
		if err != nil {
			return nil, err
		}
		for _, t := range smp.T {
			d.Positions = append(d.Positions, offset+t)
		}
		d.Axial = append(d.Axial, smp.Nx...)
		d.Shear = append(d.Shear, smp.Ty...)
		d.Moment = append(d.Moment, smp.Mz...)

		d.Boundaries = append(d.Boundaries, Boundary{
			Name:  s.Kind.String(),
			Start: offset,
			End:   offset + s.Extent,
		})
		offset += s.Extent
	}

	return d, nil
}

func build(g Geometry, l2 float64) ([]*segment.Segment, error) {
	ad, err := segment.NewAD(g.L1)
	if err != nil {
		return nil, lengthConstraint(err)
	}
	de, err := segment.NewDE(g.L1, l2, g.Angle)
	if err != nil {
		return nil, lengthConstraint(err)
	}
	ec, err := segment.NewEC(g.L3)
	if err != nil {
		return nil, lengthConstraint(err)
	}
	return []*segment.Segment{ad, de, ec, segment.NewBC()}, nil
}

func lengthConstraint(err error) error {
	var le *segment.LengthError
	if !errors.As(err, &le) {
		return err
	}
	return &ConstraintError{
		Field: le.Kind.String(),
		Value: loads.Millimeters(le.Length),
		Limit: 0,
		msg:   "segment length must be positive",
	}
}

// Len returns the total number of samples
func (d *Diagram) Len() int {
	return len(d.Positions)
}

// Section returns the sample index range [from, to) of the i-th segment
func (d *Diagram) Section(i int) (from, to int) {
	return i * d.Samples, (i + 1) * d.Samples
}

// SegmentAt returns the name of the segment the k-th sample belongs to, or
// "" when there is no such sample
func (d *Diagram) SegmentAt(k int) string {
	if d.Samples <= 0 || k < 0 {
		return ""
	}
	i := k / d.Samples
	if i < 0 || i >= len(d.Boundaries) {
		return ""
	}
	return d.Boundaries[i].Name
}

// Peak locates the largest absolute value of a sampled quantity
type Peak struct {
	Segment  string  `json:"segment"`
	Position float64 `json:"position"` // m
	Value    float64 `json:"value"`
}

// PeakOf returns the sample with the largest magnitude in values, which must
// be one of the diagram's quantity slices.
func (d *Diagram) PeakOf(values []float64) Peak {
	if len(values) == 0 {
		return Peak{}
	}
	hi, lo := floats.MaxIdx(values), floats.MinIdx(values)
	k := hi
	if math.Abs(values[lo]) > math.Abs(values[hi]) {
		k = lo
	}
	return Peak{Segment: d.SegmentAt(k), Position: d.Positions[k], Value: values[k]}
}

// End returns the global position of the last sample (m)
func (d *Diagram) End() float64 {
	if len(d.Positions) == 0 {
		return 0
	}
	return d.Positions[len(d.Positions)-1]
}
