package segment

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goifd/internal/loads"
	"gonum.org/v1/gonum/floats"
)

// Kind identifies one of the four fixed portions of the frame centreline
type Kind int

const (
	AD Kind = iota // horizontal, from the free end A to D
	DE             // diagonal, rises by loads.Offset
	EC             // horizontal, from E to C
	BC             // vertical leg at the support B
)

func (k Kind) String() string {
	switch k {
	case AD:
		return "AD"
	case DE:
		return "DE"
	case EC:
		return "EC"
	case BC:
		return "BC"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Segment holds the geometry one force law needs. Lengths are in metres.
//
// Domain is the upper bound of the local coordinate the laws are written
// for. Extent is the length the segment occupies on the unrolled centreline;
// it differs from Domain only for EC, whose laws start 175 mm before C.
type Segment struct {
	Kind   Kind
	Extent float64
	Domain float64

	l1    float64 // AD length, DE moment arm
	alpha float64 // DE inclination (rad)
}

// NewAD creates the horizontal segment AD from its length L1 (mm)
func NewAD(l1 float64) (*Segment, error) {
	sup := loads.Meters(l1)
	if err := checkDomain(AD, sup); err != nil {
		return nil, err
	}
	return &Segment{Kind: AD, Extent: sup, Domain: sup}, nil
}

// NewDE creates the diagonal segment DE. l1 and l2 are in mm, angle in degrees.
func NewDE(l1, l2, angle float64) (*Segment, error) {
	sup := loads.Meters(l2)
	if err := checkDomain(DE, sup); err != nil {
		return nil, err
	}
	return &Segment{
		Kind:   DE,
		Extent: sup,
		Domain: sup,
		l1:     loads.Meters(l1),
		alpha:  angle * math.Pi / 180,
	}, nil
}

// NewEC creates the horizontal segment EC from its length L3 (mm).
// L3 must exceed the BC length so the force-law domain is not empty.
func NewEC(l3 float64) (*Segment, error) {
	sup := loads.Meters(l3 - loads.BCLength)
	if err := checkDomain(EC, sup); err != nil {
		return nil, err
	}
	return &Segment{Kind: EC, Extent: loads.Meters(l3), Domain: sup}, nil
}

// NewBC creates the fixed-length vertical leg
func NewBC() *Segment {
	sup := loads.Meters(loads.BCLength)
	return &Segment{Kind: BC, Extent: sup, Domain: sup}
}

func checkDomain(k Kind, sup float64) error {
	if math.IsNaN(sup) || math.IsInf(sup, 0) || sup <= 0 {
		return &LengthError{Kind: k, Length: sup}
	}
	return nil
}

// Alpha returns the inclination of the segment in radians
func (s *Segment) Alpha() float64 {
	return s.alpha
}

// Nx returns the axial force (N) at local coordinate t (m)
func (s *Segment) Nx(t float64) float64 {
	switch s.Kind {
	case DE:
		return loads.P105 * math.Sin(s.alpha)
	default:
		return 0
	}
}

// Ty returns the shear force (N) at local coordinate t (m)
func (s *Segment) Ty(t float64) float64 {
	switch s.Kind {
	case DE:
		return loads.P105 * math.Cos(s.alpha)
	case BC:
		return -loads.P195
	default:
		return loads.P105
	}
}

// Mz returns the bending moment (N·m) at local coordinate t (m)
func (s *Segment) Mz(t float64) float64 {
	switch s.Kind {
	case AD:
		return loads.P105 * t
	case DE:
		return loads.P105 * (s.l1 + t*math.Cos(s.alpha))
	case EC:
		return -loads.P300*t + loads.P195*(loads.Meters(loads.BCLength)+t)
	case BC:
		return loads.P195 * t
	default:
		return 0
	}
}

// Samples holds a segment's force laws evaluated on a coordinate grid
type Samples struct {
	T  []float64 // local coordinate (m)
	Nx []float64 // N
	Ty []float64 // N
	Mz []float64 // N·m
}

// Len returns the number of sample points
func (s *Samples) Len() int {
	return len(s.T)
}

// Sample evaluates the force laws at n evenly spaced points covering
// [0, Domain], both ends included.
func (s *Segment) Sample(n int) (*Samples, error) {
	if n < 2 {
		return nil, fmt.Errorf("segment %s: need at least 2 samples, got %d", s.Kind, n)
	}

	ts := floats.Span(make([]float64, n), 0, s.Domain)
	ts[n-1] = s.Domain

	out := &Samples{
		T:  ts,
		Nx: make([]float64, n),
		Ty: make([]float64, n),
		Mz: make([]float64, n),
	}
	for i, t := range out.T {
		out.Nx[i] = s.Nx(t)
		out.Ty[i] = s.Ty(t)
		out.Mz[i] = s.Mz(t)
	}
	return out, nil
}

// LengthError reports a segment whose force-law domain is not positive
type LengthError struct {
	Kind   Kind
	Length float64 // m
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("segment %s has non-positive length %.4f m", e.Kind, e.Length)
}
