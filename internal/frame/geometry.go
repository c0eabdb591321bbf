package frame

import (
	"math"

	"github.com/alexiusacademia/goifd/internal/loads"
)

// Geometry holds the three free parameters of the frame
type Geometry struct {
	L1    float64 `json:"l1"`    // AD length (mm)
	Angle float64 `json:"angle"` // DE inclination (degrees)
	L3    float64 `json:"l3"`    // EC length (mm)
}

// NewGeometry creates a geometry from L1 (mm), angle (degrees) and L3 (mm)
func NewGeometry(l1, angle, l3 float64) Geometry {
	return Geometry{L1: l1, Angle: angle, L3: l3}
}

// DefaultGeometry returns the inputs first shown to the user
func DefaultGeometry() Geometry {
	return NewGeometry(loads.DefaultL1, loads.DefaultAngle, loads.DefaultL3)
}

// Radians returns the angle in radians
func (g Geometry) Radians() float64 {
	return g.Angle * math.Pi / 180
}

// L2 returns the diagonal length (mm) fixed by the 120 mm rise.
// The angle must be checked first; L2 is infinite when sin(angle) = 0.
func (g Geometry) L2() float64 {
	return loads.Offset / math.Sin(g.Radians())
}

// Span returns the horizontal projection L1 + L2·cos(α) + L3 (mm)
func (g Geometry) Span() float64 {
	return g.L1 + g.L2()*math.Cos(g.Radians()) + g.L3
}

// Length returns the unrolled centreline length L1 + L2 + L3 + BC (mm)
func (g Geometry) Length() float64 {
	return g.L1 + g.L2() + g.L3 + loads.BCLength
}

// CheckAngle verifies the angle lies strictly inside (0°, 90°)
func CheckAngle(angle float64) error {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return &DomainError{Field: "angle", Value: angle, msg: "angle must be a finite number"}
	}
	if math.Sin(angle*math.Pi/180) == 0 {
		return &DomainError{Field: "angle", Value: angle, msg: "sin(angle) is zero, L2 is undefined"}
	}
	if angle <= 0 || angle >= 90 {
		return &DomainError{Field: "angle", Value: angle, msg: "angle must lie strictly between 0 and 90 degrees"}
	}
	return nil
}

// Validate checks the geometry before any segment is built
func (g Geometry) Validate() error {
	if err := CheckAngle(g.Angle); err != nil {
		return err
	}
	for _, f := range []struct {
		name  string
		value float64
	}{{"L1", g.L1}, {"L3", g.L3}} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &DomainError{Field: f.name, Value: f.value, msg: "length must be a finite number"}
		}
	}

	if g.L1 <= 0 {
		return &ConstraintError{Field: "L1", Value: g.L1, Limit: 0, msg: "AD length must be positive"}
	}
	if g.L3 <= loads.BCLength {
		return &ConstraintError{Field: "L3", Value: g.L3, Limit: loads.BCLength, msg: "EC length must exceed the BC leg"}
	}
	if span := g.Span(); span > loads.MaxSpan {
		return &ConstraintError{Field: "span", Value: span, Limit: loads.MaxSpan, msg: "L1 + L2·cos(angle) + L3 exceeds the horizontal span"}
	}
	return nil
}
