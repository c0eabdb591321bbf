package frame

import (
	"math"

	"github.com/alexiusacademia/goifd/internal/loads"
)

// Limits holds the input ranges that keep the span constraint satisfied
// for a given angle. An input control recomputes them whenever the angle
// changes.
type Limits struct {
	Angle   float64 `json:"angle"`     // degrees
	L2      float64 `json:"l2"`        // mm
	L1L3Max float64 `json:"l1_l3_max"` // mm, budget shared by L1 and L3
	L1Min   float64 `json:"l1_min"`    // mm
	L1Max   float64 `json:"l1_max"`    // mm, exclusive
	L3Min   float64 `json:"l3_min"`    // mm, exclusive
}

// LimitsFor computes the L1 and L3 ranges for an angle in degrees
func LimitsFor(angle float64) (*Limits, error) {
	if err := CheckAngle(angle); err != nil {
		return nil, err
	}

	g := Geometry{Angle: angle}
	l2 := g.L2()
	budget := loads.MaxSpan - l2*math.Cos(g.Radians())

	// EC needs L3 beyond the BC leg to have a force-law domain
	l3Min := math.Max(loads.MinLength, loads.BCLength)

	return &Limits{
		Angle:   angle,
		L2:      l2,
		L1L3Max: budget,
		L1Min:   loads.MinLength,
		L1Max:   budget - l3Min,
		L3Min:   l3Min,
	}, nil
}

// L3Max returns the largest L3 (mm) allowed once L1 is fixed
func (l *Limits) L3Max(l1 float64) float64 {
	return l.L1L3Max - l1
}

// Feasible reports whether l1 is in range and leaves some L3 above L3Min
func (l *Limits) Feasible(l1 float64) bool {
	return l1 >= l.L1Min && l.L3Max(l1) > l.L3Min
}
