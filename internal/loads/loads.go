package loads

// Frame constants for the AD-DE-EC-BC bracket

const (
	// Applied loads (N)
	P105 = 105.0 // load carried through AD, DE and EC
	P195 = 195.0 // reaction at B
	P300 = 300.0 // load acting along EC

	// Geometry (mm)
	Offset    = 120.0 // perpendicular rise of the diagonal DE
	MaxSpan   = 500.0 // limit on L1 + L2·cos(α) + L3
	BCLength  = 175.0 // vertical leg BC, fixed
	MinLength = 50.0  // smallest L1 or L3 offered to the user

	// Sampling
	DefaultSamples = 100  // points per segment
	MaxSamples     = 2000 // points per segment a caller may ask for

	// MM converts millimetres to metres
	MM = 1e-3
)

// Default inputs, as first presented to the user
const (
	DefaultL1    = 204.0 // mm
	DefaultAngle = 65.0  // degrees
	DefaultL3    = 234.0 // mm
)

// Meters converts a length in millimetres to metres.
func Meters(mm float64) float64 {
	return mm * MM
}

// Millimeters converts a length in metres to millimetres.
func Millimeters(m float64) float64 {
	return m * 1e3
}
