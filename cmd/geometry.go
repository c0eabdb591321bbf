package cmd

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/goifd/internal/frame"
	"github.com/alexiusacademia/goifd/internal/loads"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"
)

const rule = "───────────────────────────────────────────────────────────────"

// geometryFlags are the frame inputs shared by diagram and export
type geometryFlags struct {
	l1      float64
	angle   float64
	l3      float64
	samples int
}

func (g *geometryFlags) register(c *cobra.Command) {
	c.Flags().Float64Var(&g.l1, "l1", loads.DefaultL1, "Length of horizontal part AD, L1 (mm)")
	c.Flags().Float64VarP(&g.angle, "angle", "a", loads.DefaultAngle, "Inclination of diagonal part DE (degrees)")
	c.Flags().Float64Var(&g.l3, "l3", loads.DefaultL3, "Length of horizontal part EC, L3 (mm)")
	c.Flags().IntVarP(&g.samples, "samples", "n", loads.DefaultSamples, "Sample points per segment")
}

func (g *geometryFlags) compute() (*frame.Diagram, error) {
	if g.samples > loads.MaxSamples {
		return nil, errors.Errorf("samples = %d: at most %d samples per segment are supported", g.samples, loads.MaxSamples)
	}
	return frame.Compute(frame.NewGeometry(g.l1, g.angle, g.l3), g.samples)
}

// reportedError is an error already printed to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// reportError prints err in red and returns it marked as reported, so
// Execute only sets the exit status. Constraint violations also show the
// ranges that would have been accepted for the angle.
func reportError(out io.Writer, err error, angle float64) error {
	fmt.Fprintln(out, chalk.Red.Color(fmt.Sprintf("Error: %v", err)))

	var ce *frame.ConstraintError
	if errors.As(err, &ce) {
		if l, lerr := frame.LimitsFor(angle); lerr == nil {
			fmt.Fprintln(out, chalk.Yellow.Color(fmt.Sprintf(
				"Hint: at %.1f° use L1 in [%.0f, %.2f) mm and L1 + L3 ≤ %.2f mm with L3 > %.0f mm",
				angle, l.L1Min, l.L1Max, l.L1L3Max, l.L3Min)))
		}
	}
	return &reportedError{err: err}
}

func printSuccess(out io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(out, chalk.Green.Color(fmt.Sprintf(format, args...)))
}
