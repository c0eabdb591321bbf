package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/goifd/internal/frame"
	"github.com/alexiusacademia/goifd/internal/loads"
	"github.com/spf13/cobra"
)

var (
	limitsAngle float64
	limitsL1    float64
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show the allowed L1 and L3 ranges for an angle",
	Long: `Show the ranges of L1 and L3 that keep the horizontal span within
500 mm for a given inclination of DE.

The span budget L1 + L3 equals 500 - L2·cos(angle). When --l1 is given
the remaining range of L3 is reported as well.

Examples:
  goifd limits --angle 65
  goifd limits --angle 65 --l1 204`,
	RunE: runLimits,
}

func init() {
	rootCmd.AddCommand(limitsCmd)

	limitsCmd.Flags().Float64VarP(&limitsAngle, "angle", "a", loads.DefaultAngle, "Inclination of diagonal part DE (degrees)")
	limitsCmd.Flags().Float64Var(&limitsL1, "l1", 0, "Length of AD (mm), to report the range of L3")
}

func runLimits(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	l, err := frame.LimitsFor(limitsAngle)
	if err != nil {
		return reportError(out, err, limitsAngle)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     INPUT LIMITS - SPAN ≤ 500 mm")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Inclination of DE (α):\t%.2f°\n", l.Angle)
	fmt.Fprintf(w, "  Length of DE (L2):\t%.2f mm\n", l.L2)
	fmt.Fprintf(w, "  Budget L1 + L3:\t%.2f mm\n", l.L1L3Max)
	fmt.Fprintf(w, "  L1 range:\t[%.2f, %.2f) mm\n", l.L1Min, l.L1Max)
	fmt.Fprintf(w, "  L3 lower bound:\t> %.2f mm\n", l.L3Min)
	w.Flush()

	if cmd.Flags().Changed("l1") {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  With L1 = %.2f mm:\n", limitsL1)
		switch {
		case l.Feasible(limitsL1):
			fmt.Fprintf(out, "    L3 range: (%.2f, %.2f] mm ✓\n", l.L3Min, l.L3Max(limitsL1))
		case limitsL1 < l.L1Min:
			fmt.Fprintf(out, "    L1 below the minimum of %.2f mm ⚠\n", l.L1Min)
		default:
			fmt.Fprintf(out, "    No L3 fits: L3 max %.2f mm ⚠\n", l.L3Max(limitsL1))
		}
	}
	fmt.Fprintln(out)
	return nil
}
