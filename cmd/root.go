package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goifd/internal/version"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"
)

var rootCmd = &cobra.Command{
	Use:   "goifd",
	Short: "Internal Force Diagrams of a four-segment frame",
	Long: `goifd - Go Internal Force Diagrams

A CLI tool that computes the axial force, shear force and bending moment
along the AD-DE-EC-BC frame: two horizontal segments joined by a diagonal
that rises 120 mm, ending in a 175 mm vertical leg.

The frame is set by three inputs:
  - L1     length of the horizontal part AD (mm)
  - angle  inclination of the diagonal part DE (degrees)
  - L3     length of the horizontal part EC (mm)

The diagonal length follows as L2 = 120 / sin(angle), and the horizontal
span L1 + L2·cos(angle) + L3 may not exceed 500 mm.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   goifd v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Internal Force Diagrams                              ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Computes axial force, shear force and bending moment along")
		fmt.Fprintln(out, "  the AD-DE-EC-BC frame.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Force diagrams in the terminal")
		fmt.Fprintln(out, "    • Input ranges that respect the 500 mm span")
		fmt.Fprintln(out, "    • Export to png, svg, pdf, csv and xlsx")
		fmt.Fprintln(out, "    • HTTP API for interactive front ends")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'goifd --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// A failed command exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var re *reportedError
		if !errors.As(err, &re) {
			fmt.Fprintln(os.Stderr, chalk.Red.Color(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	// commands print their own errors; flag errors are printed by Execute
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
