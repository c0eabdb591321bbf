package cmd

import (
	"github.com/alexiusacademia/goifd/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportInputs geometryFlags
	exportFile   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the force diagrams as a table, report or image",
	Long: `Compute the force diagrams and write them to a file. The format
follows the file extension.

  csv   one row per sample point
  xlsx  workbook with Forces, Sections and Inputs sheets
  pdf   report with geometry, sections, peak values and the chart
  png   chart image (svg also supported)

Examples:
  goifd export --l1 204 --angle 65 --l3 234 -o forces.csv
  goifd export -o report.pdf`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportInputs.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportFile, "output", "o", "", "Output file [required]")
	exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	d, err := exportInputs.compute()
	if err != nil {
		return reportError(out, err, exportInputs.angle)
	}

	path, err := export.ToFile(d, exportFile)
	if err != nil {
		return reportError(out, err, exportInputs.angle)
	}
	printSuccess(out, "Exported %d sample points to: %s", d.Len(), path)
	return nil
}
