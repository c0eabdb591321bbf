package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goifd/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goifd",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Internal Force Diagrams of the AD-DE-EC-BC frame")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
