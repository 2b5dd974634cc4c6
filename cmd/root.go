package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bhs-calendar",
	Short: "A CLI for rendering BHS weekly schedules",
	Long: `bhs-calendar turns a weekly school schedule CSV (or XLSX) grid into a
static HTML page of per-cohort daily block timelines, with per-block-type
time totals and an optional calendar export.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
