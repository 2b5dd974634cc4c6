package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/config"
	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/exporter"
	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/schedule"
)

var exportCmd = &cobra.Command{
	Use:   "export [basename]",
	Short: "Export a schedule's blocks to an ICS file",
	Long: `Map each non-passing block of the schedule onto a concrete week and
write the result as an .ics calendar. The --week flag names the Monday the
schedule week starts on.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataFlag, _ := cmd.Flags().GetString("data-dir")
		weekStr, _ := cmd.Flags().GetString("week")
		output, _ := cmd.Flags().GetString("output")
		merge, _ := cmd.Flags().GetBool("merge")

		monday, err := time.Parse("2006-01-02", weekStr)
		if err != nil {
			return fmt.Errorf("invalid --week date %q (want YYYY-MM-DD): %w", weekStr, err)
		}

		cfg, _ := config.Load()
		dataDir := cfg.ResolveDataDir(dataFlag)
		_, inPath := resolveInput(dataDir, args[0])

		grid, err := schedule.LoadGrid(inPath)
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}
		sched, err := schedule.Extract(grid)
		if err != nil {
			return fmt.Errorf("failed to extract blocks: %w", err)
		}
		if merge {
			sched.Merge()
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(sched, monday, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d schedule columns to %s\n", len(sched.Days), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("data-dir", "d", "", "Directory holding schedule files (default ../data)")
	exportCmd.Flags().StringP("week", "w", "", "Monday the schedule week starts on (YYYY-MM-DD)")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().BoolP("merge", "m", false, "Merge passing time into lunch before exporting")
	exportCmd.MarkFlagRequired("week")
}
