package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/config"
	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/schedule"
)

var totalsCmd = &cobra.Command{
	Use:   "totals [basename]",
	Short: "Print per-cohort block-type time totals",
	Long: `Extract blocks from a schedule grid and print the accumulated minutes
per cohort and block-type code, with the symbolic sum of contributing block
durations alongside each total.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataFlag, _ := cmd.Flags().GetString("data-dir")
		merge, _ := cmd.Flags().GetBool("merge")

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
		totals, err := schedule.ComputeTotals(sched)
		if err != nil {
			return fmt.Errorf("failed to compute totals: %w", err)
		}

		cohortStyle := lipgloss.NewStyle().Bold(true)
		codes := totals.Codes()
		for _, cohort := range totals.Cohorts {
			fmt.Println(cohortStyle.Render(cohort + ":"))
			for _, code := range codes {
				total := totals.Get(cohort, code)
				if len(total.Parts) == 0 {
					continue
				}
				fmt.Printf("  %-3s = %3d = %s\n", code, total.Sum(), total.Expr())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(totalsCmd)

	totalsCmd.Flags().StringP("data-dir", "d", "", "Directory holding schedule files (default ../data)")
	totalsCmd.Flags().BoolP("merge", "m", false, "Merge passing time into lunch before totaling")
}
