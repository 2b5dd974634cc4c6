package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/config"
	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/schedule"
	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/webpage"
)

var renderCmd = &cobra.Command{
	Use:   "render [basename]",
	Short: "Render a schedule grid into a static HTML page",
	Long: `Read <data-dir>/<basename>.csv (or .xlsx when the name carries that
extension), extract per-cohort block timelines and write
<www-dir>/<basename>.html. With --merge, passing time adjacent to lunch is
folded into the lunch block and the output gets a -merge.html suffix.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataFlag, _ := cmd.Flags().GetString("data-dir")
		wwwFlag, _ := cmd.Flags().GetString("www-dir")
		merge, _ := cmd.Flags().GetBool("merge")

		cfg, _ := config.Load()
		dataDir := cfg.ResolveDataDir(dataFlag)
		wwwDir := cfg.ResolveWWWDir(wwwFlag)

		base, inPath := resolveInput(dataDir, args[0])

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

		page, err := webpage.Render(sched, totals, webpage.Options{
			Filename: base,
			CSVPath:  inPath,
			Now:      time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}

		suffix := ".html"
		if merge {
			suffix = "-merge.html"
		}
		outPath := filepath.Join(wwwDir, base+suffix)
		if err := os.WriteFile(outPath, []byte(page), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Printf("Wrote %s (%d columns)\n", outPath, len(sched.Days))
		return nil
	},
}

// resolveInput splits an optional extension off the basename argument and
// joins it with the data directory. A bare name defaults to .csv; bad
// extensions are rejected later by LoadGrid before any file I/O.
func resolveInput(dataDir, arg string) (base, path string) {
	ext := filepath.Ext(arg)
	if ext == "" {
		ext = ".csv"
	} else {
		arg = strings.TrimSuffix(arg, ext)
	}
	return arg, filepath.Join(dataDir, arg+ext)
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("data-dir", "d", "", "Directory holding schedule files (default ../data)")
	renderCmd.Flags().StringP("www-dir", "w", "", "Directory to write HTML output (default ../www)")
	renderCmd.Flags().BoolP("merge", "m", false, "Merge passing time adjacent to lunch into the lunch block")
}
