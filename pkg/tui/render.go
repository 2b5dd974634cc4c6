package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/config"
	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/schedule"
	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/webpage"
)

// RunRenderTUI runs the interactive flow for picking a schedule file and
// rendering it to HTML.
func RunRenderTUI() error {
	fmt.Println(Accent("Welcome to the BHS schedule renderer!"))

	cfg, _ := config.Load()
	dataDir := cfg.ResolveDataDir("")
	wwwDir := cfg.ResolveWWWDir("")

	files, err := listScheduleFiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dataDir, err)
	}
	if len(files) == 0 {
		fmt.Println(Error(fmt.Sprintf("No .csv or .xlsx schedules found in %s!", dataDir)))
		return nil
	}

	var fileOptions []huh.Option[string]
	for _, f := range files {
		fileOptions = append(fileOptions, huh.NewOption(f, f))
	}

	var selected string
	var merge bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a schedule file").
				Options(fileOptions...).
				Value(&selected),

			huh.NewConfirm().
				Title("Merge passing time into lunch?").
				Value(&merge),

			huh.NewInput().
				Title("Output directory").
				Value(&wwwDir).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("output directory cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	inPath := filepath.Join(dataDir, selected)
	base := strings.TrimSuffix(selected, filepath.Ext(selected))
	suffix := ".html"
	if merge {
		suffix = "-merge.html"
	}
	outPath := filepath.Join(wwwDir, base+suffix)

	var page string
	var sched *schedule.Schedule
	var renderErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Rendering %s...", selected)).
		Action(func() {
			page, sched, renderErr = renderPage(inPath, base, merge)
		}).
		Run()

	if renderErr != nil {
		return renderErr
	}

	if err := os.WriteFile(outPath, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Println(Accent(fmt.Sprintf("\nSuccess! Rendered %d schedule columns to %s", len(sched.Days), outPath)))
	return nil
}

func renderPage(inPath, base string, merge bool) (string, *schedule.Schedule, error) {
	grid, err := schedule.LoadGrid(inPath)
	if err != nil {
		return "", nil, err
	}
	sched, err := schedule.Extract(grid)
	if err != nil {
		return "", nil, err
	}
	if merge {
		sched.Merge()
	}
	totals, err := schedule.ComputeTotals(sched)
	if err != nil {
		return "", nil, err
	}
	page, err := webpage.Render(sched, totals, webpage.Options{
		Filename: base,
		CSVPath:  inPath,
		Now:      time.Now(),
	})
	if err != nil {
		return "", nil, err
	}
	return page, sched, nil
}

// listScheduleFiles returns the sorted base names of loadable schedule files
// in dir.
func listScheduleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".csv", ".xlsx":
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
