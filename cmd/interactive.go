package cmd

import (
	"github.com/spf13/cobra"

	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive renderer",
	Long:  `Launch the interactive flow to pick a schedule file, toggle lunch merging, and render it to HTML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunRenderTUI()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
