package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psb-2018-2019-apcsp/bhs-calendar/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage bhs-calendar configuration",
	Long:  "View or edit your local configuration settings (default data/output directories, accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false

		if dataDir, _ := cmd.Flags().GetString("set-data-dir"); dataDir != "" {
			cfg.DataDir = dataDir
			changed = true
		}
		if wwwDir, _ := cmd.Flags().GetString("set-www-dir"); wwwDir != "" {
			cfg.WWWDir = wwwDir
			changed = true
		}
		if accent, _ := cmd.Flags().GetString("set-accent"); accent != "" {
			cfg.AccentColor = accent
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Println("Configuration saved.")
		}

		fmt.Printf("Data directory:   %s\n", cfg.ResolveDataDir(""))
		fmt.Printf("Output directory: %s\n", cfg.ResolveWWWDir(""))
		if cfg.AccentColor != "" {
			fmt.Printf("Accent color:     %s\n", cfg.AccentColor)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().String("set-data-dir", "", "Set the default schedule data directory")
	configCmd.Flags().String("set-www-dir", "", "Set the default HTML output directory")
	configCmd.Flags().String("set-accent", "", "Set the interactive accent color (ANSI code)")
}
