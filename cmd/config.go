package cmd

import (
	"fmt"

	"github.com/inovacc/clipr/internal/config"
	"github.com/inovacc/clipr/internal/model"
	"github.com/spf13/cobra"
)

var (
	configShow  bool
	configReset bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or reset the clipr configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configReset {
			defaultCfg := model.DefaultConfig()
			if err := config.Save(defaultCfg); err != nil {
				return fmt.Errorf("failed to reset configuration: %w", err)
			}

			fmt.Println("Configuration reset to defaults:")
			printConfig(defaultCfg)

			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		fmt.Println("Current Configuration:")
		printConfig(cfg)

		if !configShow {
			path, err := config.Path()
			if err == nil {
				fmt.Printf("\nEdit %s to change settings.\n", path)
			}
		}

		return nil
	},
}

func printConfig(cfg model.Config) {
	fmt.Println("=====================")
	fmt.Printf("Poll Interval:  %d ms\n", cfg.PollIntervalMS)

	historyFile := cfg.HistoryFile
	if historyFile == "" {
		historyFile = "(backend default)"
	}

	fmt.Printf("History File:   %s\n", historyFile)

	if cfg.MaxEntries == 0 {
		fmt.Printf("Max Entries:    unlimited\n")
	} else {
		fmt.Printf("Max Entries:    %d\n", cfg.MaxEntries)
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVarP(&configShow, "show", "s", false, "Show current configuration")
	configCmd.Flags().BoolVarP(&configReset, "reset", "r", false, "Reset configuration to defaults")
}
