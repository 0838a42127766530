package cmd

import (
	"fmt"

	"github.com/inovacc/clipr/internal/config"
	"github.com/inovacc/clipr/internal/core"
	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the entire clipboard history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			fmt.Print("Clear the entire clipboard history? [y/N]: ")

			var response string
			_, _ = fmt.Scanln(&response)

			if response != "y" && response != "Y" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := core.OpenStore(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := core.Clear(db); err != nil {
			return err
		}

		fmt.Println("History cleared.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip confirmation prompt")
}
