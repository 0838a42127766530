package cmd

import (
	"fmt"

	"github.com/inovacc/clipr/internal/config"
	"github.com/inovacc/clipr/internal/core"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a single history entry by id",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := core.OpenStore(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := core.Remove(db, args[0]); err != nil {
			return err
		}

		fmt.Printf("Removed: %s\n", args[0])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
