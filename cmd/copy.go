package cmd

import (
	"fmt"

	"github.com/inovacc/clipr/internal/clipboard"
	"github.com/inovacc/clipr/internal/config"
	"github.com/inovacc/clipr/internal/core"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy [id]",
	Short: "Copy a history entry back to the clipboard",
	Long:  `Copy the entry with the given id back to the system clipboard. Without an id, print the current clipboard content.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clip := clipboard.NewSystem()

		if len(args) == 0 {
			text, err := clip.ReadText()
			if err != nil {
				return fmt.Errorf("reading clipboard: %w", err)
			}

			fmt.Println(text)

			return nil
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

		entry, err := core.CopyEntry(db, clip, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Copied: %s\n", entry.Preview(60))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
