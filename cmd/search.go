package cmd

import (
	"fmt"

	"github.com/inovacc/clipr/internal/config"
	"github.com/inovacc/clipr/internal/core"
	"github.com/inovacc/clipr/internal/model"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the clipboard history",
	Long:  `Print every history entry whose text contains the given term (case-insensitive), oldest first.`,
	Args:  cobra.ExactArgs(1),
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

		entries, err := core.Search(db, args[0])
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No matching entries.")
			return nil
		}

		printEntries(entries)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func printEntries(entries []model.ClipEntry) {
	for _, entry := range entries {
		fmt.Printf("%s  %-10s %s  %s\n",
			entry.ID,
			fmt.Sprintf("[%s]", entry.Category),
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Preview(60))
	}
}
