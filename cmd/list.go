package cmd

import (
	"fmt"

	"github.com/inovacc/clipr/internal/config"
	"github.com/inovacc/clipr/internal/core"
	"github.com/inovacc/clipr/internal/model"
	"github.com/spf13/cobra"
)

var listCategory categoryValue

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the clipboard history",
	Long:    `Print every history entry, oldest first. Use --category to limit the output to one category.`,
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

		var entries []model.ClipEntry

		if label := listCategory.String(); label != "" {
			entries, err = core.Filter(db, label)
		} else {
			entries, err = core.List(db)
		}

		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("History is empty.")
			return nil
		}

		printEntries(entries)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().VarP(&listCategory, "category", "c", "Show only entries of this category (Code, LaTeX, Quote, URL, Plaintext)")
}
