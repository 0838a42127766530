package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/clipr/internal/cli"
	"github.com/inovacc/clipr/internal/clipboard"
	"github.com/inovacc/clipr/internal/config"
	"github.com/inovacc/clipr/internal/core"
	"github.com/inovacc/clipr/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// categoryValue is a pflag.Value that only accepts known category labels.
type categoryValue struct {
	label string
}

var _ pflag.Value = (*categoryValue)(nil)

func (v *categoryValue) String() string {
	return v.label
}

func (v *categoryValue) Set(s string) error {
	if s == "" {
		v.label = ""
		return nil
	}

	category, err := model.ParseCategory(s)
	if err != nil {
		labels := make([]string, len(model.Categories))
		for i, c := range model.Categories {
			labels[i] = string(c)
		}

		return fmt.Errorf("%w (expected one of %s)", err, strings.Join(labels, ", "))
	}

	v.label = string(category)

	return nil
}

func (v *categoryValue) Type() string {
	return "category"
}

var historyCategory categoryValue

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse the clipboard history interactively",
	Long: `Open the history browser. Type / to search entry text, press 0-5 to
filter by category, Enter to copy the selected entry back to the clipboard,
and x to delete it.`,
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

		m, err := cli.NewHistory(db, clipboard.NewSystem(), historyCategory.String())
		if err != nil {
			return err
		}

		p := tea.NewProgram(m)
		_, err = p.Run()

		return err
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().VarP(&historyCategory, "category", "c", "Show only entries of this category (Code, LaTeX, Quote, URL, Plaintext)")
}
