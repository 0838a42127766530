package cmd

import (
	"os"

	"github.com/inovacc/clipr/internal/application"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A clipboard history manager",
	Long: `Clipr watches the system clipboard, records every distinct copied text
with a timestamp and a heuristic content category, and lets you browse,
search, and filter the history interactively.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}
