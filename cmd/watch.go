package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inovacc/clipr/internal/application"
	"github.com/inovacc/clipr/internal/clipboard"
	"github.com/inovacc/clipr/internal/config"
	"github.com/inovacc/clipr/internal/core"
	"github.com/inovacc/clipr/internal/notify"
	"github.com/inovacc/clipr/internal/process"
	"github.com/spf13/cobra"
)

var (
	watchInterval time.Duration
	watchHistory  string
	watchQuiet    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the clipboard and record every distinct copy",
	Long: `Run the clipboard watcher in the foreground. Each time the clipboard
content changes, the new text is categorized and appended to the history.
Stop with Ctrl+C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", 0, "Polling interval (default from config, 500ms)")
	watchCmd.Flags().StringVar(&watchHistory, "history", "", "History file path (default from config)")
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Do not print captures to the console")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if watchHistory != "" {
		cfg.HistoryFile = watchHistory
	}

	interval := time.Duration(cfg.PollIntervalMS) * time.Millisecond
	if watchInterval > 0 {
		interval = watchInterval
	}

	// The store assumes a single writer; refuse to start a second watcher.
	if process.AnotherInstanceRunning(application.AppExeName) {
		return fmt.Errorf("another %s process appears to be running; only one watcher may write the history", application.AppName)
	}

	db, err := core.OpenStore(cfg)
	if err != nil {
		return err
	}

	senders := []notify.Sender{notify.NewLog(nil)}
	if !watchQuiet {
		senders = append(senders, notify.NewConsole(os.Stdout))
	}

	watcher := core.NewWatcher(db, clipboard.NewSystem(), interval, senders...)
	watcher.Start()

	fmt.Printf("Watching clipboard every %s. Press Ctrl+C to stop.\n", interval)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	fmt.Println("\nStopping watcher...")

	return watcher.Stop()
}
