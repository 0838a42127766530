package cmd

import (
	"fmt"
	"time"

	"github.com/inovacc/clipr/internal/clipboard"
	"github.com/inovacc/clipr/internal/config"
	"github.com/inovacc/clipr/internal/core"
	"github.com/inovacc/clipr/internal/notify"
	"github.com/kardianos/service"
	"github.com/spf13/cobra"
)

var (
	serviceRun       bool
	serviceStart     bool
	serviceStop      bool
	serviceInstall   bool
	serviceUninstall bool
	serviceStatus    bool
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Run the clipboard watcher as a system service",
	Long: `Install, uninstall, start, stop, or check the status of the clipr watcher
as a system service.

On Windows, this creates/manages a Windows Service.
On Linux/macOS, this creates/manages a systemd/launchd service.`,
	RunE: runServiceCmd,
}

func init() {
	rootCmd.AddCommand(serviceCmd)
	serviceCmd.Flags().BoolVar(&serviceStart, "start", false, "Start the watcher service")
	serviceCmd.Flags().BoolVar(&serviceStop, "stop", false, "Stop the watcher service")
	serviceCmd.Flags().BoolVar(&serviceInstall, "install", false, "Install the watcher as a system service")
	serviceCmd.Flags().BoolVar(&serviceUninstall, "uninstall", false, "Uninstall the watcher system service")
	serviceCmd.Flags().BoolVar(&serviceStatus, "status", false, "Check the watcher service status")
	serviceCmd.Flags().BoolVar(&serviceRun, "run", false, "Run the watcher (invoked by the service manager)")
	_ = serviceCmd.Flags().MarkHidden("run")
}

// program implements service.Interface and owns the watcher pipeline.
type program struct {
	watcher *core.Watcher
}

func (p *program) Start(s service.Service) error {
	// Start must not block; the poller runs in its own goroutine.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := core.OpenStore(cfg)
	if err != nil {
		return err
	}

	interval := time.Duration(cfg.PollIntervalMS) * time.Millisecond

	p.watcher = core.NewWatcher(db, clipboard.NewSystem(), interval, notify.NewLog(nil))
	p.watcher.Start()

	return nil
}

func (p *program) Stop(s service.Service) error {
	if p.watcher == nil {
		return nil
	}

	return p.watcher.Stop()
}

func runServiceCmd(cmd *cobra.Command, args []string) error {
	flagCount := 0

	for _, set := range []bool{serviceRun, serviceStart, serviceStop, serviceInstall, serviceUninstall, serviceStatus} {
		if set {
			flagCount++
		}
	}

	if flagCount == 0 {
		return fmt.Errorf("please specify one of: --start, --stop, --install, --uninstall, --status")
	}

	if flagCount > 1 {
		return fmt.Errorf("please specify only one operation at a time")
	}

	svcConfig := &service.Config{
		Name:        "CliprWatcher",
		DisplayName: "Clipr Clipboard Watcher",
		Description: "Records clipboard history for the clipr clipboard manager",
		Arguments:   []string{"service", "--run"},
	}

	prg := &program{}

	s, err := service.New(prg, svcConfig)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	switch {
	case serviceRun:
		// Blocks until the service manager stops us.
		return s.Run()
	case serviceInstall:
		return installService(s)
	case serviceUninstall:
		return uninstallService(s)
	case serviceStart:
		return startService(s)
	case serviceStop:
		return stopService(s)
	case serviceStatus:
		return statusService(s)
	}

	return nil
}

func installService(s service.Service) error {
	fmt.Println("Installing clipr watcher service...")

	if err := s.Install(); err != nil {
		return fmt.Errorf("failed to install service: %w", err)
	}

	fmt.Println("Service installed successfully.")
	fmt.Println("\nTo start the service, run:")
	fmt.Println("  clipr service --start")

	return nil
}

func uninstallService(s service.Service) error {
	fmt.Println("Uninstalling clipr watcher service...")

	// Try to stop first
	_ = s.Stop()

	if err := s.Uninstall(); err != nil {
		return fmt.Errorf("failed to uninstall service: %w", err)
	}

	fmt.Println("Service uninstalled successfully.")

	return nil
}

func startService(s service.Service) error {
	fmt.Println("Starting clipr watcher service...")

	if err := s.Start(); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}

	fmt.Println("Service started successfully.")
	fmt.Println("\nBrowse captures with:")
	fmt.Println("  clipr history")

	return nil
}

func stopService(s service.Service) error {
	fmt.Println("Stopping clipr watcher service...")

	if err := s.Stop(); err != nil {
		return fmt.Errorf("failed to stop service: %w", err)
	}

	fmt.Println("Service stopped successfully.")

	return nil
}

func statusService(s service.Service) error {
	status, err := s.Status()
	if err != nil {
		return fmt.Errorf("failed to get service status: %w", err)
	}

	fmt.Printf("Service Status: ")

	switch status {
	case service.StatusRunning:
		fmt.Println("Running")
	case service.StatusStopped:
		fmt.Println("Stopped")
	default:
		fmt.Println("Unknown")
	}

	return nil
}
