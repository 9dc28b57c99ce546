// Epdui drives a slow-refresh e-paper display: pages of focusable
// widgets, an overlay menu and a render scheduler that coalesces refresh
// requests.
//
// Usage:
//
//	epdui [flags]
//
// See 'epdui --help' for available options.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rook-computer/epdui/internal/app"
	"github.com/rook-computer/epdui/internal/config"
	"github.com/rook-computer/epdui/internal/logging"
	"github.com/rook-computer/epdui/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	configPath string
	logLevel   string
	stdioLog   string
)

var rootCmd = &cobra.Command{
	Use:   "epdui",
	Short: "E-paper UI runtime",
	Long: `Run the e-paper UI on a Linux framebuffer device.

The runtime draws pages of focusable widgets and an overlay menu, and
schedules display refreshes so that at most one is pending at a time.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config and EPDUI_LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&stdioLog, "stdio-log", "", "Redirect stdout+stderr (including panics) to this file; also configurable via EPDUI_STDIO_LOG")

	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	// Capture panics and stray prints even when the console is left in
	// graphics mode.
	logPath := stdioLog
	if logPath == "" {
		logPath = os.Getenv("EPDUI_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}
	defer logging.Sync()
	log := logging.L()

	a, err := app.New(cfg, app.Options{}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Start(ctx); err != nil && err != context.Canceled {
		log.Error("app exited with error", zap.Error(err))
		return err
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("epdui %s (commit: %s)\n", version.Version, version.Commit)
	},
}
