// Command rund opens console apps in their own positioned terminal
// window, optionally feeding them the clipboard and backing up the file
// they worked on.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"rund/internal/config"
	"rund/internal/launch"
	"rund/internal/logger"
	"rund/internal/notify"
)

var (
	useClipboard bool
	outputFile   string
	backupDir    string
	alwaysOnTop  bool
	showConfig   bool
	dryRun       bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "rund [flags] APP [ARGS...]",
	Short: "run console apps in detached terminal windows",
	Long: `rund opens a console app in its own terminal window, sized and placed
from config, and keeps the window open when the app's output would
otherwise vanish. The clipboard can be captured to a file handed to the
app, and the file is backed up afterwards if the app changed it.`,
	Example: `  rund notepad
  rund -c -o snippet.txt nvim
  rund bat README.md
  rund --config`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrInit()
		if err != nil {
			return fmt.Errorf("Failed to load config: %v", err)
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		if err := logger.Init(level, cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to open log file: %v\n", err)
		}

		if showConfig {
			fmt.Printf("Config file: %s\n", cfg.Path)
			return nil
		}

		opts := launch.Options{
			UseClipboard: useClipboard,
			OutputFile:   outputFile,
			BackupDir:    backupDir,
			AlwaysOnTop:  alwaysOnTop,
			DryRun:       dryRun,
		}
		if len(args) > 0 {
			opts.App = args[0]
			opts.Args = args[1:]
		} else {
			opts.App = cfg.DefaultApp
		}
		if opts.App == "" {
			return errors.New("No app specified and no default_app in config")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := launch.Run(ctx, cfg, opts); err != nil {
			return fmt.Errorf("Failed to run terminal: %v", err)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	// Everything after the app name belongs to the app.
	flags.SetInterspersed(false)
	flags.BoolVarP(&useClipboard, "clipboard", "c", false, "save the clipboard to a file and hand it to the app")
	flags.StringVarP(&outputFile, "output", "o", "", "target file for the app (receives the clipboard with -c)")
	flags.StringVarP(&backupDir, "backup", "b", "", "where changed files are backed up (default from config)")
	flags.BoolVarP(&alwaysOnTop, "top", "t", false, "keep the window on top (not implemented)")
	flags.BoolVar(&showConfig, "config", false, "print the config file path and exit")
	flags.BoolVar(&dryRun, "dry-run", false, "print the launch instead of performing it")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		notify.Show(err.Error())
		os.Exit(1)
	}
}
