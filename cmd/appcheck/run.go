package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/appcheck/config"
	"github.com/jonwraymond/appcheck/health"
	"github.com/jonwraymond/appcheck/observe"
	"github.com/jonwraymond/appcheck/report"
)

// ErrChecksFailed is returned when at least one check failed.
// The returned error causes main to exit with code 1.
var ErrChecksFailed = errors.New("checks failed")

const shutdownTimeout = 5 * time.Second

var (
	configPath string
	silent     bool
	noColor    bool
	width      int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every configured check and print a report",
	Args:  cobra.NoArgs,
	RunE:  runChecks,
}

func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultConfigFilename+")")
	runCmd.Flags().BoolVarP(&silent, "silent", "s", false, "suppress all report output")
	runCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	runCmd.Flags().IntVar(&width, "width", 0, "report width in columns (0 detects the terminal)")
	rootCmd.AddCommand(runCmd)
}

func runChecks(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("silent") {
		cfg.Silent = silent
	}

	checks, err := cfg.Build()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	obsCfg := cfg.Observe("appcheck", Version)
	obsCfg.Output = cmd.ErrOrStderr()
	if cfg.Silent {
		// Remote exporters still ship; nothing is written locally.
		obsCfg.Output = io.Discard
	}
	obs, err := observe.NewObserver(ctx, obsCfg)
	if err != nil {
		return fmt.Errorf("observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := obs.Shutdown(shutdownCtx); shutdownErr != nil && err == nil {
			err = shutdownErr
		}
	}()

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		return fmt.Errorf("observability: %w", err)
	}

	runner := health.NewRunner(
		health.WithReporter(newReporter(cmd, cfg.Silent)),
		health.WithLogger(obs.Logger()),
		health.WithMiddleware(mw),
		health.WithSilent(cfg.Silent),
	)
	for _, check := range checks {
		if _, err := runner.Register(check); err != nil {
			return err
		}
	}

	if summary := runner.Run(ctx); summary.Failures > 0 {
		return ErrChecksFailed
	}
	return nil
}

func newReporter(cmd *cobra.Command, silent bool) *report.Reporter {
	opts := []report.Option{
		report.WithOutput(cmd.OutOrStdout()),
		report.WithSilent(silent),
	}
	if noColor {
		opts = append(opts, report.WithColor(false))
	}
	if width > 0 {
		opts = append(opts, report.WithWidth(report.FixedWidth(width)))
	}
	return report.New(opts...)
}
