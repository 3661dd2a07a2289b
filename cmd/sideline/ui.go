package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/config"
	"github.com/Veraticus/sideline/internal/tui"
	"github.com/spf13/cobra"
)

var recordDir string

func init() {
	rootCmd.Flags().StringVar(&recordDir, "record-dir", "", "save every rendered frame under this directory (debugging)")
}

func runUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The UI owns the terminal, so logs go to a file.
	logger, closeLog, err := openLogFile(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	fetcher, err := newFetcher(cfg, logger)
	if err != nil {
		return err
	}

	svc, cleanup, err := openSettings(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := []tui.Option{
		tui.WithFetcher(fetcher),
		tui.WithBoard(newBoard(cfg, logger)),
		tui.WithSettings(svc),
		tui.WithLogger(logger),
	}

	if recordDir != "" {
		recorder, recErr := tui.NewRecorder(appFs, config.ExpandPath(recordDir))
		if recErr != nil {
			return recErr
		}
		opts = append(opts, tui.WithRecorder(recorder))
		defer fmt.Fprintf(cmd.ErrOrStderr(), "Recording saved to %s\n", recorder.Dir())
	}

	common.LogInfo("starting interactive app", common.Fields{"data_dir": cfg.DataDir, "version": version})
	return tui.Run(ctx, opts...)
}

// openLogFile builds a logger appending to the configured log file.
func openLogFile(cfg config.LoggingConfig) (*slog.Logger, func(), error) {
	level, err := common.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	if err := appFs.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
		return nil, nil, &common.IOError{Op: "write", Path: cfg.File, Err: err}
	}
	f, err := appFs.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, &common.IOError{Op: "write", Path: cfg.File, Err: err}
	}

	logger, err := common.NewLogger(f, level, cfg.Format)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	return logger, func() { _ = f.Close() }, nil
}
