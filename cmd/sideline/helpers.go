package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Veraticus/sideline/internal/config"
	"github.com/Veraticus/sideline/internal/settings"
	"github.com/Veraticus/sideline/internal/sportsapi"
	"github.com/Veraticus/sideline/internal/storage"
	"github.com/Veraticus/sideline/internal/transfers"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const spinnerInterval = 100 * time.Millisecond

// Swapped out in tests.
var (
	appFs      afero.Fs = afero.NewOsFs()
	newFetcher          = defaultFetcher
)

// loadConfig resolves the application configuration from viper.
func loadConfig() (config.AppConfig, error) {
	return config.Load(viper.GetViper())
}

func defaultFetcher(cfg config.AppConfig, logger *slog.Logger) (sportsapi.Fetcher, error) {
	client, err := sportsapi.New(sportsapi.Config{
		Logger:   logger,
		BaseURL:  cfg.API.BaseURL,
		APIKey:   cfg.API.Key,
		Timeout:  cfg.API.Timeout,
		RetryMax: cfg.API.RetryMax,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// newBoard creates the transfer board over the record in the data directory.
func newBoard(cfg config.AppConfig, logger *slog.Logger) *transfers.Board {
	return transfers.NewBoard(transfers.NewFileStore(appFs, cfg.DataDir), logger)
}

// initStorage opens the settings database and runs migrations.
func initStorage(ctx context.Context, cfg config.AppConfig) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// openSettings loads the settings service over storage. The returned cleanup
// closes the database.
func openSettings(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (*settings.Service, func(), error) {
	store, err := initStorage(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
	}

	svc := settings.NewService(store, logger)
	if _, err := svc.Load(ctx); err != nil {
		logger.Warn("some settings could not be read", "error", err)
	}
	return svc, cleanup, nil
}

// withSpinner shows an indeterminate progress spinner on w while fn runs.
func withSpinner(w io.Writer, description string, fn func() error) error {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription(description),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	err := fn()
	close(done)
	wg.Wait()
	_ = bar.Finish()
	return err
}
