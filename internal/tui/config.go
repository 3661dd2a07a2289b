package tui

import (
	"log/slog"

	"github.com/Veraticus/sideline/internal/settings"
	"github.com/Veraticus/sideline/internal/sportsapi"
	"github.com/Veraticus/sideline/internal/transfers"
)

// Config holds TUI configuration.
type Config struct {
	Fetcher      sportsapi.Fetcher
	Board        *transfers.Board
	Settings     *settings.Service
	Logger       *slog.Logger
	Recorder     *Recorder
	Width        int
	Height       int
	FetchOnStart bool
	AltScreen    bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Width:        80,
		Height:       24,
		FetchOnStart: true,
		AltScreen:    true,
	}
}

// WithFetcher sets the league and team source.
func WithFetcher(fetcher sportsapi.Fetcher) Option {
	return func(c *Config) {
		c.Fetcher = fetcher
	}
}

// WithBoard sets the transfer board.
func WithBoard(board *transfers.Board) Option {
	return func(c *Config) {
		c.Board = board
	}
}

// WithSettings sets the settings service.
func WithSettings(svc *settings.Service) Option {
	return func(c *Config) {
		c.Settings = svc
	}
}

// WithLogger sets the logger used for background work.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithRecorder captures every frame for debugging.
func WithRecorder(r *Recorder) Option {
	return func(c *Config) {
		c.Recorder = r
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithFetchOnStart controls whether leagues are fetched as soon as the UI starts.
func WithFetchOnStart(enabled bool) Option {
	return func(c *Config) {
		c.FetchOnStart = enabled
	}
}

// WithAltScreen controls whether the UI takes over the whole terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
