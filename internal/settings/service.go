// Package settings owns the user's theme and language preferences.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/model"
)

// Storage keys.
const (
	KeyDarkTheme = "theme.dark"
	KeyRussian   = "language.russian"
)

// Store persists settings as string key/value pairs.
type Store interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Service holds the current settings. Changes apply in memory first and are
// then persisted; a failed write is returned but not rolled back.
type Service struct {
	store   Store
	logger  *slog.Logger
	edited  map[string]bool
	current model.Settings
	mu      sync.Mutex
	// saveMu serializes writes so the last one always carries the newest value.
	saveMu sync.Mutex
}

// NewService creates a service. A nil store keeps settings in memory only.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:   store,
		logger:  logger,
		edited:  map[string]bool{},
		current: model.DefaultSettings(),
	}
}

// Current returns the settings in effect.
func (s *Service) Current() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Load reads stored settings. Missing keys keep their defaults; unreadable
// values are logged and ignored. A switch already changed through Apply keeps
// its in-memory value.
func (s *Service) Load(ctx context.Context) (model.Settings, error) {
	loaded := model.DefaultSettings()
	if s.store == nil {
		return s.merge(loaded), nil
	}

	var errs []error
	for _, key := range []string{KeyDarkTheme, KeyRussian} {
		on, err := s.readBool(ctx, key)
		switch {
		case errors.Is(err, common.ErrNotFound):
		case err != nil:
			errs = append(errs, err)
		default:
			assign(&loaded, key, on)
		}
	}

	return s.merge(loaded), errors.Join(errs...)
}

// SetDarkTheme switches the dark theme on or off.
func (s *Service) SetDarkTheme(ctx context.Context, on bool) (model.Settings, error) {
	return s.set(ctx, KeyDarkTheme, on)
}

// SetRussian switches the interface language between English and Russian.
func (s *Service) SetRussian(ctx context.Context, on bool) (model.Settings, error) {
	return s.set(ctx, KeyRussian, on)
}

func (s *Service) set(ctx context.Context, key string, on bool) (model.Settings, error) {
	updated, err := s.Apply(key, on)
	if err != nil {
		return updated, err
	}
	return s.Current(), s.Persist(ctx, key)
}

// Apply changes one switch in memory without writing it.
func (s *Service) Apply(key string, on bool) (model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !known(key) {
		return s.current, fmt.Errorf("%w: setting %q", common.ErrNotFound, key)
	}
	assign(&s.current, key, on)
	s.edited[key] = true
	return s.current, nil
}

// Persist writes the in-memory value of key. Writes are serialized and each
// reads the value at write time, so overlapping calls finish with the newest
// value stored regardless of the order they run in.
func (s *Service) Persist(ctx context.Context, key string) error {
	if !known(key) {
		return fmt.Errorf("%w: setting %q", common.ErrNotFound, key)
	}
	if s.store == nil {
		return nil
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	on := value(s.Current(), key)
	if err := s.store.SetSetting(ctx, key, strconv.FormatBool(on)); err != nil {
		s.logger.Error("failed to persist setting", "key", key, "error", err)
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Service) readBool(ctx context.Context, key string) (bool, error) {
	raw, err := s.store.GetSetting(ctx, key)
	if err != nil {
		return false, err
	}
	on, err := strconv.ParseBool(raw)
	if err != nil {
		s.logger.Warn("ignoring unreadable setting", "key", key, "value", raw)
		return false, common.ErrNotFound
	}
	return on, nil
}

// merge installs loaded values for every switch not yet changed in memory.
func (s *Service) merge(loaded model.Settings) model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range []string{KeyDarkTheme, KeyRussian} {
		if !s.edited[key] {
			assign(&s.current, key, value(loaded, key))
		}
	}
	return s.current
}

func known(key string) bool {
	return key == KeyDarkTheme || key == KeyRussian
}

func value(st model.Settings, key string) bool {
	if key == KeyDarkTheme {
		return st.DarkTheme
	}
	return st.Russian
}

func assign(st *model.Settings, key string, on bool) {
	if key == KeyDarkTheme {
		st.DarkTheme = on
		return
	}
	st.Russian = on
}
