package usecases

import (
	"TUI_playlist_sorter/internal/core/domain"
	"TUI_playlist_sorter/internal/core/ports"
	"encoding/json"
	"fmt"
	"sync"
)

// DarkModeKey is the preference key holding the JSON-encoded dark mode flag.
const DarkModeKey = "darkMode"

// ThemeStore keeps the dark mode preference and the theme derived from it.
type ThemeStore struct {
	prefs ports.PreferencePort
	log   ports.LoggerPort

	mu    sync.RWMutex
	dark  bool
	theme domain.Theme
}

// NewThemeStore reads the persisted preference. A missing or unreadable
// value means light mode.
func NewThemeStore(prefs ports.PreferencePort, logger ports.LoggerPort) *ThemeStore {
	s := &ThemeStore{prefs: prefs, log: logger}

	raw, ok, err := prefs.Get(DarkModeKey)
	switch {
	case err != nil:
		logger.Error("Failed to read theme preference", err)
	case ok:
		if err := json.Unmarshal(raw, &s.dark); err != nil {
			logger.Warning("Ignoring malformed theme preference", "value", string(raw))
			s.dark = false
		}
	}

	s.theme = domain.NewTheme(s.dark)
	return s
}

func (s *ThemeStore) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

func (s *ThemeStore) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Toggle flips dark mode, persists it and returns the new theme. The switch
// takes effect even if persisting fails.
func (s *ThemeStore) Toggle() (domain.Theme, error) {
	s.mu.Lock()
	s.dark = !s.dark
	s.theme = domain.NewTheme(s.dark)
	dark, theme := s.dark, s.theme
	s.mu.Unlock()

	s.log.Info("Theme toggled", "mode", theme.Mode())

	raw, err := json.Marshal(dark)
	if err != nil {
		return theme, fmt.Errorf("error while encoding theme preference: %w", err)
	}

	if err := s.prefs.Put(DarkModeKey, raw); err != nil {
		s.log.Error("Failed to persist theme preference", err)
		return theme, fmt.Errorf("error while saving theme preference: %w", err)
	}

	return theme, nil
}
