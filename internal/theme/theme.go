package theme

import (
	"errors"
	"fmt"

	"github.com/pders01/devtec/internal/config"
	"github.com/pders01/devtec/internal/debuglog"
	"github.com/pders01/devtec/internal/storage"
)

// PreferenceKey is the store key holding the theme. Its only stored value
// is "dark"; light is the absence of the key.
const PreferenceKey = "theme"

type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Icon is the header glyph for the active theme: a moon when dark, a
// sun when light.
func (t Theme) Icon() string {
	if t == Dark {
		return "☾"
	}
	return "☀"
}

// Colors picks the palette for t.
func (t Theme) Colors(ui config.UIConfig) config.UIColors {
	if t == Dark {
		return ui.Dark
	}
	return ui.Light
}

// Preferences is the part of the store the manager needs.
type Preferences interface {
	GetPreference(key string) (string, error)
	SetPreference(key, value string) error
	DeletePreference(key string) error
}

// Manager owns the current theme and keeps the store in step with it.
type Manager struct {
	prefs   Preferences
	current Theme
}

func NewManager(prefs Preferences) *Manager {
	return &Manager{prefs: prefs, current: Light}
}

// Load reads the stored theme. Any stored value other than "dark" is
// removed and treated as light. A nil store always yields light.
func (m *Manager) Load() (Theme, error) {
	m.current = Light
	if m.prefs == nil {
		return m.current, nil
	}

	value, err := m.prefs.GetPreference(PreferenceKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return m.current, nil
	case err != nil:
		return m.current, fmt.Errorf("reading theme preference: %w", err)
	}

	if value == Dark.String() {
		m.current = Dark
		return m.current, nil
	}

	debuglog.Warnf("discarding unknown theme preference %q", value)
	if err := m.prefs.DeletePreference(PreferenceKey); err != nil {
		return m.current, fmt.Errorf("clearing theme preference: %w", err)
	}
	return m.current, nil
}

// Current returns the active theme.
func (m *Manager) Current() Theme {
	return m.current
}

// Toggle flips the theme and persists the result. The in-memory theme
// flips even when the store write fails.
func (m *Manager) Toggle() (Theme, error) {
	if m.current == Dark {
		m.current = Light
	} else {
		m.current = Dark
	}
	return m.current, m.persist()
}

func (m *Manager) persist() error {
	if m.prefs == nil {
		return nil
	}

	var err error
	if m.current == Dark {
		err = m.prefs.SetPreference(PreferenceKey, Dark.String())
	} else {
		err = m.prefs.DeletePreference(PreferenceKey)
	}
	if err != nil {
		return fmt.Errorf("saving theme preference: %w", err)
	}
	return nil
}
