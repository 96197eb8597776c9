package theme

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/devtec/internal/config"
	"github.com/pders01/devtec/internal/storage"
)

func openStore(t *testing.T) (*storage.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.db")
	store, err := storage.NewStore(path)
	require.NoError(t, err)
	return store, path
}

func TestToggle_FirstUseGoesDarkThenBack(t *testing.T) {
	store, _ := openStore(t)
	defer store.Close()

	m := NewManager(store)
	got, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, Light, got)

	got, err = m.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Dark, got)
	value, err := store.GetPreference(PreferenceKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	got, err = m.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Light, got)
	_, err = store.GetPreference(PreferenceKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLoad_PersistsAcrossRestarts(t *testing.T) {
	store, path := openStore(t)
	_, err := NewManager(store).Toggle()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = storage.NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	m := NewManager(store)
	got, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, Dark, got)
	assert.Equal(t, Dark, m.Current())
}

func TestLoad_UnknownValueIsCleared(t *testing.T) {
	store, _ := openStore(t)
	defer store.Close()
	require.NoError(t, store.SetPreference(PreferenceKey, "solarized"))

	m := NewManager(store)
	got, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, Light, got)

	_, err = store.GetPreference(PreferenceKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNilStore(t *testing.T) {
	m := NewManager(nil)

	got, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, Light, got)

	got, err = m.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Dark, got)
}

type failingPrefs struct{}

func (failingPrefs) GetPreference(string) (string, error) { return "", errors.New("disk on fire") }
func (failingPrefs) SetPreference(string, string) error   { return errors.New("disk on fire") }
func (failingPrefs) DeletePreference(string) error        { return errors.New("disk on fire") }

func TestStoreFailures(t *testing.T) {
	m := NewManager(failingPrefs{})

	got, err := m.Load()
	assert.Error(t, err)
	assert.Equal(t, Light, got)

	got, err = m.Toggle()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving theme preference")
	assert.Equal(t, Dark, got)
	assert.Equal(t, Dark, m.Current())
}

func TestThemeAccessors(t *testing.T) {
	ui := config.TestConfig().UI

	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "dark", Dark.String())
	assert.Equal(t, "☀", Light.Icon())
	assert.Equal(t, "☾", Dark.Icon())
	assert.Equal(t, ui.Light, Light.Colors(ui))
	assert.Equal(t, ui.Dark, Dark.Colors(ui))
}
