package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesDefaultsToDark(t *testing.T) {
	t.Parallel()

	p, err := OpenPreferences(NewMemoryBackend())
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, p.Theme())
}

func TestPreferencesToggleAndPersist(t *testing.T) {
	t.Parallel()

	b, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	p, err := OpenPreferences(b)
	require.NoError(t, err)

	next, err := p.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, next)

	reopened, err := OpenPreferences(b)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, reopened.Theme())

	next, err = reopened.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, next)
}

func TestPreferencesRejectsUnknownTheme(t *testing.T) {
	t.Parallel()

	p, err := OpenPreferences(NewMemoryBackend())
	require.NoError(t, err)
	assert.ErrorIs(t, p.SetTheme("solarized"), ErrInvalidTheme)
	assert.Equal(t, ThemeDark, p.Theme())
}

func TestPreferencesIgnoresUnknownPersistedTheme(t *testing.T) {
	t.Parallel()

	b := NewMemoryBackend()
	require.NoError(t, b.Put(PreferencesNamespace, []byte("theme: sepia\n")))

	p, err := OpenPreferences(b)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, p.Theme())
}
