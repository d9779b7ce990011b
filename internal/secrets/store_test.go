package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	s := &Store{Dir: filepath.Join(t.TempDir(), "miniapps")}

	_, err := s.Get("openweathermap")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(" OpenWeatherMap ", " abc123\n"))
	got, err := s.Get("openweathermap")
	require.NoError(t, err)
	require.Equal(t, "abc123", got)

	raw, err := os.ReadFile(filepath.Join(s.Dir, fileName))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "abc123")
	info, err := os.Stat(filepath.Join(s.Dir, fileName))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, s.Delete("openweathermap"))
	_, err = s.Get("openweathermap")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.Delete("openweathermap"), ErrNotFound)
}

func TestStoreRejectsEmptyProvider(t *testing.T) {
	s := &Store{Dir: t.TempDir()}
	require.Error(t, s.Put("  ", "k"))
	_, err := s.Get("")
	require.Error(t, err)
	require.Error(t, (&Store{}).Put("x", "k"))
}
