package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingIsZero(t *testing.T) {
	s := &Store{Dir: filepath.Join(t.TempDir(), "nested")}
	p, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, Prefs{}, p)
}

func TestSaveLoad(t *testing.T) {
	s := &Store{Dir: t.TempDir()}
	require.NoError(t, s.Save(Prefs{DisplayMode: "medium", LastCity: "Kazan"}))

	raw, err := os.ReadFile(filepath.Join(s.Dir, fileName))
	require.NoError(t, err)
	require.Equal(t, "display_mode: medium\nlast_city: Kazan\n", string(raw))

	p, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, Prefs{DisplayMode: "medium", LastCity: "Kazan"}, p)
}

func TestLoadRejectsGarbage(t *testing.T) {
	s := &Store{Dir: t.TempDir()}
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, fileName), []byte("display_mode: [oops"), 0o600))
	_, err := s.Load()
	require.Error(t, err)
}
