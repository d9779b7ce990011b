package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenMeteoCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "55.7558", r.URL.Query().Get("latitude"))
		require.Equal(t, "37.6173", r.URL.Query().Get("longitude"))
		require.Equal(t, "temperature_2m", r.URL.Query().Get("current"))
		_, _ = w.Write([]byte(`{"latitude":55.75,"longitude":37.625,"timezone":"GMT","elevation":144.0,
			"current":{"time":"2026-03-01T09:30","interval":900,"temperature_2m":-2.4}}`))
	}))
	defer srv.Close()

	p := NewOpenMeteo(srv.Client(), srv.URL)
	r, err := p.Current(context.Background(), Coordinates{Latitude: 55.7558, Longitude: 37.6173})
	require.NoError(t, err)
	require.Equal(t, -2.4, r.TemperatureC)
	require.Equal(t, "GMT", r.Timezone)
	require.Equal(t, 144.0, r.Elevation)
	require.Equal(t, "2026-03-01T09:30", r.ObservedAt)
	require.Equal(t, "-2.4°C", r.Temperature())
}

func TestOpenMeteoErrors(t *testing.T) {
	status := http.StatusInternalServerError
	body := `{}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()
	ctx := context.Background()

	p := NewOpenMeteo(srv.Client(), srv.URL)
	_, err := p.Current(ctx, Coordinates{})
	require.ErrorIs(t, err, ErrBadResponse)

	status, body = http.StatusOK, `not json`
	_, err = p.Current(ctx, Coordinates{})
	require.ErrorIs(t, err, ErrDecoding)

	body = `{"current":{}}`
	_, err = p.Current(ctx, Coordinates{})
	require.ErrorIs(t, err, ErrDecoding)

	_, err = NewOpenMeteo(nil, "::not a url").Current(ctx, Coordinates{})
	require.ErrorIs(t, err, ErrBadURL)
}

func TestOpenWeatherMapCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret", r.URL.Query().Get("appid"))
		require.Equal(t, "metric", r.URL.Query().Get("units"))
		_, _ = w.Write([]byte(`{"coord":{"lat":51.5,"lon":-0.13},"main":{"temp":11.3},"dt":1772357400,"timezone":-12600}`))
	}))
	defer srv.Close()

	p := NewOpenWeatherMap(srv.Client(), srv.URL, "secret")
	r, err := p.Current(context.Background(), Coordinates{Latitude: 51.5, Longitude: -0.13})
	require.NoError(t, err)
	require.Equal(t, 11.3, r.TemperatureC)
	require.Equal(t, "UTC-03:30", r.Timezone)
	require.NotEmpty(t, r.ObservedAt)

	_, err = NewOpenWeatherMap(srv.Client(), srv.URL, "").Current(context.Background(), Coordinates{})
	require.Error(t, err)
}

func TestGazetteerResolve(t *testing.T) {
	g, err := LoadGazetteer("")
	require.NoError(t, err)
	require.Contains(t, g.Names(), "Moscow")

	p, err := g.Resolve("moscow")
	require.NoError(t, err)
	require.Equal(t, "Moscow", p.Name)

	p, err = g.Resolve("Moskow")
	require.NoError(t, err)
	require.Equal(t, "Moscow", p.Name)

	p, err = g.Resolve("new yrok")
	require.NoError(t, err)
	require.Equal(t, "New York", p.Name)

	p, err = g.Resolve(" 10.5, -20 ")
	require.NoError(t, err)
	require.Equal(t, Coordinates{Latitude: 10.5, Longitude: -20}, p.At)

	_, err = g.Resolve("Atlantis")
	require.ErrorIs(t, err, ErrUnknownCity)
	_, err = g.Resolve("  ")
	require.ErrorIs(t, err, ErrUnknownCity)
}

func TestGazetteerUserFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[city]]
name = "moscow"
latitude = 1
longitude = 2

[[city]]
name = "Tver"
latitude = 56.8587
longitude = 35.9176
`), 0o600))

	g, err := LoadGazetteer(path)
	require.NoError(t, err)
	p, err := g.Resolve("Moscow")
	require.NoError(t, err)
	require.Equal(t, Coordinates{Latitude: 1, Longitude: 2}, p.At)
	p, err = g.Resolve("tver")
	require.NoError(t, err)
	require.Equal(t, "Tver", p.Name)

	_, err = LoadGazetteer(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestParseCoordinates(t *testing.T) {
	_, ok := ParseCoordinates("91,0")
	require.False(t, ok)
	_, ok = ParseCoordinates("1,2,3")
	require.False(t, ok)
	c, ok := ParseCoordinates("-37.8,144.9")
	require.True(t, ok)
	require.Equal(t, "-37.8000, 144.9000", c.String())
}
