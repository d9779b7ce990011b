package service

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/miniapps/internal/database"
	"github.com/jask/miniapps/internal/database/repository"
	"github.com/jask/miniapps/internal/weather"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type fakeProvider struct {
	calls   int
	reading weather.Reading
	err     error
}

func (f *fakeProvider) Current(ctx context.Context, at weather.Coordinates) (weather.Reading, error) {
	f.calls++
	if f.err != nil {
		return weather.Reading{}, f.err
	}
	r := f.reading
	r.At = at
	return r, nil
}

func TestForecastLookupUsesCacheUntilExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openTestDB(t)
	gz, err := weather.LoadGazetteer("")
	require.NoError(t, err)

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	prov := &fakeProvider{reading: weather.Reading{TemperatureC: 5.5, Timezone: "GMT", ObservedAt: "2026-03-01T12:00"}}
	svc := &ForecastService{
		Provider:  prov,
		Gazetteer: gz,
		Cache:     repository.NewWeatherCacheRepo(db),
		TTL:       10 * time.Minute,
		Timeout:   time.Second,
		Now:       func() time.Time { return clock },
	}

	rep, err := svc.Lookup(ctx, "Moscow")
	require.NoError(t, err)
	require.False(t, rep.Cached)
	require.Equal(t, "Moscow", rep.Place.Name)
	require.Equal(t, 5.5, rep.Reading.TemperatureC)
	require.Equal(t, 1, prov.calls)

	clock = clock.Add(5 * time.Minute)
	rep, err = svc.Lookup(ctx, "moskow")
	require.NoError(t, err)
	require.True(t, rep.Cached)
	require.Equal(t, 5.5, rep.Reading.TemperatureC)
	require.Equal(t, "GMT", rep.Reading.Timezone)
	require.Equal(t, 1, prov.calls)

	clock = clock.Add(10 * time.Minute)
	prov.reading.TemperatureC = 7
	rep, err = svc.Lookup(ctx, "Moscow")
	require.NoError(t, err)
	require.False(t, rep.Cached)
	require.Equal(t, 7.0, rep.Reading.TemperatureC)
	require.Equal(t, 2, prov.calls)
}

func TestForecastLookupErrors(t *testing.T) {
	t.Parallel()
	gz := weather.NewGazetteer([]weather.Place{{Name: "Kazan", At: weather.Coordinates{Latitude: 55.79, Longitude: 49.1}}})
	prov := &fakeProvider{err: weather.ErrBadResponse}
	svc := &ForecastService{Provider: prov, Gazetteer: gz}

	_, err := svc.Lookup(context.Background(), "Atlantis")
	require.ErrorIs(t, err, weather.ErrUnknownCity)
	require.Zero(t, prov.calls)

	_, err = svc.Lookup(context.Background(), "Kazan")
	require.True(t, errors.Is(err, weather.ErrBadResponse))

	_, err = (&ForecastService{}).Lookup(context.Background(), "Kazan")
	require.Error(t, err)
}

func TestCacheKeyRoundsCoordinates(t *testing.T) {
	a := cacheKey(weather.Coordinates{Latitude: 55.7558, Longitude: 37.6173})
	b := cacheKey(weather.Coordinates{Latitude: 55.7561, Longitude: 37.6169})
	c := cacheKey(weather.Coordinates{Latitude: 59.93, Longitude: 30.33})
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestResultsRecordAndTotals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openTestDB(t)
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &ResultsService{Results: repository.NewResultRepo(db), Now: func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}}

	empty, err := svc.Totals(ctx)
	require.NoError(t, err)
	require.Equal(t, "no rounds yet", empty.Summary())
	require.Empty(t, empty.Latest())

	require.NoError(t, svc.Record(ctx, RoundFinished{AppID: "a", Game: "tictactoe", Outcome: "X"}))
	require.NoError(t, svc.Record(ctx, RoundFinished{AppID: "a", Game: "tictactoe", Outcome: "draw"}))
	require.NoError(t, svc.Record(ctx, RoundFinished{AppID: "b", Game: "guessnumber", Outcome: "win", Attempts: 4}))
	require.Error(t, svc.Record(ctx, RoundFinished{AppID: "b"}))

	totals, err := svc.Totals(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, totals.Rounds)
	require.Equal(t, 1, totals.ByGame["tictactoe"]["X"])
	require.Equal(t, 1, totals.ByGame["guessnumber"]["win"])
	require.Equal(t, "3 rounds (guessnumber 1, tictactoe 2)", totals.Summary())
	require.Equal(t, "last: guessnumber win in 4, tictactoe draw, tictactoe X", totals.Latest())

	require.NoError(t, svc.Record(ctx, RoundFinished{AppID: "a", Game: "tictactoe", Outcome: "O"}))
	totals, err = svc.Totals(ctx)
	require.NoError(t, err)
	require.Len(t, totals.Recent, 3)
	require.Equal(t, "O", totals.Recent[0].Outcome)
}

func TestMaintenanceResetClearsJournalAndCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openTestDB(t)
	results := &ResultsService{Results: repository.NewResultRepo(db)}
	cache := repository.NewWeatherCacheRepo(db)

	require.NoError(t, results.Record(ctx, RoundFinished{AppID: "a", Game: "tictactoe", Outcome: "O"}))
	require.NoError(t, cache.Put(ctx, repository.CachedReading{Key: "k", FetchedAt: time.Now().UTC()}))

	cleared, err := (&MaintenanceService{DB: db}).Reset(ctx)
	require.NoError(t, err)
	require.Equal(t, Cleared{Rounds: 1, Forecasts: 1}, cleared)
	require.Equal(t, "cleared 1 rounds and 1 cached forecasts", cleared.String())

	totals, err := results.Totals(ctx)
	require.NoError(t, err)
	require.Zero(t, totals.Rounds)
	hit, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, hit)

	cleared, err = (&MaintenanceService{DB: db}).Reset(ctx)
	require.NoError(t, err)
	require.Zero(t, cleared.Rounds)

	_, err = (&MaintenanceService{}).Reset(ctx)
	require.Error(t, err)
}
