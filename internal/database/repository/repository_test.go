package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/miniapps/internal/database"
	"github.com/jask/miniapps/internal/database/repository"
)

type repos struct {
	results *repository.ResultRepo
	cache   *repository.WeatherCacheRepo
}

func openDB(t *testing.T) repos {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(path))
	// second run is a no-op
	require.NoError(t, database.RunMigrations(path))
	db, err := database.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repos{results: repository.NewResultRepo(db), cache: repository.NewWeatherCacheRepo(db)}
}

func TestResultRepoCountsAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := openDB(t).results

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := []repository.RoundResult{
		{ID: "a", AppID: "app1", Game: "tictactoe", Outcome: "X", CreatedAt: base},
		{ID: "b", AppID: "app1", Game: "tictactoe", Outcome: "X", CreatedAt: base.Add(time.Minute)},
		{ID: "c", AppID: "app2", Game: "tictactoe", Outcome: "draw", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "d", AppID: "app3", Game: "guessnumber", Outcome: "win", Attempts: 6, CreatedAt: base.Add(3 * time.Minute)},
	}
	for _, r := range rows {
		require.NoError(t, repo.Insert(ctx, r))
	}

	counts, err := repo.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, []repository.OutcomeCount{
		{Game: "guessnumber", Outcome: "win", Count: 1},
		{Game: "tictactoe", Outcome: "X", Count: 2},
		{Game: "tictactoe", Outcome: "draw", Count: 1},
	}, counts)

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "d", recent[0].ID)
	require.Equal(t, 6, recent[0].Attempts)
	require.True(t, recent[0].CreatedAt.Equal(base.Add(3*time.Minute)))
	require.Equal(t, "c", recent[1].ID)
}

func TestWeatherCacheUpsert(t *testing.T) {
	ctx := context.Background()
	cache := openDB(t).cache

	missing, err := cache.Get(ctx, "nowhere")
	require.NoError(t, err)
	require.Nil(t, missing)

	fetched := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	in := repository.CachedReading{Key: "k", Latitude: 55.75, Longitude: 37.62, TemperatureC: 3.5, Timezone: "GMT", Elevation: 144, ObservedAt: "2026-03-01T09:30", FetchedAt: fetched}
	require.NoError(t, cache.Put(ctx, in))

	in.TemperatureC = 4.25
	in.FetchedAt = fetched.Add(time.Hour)
	require.NoError(t, cache.Put(ctx, in))

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 4.25, got.TemperatureC)
	require.Equal(t, "GMT", got.Timezone)
	require.True(t, got.FetchedAt.Equal(fetched.Add(time.Hour)))
}
