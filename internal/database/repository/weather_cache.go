package repository

import (
	"context"
	"database/sql"
)

// WeatherCacheRepo stores the last reading per location key.
type WeatherCacheRepo struct {
	db *sql.DB
}

func NewWeatherCacheRepo(db *sql.DB) *WeatherCacheRepo { return &WeatherCacheRepo{db: db} }

func (r *WeatherCacheRepo) Put(ctx context.Context, c CachedReading) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO weather_cache(key, latitude, longitude, temperature_c, timezone, elevation, observed_at, fetched_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
	 latitude=excluded.latitude, longitude=excluded.longitude, temperature_c=excluded.temperature_c,
	 timezone=excluded.timezone, elevation=excluded.elevation, observed_at=excluded.observed_at,
	 fetched_at=excluded.fetched_at;
	`, c.Key, c.Latitude, c.Longitude, c.TemperatureC, c.Timezone, c.Elevation, c.ObservedAt, c.FetchedAt)
	return err
}

// Get returns nil, nil when key is not cached.
func (r *WeatherCacheRepo) Get(ctx context.Context, key string) (*CachedReading, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT key, latitude, longitude, temperature_c, timezone, elevation, observed_at, fetched_at
	FROM weather_cache WHERE key = ?`, key)
	var c CachedReading
	if err := row.Scan(&c.Key, &c.Latitude, &c.Longitude, &c.TemperatureC, &c.Timezone, &c.Elevation, &c.ObservedAt, &c.FetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
