package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jask/miniapps/internal/database"
	"github.com/jask/miniapps/internal/database/repository"
	"github.com/jask/miniapps/internal/weather"
)

// Report is what the weather widget renders.
type Report struct {
	Place   weather.Place
	Reading weather.Reading
	Cached  bool
}

// ForecastService resolves a query, consults the cache and falls back to
// the provider.
type ForecastService struct {
	Provider  weather.Provider
	Gazetteer *weather.Gazetteer
	Cache     *repository.WeatherCacheRepo
	TTL       time.Duration
	Timeout   time.Duration
	Now       func() time.Time
}

func (s *ForecastService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return database.Now()
}

// Lookup returns the current reading for query. Cache errors are logged and
// otherwise ignored.
func (s *ForecastService) Lookup(ctx context.Context, query string) (Report, error) {
	if s.Provider == nil || s.Gazetteer == nil {
		return Report{}, fmt.Errorf("forecast: service not configured")
	}
	place, err := s.Gazetteer.Resolve(query)
	if err != nil {
		return Report{}, err
	}
	key := cacheKey(place.At)

	if s.Cache != nil && s.TTL > 0 {
		hit, err := s.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("forecast: cache read %s: %v", place.Name, err)
		} else if hit != nil && s.now().Sub(hit.FetchedAt) < s.TTL {
			return Report{Place: place, Reading: fromCache(*hit), Cached: true}, nil
		}
	}

	callCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	reading, err := s.Provider.Current(callCtx, place.At)
	if err != nil {
		return Report{}, fmt.Errorf("weather for %s: %w", place.Name, err)
	}

	if s.Cache != nil {
		row := repository.CachedReading{
			Key:          key,
			Latitude:     reading.At.Latitude,
			Longitude:    reading.At.Longitude,
			TemperatureC: reading.TemperatureC,
			Timezone:     reading.Timezone,
			Elevation:    reading.Elevation,
			ObservedAt:   reading.ObservedAt,
			FetchedAt:    s.now().Truncate(time.Second),
		}
		if err := s.Cache.Put(ctx, row); err != nil {
			log.Printf("forecast: cache write %s: %v", place.Name, err)
		}
	}
	return Report{Place: place, Reading: reading}, nil
}

// cacheKey is stable for coordinates rounded to about a kilometre.
func cacheKey(at weather.Coordinates) string {
	lat := math.Round(at.Latitude*100) / 100
	lon := math.Round(at.Longitude*100) / 100
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("wx:%.2f:%.2f", lat, lon))).String()
}

func fromCache(c repository.CachedReading) weather.Reading {
	return weather.Reading{
		At:           weather.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude},
		TemperatureC: c.TemperatureC,
		Timezone:     c.Timezone,
		Elevation:    c.Elevation,
		ObservedAt:   c.ObservedAt,
	}
}
