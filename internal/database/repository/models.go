package repository

import "time"

// RoundResult is one finished game round.
type RoundResult struct {
	ID        string
	AppID     string
	Game      string
	Outcome   string
	Attempts  int
	CreatedAt time.Time
}

// OutcomeCount aggregates results per game and outcome.
type OutcomeCount struct {
	Game    string
	Outcome string
	Count   int
}

// CachedReading is a weather observation cached per location.
type CachedReading struct {
	Key          string
	Latitude     float64
	Longitude    float64
	TemperatureC float64
	Timezone     string
	Elevation    float64
	ObservedAt   string
	FetchedAt    time.Time
}
