// Package weather fetches current conditions for a coordinate pair and
// resolves city names to coordinates.
package weather

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrBadURL      = errors.New("weather: bad url")
	ErrBadResponse = errors.New("weather: bad response")
	ErrDecoding    = errors.New("weather: decoding error")
	ErrUnknownCity = errors.New("weather: unknown city")
)

// Provider defines the single call services need.
type Provider interface {
	Current(ctx context.Context, at Coordinates) (Reading, error)
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// ParseCoordinates accepts "lat,lon" with optional spaces.
func ParseCoordinates(s string) (Coordinates, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinates{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || lat < -90 || lat > 90 {
		return Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || lon < -180 || lon > 180 {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: lat, Longitude: lon}, true
}

// Reading is one observation.
type Reading struct {
	At           Coordinates
	TemperatureC float64
	Timezone     string
	Elevation    float64
	ObservedAt   string
}

// Temperature formats the reading the way the widget shows it.
func (r Reading) Temperature() string {
	return strconv.FormatFloat(r.TemperatureC, 'f', -1, 64) + "°C"
}
