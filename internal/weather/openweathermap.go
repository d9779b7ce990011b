package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const openWeatherMapURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherMap queries the current-weather endpoint and needs an API key.
type OpenWeatherMap struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewOpenWeatherMap(client *http.Client, baseURL, apiKey string) *OpenWeatherMap {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = openWeatherMapURL
	}
	return &OpenWeatherMap{client: client, baseURL: baseURL, apiKey: apiKey}
}

type owmResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Dt       int64 `json:"dt"`
	Timezone int   `json:"timezone"` // seconds east of UTC
}

func (p *OpenWeatherMap) Current(ctx context.Context, at Coordinates) (Reading, error) {
	if p.apiKey == "" {
		return Reading{}, fmt.Errorf("openweathermap: api key not configured")
	}
	u, err := url.Parse(p.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Reading{}, fmt.Errorf("%w: %q", ErrBadURL, p.baseURL)
	}
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(at.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Longitude, 'f', -1, 64))
	q.Set("units", "metric")
	q.Set("appid", p.apiKey)
	u.RawQuery = q.Encode()

	var body owmResponse
	if err := getJSON(ctx, p.client, u.String(), &body); err != nil {
		return Reading{}, err
	}
	if body.Main == nil {
		return Reading{}, fmt.Errorf("%w: missing main", ErrDecoding)
	}
	observed := ""
	if body.Dt > 0 {
		observed = time.Unix(body.Dt, 0).UTC().Format("2006-01-02T15:04")
	}
	return Reading{
		At:           Coordinates{Latitude: body.Coord.Lat, Longitude: body.Coord.Lon},
		TemperatureC: body.Main.Temp,
		Timezone:     utcOffset(body.Timezone),
		ObservedAt:   observed,
	}, nil
}

func utcOffset(seconds int) string {
	if seconds == 0 {
		return "UTC"
	}
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, seconds/3600, seconds%3600/60)
}
