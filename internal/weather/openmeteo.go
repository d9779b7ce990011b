package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const openMeteoURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteo queries the keyless open-meteo forecast API.
type OpenMeteo struct {
	client  *http.Client
	baseURL string
}

func NewOpenMeteo(client *http.Client, baseURL string) *OpenMeteo {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = openMeteoURL
	}
	return &OpenMeteo{client: client, baseURL: baseURL}
}

type openMeteoResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Elevation float64 `json:"elevation"`
	Current   struct {
		Time          string   `json:"time"`
		Interval      int      `json:"interval"`
		Temperature2M *float64 `json:"temperature_2m"`
	} `json:"current"`
}

func (p *OpenMeteo) Current(ctx context.Context, at Coordinates) (Reading, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Reading{}, fmt.Errorf("%w: %q", ErrBadURL, p.baseURL)
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(at.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(at.Longitude, 'f', -1, 64))
	q.Set("current", "temperature_2m")
	u.RawQuery = q.Encode()

	var body openMeteoResponse
	if err := getJSON(ctx, p.client, u.String(), &body); err != nil {
		return Reading{}, err
	}
	if body.Current.Temperature2M == nil {
		return Reading{}, fmt.Errorf("%w: missing temperature_2m", ErrDecoding)
	}
	return Reading{
		At:           Coordinates{Latitude: body.Latitude, Longitude: body.Longitude},
		TemperatureC: *body.Current.Temperature2M,
		Timezone:     body.Timezone,
		Elevation:    body.Elevation,
		ObservedAt:   body.Current.Time,
	}, nil
}

func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadURL, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	return nil
}
