package upstream

import (
	"encoding/json"
	"net/url"
	"strings"
)

const openMeteoBaseURL = "https://api.open-meteo.com/v1"

// currentFields is the fixed set of conditions requested from Open-Meteo.
var currentFields = strings.Join([]string{
	"temperature_2m",
	"precipitation",
	"wind_speed_10m",
	"relative_humidity_2m",
	"weather_code",
}, ",")

// OpenMeteoClient fetches current conditions from the Open-Meteo forecast API.
type OpenMeteoClient struct {
	baseURL string
	fetcher *Fetcher
}

// NewOpenMeteoClient creates an Open-Meteo client. An empty baseURL selects
// the public API.
func NewOpenMeteoClient(baseURL string, fetcher *Fetcher) *OpenMeteoClient {
	if baseURL == "" {
		baseURL = openMeteoBaseURL
	}
	return &OpenMeteoClient{
		baseURL: baseURL,
		fetcher: fetcher,
	}
}

// CurrentConditions fetches the "current" block for a coordinate. The
// lat/lon strings are forwarded untouched and the block is returned exactly
// as the provider sent it, defaulting to an empty mapping when absent. The
// second return is false when the upstream was unavailable or its payload
// was not valid JSON.
func (c *OpenMeteoClient) CurrentConditions(lat, lon string) (map[string]any, bool) {
	params := url.Values{
		"latitude":  {lat},
		"longitude": {lon},
		"current":   {currentFields},
	}

	out := c.fetcher.Get("open-meteo", c.baseURL+"/forecast", params, nil)
	if !out.Available {
		return nil, false
	}

	var payload struct {
		Current map[string]any `json:"current"`
	}
	if err := json.Unmarshal(out.Body, &payload); err != nil {
		return nil, false
	}
	if payload.Current == nil {
		payload.Current = map[string]any{}
	}
	return payload.Current, true
}
