package upstream

import (
	"encoding/json"
	"net/url"

	"safety-hub-go/pkg/model"
)

const nwsBaseURL = "https://api.weather.gov"

// NWSClient fetches active hazard alerts from the National Weather Service.
type NWSClient struct {
	baseURL string
	fetcher *Fetcher
}

// NewNWSClient creates an NWS client. An empty baseURL selects the public API.
func NewNWSClient(baseURL string, fetcher *Fetcher) *NWSClient {
	if baseURL == "" {
		baseURL = nwsBaseURL
	}
	return &NWSClient{
		baseURL: baseURL,
		fetcher: fetcher,
	}
}

// nwsResponse mirrors the subset of the geo-JSON alert feed we project.
type nwsResponse struct {
	Features []struct {
		ID         *string `json:"id"`
		Properties struct {
			Event       *string `json:"event"`
			Headline    *string `json:"headline"`
			AreaDesc    *string `json:"areaDesc"`
			Severity    *string `json:"severity"`
			Urgency     *string `json:"urgency"`
			Effective   *string `json:"effective"`
			Expires     *string `json:"expires"`
			Instruction *string `json:"instruction"`
		} `json:"properties"`
	} `json:"features"`
}

// ActiveAlerts returns the alerts in effect at a point. Any failure — an
// unreachable upstream, a non-2xx status or a payload that does not project
// cleanly — yields an empty slice, never an error and never partial results.
func (c *NWSClient) ActiveAlerts(lat, lon string) []model.Alert {
	params := url.Values{"point": {lat + "," + lon}}
	headers := map[string]string{"Accept": "application/geo+json"}

	out := c.fetcher.Get("nws", c.baseURL+"/alerts/active", params, headers)
	if !out.Available {
		return []model.Alert{}
	}

	var payload nwsResponse
	if err := json.Unmarshal(out.Body, &payload); err != nil {
		return []model.Alert{}
	}

	alerts := make([]model.Alert, 0, len(payload.Features))
	for _, f := range payload.Features {
		p := f.Properties
		alerts = append(alerts, model.Alert{
			ID:          f.ID,
			Event:       p.Event,
			Headline:    p.Headline,
			AreaDesc:    p.AreaDesc,
			Severity:    p.Severity,
			Urgency:     p.Urgency,
			Effective:   p.Effective,
			Expires:     p.Expires,
			Instruction: p.Instruction,
		})
	}
	return alerts
}
