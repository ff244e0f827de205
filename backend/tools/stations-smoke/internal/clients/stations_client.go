package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"qrreservation/backend/tools/stations-smoke/internal/models"
	"qrreservation/backend/tools/stations-smoke/internal/token"
)

const stationsPath = "/stations"

// StationsClient talks to the reservation backend stations endpoint.
type StationsClient struct {
	base *BaseClient
}

// NewStationsClient returns client.
func NewStationsClient(baseURL string, httpClient HTTPDoer) *StationsClient {
	return &StationsClient{base: NewBaseClient(baseURL, httpClient)}
}

// URL returns the stations endpoint.
func (c *StationsClient) URL() string {
	return c.base.URL(stationsPath)
}

// CreateStation posts payload with the given bearer token.
func (c *StationsClient) CreateStation(ctx context.Context, bearer string, payload models.StationPayload) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encode station: %w", err)
	}
	headers := map[string]string{
		"Authorization": token.BearerHeader(bearer),
		"Content-Type":  "application/json",
	}
	return c.base.Do(ctx, http.MethodPost, stationsPath, body, headers)
}
