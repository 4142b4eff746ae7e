package salon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dungmtkai/mcp-server/scheduler/contract"
)

type GeocodeConfig struct {
	URL     string        `split_words:"true" default:"https://geocode.search.hereapi.com/v1/geocode"`
	APIKey  string        `split_words:"true" required:"true"`
	Timeout time.Duration `split_words:"true" default:"5s"`
}

// GeocodeClient resolves free-text addresses through the HERE geocoding
// endpoint. The API key is injected configuration, never a literal at the
// call site.
type GeocodeClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewGeocodeClient(cfg GeocodeConfig) (*GeocodeClient, error) {
	endpoint := strings.TrimSpace(cfg.URL)
	if endpoint == "" {
		return nil, errors.New("geocode url is required")
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("invalid geocode url: %w", err)
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("geocode api key is required")
	}

	return &GeocodeClient{
		url:        strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: newHTTPClient(cfg.Timeout),
	}, nil
}

func MustNewGeocodeClient(cfg GeocodeConfig) *GeocodeClient {
	client, err := NewGeocodeClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// First geocodes the query and returns only the first hit.
func (c *GeocodeClient) First(ctx context.Context, query string) (*GeoPoint, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("apiKey", c.apiKey)
	params.Set("limit", "1")

	var payload geocodePayload
	if err := getJSON(ctx, c.httpClient, c.url+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}
	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("%w: geocoder returned no items for %q", contract.ErrDecode, query)
	}

	item := payload.Items[0]
	return &GeoPoint{
		County: item.Address.County,
		Lat:    item.Position.Lat,
		Lng:    item.Position.Lng,
	}, nil
}
