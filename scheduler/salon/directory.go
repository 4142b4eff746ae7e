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

type DirectoryConfig struct {
	URL     string        `split_words:"true" default:"https://storage.30shine.com/web/v3/configs/get_all_salon.json"`
	Timeout time.Duration `split_words:"true" default:"5s"`
}

// DirectoryClient fetches the full salon directory. The upstream publishes a
// single static JSON document; there is no paging or filtering server-side.
type DirectoryClient struct {
	url        string
	httpClient *http.Client
}

func NewDirectoryClient(cfg DirectoryConfig) (*DirectoryClient, error) {
	endpoint := strings.TrimSpace(cfg.URL)
	if endpoint == "" {
		return nil, errors.New("directory url is required")
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("invalid directory url: %w", err)
	}

	return &DirectoryClient{
		url:        endpoint,
		httpClient: newHTTPClient(cfg.Timeout),
	}, nil
}

func MustNewDirectoryClient(cfg DirectoryConfig) *DirectoryClient {
	client, err := NewDirectoryClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Branches returns the directory's branch count and entries.
func (c *DirectoryClient) Branches(ctx context.Context) (int, []Branch, error) {
	var payload directoryPayload
	if err := getJSON(ctx, c.httpClient, c.url, &payload); err != nil {
		return 0, nil, err
	}
	return payload.Count, payload.Data, nil
}

// FindByAddress resolves a branch display address to its directory entry.
// The booking-view upstream is keyed by salon id, so this lookup fronts
// every availability query.
func (c *DirectoryClient) FindByAddress(ctx context.Context, address string) (*Branch, error) {
	_, branches, err := c.Branches(ctx)
	if err != nil {
		return nil, err
	}
	for i := range branches {
		if branches[i].Address == address {
			return &branches[i], nil
		}
	}
	return nil, fmt.Errorf("%w: branch %q", contract.ErrNotFound, address)
}
