package salon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dungmtkai/mcp-server/scheduler/contract"
)

const (
	defaultTimeout       = 5 * time.Second
	maxResponseSizeBytes = 2 << 20
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// getJSON performs a GET against an upstream endpoint and decodes the JSON
// body into v. Upstream bodies may carry a UTF-8 byte-order mark, which is
// stripped before decoding.
func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", contract.ErrUpstream, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", contract.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", contract.ErrUpstream, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status=%d", contract.ErrUpstream, resp.StatusCode)
	}

	raw = bytes.TrimPrefix(raw, utf8BOM)
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", contract.ErrDecode, err)
	}
	return nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
