package salon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dungmtkai/mcp-server/scheduler/contract"
)

func TestGeocodeFirst(t *testing.T) {
	t.Parallel()

	var gotQuery, gotKey, gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("apiKey")
		gotLimit = r.URL.Query().Get("limit")
		fmt.Fprint(w, `{"items":[{"address":{"county":"Hà Nội"},"position":{"lat":21.03,"lng":105.85}}]}`)
	}))
	t.Cleanup(server.Close)

	client := MustNewGeocodeClient(GeocodeConfig{URL: server.URL, APIKey: "secret"})
	point, err := client.First(context.Background(), "1 Đinh Tiên Hoàng Hà Nội")
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}

	if gotQuery != "1 Đinh Tiên Hoàng Hà Nội" {
		t.Fatalf("unexpected q param: %q", gotQuery)
	}
	if gotKey != "secret" || gotLimit != "1" {
		t.Fatalf("unexpected params: apiKey=%q limit=%q", gotKey, gotLimit)
	}
	if point.County != "Hà Nội" || point.Lat != 21.03 || point.Lng != 105.85 {
		t.Fatalf("unexpected point: %+v", point)
	}
}

func TestGeocodeFirstNoItems(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	}))
	t.Cleanup(server.Close)

	client := MustNewGeocodeClient(GeocodeConfig{URL: server.URL, APIKey: "secret"})
	_, err := client.First(context.Background(), "nowhere")
	if !errors.Is(err, contract.ErrDecode) {
		t.Fatalf("expected ErrDecode for empty items, got %v", err)
	}
}

func TestNewGeocodeClientRequiresKey(t *testing.T) {
	t.Parallel()

	if _, err := NewGeocodeClient(GeocodeConfig{URL: "https://example.com", APIKey: " "}); err == nil {
		t.Fatal("missing api key must be rejected")
	}
}
