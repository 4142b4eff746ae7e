package salon

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestFinder(t *testing.T, county string, lat, lng float64, directoryJSON string) *Finder {
	t.Helper()

	geoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"items":[{"address":{"county":%q},"position":{"lat":%v,"lng":%v}}]}`, county, lat, lng)
	}))
	t.Cleanup(geoServer.Close)

	dirServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, directoryJSON)
	}))
	t.Cleanup(dirServer.Close)

	return NewFinder(
		MustNewGeocodeClient(GeocodeConfig{URL: geoServer.URL, APIKey: "test"}),
		MustNewDirectoryClient(DirectoryConfig{URL: dirServer.URL}),
	)
}

func TestNearestSortsByDistance(t *testing.T) {
	t.Parallel()

	// user at (21.00, 105.80); branch ids ordered far, near, mid, other-city
	directory := `{"count":4,"data":[
		{"id":1,"addressNew":"Xa","cityId":62,"latitude":21.50,"longitude":106.30},
		{"id":2,"addressNew":"Gần","cityId":62,"latitude":21.01,"longitude":105.81},
		{"id":3,"addressNew":"Vừa","cityId":62,"latitude":21.10,"longitude":105.90},
		{"id":4,"addressNew":"Khác tỉnh","cityId":1,"latitude":21.00,"longitude":105.80}
	]}`
	finder := newTestFinder(t, "Hà Nội", 21.00, 105.80, directory)

	reply, err := finder.Nearest(context.Background(), "1 Tràng Tiền", "Hà Nội")
	if err != nil {
		t.Fatalf("Nearest() error = %v", err)
	}

	lines := strings.Split(reply, "\n")
	if lines[0] != "Danh sách salon" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	want := []string{"- **Gần**", "- **Vừa**", "- **Xa**"}
	if len(lines) != len(want)+1 {
		t.Fatalf("unexpected reply: %q", reply)
	}
	for i, line := range lines[1:] {
		if line != want[i] {
			t.Fatalf("line %d = %q, want %q", i+1, line, want[i])
		}
	}
}

func TestNearestCapsAtFive(t *testing.T) {
	t.Parallel()

	var entries []string
	for i := 0; i < 7; i++ {
		entries = append(entries, fmt.Sprintf(
			`{"id":%d,"addressNew":"Chi nhánh %d","cityId":62,"latitude":%v,"longitude":105.80}`,
			i+1, i+1, 21.0+float64(i)*0.01))
	}
	directory := fmt.Sprintf(`{"count":7,"data":[%s]}`, strings.Join(entries, ","))
	finder := newTestFinder(t, "Hà Nội", 21.00, 105.80, directory)

	reply, err := finder.Nearest(context.Background(), "1 Tràng Tiền", "Hà Nội")
	if err != nil {
		t.Fatalf("Nearest() error = %v", err)
	}
	if got := strings.Count(reply, "\n"); got != 5 {
		t.Fatalf("expected 5 suggestions, got %d: %q", got, reply)
	}
}

func TestNearestUnmappedCounty(t *testing.T) {
	t.Parallel()

	finder := newTestFinder(t, "Atlantis", 0, 0, `{"count":0,"data":[]}`)
	reply, err := finder.Nearest(context.Background(), "somewhere", "Atlantis")
	if err != nil {
		t.Fatalf("Nearest() error = %v", err)
	}
	if reply != msgCityNotMapped {
		t.Fatalf("expected city-not-mapped message, got %q", reply)
	}
}

func TestNearestNoBranchesInCity(t *testing.T) {
	t.Parallel()

	directory := `{"count":1,"data":[{"id":1,"addressNew":"Sài Gòn","cityId":1,"latitude":10.8,"longitude":106.7}]}`
	finder := newTestFinder(t, "Hà Nội", 21.00, 105.80, directory)

	reply, err := finder.Nearest(context.Background(), "1 Tràng Tiền", "Hà Nội")
	if err != nil {
		t.Fatalf("Nearest() error = %v", err)
	}
	if reply != msgNoSalonNearby {
		t.Fatalf("expected no-salon message, got %q", reply)
	}
}

func TestNearestGeocodeFailure(t *testing.T) {
	t.Parallel()

	geoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	t.Cleanup(geoServer.Close)
	dirServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"count":0,"data":[]}`)
	}))
	t.Cleanup(dirServer.Close)

	finder := NewFinder(
		MustNewGeocodeClient(GeocodeConfig{URL: geoServer.URL, APIKey: "test"}),
		MustNewDirectoryClient(DirectoryConfig{URL: dirServer.URL}),
	)
	if _, err := finder.Nearest(context.Background(), "x", "y"); err == nil {
		t.Fatal("expected an error on geocode failure")
	}
}
