package salon

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

const (
	// readable replies, returned verbatim to the user
	msgCityNotMapped = "Không tìm thấy thành phố phù hợp. Vui lòng thử lại."
	msgNoSalonNearby = "Không tìm thấy salon nào gần khu vực của bạn."

	maxSuggestions = 5
)

// Finder ranks salon branches by proximity to a geocoded user address.
type Finder struct {
	geocode   *GeocodeClient
	directory *DirectoryClient
	cities    map[string]int
}

func NewFinder(geocode *GeocodeClient, directory *DirectoryClient) *Finder {
	return &Finder{
		geocode:   geocode,
		directory: directory,
		cities:    CityIDs,
	}
}

// Nearest geocodes "address + city", maps the resulting county to a city id,
// and returns up to five branches of that city ordered by distance, rendered
// as the user-facing list. A non-nil error means an upstream or payload
// failure; the caller collapses it into the generic apology.
func (f *Finder) Nearest(ctx context.Context, userAddress, city string) (string, error) {
	point, err := f.geocode.First(ctx, userAddress+" "+city)
	if err != nil {
		return "", err
	}

	cityID, ok := f.cities[point.County]
	if !ok {
		return msgCityNotMapped, nil
	}

	_, branches, err := f.directory.Branches(ctx)
	if err != nil {
		return "", err
	}

	var matched []Branch
	for _, branch := range branches {
		if branch.CityID == cityID {
			matched = append(matched, branch)
		}
	}
	if len(matched) == 0 {
		return msgNoSalonNearby, nil
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return SquaredDistance(point.Lat, point.Lng, matched[i].Latitude, matched[i].Longitude) <
			SquaredDistance(point.Lat, point.Lng, matched[j].Latitude, matched[j].Longitude)
	})
	if len(matched) > maxSuggestions {
		matched = matched[:maxSuggestions]
	}

	var b strings.Builder
	b.WriteString("Danh sách salon")
	for _, branch := range matched {
		fmt.Fprintf(&b, "\n- **%s**", branch.Address)
	}
	return b.String(), nil
}
