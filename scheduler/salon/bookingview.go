package salon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type BookingViewConfig struct {
	URL     string        `split_words:"true" default:"https://3sgus10dig.execute-api.ap-southeast-1.amazonaws.com/Prod/booking-view-service/api/v1/booking/book-hours-group"`
	Timeout time.Duration `split_words:"true" default:"5s"`
}

// BookingViewClient queries the upstream booking-view service for the hour
// buckets of one salon on one date.
type BookingViewClient struct {
	url        string
	httpClient *http.Client
}

func NewBookingViewClient(cfg BookingViewConfig) (*BookingViewClient, error) {
	endpoint := strings.TrimSpace(cfg.URL)
	if endpoint == "" {
		return nil, errors.New("booking view url is required")
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("invalid booking view url: %w", err)
	}

	return &BookingViewClient{
		url:        endpoint,
		httpClient: newHTTPClient(cfg.Timeout),
	}, nil
}

func MustNewBookingViewClient(cfg BookingViewConfig) *BookingViewClient {
	client, err := NewBookingViewClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// HourGroups fetches the slot buckets for a salon and date. timeRequest is
// forwarded verbatim; the upstream uses it to center the returned window.
func (c *BookingViewClient) HourGroups(ctx context.Context, salonID int, bookDate, timeRequest string) ([]HourGroup, error) {
	params := url.Values{}
	params.Set("salonId", strconv.Itoa(salonID))
	params.Set("bookDate", bookDate)
	params.Set("timeRequest", timeRequest)

	var payload availabilityPayload
	if err := getJSON(ctx, c.httpClient, c.url+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}
	return payload.Data.HourGroup, nil
}
