package salon

// Branch is one salon entry from the directory endpoint. Read-only within
// this system; field tags mirror the upstream JSON.
type Branch struct {
	ID        int     `json:"id"`
	Address   string  `json:"addressNew"`
	CityID    int     `json:"cityId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type directoryPayload struct {
	Count int      `json:"count"`
	Data  []Branch `json:"data"`
}

// SubSlot is an individual 20-minute booking slot as reported by the
// booking-view endpoint. Hour is the lookup label ("<H>h<MM>", minutes one of
// 00/20/40); HourFrame is the display form shown to users.
type SubSlot struct {
	Hour      string `json:"hour"`
	HourID    string `json:"hourId"`
	SubHourID string `json:"subHourId"`
	IsFree    bool   `json:"isFree"`
	HourFrame string `json:"hourFrame"`
}

// HourGroup buckets the sub-slots of one hour. Name is the hour component
// without a leading zero, as a string.
type HourGroup struct {
	Name  string    `json:"name"`
	Hours []SubSlot `json:"hours"`
}

type availabilityPayload struct {
	Data struct {
		HourGroup []HourGroup `json:"hourGroup"`
	} `json:"data"`
}

// GeoPoint is the first geocoder hit for a free-text address.
type GeoPoint struct {
	County string
	Lat    float64
	Lng    float64
}

type geocodePayload struct {
	Items []struct {
		Address struct {
			County string `json:"county"`
		} `json:"address"`
		Position struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"position"`
	} `json:"items"`
}
