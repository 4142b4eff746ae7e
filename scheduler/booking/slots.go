package booking

import "time"

const clockLayout = "15:04"

// BranchWindow describes one branch's operating hours and slot interval.
type BranchWindow struct {
	Start    string
	End      string
	Interval int
}

// BranchHours is the static per-branch schedule configuration.
var BranchHours = map[string]BranchWindow{
	"Cơ sở Hà Nội":  {Start: "08:00", End: "20:00", Interval: 60},
	"Cơ sở TP.HCM":  {Start: "09:00", End: "18:00", Interval: 30},
	"Cơ sở Đà Nẵng": {Start: "10:00", End: "17:00", Interval: 60},
}

// GenerateSlots returns the "HH:MM" appointment slots between start and end.
// A slot is emitted only while advancing by the interval stays within end.
// A non-positive interval or unparseable bound yields no slots; the guard on
// the interval also rules out an endless loop.
func GenerateSlots(start, end string, intervalMinutes int) []string {
	if intervalMinutes <= 0 {
		return nil
	}
	from, err := time.Parse(clockLayout, start)
	if err != nil {
		return nil
	}
	to, err := time.Parse(clockLayout, end)
	if err != nil {
		return nil
	}

	step := time.Duration(intervalMinutes) * time.Minute
	var slots []string
	for cur := from; !cur.Add(step).After(to); cur = cur.Add(step) {
		slots = append(slots, cur.Format(clockLayout))
	}
	return slots
}
