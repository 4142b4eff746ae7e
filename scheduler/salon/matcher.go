package salon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dungmtkai/mcp-server/scheduler/contract"
)

// bucketWindow bounds the nearest-free scan to four hours either side of the
// requested hour, the span the upstream returns per branch.
const bucketWindow = 4

// MatchSlot reconciles a requested "HH:MM" time against the hour buckets of
// one branch/date. The requested minute is floored to the upstream's
// 20-minute granularity before lookup. When the requested slot exists, the
// nearest free slots before and after it are reported as well; a missing
// bucket or sub-slot yields the zero result (not free, no neighbours).
func MatchSlot(groups []HourGroup, requested string) contract.AvailabilityResult {
	var result contract.AvailabilityResult

	hour, key, ok := normalizeRequested(requested)
	if !ok {
		return result
	}

	group := findGroup(groups, strconv.Itoa(hour))
	if group == nil {
		return result
	}
	slot := findSlot(group.Hours, key)
	if slot == nil {
		return result
	}

	result.IsFree = slot.IsFree
	result.HourID = slot.HourID
	result.SubHourID = slot.SubHourID

	target, err := slotMinutes(slot.Hour)
	if err != nil {
		return result
	}

	before, after := nearestFree(windowed(groups, hour), target)
	result.NearestFreeBefore = slotRef(before)
	result.NearestFreeAfter = slotRef(after)
	return result
}

// normalizeRequested turns "HH:MM" into the integer hour and the bucket
// lookup key "<H>h<MM>": hour without leading zero, minute floored to a
// multiple of 20 ("00" when the floor is zero).
func normalizeRequested(requested string) (int, string, bool) {
	parts := strings.SplitN(requested, ":", 2)
	if len(parts) != 2 {
		return 0, "", false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", false
	}
	minuteVal, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, "", false
	}

	minute := parts[1]
	if minuteVal%20 != 0 {
		minuteVal = (minuteVal / 20) * 20
		minute = strconv.Itoa(minuteVal)
	}
	if minuteVal == 0 {
		minute = "00"
	}

	return hour, fmt.Sprintf("%dh%s", hour, minute), true
}

func findGroup(groups []HourGroup, name string) *HourGroup {
	for i := range groups {
		if groups[i].Name == name {
			return &groups[i]
		}
	}
	return nil
}

func findSlot(slots []SubSlot, key string) *SubSlot {
	for i := range slots {
		if slots[i].Hour == key {
			return &slots[i]
		}
	}
	return nil
}

// slotMinutes converts a "<H>h<MM>" slot label to minutes since midnight.
func slotMinutes(label string) (int, error) {
	parts := strings.SplitN(label, "h", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed slot label %q", label)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed slot label %q", label)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed slot label %q", label)
	}
	return hour*60 + minute, nil
}

// windowed flattens, in input order, the sub-slots of every bucket whose hour
// lies within bucketWindow of the requested hour.
func windowed(groups []HourGroup, hour int) []SubSlot {
	var slots []SubSlot
	for _, group := range groups {
		name, err := strconv.Atoi(group.Name)
		if err != nil {
			continue
		}
		if name < hour-bucketWindow || name > hour+bucketWindow {
			continue
		}
		slots = append(slots, group.Hours...)
	}
	return slots
}

// nearestFree scans the windowed slots once, in input order. Before keeps the
// last free slot strictly earlier than target; after keeps the first free
// slot strictly later and is never overwritten. Callers depend on this exact
// tie-break, which assumes the upstream emits buckets chronologically.
func nearestFree(slots []SubSlot, target int) (*SubSlot, *SubSlot) {
	var before, after *SubSlot
	for i := range slots {
		slot := &slots[i]
		if !slot.IsFree {
			continue
		}
		minutes, err := slotMinutes(slot.Hour)
		if err != nil {
			continue
		}
		if minutes < target {
			before = slot
		} else if minutes > target && after == nil {
			after = slot
		}
	}
	return before, after
}

func slotRef(slot *SubSlot) *contract.SlotRef {
	if slot == nil {
		return nil
	}
	return &contract.SlotRef{
		HourFrame: slot.HourFrame,
		HourID:    slot.HourID,
		SubHourID: slot.SubHourID,
	}
}
