package contract

// ToolRequest is a single tool invocation as received from the calling host.
type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult is the envelope returned for every tool invocation. Result holds
// either a user-facing string or a structured payload; Error carries
// argument-level failures without aborting the dispatch loop.
type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// SlotRef identifies one bookable sub-slot in the upstream booking system.
type SlotRef struct {
	HourFrame string `json:"hourFrame"`
	HourID    string `json:"hourId"`
	SubHourID string `json:"subHourId"`
}

// AvailabilityResult is the outcome of matching a requested time against the
// upstream hour buckets. Nearest fields are nil when no free slot exists on
// that side of the requested time.
type AvailabilityResult struct {
	IsFree            bool     `json:"isFree"`
	HourID            string   `json:"hourId"`
	SubHourID         string   `json:"subHourId"`
	NearestFreeBefore *SlotRef `json:"nearestFreeBefore"`
	NearestFreeAfter  *SlotRef `json:"nearestFreeAfter"`
}
