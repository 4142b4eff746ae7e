package tool

import (
	"context"

	"github.com/rs/zerolog/log"

	contractx "github.com/dungmtkai/mcp-server/scheduler/contract"
	salonx "github.com/dungmtkai/mcp-server/scheduler/salon"
)

// checkAvailability is the upstream-backed contract: resolve the branch to
// its salon id, fetch the hour buckets for the date, and run the slot
// matcher. Ledger-held appointments are served separately by list_free_slots.
func (h *handler) checkAvailability(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
	branch, bad := requiredString(tool, args, "branch")
	if bad != nil {
		return *bad, nil
	}
	date, bad := requiredString(tool, args, "date")
	if bad != nil {
		return *bad, nil
	}
	timeRequest, bad := requiredString(tool, args, "time")
	if bad != nil {
		return *bad, nil
	}

	entry, err := h.deps.Directory.FindByAddress(ctx, branch)
	if err != nil {
		log.Warn().Err(err).Str("tool", tool).Str("branch", branch).Msg("branch resolution failed")
		return contractx.ToolResult{Tool: tool, Result: msgApology}, nil
	}

	groups, err := h.deps.BookingView.HourGroups(ctx, entry.ID, date, timeRequest)
	if err != nil {
		log.Warn().Err(err).Str("tool", tool).Str("date", date).Msg("booking view unavailable")
		return contractx.ToolResult{Tool: tool, Result: msgApology}, nil
	}

	return contractx.ToolResult{Tool: tool, Result: salonx.MatchSlot(groups, timeRequest)}, nil
}

func (h *handler) listFreeSlots(_ context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
	branch, bad := requiredString(tool, args, "branch")
	if bad != nil {
		return *bad, nil
	}
	date, bad := requiredString(tool, args, "date")
	if bad != nil {
		return *bad, nil
	}

	return contractx.ToolResult{Tool: tool, Result: h.deps.Ledger.FreeSlots(branch, date)}, nil
}
