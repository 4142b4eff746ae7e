package tool

import (
	"context"

	bookingx "github.com/dungmtkai/mcp-server/scheduler/booking"
	contractx "github.com/dungmtkai/mcp-server/scheduler/contract"
)

func (h *handler) bookAppointment(_ context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
	timeSlot, bad := optionalString(tool, args, "time")
	if bad != nil {
		return *bad, nil
	}
	branch, bad := optionalString(tool, args, "branch")
	if bad != nil {
		return *bad, nil
	}
	date, bad := optionalString(tool, args, "date")
	if bad != nil {
		return *bad, nil
	}
	phone, bad := optionalString(tool, args, "phone")
	if bad != nil {
		return *bad, nil
	}

	if prompts := bookingx.MissingPrompts(branch, date, timeSlot, phone); len(prompts) > 0 {
		return contractx.ToolResult{Tool: tool, Result: prompts}, nil
	}

	return contractx.ToolResult{Tool: tool, Result: h.deps.Ledger.Book(branch, date, timeSlot, phone)}, nil
}

func (h *handler) cancelAppointment(_ context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
	phone, bad := requiredString(tool, args, "phone")
	if bad != nil {
		return *bad, nil
	}
	return contractx.ToolResult{Tool: tool, Result: h.deps.Ledger.Cancel(phone)}, nil
}
