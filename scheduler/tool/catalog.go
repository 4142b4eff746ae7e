package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	bookingx "github.com/dungmtkai/mcp-server/scheduler/booking"
	contractx "github.com/dungmtkai/mcp-server/scheduler/contract"
	salonx "github.com/dungmtkai/mcp-server/scheduler/salon"
)

const (
	ToolListBranches      = "list_branches"
	ToolGetNearSalon      = "get_near_salon"
	ToolCheckAvailability = "check_availability"
	ToolListFreeSlots     = "list_free_slots"
	ToolBookAppointment   = "book_appointment"
	ToolCancelAppointment = "cancel_appointment"
)

// msgApology is the single reply for every upstream or payload failure.
// Callers never see which of the two it was.
const msgApology = "Dạ xin lỗi, em không thể cung cấp thông tin này."

type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

// Dependencies carries the collaborators the tool handlers dispatch to.
type Dependencies struct {
	Directory   *salonx.DirectoryClient
	BookingView *salonx.BookingViewClient
	Finder      *salonx.Finder
	Ledger      bookingx.Store
}

// Build returns the host-facing tool schemas together with the executor that
// serves them.
func Build(deps Dependencies) ([]*schema.ToolInfo, Executor) {
	return Infos(), NewExecutor(deps)
}

func NewExecutor(deps Dependencies) Executor {
	h := &handler{deps: deps}
	fallback := DefaultExecutor()
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolListBranches:
			return h.listBranches(ctx, tool, args)
		case ToolGetNearSalon:
			return h.getNearSalon(ctx, tool, args)
		case ToolCheckAvailability:
			return h.checkAvailability(ctx, tool, args)
		case ToolListFreeSlots:
			return h.listFreeSlots(ctx, tool, args)
		case ToolBookAppointment:
			return h.bookAppointment(ctx, tool, args)
		case ToolCancelAppointment:
			return h.cancelAppointment(ctx, tool, args)
		default:
			return fallback(ctx, tool, args)
		}
	}
}

func DefaultExecutor() Executor {
	return func(_ context.Context, tool string, _ map[string]any) (contractx.ToolResult, error) {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("tool=%s is unavailable", tool),
		}, nil
	}
}

type handler struct {
	deps Dependencies
}

func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name:        ToolListBranches,
			Desc:        "List available salon branches.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		{
			Name: ToolGetNearSalon,
			Desc: "Suggest the nearest salons based on user address and city.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"user_address": {Type: schema.String, Desc: "Street address or specific location provided by the user", Required: true},
				"city":         {Type: schema.String, Desc: "City name where the user is located", Required: true},
			}),
		},
		{
			Name: ToolCheckAvailability,
			Desc: "Check whether a requested time slot is free at a branch, with the nearest free slots around it.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"branch": {Type: schema.String, Desc: "Salon branch address as listed in the directory", Required: true},
				"date":   {Type: schema.String, Desc: "Booking date in DD-MM-YYYY format", Required: true},
				"time":   {Type: schema.String, Desc: "Requested time in HH:MM format", Required: true},
			}),
		},
		{
			Name: ToolListFreeSlots,
			Desc: "List the branch's remaining free time slots for a date, based on appointments booked here.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"branch": {Type: schema.String, Desc: "Branch name, e.g. \"Cơ sở Hà Nội\"", Required: true},
				"date":   {Type: schema.String, Desc: "Booking date in YYYY-MM-DD format", Required: true},
			}),
		},
		{
			Name: ToolBookAppointment,
			Desc: "Book a haircut appointment. Missing fields produce clarifying questions.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"time":   {Type: schema.String, Desc: "Appointment time in HH:MM format, between 08:00 and 20:00"},
				"branch": {Type: schema.String, Desc: "Branch name, e.g. \"Cơ sở Hà Nội\""},
				"date":   {Type: schema.String, Desc: "Appointment date in YYYY-MM-DD format"},
				"phone":  {Type: schema.String, Desc: "Phone number used to confirm the appointment"},
			}),
		},
		{
			Name: ToolCancelAppointment,
			Desc: "Cancel all appointments booked under a phone number.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"phone": {Type: schema.String, Desc: "Phone number the appointments were booked under", Required: true},
			}),
		},
	}
}

// requiredString extracts a mandatory string argument. The error result is
// non-nil when the argument is absent or mistyped.
func requiredString(tool string, args map[string]any, key string) (string, *contractx.ToolResult) {
	raw, ok := args[key]
	if !ok {
		return "", &contractx.ToolResult{Tool: tool, Error: key + " is required"}
	}
	value, ok := raw.(string)
	if !ok {
		return "", &contractx.ToolResult{Tool: tool, Error: key + " must be a string"}
	}
	return value, nil
}

// optionalString extracts an optional string argument; absent means empty.
func optionalString(tool string, args map[string]any, key string) (string, *contractx.ToolResult) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", &contractx.ToolResult{Tool: tool, Error: key + " must be a string"}
	}
	return value, nil
}
