package tool

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/dungmtkai/mcp-server/scheduler/contract"
)

const msgBranchSummary = "Hiện tại bên em đang có %d chi nhánh khác nhau trên khắp cả nước như " +
	"Hà Nội, Hồ Chí Minh, Hải Phòng, Bình Dương, Vinh, Đồng Nai. " +
	"Anh ở khu vực nào để em giúp tìm salon gần nhất?"

func (h *handler) listBranches(ctx context.Context, tool string, _ map[string]any) (contractx.ToolResult, error) {
	count, _, err := h.deps.Directory.Branches(ctx)
	if err != nil {
		log.Warn().Err(err).Str("tool", tool).Msg("branch directory unavailable")
		return contractx.ToolResult{Tool: tool, Result: msgApology}, nil
	}
	return contractx.ToolResult{Tool: tool, Result: fmt.Sprintf(msgBranchSummary, count)}, nil
}

func (h *handler) getNearSalon(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
	userAddress, bad := requiredString(tool, args, "user_address")
	if bad != nil {
		return *bad, nil
	}
	city, bad := requiredString(tool, args, "city")
	if bad != nil {
		return *bad, nil
	}

	reply, err := h.deps.Finder.Nearest(ctx, userAddress, city)
	if err != nil {
		log.Warn().Err(err).Str("tool", tool).Msg("nearest salon lookup failed")
		return contractx.ToolResult{Tool: tool, Result: msgApology}, nil
	}
	return contractx.ToolResult{Tool: tool, Result: reply}, nil
}
