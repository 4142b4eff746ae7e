package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	configx "github.com/dungmtkai/mcp-server/pkg/config"
	logx "github.com/dungmtkai/mcp-server/pkg/logger"
	bookingx "github.com/dungmtkai/mcp-server/scheduler/booking"
	contractx "github.com/dungmtkai/mcp-server/scheduler/contract"
	salonx "github.com/dungmtkai/mcp-server/scheduler/salon"
	toolx "github.com/dungmtkai/mcp-server/scheduler/tool"
)

func main() {
	logCfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*logCfg)

	directory := salonx.MustNewDirectoryClient(*configx.MustNew[salonx.DirectoryConfig]("DIRECTORY"))
	geocode := salonx.MustNewGeocodeClient(*configx.MustNew[salonx.GeocodeConfig]("GEOCODE"))
	bookingView := salonx.MustNewBookingViewClient(*configx.MustNew[salonx.BookingViewConfig]("BOOKING_VIEW"))

	infos, executor := toolx.Build(toolx.Dependencies{
		Directory:   directory,
		BookingView: bookingView,
		Finder:      salonx.NewFinder(geocode, directory),
		Ledger:      bookingx.NewLedger(),
	})
	log.Info().Int("tools", len(infos)).Msg("haircut scheduler ready")

	if err := serve(os.Stdin, os.Stdout, executor); err != nil {
		log.Fatal().Err(err).Msg("tool loop terminated")
	}
}

// serve runs the line-delimited JSON tool loop: one ToolRequest per input
// line, one ToolResult per output line. Requests are handled strictly one at
// a time; the ledger relies on this single-flight behavior.
func serve(in io.Reader, out io.Writer, executor toolx.Executor) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req contractx.ToolRequest
		if err := json.Unmarshal(line, &req); err != nil {
			if err := encoder.Encode(contractx.ToolResult{Error: "malformed request: " + err.Error()}); err != nil {
				return err
			}
			continue
		}

		result, err := executor(context.Background(), req.Tool, req.Args)
		if err != nil {
			result = contractx.ToolResult{Tool: req.Tool, Error: err.Error()}
		}
		if err := encoder.Encode(result); err != nil {
			return err
		}
	}
	return scanner.Err()
}
