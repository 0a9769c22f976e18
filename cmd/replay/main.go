package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/minesweeper/pkg/journal"
	"github.com/cbodonnell/minesweeper/pkg/log"
	"github.com/cbodonnell/minesweeper/pkg/render"
	"github.com/cbodonnell/minesweeper/pkg/repositories"
	"github.com/cbodonnell/minesweeper/pkg/state"
	"github.com/cbodonnell/minesweeper/pkg/version"
	"github.com/pterm/pterm"
)

func main() {
	logLevel := flag.String("log-level", "warn", "Log level")
	historyURL := flag.String("history-url", "", "History database URL to show the game's joins and notices from")
	steps := flag.Duration("steps", 0, "Animate the replay, waiting this long between inbound frames")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <journal%s>\n", os.Args[0], journal.FileExtension)
		flag.PrintDefaults()
	}
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Starting replay version %s", version.Get())

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	j, err := journal.Open(flag.Arg(0))
	if err != nil {
		pterm.Error.Printfln("Failed to open journal: %v", err)
		os.Exit(1)
	}
	pterm.Info.Printfln("Game %s, session %s, %dx%d, started %s, %d entries",
		j.Header.GameID, j.Header.SessionID, j.Header.Width, j.Header.Height,
		j.Header.StartedAt.Format(time.RFC3339), len(j.Entries))

	opts := journal.ReplayOptions{Logger: logger}
	if *steps > 0 {
		area, err := pterm.DefaultArea.Start()
		if err != nil {
			pterm.Error.Printfln("Failed to start area: %v", err)
			os.Exit(1)
		}
		defer area.Stop()
		opts.OnEntry = func(i int, entry journal.Entry, grid state.GridReader) {
			if entry.Direction != journal.DirectionInbound {
				return
			}
			area.Update(fmt.Sprintf("frame %d/%d\n%s", i+1, len(j.Entries), render.Grid(grid)))
			time.Sleep(*steps)
		}
	}

	result, err := journal.Replay(j, opts)
	if err != nil {
		pterm.Error.Printfln("Failed to replay journal: %v", err)
		os.Exit(1)
	}

	if err := render.Print(j.Header.GameID, result.Grid, result.Grid.Counts(), result.Stats); err != nil {
		pterm.Error.Printfln("Failed to render grid: %v", err)
		os.Exit(1)
	}
	pterm.Info.Printfln("Actions sent: %d", result.Sent)
	for _, message := range result.Messages {
		pterm.Info.Println(message)
	}
	for _, notice := range result.Notices {
		pterm.Debug.Println(notice.String())
	}

	if *historyURL != "" {
		if err := printHistory(*historyURL, j.Header.GameID); err != nil {
			pterm.Error.Printfln("Failed to read history: %v", err)
			os.Exit(1)
		}
	}
}

func printHistory(connStr, gameID string) error {
	ctx := context.Background()
	history, err := repositories.NewRepository(ctx, connStr)
	if err != nil {
		return fmt.Errorf("failed to open history: %v", err)
	}
	defer history.Close(ctx)

	join, err := history.LastJoin(ctx, gameID)
	if err != nil {
		if repositories.IsNotFound(err) {
			pterm.Warning.Printfln("No joins of %s in history", gameID)
			return nil
		}
		return fmt.Errorf("failed to get last join: %v", err)
	}
	pterm.Info.Printfln("Last joined %s (session %s)", join.JoinedAt.Format(time.RFC3339), join.SessionID)

	notices, err := history.ListNotices(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to list notices: %v", err)
	}
	data := pterm.TableData{{"Received", "Session", "Message"}}
	for _, n := range notices {
		data = append(data, []string{n.ReceivedAt.Format(time.RFC3339), n.SessionID, n.Message})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
