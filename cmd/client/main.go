package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/minesweeper/client/game"
	"github.com/cbodonnell/minesweeper/client/scenes"
	"github.com/cbodonnell/minesweeper/pkg/game/constants"
	"github.com/cbodonnell/minesweeper/pkg/log"
	"github.com/cbodonnell/minesweeper/pkg/repositories"
	"github.com/cbodonnell/minesweeper/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

// envOr returns the environment variable key when it is set, otherwise value.
func envOr(key, value string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return value
}

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	apiURL := flag.String("api-url", constants.DefaultAPIURL, "Base URL of the board API")
	wsURL := flag.String("ws-url", constants.DefaultWSURL, "Game server websocket URL")
	historyURL := flag.String("history-url", "", "History database URL (sqlite://path or postgresql://...)")
	journalDir := flag.String("journal-dir", "", "Directory to record session journals in")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	ctx := context.Background()
	var history repositories.Repository
	if connStr := envOr("MINESWEEPER_HISTORY_URL", *historyURL); connStr != "" {
		history, err = repositories.NewRepository(ctx, connStr)
		if err != nil {
			panic(fmt.Sprintf("Failed to open history: %v", err))
		}
		defer history.Close(ctx)
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:      *debug,
		APIURL:     envOr("MINESWEEPER_API_URL", *apiURL),
		WSURL:      envOr("MINESWEEPER_WS_URL", *wsURL),
		JournalDir: envOr("MINESWEEPER_JOURNAL_DIR", *journalDir),
		History:    history,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}
	defer g.Close()

	ebiten.SetWindowSize(scenes.ScreenWidth, scenes.ScreenHeight)
	ebiten.SetWindowTitle("Minesweeper")
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Failed to run game: %v", err)
	}
}
