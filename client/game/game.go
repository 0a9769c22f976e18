package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cbodonnell/minesweeper/client/flow"
	"github.com/cbodonnell/minesweeper/client/input"
	"github.com/cbodonnell/minesweeper/client/scenes"
	"github.com/cbodonnell/minesweeper/client/ui"
	"github.com/cbodonnell/minesweeper/pkg/api"
	"github.com/cbodonnell/minesweeper/pkg/log"
	"github.com/cbodonnell/minesweeper/pkg/repositories"
	"github.com/cbodonnell/minesweeper/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// JoinTimeout bounds board creation and the websocket handshake.
	JoinTimeout = 10 * time.Second
	// RecentGamesLimit is how many recent games the menu offers.
	RecentGamesLimit = 5
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// boardClient creates boards before joining.
	boardClient *api.Client
	// wsURL is the game server websocket endpoint.
	wsURL string
	// journalDir is where sessions are recorded. Empty disables recording.
	journalDir string
	// history is optional.
	history repositories.Repository
	// session is the joined game, if any.
	session *session.Session
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
}

type NewGameOptions struct {
	Debug      bool
	APIURL     string
	WSURL      string
	JournalDir string
	History    repositories.Repository
}

func NewGame(opts NewGameOptions) (*Game, error) {
	g := &Game{
		debug:       opts.Debug,
		boardClient: api.NewClient(api.NewClientOptions{BaseURL: opts.APIURL}),
		wsURL:       opts.WSURL,
		journalDir:  opts.JournalDir,
		history:     opts.History,
	}

	if err := g.loadMenu(menuState{}); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

type menuState struct {
	gameID string
	err    string
}

func (g *Game) loadMenu(state menuState) error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnJoin:      g.joinGame,
		RecentGames: g.recentGames(),
		GameID:      state.gameID,
		Error:       state.err,
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = flow.GameModeMenu
	return nil
}

func (g *Game) recentGames() []string {
	if g.history == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	games, err := g.history.RecentGames(ctx, RecentGamesLimit)
	if err != nil {
		log.Error("Failed to load recent games: %v", err)
		return nil
	}
	gameIDs := make([]string, 0, len(games))
	for _, game := range games {
		gameIDs = append(gameIDs, game.GameID)
	}
	return gameIDs
}

// joinGame creates the board for gameID, connects and switches to the game
// scene. Errors are returned as *ui.ActionableError.
func (g *Game) joinGame(gameID string) error {
	gameScene, err := scenes.NewGameScene()
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), JoinTimeout)
	defer cancel()

	s, err := session.Join(ctx, session.JoinOptions{
		GameID:      gameID,
		BoardClient: g.boardClient,
		ServerURL:   g.wsURL,
		JournalDir:  g.journalDir,
		History:     g.history,
		OnRender:    gameScene.OnRender,
		OnMessage:   gameScene.OnMessage,
		OnNotice:    gameScene.OnNotice,
	})
	if err != nil {
		return joinError(err)
	}

	if err := gameScene.SetSession(s); err != nil {
		s.Close()
		return fmt.Errorf("failed to attach session: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		s.Close()
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.session = s
	g.mode = flow.GameModePlay
	return nil
}

func joinError(err error) error {
	var boardErr *api.ErrBoardCreationFailed
	switch {
	case session.IsInvalidGameID(err):
		return &ui.ActionableError{Message: err.Error(), Err: err}
	case errors.As(err, &boardErr):
		// the board API's message is shown as is
		message := strings.TrimSpace(boardErr.Message)
		if message == "" {
			message = "Could not create the board. Please try again."
		}
		return &ui.ActionableError{Message: message, Err: err}
	default:
		return &ui.ActionableError{Message: "Could not connect to the game server.", Err: err}
	}
}

func (g *Game) leaveGame() {
	if g.session == nil {
		return
	}
	if err := g.session.Close(); err != nil {
		log.Error("Failed to close session: %v", err)
	}
	g.session = nil
}

func (g *Game) loadNetworkError(cause error) error {
	g.leaveGame()
	networkError, err := scenes.NewErrorScene("Network Error", "The connection to the game server was lost.")
	if err != nil {
		return fmt.Errorf("failed to create network error scene: %v", err)
	}
	if err := g.SetScene(networkError); err != nil {
		return fmt.Errorf("failed to set network error scene: %v", err)
	}
	log.Error("Left game after network error: %v", cause)
	g.mode = flow.GameModeNetworkError
	return nil
}

func (g *Game) Update() error {
	// Apply everything the server sent since the last tick
	if err := g.sessionUpdate(); err != nil {
		return fmt.Errorf("failed to update session: %v", err)
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) sessionUpdate() error {
	if g.session == nil {
		return nil
	}
	if err := g.session.Update(); err != nil {
		if err := g.loadNetworkError(err); err != nil {
			return fmt.Errorf("failed to load network error scene: %v", err)
		}
	}
	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case flow.GameModePlay:
		if input.IsNegativeJustPressed() {
			gameID := g.session.GameID()
			g.leaveGame()
			if err := g.loadMenu(menuState{gameID: gameID}); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	case flow.GameModeNetworkError:
		if input.IsPositiveJustPressed() {
			if err := g.loadMenu(menuState{}); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	return nil
}

// Close leaves the current game, if any.
func (g *Game) Close() {
	g.leaveGame()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))

	if g.session == nil {
		return
	}

	stats := g.session.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Frames: %d", stats.FramesApplied))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Sent: %d  Rejected: %d", stats.GesturesSent, stats.GesturesRejected))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   Malformed: %d  Dropped: %d", stats.Malformed, stats.Dropped))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return scenes.ScreenWidth, scenes.ScreenHeight
}
