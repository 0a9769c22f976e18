package scenes

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/cbodonnell/minesweeper/client/input"
	"github.com/cbodonnell/minesweeper/client/objects"
	"github.com/cbodonnell/minesweeper/pkg/api"
	"github.com/cbodonnell/minesweeper/pkg/client/network"
	"github.com/cbodonnell/minesweeper/pkg/game/types"
	"github.com/cbodonnell/minesweeper/pkg/gate"
	"github.com/cbodonnell/minesweeper/pkg/log"
	"github.com/cbodonnell/minesweeper/pkg/messages"
	"github.com/cbodonnell/minesweeper/pkg/state"
)

const (
	// BannerTTL is how long a server message stays on screen, in milliseconds.
	BannerTTL = 4000
	// NoticeTTL is how long a notice stays in the status bar.
	NoticeTTL = 5 * time.Second

	statusBarHeight = 60
)

// GameSession is the part of a joined game the scene drives.
type GameSession interface {
	GameID() string
	Board() api.BoardInfo
	Counts() state.Counts
	Connected() bool
	Reveal(x, y int) error
	ToggleFlag(x, y int) error
	Resync()
}

type GameScene struct {
	*BaseScene

	session GameSession
	grid    *objects.GridObject

	notice      string
	noticeUntil time.Time
	banners     int
}

var _ Scene = &GameScene{}

// NewGameScene creates an empty scene. Its callbacks can be handed to a
// session before the session is attached with SetSession.
func NewGameScene() (*GameScene, error) {
	return &GameScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("game-root")),
	}, nil
}

// SetSession attaches the session and lays out its board.
func (s *GameScene) SetSession(session GameSession) error {
	s.session = session

	board := session.Board()
	area := image.Rect(0, statusBarHeight, ScreenWidth, ScreenHeight)
	s.grid = objects.NewGridObject("grid", objects.NewGridLayout(board.Width, board.Height, area))
	if err := s.Root.AddChild(s.grid.GetID(), s.grid); err != nil {
		return fmt.Errorf("failed to add grid: %v", err)
	}

	statusBar := objects.NewStatusBarObject("status", objects.NewStatusBarObjectOptions{
		Y:     statusBarHeight / 2,
		Left:  s.statusLeft,
		Right: s.statusRight,
	})
	if err := s.Root.AddChild(statusBar.GetID(), statusBar); err != nil {
		return fmt.Errorf("failed to add status bar: %v", err)
	}
	return nil
}

func (s *GameScene) Init() error {
	if s.session == nil {
		return fmt.Errorf("game scene has no session")
	}
	if err := s.BaseScene.Init(); err != nil {
		return err
	}
	s.session.Resync()
	return nil
}

// OnRender repaints tiles applied by the session.
func (s *GameScene) OnRender(tiles []types.PositionedTile) {
	if s.grid == nil {
		return
	}
	s.grid.RenderTiles(tiles)
}

// OnMessage shows a server message as a banner.
func (s *GameScene) OnMessage(message string) {
	s.banners++
	banner := objects.NewBannerObject(fmt.Sprintf("banner-%d", s.banners), objects.NewBannerObjectOptions{
		Text:   message,
		Color:  color.NRGBA{R: 255, G: 230, B: 120, A: 255},
		TTL:    BannerTTL,
		ZIndex: 10,
	})
	if err := s.Root.AddChild(banner.GetID(), banner); err != nil {
		log.Error("Failed to add banner: %v", err)
	}
}

// OnNotice shows a notice in the status bar for a while.
func (s *GameScene) OnNotice(notice *messages.Notice) {
	s.setNotice(notice.String())
}

func (s *GameScene) setNotice(text string) {
	s.notice = text
	s.noticeUntil = time.Now().Add(NoticeTTL)
}

func (s *GameScene) statusLeft() string {
	if s.session == nil {
		return ""
	}
	counts := s.session.Counts()
	connection := "connected"
	if !s.session.Connected() {
		connection = "disconnected"
	}
	return fmt.Sprintf("%s  revealed %d  flags %d  mines %d  hidden %d  (%s)",
		s.session.GameID(), counts.Revealed, counts.Flagged, counts.Mines, counts.Hidden, connection)
}

func (s *GameScene) statusRight() string {
	if s.notice != "" && time.Now().Before(s.noticeUntil) {
		return s.notice
	}
	return "left: reveal  right: flag  esc: leave"
}

func (s *GameScene) Update() error {
	if err := s.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}
	return s.BaseScene.Update()
}

func (s *GameScene) handleInput() error {
	if s.session == nil {
		return nil
	}
	if input.IsResyncJustPressed() {
		s.session.Resync()
	}

	layout := s.grid.Layout()
	if p, ok := input.FlagJustPressed(); ok {
		if c, ok := layout.TileAt(p); ok {
			s.handleGestureError(s.session.ToggleFlag(c.X, c.Y))
		}
		return nil
	}
	if p, ok := input.RevealJustPressed(); ok {
		if c, ok := layout.TileAt(p); ok {
			s.handleGestureError(s.session.Reveal(c.X, c.Y))
		}
	}
	return nil
}

func (s *GameScene) handleGestureError(err error) {
	switch {
	case err == nil:
	case gate.IsRejected(err, gate.RejectReasonPending), gate.IsRejected(err, gate.RejectReasonAlreadyRevealed):
		log.Debug("Gesture ignored: %v", err)
	case network.IsTransportUnavailable(err):
		s.setNotice("Not connected")
	default:
		log.Warn("Gesture failed: %v", err)
		s.setNotice("Action failed, try again")
	}
}
