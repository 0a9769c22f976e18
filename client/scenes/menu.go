package scenes

import (
	"errors"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/cbodonnell/minesweeper/client/fonts"
	"github.com/cbodonnell/minesweeper/client/objects"
	"github.com/cbodonnell/minesweeper/client/ui"
	"github.com/cbodonnell/minesweeper/pkg/game/constants"
	"github.com/cbodonnell/minesweeper/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

type MenuScene struct {
	*BaseScene

	onJoin      func(gameID string) error
	recentGames []string
	uiObject    *objects.UIObject
	gameID      string
	joinErr     string
}

type MenuSceneOptions struct {
	// OnJoin is called when the join button is pressed with a valid game id.
	OnJoin func(gameID string) error
	// RecentGames are offered as shortcuts below the form.
	RecentGames []string
	// GameID prefills the game id input.
	GameID string
	// Error is shown below the form, e.g. after a failed join.
	Error string
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	uiObject := objects.NewUIObject("menu-ui", nil)
	root := objects.NewBaseObject("menu-root", nil)
	if err := root.AddChild(uiObject.GetID(), uiObject); err != nil {
		return nil, err
	}

	return &MenuScene{
		BaseScene:   NewBaseScene(root),
		onJoin:      opts.OnJoin,
		recentGames: opts.RecentGames,
		uiObject:    uiObject,
		gameID:      opts.GameID,
		joinErr:     opts.Error,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

// CanJoin reports whether gameID is long enough to join.
func CanJoin(gameID string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(gameID)) >= constants.MinGameIDLength
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:    image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed:  image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
		Disabled: image.NewNineSliceColor(color.NRGBA{R: 80, G: 80, B: 90, A: 255}),
	}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.NRGBA{254, 255, 255, 255},
		Disabled: color.NRGBA{R: 150, G: 150, B: 150, A: 255},
	}

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    150,
				Left:   160,
				Right:  160,
				Bottom: 90,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("MINESWEEPER", fonts.TTFLargeFont, color.NRGBA{254, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	gameIDTextInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.TextInputOpts.MobileInputMode("text"),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
			Disabled: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.NRGBA{254, 255, 255, 255},
			Disabled:      color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			Caret:         color.NRGBA{254, 255, 255, 255},
			DisabledCaret: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(5)),
		widget.TextInputOpts.CaretOpts(
			widget.CaretOpts.Size(fontFace, 2),
		),
		widget.TextInputOpts.Placeholder("Game ID"),
	)
	gameIDTextInput.SetText(s.gameID)
	rootContainer.AddChild(gameIDTextInput)

	joinButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Join", fontFace, buttonTextColor),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	joinButton.GetWidget().Disabled = !CanJoin(s.gameID)
	rootContainer.AddChild(joinButton)

	gameIDTextInput.ChangedEvent.AddHandler(func(args interface{}) {
		s.gameID = gameIDTextInput.GetText()
		joinButton.GetWidget().Disabled = !CanJoin(s.gameID)
	})

	if s.joinErr != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.joinErr, fonts.TTFSmallFont, color.NRGBA{R: 255, G: 80, B: 80, A: 255}),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
		s.joinErr = ""
	}

	// register join handler with relevant widget events
	join := func(gameID string) {
		if !CanJoin(gameID) {
			return
		}
		if err := s.onJoin(strings.TrimSpace(gameID)); err != nil {
			log.Error("Failed to join game: %v", err)
			var actionableErr *ui.ActionableError
			if errors.As(err, &actionableErr) {
				s.joinErr = actionableErr.Message
			} else {
				s.joinErr = "Failed to join game. Please try again."
			}
			s.gameID = gameID
			s.renderUI()
		}
	}
	joinHandler := func(args interface{}) {
		join(gameIDTextInput.GetText())
	}
	gameIDTextInput.SubmitEvent.AddHandler(joinHandler)
	joinButton.ClickedEvent.AddHandler(joinHandler)

	if len(s.recentGames) > 0 {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text("Recent games", fonts.TTFSmallFont, color.NRGBA{R: 180, G: 180, B: 190, A: 255}),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
		for _, gameID := range s.recentGames {
			gameID := gameID
			recentButton := widget.NewButton(
				widget.ButtonOpts.WidgetOpts(
					widget.WidgetOpts.LayoutData(widget.RowLayoutData{
						Position: widget.RowLayoutPositionCenter,
						Stretch:  true,
					}),
				),
				widget.ButtonOpts.Image(buttonImage),
				widget.ButtonOpts.Text(gameID, fonts.TTFSmallFont, buttonTextColor),
				widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(4)),
				widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
					join(gameID)
				}),
			)
			rootContainer.AddChild(recentButton)
		}
	}

	// auto focus the game id text input
	gameIDTextInput.Focus(true)

	s.uiObject.SetUI(&ebitenui.UI{
		Container: rootContainer,
	})
}
