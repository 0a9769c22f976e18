package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cbodonnell/minesweeper/pkg/game/constants"
	"github.com/cbodonnell/minesweeper/pkg/log"
)

const (
	CreateBoardPath = "/CreateBoard"
)

// ErrBoardCreationFailed is returned when the server rejects a CreateBoard call.
// Message is the server's explanation, shown to the player as is.
type ErrBoardCreationFailed struct {
	StatusCode int
	Message    string
}

func (e *ErrBoardCreationFailed) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("board creation failed with status %d", e.StatusCode)
	}
	return e.Message
}

func IsBoardCreationFailed(err error) bool {
	var target *ErrBoardCreationFailed
	return errors.As(err, &target)
}

// BoardInfo describes the board the server prepared for a game.
type BoardInfo struct {
	GameID    string
	Width     int
	Height    int
	MineCount int
}

type createBoardRequestBody struct {
	GameID string `json:"gameId"`
}

type createBoardResponseBody struct {
	Message   string `json:"message"`
	Error     string `json:"error"`
	GameID    string `json:"gameId"`
	BoardSize int    `json:"boardSize"`
	BombCount int    `json:"bombCount"`
}

// Client calls the game server's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type NewClientOptions struct {
	BaseURL string
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
}

func NewClient(opts NewClientOptions) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// CreateBoard asks the server to prepare a board for gameID. Creating a board
// that already exists succeeds.
func (c *Client) CreateBoard(ctx context.Context, gameID string) (*BoardInfo, error) {
	body, err := json.Marshal(&createBoardRequestBody{GameID: gameID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create board request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+CreateBoardPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create board request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send create board request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read create board response: %v", err)
	}

	respBody := &createBoardResponseBody{}
	decodeErr := json.Unmarshal(b, respBody)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := strings.TrimSpace(string(b))
		if decodeErr == nil {
			switch {
			case respBody.Message != "":
				message = respBody.Message
			case respBody.Error != "":
				message = respBody.Error
			}
		}
		return nil, &ErrBoardCreationFailed{StatusCode: resp.StatusCode, Message: message}
	}

	info := &BoardInfo{
		GameID:    gameID,
		Width:     constants.DefaultBoardSize,
		Height:    constants.DefaultBoardSize,
		MineCount: constants.DefaultMineCount,
	}
	if decodeErr != nil {
		log.Debug("Create board response is not JSON, using default board: %v", decodeErr)
		return info, nil
	}
	if respBody.BoardSize > 0 {
		info.Width = respBody.BoardSize
		info.Height = respBody.BoardSize
	}
	if respBody.BombCount > 0 {
		info.MineCount = respBody.BombCount
	}

	log.Debug("Board ready for game %s: %dx%d with %d mines", gameID, info.Width, info.Height, info.MineCount)
	return info, nil
}
