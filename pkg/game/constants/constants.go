package constants

import "time"

const (
	// DefaultBoardSize is the width and height of a board when the board
	// API does not report one.
	DefaultBoardSize int = 25
	// DefaultMineCount is the number of mines the board API places on a
	// default board. Only used for display.
	DefaultMineCount int = 65
	// MinGameIDLength is the minimum length of a game identifier
	MinGameIDLength int = 5

	// PendingRevealWindow is how long a sent reveal suppresses a repeat
	// reveal of the same tile while waiting for the server.
	PendingRevealWindow time.Duration = time.Second
	// SendTimeout bounds a single websocket write.
	SendTimeout time.Duration = 5 * time.Second
	// ServerMessageQueueSize is the capacity of the inbound frame queue.
	ServerMessageQueueSize int = 1024
)

const (
	// DefaultAPIURL is the base URL of the board API.
	DefaultAPIURL string = "https://api.marko.sh/SecureMinesweeper"
	// DefaultWSURL is the game server websocket endpoint.
	DefaultWSURL string = "wss://ws.marko.sh/SecureMinesweeper"
)
