package models

import "time"

// Join is one session joining a game.
type Join struct {
	GameID    string    `json:"game_id"`
	SessionID string    `json:"session_id"`
	JoinedAt  time.Time `json:"joined_at"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
}

// Game summarizes the joins recorded for a game id.
type Game struct {
	GameID       string    `json:"game_id"`
	LastJoinedAt time.Time `json:"last_joined_at"`
	Joins        int       `json:"joins"`
}

// Notice is a message the server displayed during a session.
type Notice struct {
	GameID     string    `json:"game_id"`
	SessionID  string    `json:"session_id"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
