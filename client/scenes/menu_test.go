package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanJoin(t *testing.T) {
	tests := []struct {
		gameID string
		want   bool
	}{
		{gameID: "", want: false},
		{gameID: "abcd", want: false},
		{gameID: "  abcd  ", want: false},
		{gameID: "abcde", want: true},
		{gameID: " abcdef", want: true},
		{gameID: "ééé", want: false},
		{gameID: "jeu-é", want: true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanJoin(tt.gameID), "CanJoin(%q)", tt.gameID)
	}
}
