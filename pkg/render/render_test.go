package render

import (
	"strings"
	"testing"

	"github.com/cbodonnell/minesweeper/pkg/engine"
	"github.com/cbodonnell/minesweeper/pkg/game/types"
	"github.com/cbodonnell/minesweeper/pkg/state"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell(t *testing.T) {
	tests := []struct {
		name string
		tile types.Tile
		want string
	}{
		{name: "hidden", tile: types.Tile{}, want: HiddenSymbol},
		{name: "flagged", tile: types.Tile{Status: types.TileStatusFlagged}, want: FlagSymbol},
		{name: "zero", tile: types.Tile{Status: types.TileStatusRevealed, Value: 0}, want: BlankSymbol},
		{name: "count", tile: types.Tile{Status: types.TileStatusRevealed, Value: 3}, want: "3"},
		{name: "mine", tile: types.Tile{Status: types.TileStatusRevealed, Value: types.MineValue}, want: "*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cell(tt.tile))
		})
	}
}

func testGrid(t *testing.T) *state.InMemoryGrid {
	t.Helper()
	grid, err := state.NewInMemoryGrid(3, 2)
	require.NoError(t, err)
	require.NoError(t, grid.ApplyReveal(0, 0, 0))
	require.NoError(t, grid.ApplyReveal(1, 0, 2))
	require.NoError(t, grid.ApplyFlagState(2, 1, true))
	require.NoError(t, grid.ApplyReveal(0, 1, types.MineValue))
	return grid
}

func TestRows(t *testing.T) {
	assert.Equal(t, [][]string{
		{BlankSymbol, "2", HiddenSymbol},
		{"*", HiddenSymbol, FlagSymbol},
	}, Rows(testGrid(t)))
}

func TestGrid(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	got := Grid(testGrid(t))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  0 1 2 ", lines[0])
	assert.Equal(t, "0   2 · ", lines[1])
	assert.Equal(t, "1 * · F ", lines[2])
}

func TestStatsTable(t *testing.T) {
	data := StatsTable(state.Counts{Revealed: 4, Flagged: 1, Hidden: 20, Mines: 1}, engine.Stats{Malformed: 2})
	assert.Equal(t, []string{"Revealed", "4"}, data[0])
	assert.Contains(t, data, []string{"Malformed", "2"})
}
