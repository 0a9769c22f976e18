// Package render draws a grid and session counters in the terminal.
package render

import (
	"strconv"
	"strings"

	"github.com/cbodonnell/minesweeper/pkg/engine"
	"github.com/cbodonnell/minesweeper/pkg/game/types"
	"github.com/cbodonnell/minesweeper/pkg/state"
	"github.com/pterm/pterm"
)

const (
	HiddenSymbol = "·"
	FlagSymbol   = "F"
	BlankSymbol  = " "
)

var valueColors = map[types.TileValue]func(a ...interface{}) string{
	1: pterm.LightBlue,
	2: pterm.Green,
	3: pterm.LightRed,
	4: pterm.Blue,
	5: pterm.Red,
	6: pterm.Cyan,
	7: pterm.Magenta,
	8: pterm.Gray,
}

// Cell returns the uncolored symbol for a tile.
func Cell(tile types.Tile) string {
	switch tile.Status {
	case types.TileStatusFlagged:
		return FlagSymbol
	case types.TileStatusRevealed:
		if d := tile.Display(); d != "" {
			return d
		}
		return BlankSymbol
	default:
		return HiddenSymbol
	}
}

func colorCell(tile types.Tile) string {
	symbol := Cell(tile)
	switch {
	case tile.IsFlagged():
		return pterm.LightYellow(symbol)
	case !tile.IsRevealed():
		return pterm.FgDarkGray.Sprint(symbol)
	case tile.Value.IsMine():
		return pterm.BgRed.Sprint(pterm.Black(symbol))
	}
	if color, ok := valueColors[tile.Value]; ok {
		return color(symbol)
	}
	return symbol
}

// Rows returns the uncolored symbols of the grid, one slice per row.
func Rows(grid state.GridReader) [][]string {
	rows := make([][]string, grid.Height())
	for y := range rows {
		rows[y] = make([]string, grid.Width())
		for x := range rows[y] {
			tile, _ := grid.Get(x, y)
			rows[y][x] = Cell(tile)
		}
	}
	return rows
}

// Grid returns the colored grid with column and row indexes.
func Grid(grid state.GridReader) string {
	b := strings.Builder{}
	width := len(strconv.Itoa(grid.Height() - 1))

	b.WriteString(strings.Repeat(" ", width+1))
	for x := 0; x < grid.Width(); x++ {
		b.WriteString(pterm.FgDarkGray.Sprint(strconv.Itoa(x % 10)))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for y := 0; y < grid.Height(); y++ {
		label := strconv.Itoa(y)
		b.WriteString(pterm.FgDarkGray.Sprint(strings.Repeat(" ", width-len(label)) + label))
		b.WriteString(" ")
		for x := 0; x < grid.Width(); x++ {
			tile, _ := grid.Get(x, y)
			b.WriteString(colorCell(tile))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// StatsTable returns the counters as label and value rows.
func StatsTable(counts state.Counts, stats engine.Stats) pterm.TableData {
	return pterm.TableData{
		{"Revealed", strconv.Itoa(counts.Revealed)},
		{"Flagged", strconv.Itoa(counts.Flagged)},
		{"Hidden", strconv.Itoa(counts.Hidden)},
		{"Mines seen", strconv.Itoa(counts.Mines)},
		{"Frames applied", strconv.Itoa(stats.FramesApplied)},
		{"Duplicates", strconv.Itoa(stats.Duplicates)},
		{"Malformed", strconv.Itoa(stats.Malformed)},
		{"Dropped", strconv.Itoa(stats.Dropped)},
		{"Gestures sent", strconv.Itoa(stats.GesturesSent)},
		{"Gestures rejected", strconv.Itoa(stats.GesturesRejected)},
	}
}

// Print renders the grid next to its counters.
func Print(title string, grid state.GridReader, counts state.Counts, stats engine.Stats) error {
	gridBox := pterm.DefaultBox.
		WithTitle(pterm.LightCyan(title)).
		WithTitleTopCenter().
		WithLeftPadding(2).
		WithRightPadding(2).
		Sprint(strings.TrimRight(Grid(grid), "\n"))

	table, err := pterm.DefaultTable.WithData(StatsTable(counts, stats)).Srender()
	if err != nil {
		return err
	}
	statsBox := pterm.DefaultBox.WithTitle(pterm.LightGreen("|STATS|")).WithTitleTopLeft().Sprint(table)

	return pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: gridBox}, {Data: statsBox}},
	}).Render()
}
