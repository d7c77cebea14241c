// internal/tui/board.go
//
// Draws the guess board onto a Screen.
//
// Layout, margins included:
//
//	-----------
//	|j|o|l|l|y|
//	-----------
//	|h|e|_|_|_|
//	-----------
//	|_|_|_|_|_|
//	-----------
//
//	word is not valid
//
// Each letter cell is two columns wide, with a rule of dashes between
// rows. The rejection text, if any, sits two rows below the board.
package tui

import (
	"github.com/H4kor/rustle/internal/game"
)

const (
	marginLeft = 10
	marginTop  = 4
)

// BoardView renders board snapshots onto a Screen.
type BoardView struct {
	scr Screen
}

// NewBoardView creates a view that draws on scr.
func NewBoardView(scr Screen) *BoardView {
	return &BoardView{scr: scr}
}

// Draw renders the full board plus the rejection line and flushes the
// screen.
func (v *BoardView) Draw(rows []game.Row, lastErr error) {
	v.scr.Clear()
	v.scr.HideCursor()
	if len(rows) == 0 {
		v.scr.Show()
		return
	}

	cols := len(rows[0].Marks)
	for i, row := range rows {
		v.rule(marginTop+2*i, cols)
		v.cellRow(marginTop+2*i+1, row)
	}
	v.rule(marginTop+2*len(rows), cols)

	if lastErr != nil {
		v.text(marginLeft, marginTop+2*len(rows)+2, lastErr.Error())
	}
	v.scr.Show()
}

func (v *BoardView) rule(y, cols int) {
	for x := 0; x <= 2*cols; x++ {
		v.scr.SetCell(marginLeft+x, y, '-', StyleDefault)
	}
}

func (v *BoardView) cellRow(y int, row game.Row) {
	letters := []rune(row.Text)
	for j, r := range letters {
		v.scr.SetCell(marginLeft+2*j, y, '|', StyleDefault)
		v.scr.SetCell(marginLeft+2*j+1, y, r, markStyle(row.Marks[j]))
	}
	v.scr.SetCell(marginLeft+2*len(letters), y, '|', StyleDefault)
}

func (v *BoardView) text(x, y int, s string) {
	for i, r := range []rune(s) {
		v.scr.SetCell(x+i, y, r, StyleDefault)
	}
}

// markStyle maps a mark to its cell style.
func markStyle(m game.Mark) Style {
	switch m {
	case game.MarkHit:
		return StyleHit
	case game.MarkContains:
		return StyleContains
	case game.MarkMiss:
		return StyleMiss
	}
	return StyleDefault
}
