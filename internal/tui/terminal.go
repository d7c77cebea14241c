// internal/tui/terminal.go
//
// tcell-backed Screen implementation and the mapping from raw terminal
// events to the game's event vocabulary.
package tui

import (
	"github.com/gdamore/tcell/v2"
)

// Terminal implements Screen using tcell.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal screen. Init must be called before use.
func NewTerminal() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: s}, nil
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Fini() { t.screen.Fini() }

func (t *Terminal) Size() (int, int) { return t.screen.Size() }

func (t *Terminal) Clear() { t.screen.Clear() }

func (t *Terminal) SetCell(x, y int, r rune, style Style) {
	t.screen.SetContent(x, y, r, nil, tcellStyle(style))
}

func (t *Terminal) Show() { t.screen.Show() }

func (t *Terminal) HideCursor() { t.screen.HideCursor() }

func (t *Terminal) ShowCursor(x, y int) { t.screen.ShowCursor(x, y) }

// PollEvent blocks for the next terminal event. Resizes come back as
// redraw requests; a nil event (screen torn down) becomes a cancel.
func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Kind: EventCancel}
	}
	e := convertEvent(ev)
	if e.Kind == EventRedraw {
		t.screen.Sync()
	}
	return e
}

// convertEvent folds a tcell event into the game's event vocabulary.
// Everything the game has no use for maps to EventNone.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Event{Kind: EventCancel}
		case tcell.KeyEnter:
			return Event{Kind: EventSubmit}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return Event{Kind: EventBackspace}
		case tcell.KeyRune:
			return Event{Kind: EventRune, Rune: e.Rune()}
		}
		return Event{Kind: EventNone}
	case *tcell.EventResize:
		return Event{Kind: EventRedraw}
	}
	return Event{Kind: EventNone}
}

// tcellStyle maps a cell style to its colors.
func tcellStyle(s Style) tcell.Style {
	st := tcell.StyleDefault
	switch s {
	case StyleHit:
		return st.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	case StyleContains:
		return st.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	case StyleMiss:
		return st.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	}
	return st
}
