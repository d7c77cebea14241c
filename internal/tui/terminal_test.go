package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Event
	}{
		{"escape cancels", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Event{Kind: EventCancel}},
		{"ctrl-c cancels", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Event{Kind: EventCancel}},
		{"enter submits", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Event{Kind: EventSubmit}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), Event{Kind: EventBackspace}},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), Event{Kind: EventBackspace}},
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), Event{Kind: EventRune, Rune: 'a'}},
		{"umlaut", tcell.NewEventKey(tcell.KeyRune, 'ä', tcell.ModNone), Event{Kind: EventRune, Rune: 'ä'}},
		{"unused key", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), Event{Kind: EventNone}},
		{"resize redraws", tcell.NewEventResize(80, 24), Event{Kind: EventRedraw}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := convertEvent(tc.ev)
			if got.Kind != tc.want.Kind {
				t.Fatalf("kind = %d, want %d", got.Kind, tc.want.Kind)
			}
			if got.Rune != tc.want.Rune {
				t.Fatalf("rune = %q, want %q", got.Rune, tc.want.Rune)
			}
		})
	}
}

func TestTcellStyleColors(t *testing.T) {
	tests := []struct {
		style  Style
		wantFg tcell.Color
		wantBg tcell.Color
	}{
		{StyleHit, tcell.ColorBlack, tcell.ColorGreen},
		{StyleContains, tcell.ColorBlack, tcell.ColorYellow},
		{StyleMiss, tcell.ColorBlack, tcell.ColorWhite},
	}
	for _, tc := range tests {
		fg, bg, _ := tcellStyle(tc.style).Decompose()
		if fg != tc.wantFg || bg != tc.wantBg {
			t.Errorf("style %d = fg %v bg %v, want fg %v bg %v", tc.style, fg, bg, tc.wantFg, tc.wantBg)
		}
	}

	fg, bg, _ := tcellStyle(StyleDefault).Decompose()
	if fg != tcell.ColorDefault || bg != tcell.ColorDefault {
		t.Errorf("StyleDefault = fg %v bg %v, want terminal defaults", fg, bg)
	}
}
