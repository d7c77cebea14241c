package session

import (
	"strings"
	"testing"

	"github.com/H4kor/rustle/internal/game"
	"github.com/H4kor/rustle/internal/words"
)

func summaryEngine(t *testing.T, guesses ...string) *game.Engine {
	t.Helper()
	list := append([]string{"hello"}, guesses...)
	eng, err := game.New("hello", words.NewList(list), 6)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	for _, g := range guesses {
		if _, err := eng.Guess(g); err != nil {
			t.Fatalf("Guess(%q): %v", g, err)
		}
	}
	return eng
}

func TestSummaryWin(t *testing.T) {
	eng := summaryEngine(t, "hello")

	s := Summary(eng, StateWon)
	for _, want := range []string{"You won!", "rustle 1/6", "🟩🟩🟩🟩🟩"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestSummaryLoss(t *testing.T) {
	eng := summaryEngine(t, "jolly")

	s := Summary(eng, StateLost)
	for _, want := range []string{"You lost!", "The word was: hello", "rustle X/6", "⬜🟨🟩🟩⬜"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestSummaryCancelled(t *testing.T) {
	eng := summaryEngine(t)

	s := Summary(eng, StateCancelled)
	if !strings.Contains(s, "Cancelled.") {
		t.Errorf("summary missing cancel line:\n%s", s)
	}
	if !strings.Contains(s, "The word was: hello") {
		t.Errorf("summary missing target reveal:\n%s", s)
	}
	if strings.Contains(s, "⬜") || strings.Contains(s, "🟩") {
		t.Errorf("cancelled summary should have no grid:\n%s", s)
	}
}

func TestSummaryPlayingIsEmpty(t *testing.T) {
	eng := summaryEngine(t)
	if s := Summary(eng, StatePlaying); s != "" {
		t.Fatalf("summary for a running session = %q, want empty", s)
	}
}

func TestGrid(t *testing.T) {
	eng := summaryEngine(t, "jolly", "hello")

	g := Grid(eng)
	lines := strings.Split(strings.TrimRight(g, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("grid lines = %d, want 2:\n%s", len(lines), g)
	}
	if lines[0] != "⬜🟨🟩🟩⬜" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "🟩🟩🟩🟩🟩" {
		t.Errorf("line 1 = %q", lines[1])
	}
}
