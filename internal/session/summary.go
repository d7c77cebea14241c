// internal/session/summary.go
//
// Builds the text printed to stdout after the screen closes: a colored
// result line, the target reveal on non-wins, and a shareable emoji grid
// of the scored guesses.
package session

import (
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/H4kor/rustle/internal/game"
)

// Summary renders the post-game text for a finished session.
func Summary(eng *game.Engine, st State) string {
	var b strings.Builder
	switch st {
	case StateWon:
		b.WriteString(colorstring.Color("[green]You won!"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "rustle %d/%d\n", eng.Tries(), eng.MaxTries())
	case StateLost:
		b.WriteString(colorstring.Color("[red]You lost!"))
		b.WriteString(" The word was: " + eng.Target() + "\n")
		fmt.Fprintf(&b, "rustle X/%d\n", eng.MaxTries())
	case StateCancelled:
		b.WriteString(colorstring.Color("[yellow]Cancelled."))
		b.WriteString(" The word was: " + eng.Target() + "\n")
		return b.String()
	default:
		return ""
	}
	b.WriteString(Grid(eng))
	return b.String()
}

// Grid returns one emoji row per accepted guess: green for hits, yellow
// for contained letters, white for misses.
func Grid(eng *game.Engine) string {
	var b strings.Builder
	for i := 0; i < eng.Tries(); i++ {
		marks, err := eng.Marks(i)
		if err != nil {
			break
		}
		for _, m := range marks {
			b.WriteString(square(m))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// square maps a mark to its share emoji.
func square(m game.Mark) string {
	switch m {
	case game.MarkHit:
		return "🟩"
	case game.MarkContains:
		return "🟨"
	default:
		return "⬜"
	}
}
