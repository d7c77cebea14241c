// internal/game/engine.go
//
// Core engine for a single guessing session.
// Responsibilities:
//   - Hold the fixed target word and the list of valid guesses.
//   - Edit the in-progress guess buffer (append, backspace, clear on submit).
//   - Validate submissions: length first, then list membership.
//   - Score submitted guesses per letter (hit / contains / miss).
//   - Expose a render-ready snapshot of the board.
//
// Notes:
//   - The engine never caps the number of submissions; the driving loop
//     decides when the session is over (win, out of tries, cancel).
//   - All comparisons are verbatim. No case folding anywhere.
//   - Lengths are rune counts, so multi-byte letters count as one cell.
package game

import (
	"errors"
	"strings"

	"github.com/H4kor/rustle/internal/words"
)

// filler pads unfilled board cells.
const filler = '_'

// Engine holds the state of one guessing session.
type Engine struct {
	target   string
	letters  []rune // target as runes; fixes the guess length
	valid    *words.List
	buf      []rune
	guesses  []string
	maxTries int
	lastErr  error
}

// New constructs an engine for the given target word. The target's rune
// count fixes the required guess length for the whole session. maxTries
// sizes the board; enforcing it is the caller's concern.
func New(target string, valid *words.List, maxTries int) (*Engine, error) {
	if target == "" {
		return nil, errors.New("game: empty target")
	}
	if valid == nil {
		return nil, errors.New("game: nil word list")
	}
	if maxTries < 1 {
		return nil, errors.New("game: maxTries must be at least 1")
	}
	return &Engine{
		target:   target,
		letters:  []rune(target),
		valid:    valid,
		maxTries: maxTries,
		guesses:  []string{},
	}, nil
}

// AppendRune adds r to the guess buffer. Once the buffer holds as many
// runes as the target, further input is ignored.
func (e *Engine) AppendRune(r rune) {
	if len(e.buf) < len(e.letters) {
		e.buf = append(e.buf, r)
	}
}

// Backspace removes the last buffered rune. No-op on an empty buffer.
func (e *Engine) Backspace() {
	if len(e.buf) > 0 {
		e.buf = e.buf[:len(e.buf)-1]
	}
}

// Guess validates and records a submission directly, bypassing the edit
// buffer.
//
// Validation order:
//   - the rune count must equal the target's (ErrWrongLength),
//   - the text must be in the valid list, matched exactly (ErrInvalidWord).
//
// A rejected submission records the error and leaves the history alone. An
// accepted one appends to the history, clears any prior error, and reports
// whether it won the game.
func (e *Engine) Guess(text string) (bool, error) {
	if len([]rune(text)) != len(e.letters) {
		e.lastErr = ErrWrongLength
		return false, ErrWrongLength
	}
	if !e.valid.Contains(text) {
		e.lastErr = ErrInvalidWord
		return false, ErrInvalidWord
	}
	e.guesses = append(e.guesses, text)
	e.lastErr = nil
	return e.Won(), nil
}

// Confirm submits the edit buffer via Guess, then clears the buffer
// whether or not the submission was accepted.
func (e *Engine) Confirm() (bool, error) {
	won, err := e.Guess(string(e.buf))
	e.buf = e.buf[:0]
	return won, err
}

// Won reports whether the most recent accepted submission equals the
// target.
func (e *Engine) Won() bool {
	if len(e.guesses) == 0 {
		return false
	}
	return e.guesses[len(e.guesses)-1] == e.target
}

// Marks scores the i-th accepted submission. Per letter: MarkHit when the
// target has that rune at the same position, MarkContains when the target
// has it anywhere at all, MarkMiss otherwise. Repeated guess letters are
// each scored independently against the whole target.
func (e *Engine) Marks(i int) ([]Mark, error) {
	if i < 0 || i >= len(e.guesses) {
		return nil, ErrNoSuchGuess
	}
	gr := []rune(e.guesses[i])
	marks := make([]Mark, len(gr))
	for j, r := range gr {
		switch {
		case e.letters[j] == r:
			marks[j] = MarkHit
		case strings.ContainsRune(e.target, r):
			marks[j] = MarkContains
		default:
			marks[j] = MarkMiss
		}
	}
	return marks, nil
}

// Board returns the render snapshot: exactly MaxTries rows. Submitted rows
// carry their text and marks, the row after them shows the edit buffer,
// and every unfilled cell is the filler rune with MarkNone.
func (e *Engine) Board() []Row {
	rows := make([]Row, e.maxTries)
	for i := range rows {
		switch {
		case i < len(e.guesses):
			marks, _ := e.Marks(i)
			rows[i] = Row{Text: e.guesses[i], Marks: marks}
		case i == len(e.guesses):
			rows[i] = Row{Text: padded(e.buf, len(e.letters)), Marks: noneMarks(len(e.letters))}
		default:
			rows[i] = Row{Text: padded(nil, len(e.letters)), Marks: noneMarks(len(e.letters))}
		}
	}
	return rows
}

// Buffer returns the in-progress guess text.
func (e *Engine) Buffer() string { return string(e.buf) }

// Guesses returns a copy of the accepted submissions in order.
func (e *Engine) Guesses() []string {
	out := make([]string, len(e.guesses))
	copy(out, e.guesses)
	return out
}

// LastErr returns the rejection from the most recent submission attempt,
// or nil after an accepted one. Edits do not clear it; only an accepted
// submission does.
func (e *Engine) LastErr() error { return e.lastErr }

// Target returns the word being guessed.
func (e *Engine) Target() string { return e.target }

// WordLen returns the required guess length in runes.
func (e *Engine) WordLen() int { return len(e.letters) }

// MaxTries returns the board height the engine was built with.
func (e *Engine) MaxTries() int { return e.maxTries }

// Tries returns the number of accepted submissions so far.
func (e *Engine) Tries() int { return len(e.guesses) }

func padded(buf []rune, width int) string {
	out := make([]rune, width)
	copy(out, buf)
	for i := len(buf); i < width; i++ {
		out[i] = filler
	}
	return string(out)
}

func noneMarks(n int) []Mark {
	m := make([]Mark, n)
	for i := range m {
		m[i] = MarkNone
	}
	return m
}
