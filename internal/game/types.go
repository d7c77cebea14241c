// internal/game/types.go
//
// Core type definitions for the guess engine.
// Defines:
//   - Mark: per-letter result of a submitted guess (hit/contains/miss).
//   - Row: one render-ready board row (text plus marks).
//   - Sentinel errors for rejected submissions and bad lookups.

package game

import "errors"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":      letter is correct and in the correct position.
//   - "contains": letter occurs somewhere in the target word.
//   - "miss":     letter does not occur in the target word at all.
//   - "none":     no submission for this cell yet.
type Mark string

const (
	MarkHit      Mark = "hit"
	MarkContains      = "contains"
	MarkMiss          = "miss"
	MarkNone          = "none"
)

// Submission rejections carry the text shown to the player under the
// board. ErrNoSuchGuess reports a history lookup outside the recorded
// guesses.
var (
	ErrWrongLength = errors.New("word is not the correct length")
	ErrInvalidWord = errors.New("word is not valid")
	ErrNoSuchGuess = errors.New("no guess at that index")
)

// Row is one line of the render snapshot: the text to draw (a submitted
// guess, or the edit buffer padded with the filler rune) and one mark per
// cell. Cells without a submission carry MarkNone.
type Row struct {
	Text  string
	Marks []Mark
}
