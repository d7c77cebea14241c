// internal/session/session.go
//
// The interactive driving loop: block on one input event, apply at most
// one engine operation, render, repeat. The loop owns the stop conditions
// (win, out of tries, cancel); the engine only scores guesses.
package session

import (
	"github.com/rs/zerolog"

	"github.com/H4kor/rustle/internal/game"
	"github.com/H4kor/rustle/internal/tui"
)

// State describes how a session ended, or that it has not.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
	StateCancelled
)

// String reports a coarse string representation of the state.
func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateCancelled:
		return "cancelled"
	}
	return "playing"
}

// Display renders the board between events.
type Display interface {
	Draw(rows []game.Row, lastErr error)
}

// Events supplies decoded input events, blocking until one arrives.
type Events interface {
	PollEvent() tui.Event
}

// Outcome is the result of a finished session.
type Outcome struct {
	State  State
	Target string
	Tries  int
}

// Session wires an engine to a display and an event source.
type Session struct {
	eng    *game.Engine
	disp   Display
	events Events
	log    zerolog.Logger
}

// New builds a session. Pass zerolog.Nop() to discard event logs.
func New(eng *game.Engine, disp Display, events Events, log zerolog.Logger) *Session {
	return &Session{eng: eng, disp: disp, events: events, log: log}
}

// Run drives the game until a win, a loss, or a cancel, rendering after
// every event. The engine would accept any number of submissions; the
// loop stops once MaxTries accepted guesses are in.
func (s *Session) Run() Outcome {
	s.draw()
	state := StatePlaying
	for state == StatePlaying {
		ev := s.events.PollEvent()
		switch ev.Kind {
		case tui.EventRune:
			s.eng.AppendRune(ev.Rune)
		case tui.EventBackspace:
			s.eng.Backspace()
		case tui.EventSubmit:
			state = s.submit()
		case tui.EventCancel:
			state = StateCancelled
		}
		s.draw()
	}
	s.log.Info().
		Str("state", state.String()).
		Int("tries", s.eng.Tries()).
		Msg("session over")
	return Outcome{State: state, Target: s.eng.Target(), Tries: s.eng.Tries()}
}

// submit confirms the edit buffer and reports the resulting state. A
// rejected submission keeps the session going; the recorded error shows
// up in the next draw.
func (s *Session) submit() State {
	won, err := s.eng.Confirm()
	if err != nil {
		s.log.Debug().Err(err).Msg("guess rejected")
		return StatePlaying
	}
	s.log.Debug().Int("try", s.eng.Tries()).Bool("won", won).Msg("guess accepted")
	if won {
		return StateWon
	}
	if s.eng.Tries() >= s.eng.MaxTries() {
		return StateLost
	}
	return StatePlaying
}

func (s *Session) draw() {
	s.disp.Draw(s.eng.Board(), s.eng.LastErr())
}
