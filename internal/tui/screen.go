// internal/tui/screen.go
//
// Terminal abstraction for the board renderer.
//
// Screen is the small surface the game needs from a terminal: init and
// teardown, styled cell writes, and a blocking event poll. Terminal
// implements it on tcell; Memory implements it in-process for tests.
package tui

// Style selects how a cell is painted.
type Style int

const (
	StyleDefault  Style = iota
	StyleHit            // letter in the right spot
	StyleContains       // letter elsewhere in the word
	StyleMiss           // letter not in the word
)

// EventKind identifies the type of input event.
type EventKind int

const (
	EventNone EventKind = iota
	EventRune
	EventBackspace
	EventSubmit
	EventCancel
	EventRedraw
)

// Event is a decoded input event. Rune is set for EventRune.
type Event struct {
	Kind EventKind
	Rune rune
}

// Screen is the terminal surface the board renderer draws on.
type Screen interface {
	// Init takes over the terminal. Must be called before any other method.
	Init() error

	// Fini restores the terminal state.
	Fini()

	// Size returns the current dimensions.
	Size() (width, height int)

	// Clear erases all cells.
	Clear()

	// SetCell writes a single rune at the given position. Positions
	// outside the screen are silently ignored.
	SetCell(x, y int, r rune, style Style)

	// Show flushes pending writes to the display.
	Show()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// ShowCursor places and reveals the cursor.
	ShowCursor(x, y int)

	// PollEvent blocks until the next input event.
	PollEvent() Event
}

// Memory is an in-process Screen for tests: cells land in a grid and
// events come from a scripted queue.
type Memory struct {
	width, height    int
	runes            [][]rune
	styles           [][]Style
	cursorX, cursorY int
	cursorShown      bool
	events           chan Event
	finished         bool
}

// NewMemory creates a memory screen with the given dimensions.
func NewMemory(width, height int) *Memory {
	m := &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
	m.reset()
	return m
}

func (m *Memory) reset() {
	m.runes = make([][]rune, m.height)
	m.styles = make([][]Style, m.height)
	for y := range m.runes {
		m.runes[y] = make([]rune, m.width)
		m.styles[y] = make([]Style, m.width)
		for x := range m.runes[y] {
			m.runes[y][x] = ' '
		}
	}
}

func (m *Memory) Init() error { return nil }

func (m *Memory) Fini() { m.finished = true }

func (m *Memory) Size() (int, int) { return m.width, m.height }

func (m *Memory) Clear() { m.reset() }

func (m *Memory) SetCell(x, y int, r rune, style Style) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.runes[y][x] = r
	m.styles[y][x] = style
}

func (m *Memory) Show() {}

func (m *Memory) HideCursor() { m.cursorShown = false }

func (m *Memory) ShowCursor(x, y int) {
	m.cursorX, m.cursorY, m.cursorShown = x, y, true
}

func (m *Memory) PollEvent() Event { return <-m.events }

// Post queues an event for PollEvent. Drops the event when the queue is
// full rather than blocking the test.
func (m *Memory) Post(e Event) {
	select {
	case m.events <- e:
	default:
	}
}

// RuneAt returns the rune at a position, for assertions.
func (m *Memory) RuneAt(x, y int) rune {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return ' '
	}
	return m.runes[y][x]
}

// StyleAt returns the style at a position, for assertions.
func (m *Memory) StyleAt(x, y int) Style {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return StyleDefault
	}
	return m.styles[y][x]
}

// Line returns row y as a string with trailing blanks trimmed.
func (m *Memory) Line(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	end := m.width
	for end > 0 && m.runes[y][end-1] == ' ' {
		end--
	}
	return string(m.runes[y][:end])
}

// Finished reports whether Fini was called.
func (m *Memory) Finished() bool { return m.finished }
