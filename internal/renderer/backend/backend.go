// Package backend abstracts the terminal the renderer draws to.
package backend

import "github.com/dshills/pixelstorm/internal/renderer/core"

// EventType identifies an Event.
type EventType int

const (
	// EventNone carries nothing. Posting one wakes a blocked PollEvent.
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event is a key press or a resize.
type Event struct {
	Type EventType

	Key  Key
	Rune rune // set when Key is KeyRune
	Mod  ModMask

	Width, Height int // EventResize only
}

// Key is a key the editor can bind.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlR
	KeyCtrlS
	KeyCtrlY
	KeyCtrlZ
)

// ModMask is a set of held modifiers.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if mod is held.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend is a cell grid plus an event queue.
type Backend interface {
	// Init must be called before anything else.
	Init() error

	// Shutdown restores the terminal.
	Shutdown()

	Size() (width, height int)

	// SetCell draws cell at (x, y). Off-screen positions are ignored.
	SetCell(x, y int, cell core.Cell)

	// Show flushes drawn cells to the display.
	Show()

	HideCursor()

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostEvent queues a synthetic event. It may be called from any
	// goroutine.
	PostEvent(event Event)
}

// nullQueue is the number of events a NullBackend buffers.
const nullQueue = 128

// NullBackend is an in-memory Backend. Events are served from a queue
// filled with PostEvent; PollEvent blocks when it is empty.
type NullBackend struct {
	width, height int
	grid          []core.Cell
	frames        int
	queue         chan Event
}

// NewNullBackend returns a width x height NullBackend.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		queue:  make(chan Event, nullQueue),
	}
}

func (b *NullBackend) Init() error {
	b.grid = make([]core.Cell, b.width*b.height)
	for i := range b.grid {
		b.grid[i] = core.EmptyCell()
	}
	return nil
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) { return b.width, b.height }

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if i, ok := b.offset(x, y); ok {
		b.grid[i] = cell
	}
}

// Cell returns the cell drawn at (x, y), or an empty cell off-screen.
func (b *NullBackend) Cell(x, y int) core.Cell {
	if i, ok := b.offset(x, y); ok {
		return b.grid[i]
	}
	return core.EmptyCell()
}

func (b *NullBackend) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height || b.grid == nil {
		return 0, false
	}
	return y*b.width + x, true
}

func (b *NullBackend) Show() { b.frames++ }

// Frames returns the number of Show calls.
func (b *NullBackend) Frames() int { return b.frames }

func (b *NullBackend) HideCursor() {}

func (b *NullBackend) PollEvent() Event {
	return <-b.queue
}

// PostEvent drops the event when the queue is full.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.queue <- event:
	default:
	}
}
