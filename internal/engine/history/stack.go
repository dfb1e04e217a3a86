package history

import (
	"time"

	"github.com/dshills/pixelstorm/internal/console"
)

// DefaultMaxEntries is the log size used when none is configured.
const DefaultMaxEntries = 1000

// Logger is the logging capability History needs.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// entry wraps a change with metadata.
type entry[D any] struct {
	change    Change[D]
	name      string
	timestamp time.Time
}

// EntryInfo provides read-only info about a log entry.
// Used for displaying undo/redo history to users.
type EntryInfo struct {
	Index       int
	Kind        Kind
	Name        string // action name that produced the entry
	Description string
	Timestamp   time.Time
	Applied     bool // false for entries in the redo tail
}

type settings struct {
	maxEntries int
	logger     Logger
	replay     console.Console
}

// Option configures a History.
type Option func(*settings)

// WithMaxEntries bounds the log. Whole logical actions are dropped from the
// front once the log grows past max.
func WithMaxEntries(max int) Option {
	return func(s *settings) {
		s.maxEntries = max
	}
}

// WithLogger sets the logger used for perform/undo/redo tracing.
func WithLogger(l Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithReplayConsole sets the console handed to operations replayed by Undo
// and Redo. Defaults to console.Discard.
func WithReplayConsole(c console.Console) Option {
	return func(s *settings) {
		if c != nil {
			s.replay = c
		}
	}
}

// History owns the operation registry, the region locks and the change log.
type History[D any] struct {
	registry *Registry[D]

	// locks[r] is the name of the operation holding r, or "".
	locks [regionCount]string

	log    []entry[D]
	cursor int

	// bracketOwner is the name whose Begin is still unmatched at the tail.
	bracketOwner string

	maxEntries int
	replay     console.Console
	logger     Logger
}

// New creates an empty history.
func New[D any](opts ...Option) *History[D] {
	s := settings{
		maxEntries: DefaultMaxEntries,
		logger:     nopLogger{},
		replay:     console.Discard,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.maxEntries <= 0 {
		s.maxEntries = DefaultMaxEntries
	}

	return &History[D]{
		registry:   NewRegistry[D](),
		maxEntries: s.maxEntries,
		replay:     s.replay,
		logger:     s.logger,
	}
}

// Registry returns the operation registry.
func (h *History[D]) Registry() *Registry[D] {
	return h.registry
}

// Register adds op under name.
func (h *History[D]) Register(name string, op Operation[D]) error {
	return h.registry.Register(name, op)
}

// Names returns all registered action names, sorted.
func (h *History[D]) Names() []string {
	return h.registry.Names()
}

// Perform runs the operation registered under name against doc and records
// the result.
//
// While another operation's bracket is open, an operation whose regions are
// all free may still run as long as it finishes in the same call. Its
// entries go in front of the open Begin so the bracket stays at the tail.
// One that would leave a second bracket open is rolled back and fails with
// BusyError.
//
// If Apply fails, the locks acquired for this attempt are released, but the
// document is left as the operation left it: there is no rollback of partial
// writes.
func (h *History[D]) Perform(doc D, con console.Console, name string) error {
	op, ok := h.registry.Get(name)
	if !ok {
		return &ActionNotFoundError{Name: name}
	}

	regions := regionsOf(op)
	for _, r := range regions {
		if holder := h.locks[r]; holder != "" && holder != name {
			return &LockedError{Region: r, Holder: holder}
		}
	}
	interleaved := h.bracketOwner != "" && h.bracketOwner != name

	var acquired []Region
	for _, r := range regions {
		if h.locks[r] == "" {
			h.locks[r] = name
			acquired = append(acquired, r)
		}
	}

	if con == nil {
		con = console.Discard
	}
	changes, err := op.Apply(doc, con)
	if err != nil {
		h.release(acquired)
		h.logger.Debug("perform %s failed: %v", name, err)
		return &ActionFailedError{Name: name, Index: -1, Err: err}
	}
	if len(changes) == 0 {
		h.release(acquired)
		h.logger.Debug("perform %s: no changes", name)
		return nil
	}

	if interleaved {
		return h.interleave(doc, name, op, acquired, changes)
	}

	last := changes[len(changes)-1]

	if h.cursor < len(h.log) {
		h.truncate(h.cursor)
	}
	appended := h.appendChanges(name, changes)

	if last.closes() {
		h.release(regions)
	}

	if h.bracketOwner == "" {
		h.trim()
	}

	h.logger.Debug("perform %s: %d entries, last %s, cursor %d", name, appended, last.Kind, h.cursor)
	return nil
}

// interleave records the changes of an operation that ran while another
// bracket was open. They must form closed actions; otherwise the mutation is
// reverted and BusyError returned.
func (h *History[D]) interleave(doc D, name string, op Operation[D], acquired []Region, changes []Change[D]) error {
	normalized, open := normalize(changes, false)
	if open {
		h.revert(doc, changes)
		if rs, ok := op.(Resetter); ok {
			rs.Reset()
		}
		h.release(acquired)
		h.logger.Debug("perform %s: busy with %s", name, h.bracketOwner)
		return &BusyError{Holder: h.bracketOwner}
	}
	h.release(acquired)
	if len(normalized) == 0 {
		return nil
	}

	at := h.openBegin()
	now := time.Now()
	inserted := make([]entry[D], len(normalized))
	for i, c := range normalized {
		inserted[i] = entry[D]{change: c, name: name, timestamp: now}
	}
	h.log = append(h.log[:at], append(inserted, h.log[at:]...)...)
	h.cursor = len(h.log)

	h.logger.Debug("perform %s: %d entries before open %s", name, len(inserted), h.bracketOwner)
	return nil
}

// revert undoes a sequence returned by Apply that will not be logged.
func (h *History[D]) revert(doc D, changes []Change[D]) {
	for i := len(changes) - 1; i >= 0; i-- {
		if c := changes[i]; c.HasOp() {
			if _, err := c.Op.Apply(doc, h.replay); err != nil {
				h.logger.Debug("revert entry %d: %v", i, err)
			}
		}
	}
}

// openBegin returns the index of the unmatched Begin at the tail.
func (h *History[D]) openBegin() int {
	for i := len(h.log) - 1; i >= 0; i-- {
		if h.log[i].change.Kind == KindBegin {
			return i
		}
	}
	return len(h.log)
}

// normalize keeps brackets balanced: a Begin while a bracket is open is
// dropped (repeated incomplete calls keep one Begin), an Atomic inside a
// bracket becomes a Step, and a Step or Complete outside any bracket
// becomes an Atomic or is dropped. It reports whether a bracket is left
// open.
func normalize[D any](changes []Change[D], open bool) ([]Change[D], bool) {
	out := make([]Change[D], 0, len(changes))
	for _, c := range changes {
		switch c.Kind {
		case KindBegin:
			if open {
				continue
			}
			open = true
		case KindComplete:
			if !open {
				continue
			}
			open = false
		case KindAtomic:
			if open {
				c = Step(c.Op)
			}
		case KindStep:
			if !open {
				c = Atomic(c.Op)
			}
		}
		out = append(out, c)
	}
	return out, open
}

// appendChanges appends normalized changes to the log and tracks the
// bracket owner.
func (h *History[D]) appendChanges(name string, changes []Change[D]) int {
	wasOpen := h.bracketOwner != ""
	normalized, open := normalize(changes, wasOpen)
	switch {
	case open && !wasOpen:
		h.bracketOwner = name
	case !open:
		h.bracketOwner = ""
	}

	now := time.Now()
	for _, c := range normalized {
		h.log = append(h.log, entry[D]{change: c, name: name, timestamp: now})
	}
	h.cursor = len(h.log)
	return len(normalized)
}

// Undo reverts the most recent logical action.
//
// Undoing while a modal operation is mid-interaction cancels it: its Begin
// is dropped from the log, its locks are released and it is reset if it
// implements Resetter.
func (h *History[D]) Undo(doc D) error {
	if h.cursor == 0 {
		return ErrNothingToUndo
	}

	owner := h.bracketOwner
	err := h.undoWalk(doc)
	if owner != "" && err == nil {
		h.cancel(owner)
	}
	return err
}

func (h *History[D]) undoWalk(doc D) error {
	for h.cursor > 0 {
		i := h.cursor - 1
		kind := h.log[i].change.Kind

		switch kind {
		case KindBegin:
			h.cursor--
			h.logger.Debug("undo: bracket closed at %d", i)
			return nil

		case KindComplete:
			h.cursor--

		case KindAtomic, KindStep:
			if err := h.replayAt(doc, i); err != nil {
				return err
			}
			h.cursor--
			if kind == KindAtomic {
				h.logger.Debug("undo: atomic %s at %d", h.log[i].name, i)
				return nil
			}
		}
	}
	return nil
}

// Redo re-applies the next logical action in the redo tail.
func (h *History[D]) Redo(doc D) error {
	if h.cursor >= len(h.log) {
		return ErrNothingToRedo
	}

	for h.cursor < len(h.log) {
		i := h.cursor
		kind := h.log[i].change.Kind

		switch kind {
		case KindBegin:
			h.cursor++

		case KindComplete:
			h.cursor++
			h.logger.Debug("redo: bracket closed at %d", i)
			return nil

		case KindAtomic, KindStep:
			if err := h.replayAt(doc, i); err != nil {
				return err
			}
			h.cursor++
			if kind == KindAtomic {
				h.logger.Debug("redo: atomic %s at %d", h.log[i].name, i)
				return nil
			}
		}
	}
	return nil
}

// replayAt applies the operation stored in slot i and stores the flipped
// result back into the same slot, keeping the slot's kind.
// The slot gives up its operation for the duration of the call.
func (h *History[D]) replayAt(doc D, i int) error {
	slot := &h.log[i].change
	op := slot.Op
	if op == nil {
		return &ActionFailedError{Index: i, Err: ErrMalformedReplay}
	}
	slot.Op = nil

	changes, err := op.Apply(doc, h.replay)
	if err != nil {
		slot.Op = op
		return &ActionFailedError{Index: i, Err: err}
	}
	if len(changes) != 1 || !changes[0].HasOp() {
		slot.Op = op
		return &ActionFailedError{Index: i, Err: ErrMalformedReplay}
	}

	slot.Op = changes[0].Op
	return nil
}

// cancel abandons owner's open bracket after its entries were undone.
func (h *History[D]) cancel(owner string) {
	h.truncate(h.cursor)
	h.bracketOwner = ""
	for r, holder := range h.locks {
		if holder == owner {
			h.locks[r] = ""
		}
	}
	if op, ok := h.registry.Get(owner); ok {
		if rs, ok := op.(Resetter); ok {
			rs.Reset()
		}
	}
	h.logger.Debug("undo: cancelled %s", owner)
}

// release clears the given region locks.
func (h *History[D]) release(regions []Region) {
	for _, r := range regions {
		h.locks[r] = ""
	}
}

// truncate drops log[n:].
func (h *History[D]) truncate(n int) {
	clear(h.log[n:])
	h.log = h.log[:n]
	if h.cursor > n {
		h.cursor = n
	}
}

// trim drops whole logical actions from the front until the log fits.
func (h *History[D]) trim() {
	for len(h.log) > h.maxEntries {
		n := h.firstActionLen()
		if n == 0 || n > h.cursor {
			return
		}
		rest := copy(h.log, h.log[n:])
		clear(h.log[rest:])
		h.log = h.log[:rest]
		h.cursor -= n
	}
}

// firstActionLen returns the number of entries in the oldest logical action,
// or 0 if it is still open.
func (h *History[D]) firstActionLen() int {
	if len(h.log) == 0 {
		return 0
	}
	if h.log[0].change.Kind != KindBegin {
		return 1
	}
	for i := 1; i < len(h.log); i++ {
		if h.log[i].change.Kind == KindComplete {
			return i + 1
		}
	}
	return 0
}

// Reset clears the log, the cursor and every lock.
// An operation mid-interaction is reset if it implements Resetter.
func (h *History[D]) Reset() {
	if h.bracketOwner != "" {
		if op, ok := h.registry.Get(h.bracketOwner); ok {
			if rs, ok := op.(Resetter); ok {
				rs.Reset()
			}
		}
	}
	h.truncate(0)
	h.cursor = 0
	h.bracketOwner = ""
	h.locks = [regionCount]string{}
}

// SetMaxEntries changes the maximum log size.
// If the log is larger, the oldest logical actions are removed.
func (h *History[D]) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	h.maxEntries = max
	if h.bracketOwner == "" {
		h.trim()
	}
}

// MaxEntries returns the maximum log size.
func (h *History[D]) MaxEntries() int {
	return h.maxEntries
}

// CanUndo returns true if undo is available.
func (h *History[D]) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo returns true if redo is available.
func (h *History[D]) CanRedo() bool {
	return h.cursor < len(h.log)
}

// Len returns the number of log entries, including the redo tail.
func (h *History[D]) Len() int {
	return len(h.log)
}

// Cursor returns the index of the next append position.
func (h *History[D]) Cursor() int {
	return h.cursor
}

// LockHolder returns the name holding r.
func (h *History[D]) LockHolder(r Region) (string, bool) {
	if r < 0 || r >= regionCount {
		return "", false
	}
	holder := h.locks[r]
	return holder, holder != ""
}

// InProgress returns the name of the operation whose bracket is open.
func (h *History[D]) InProgress() (string, bool) {
	return h.bracketOwner, h.bracketOwner != ""
}

// Changes returns a copy of the log's changes.
func (h *History[D]) Changes() []Change[D] {
	out := make([]Change[D], len(h.log))
	for i, e := range h.log {
		out[i] = e.change
	}
	return out
}

// Entries returns info about every log entry.
func (h *History[D]) Entries() []EntryInfo {
	out := make([]EntryInfo, len(h.log))
	for i := range h.log {
		out[i] = h.info(i)
	}
	return out
}

// PeekUndo returns info about the entry Undo would start from.
func (h *History[D]) PeekUndo() (EntryInfo, bool) {
	if h.cursor == 0 {
		return EntryInfo{}, false
	}
	return h.info(h.cursor - 1), true
}

// PeekRedo returns info about the entry Redo would start from.
func (h *History[D]) PeekRedo() (EntryInfo, bool) {
	if h.cursor >= len(h.log) {
		return EntryInfo{}, false
	}
	return h.info(h.cursor), true
}

func (h *History[D]) info(i int) EntryInfo {
	e := h.log[i]
	return EntryInfo{
		Index:       i,
		Kind:        e.change.Kind,
		Name:        e.name,
		Description: e.change.Description(),
		Timestamp:   e.timestamp,
		Applied:     i < h.cursor,
	}
}
