package termbox

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Error codes returned by Init (wrapped in an *InitError) and the
// event-waiting functions.
const (
	EUnsupportedTerminal = -1
	EFailedToOpenTTY     = -2
	// EInputOverflow is returned by PeekEvent when a read could not be
	// accepted into the ring buffer. PollEvent does not report it.
	EInputOverflow = -1
)

// InitError reports an Init failure together with its spec-defined
// negative error code, while still satisfying the error interface and
// preserving the underlying cause via Unwrap.
type InitError struct {
	Code int
	Err  error
}

func (e *InitError) Error() string { return e.Err.Error() }
func (e *InitError) Unwrap() error { return e.Err }

// session owns everything between Init and Shutdown: the byte streams,
// resolved capabilities, both cell buffers, terminal dimensions, input
// mode, the ring buffer, and the resize-pending flag. spec.md allows
// either a process-wide instance or a session object with identical
// public semantics; this package keeps a single process-wide instance
// because termbox-style libraries are used by a single application
// thread driving package-level calls.
type session struct {
	out *bufio.Writer
	in  io.Reader

	caps *capabilities

	back, front CellBuffer
	termWidth, termHeight int

	ring      *RingBuffer
	inputMode InputMode

	outState outputState

	resize *resizeSignal

	rawMode *rawModeState // nil on platforms/streams without a real TTY

	termOverride string

	inputBytes chan []byte
}

var instance *session

// InitOption configures Init. Mirrors the functional-options idiom used
// by this package's teacher lineage for constructing a terminal session.
type InitOption func(*session)

// WithStreams overrides the input/output byte streams used instead of
// os.Stdin/os.Stdout. Intended for tests.
func WithStreams(in io.Reader, out io.Writer) InitOption {
	return func(s *session) {
		s.in = in
		s.out = bufio.NewWriter(out)
	}
}

// WithTerm overrides $TERM for capability resolution.
func WithTerm(term string) InitOption {
	return func(s *session) {
		s.termOverride = term
	}
}

// Init uses os.Stdin/os.Stdout (or the streams given with WithStreams) as
// the terminal, resolves the terminfo capability table, puts the TTY into
// raw mode when the input is a real file, allocates both cell buffers and
// the ring buffer, emits the enter-CA/keypad/hide-cursor/clear sequence,
// and installs the resize signal handler. Returns a negative
// error code (EUnsupportedTerminal, EFailedToOpenTTY) on failure.
func Init(opts ...InitOption) error {
	s := &session{
		in:  os.Stdin,
		out: bufio.NewWriter(os.Stdout),
	}
	for _, opt := range opts {
		opt(s)
	}

	caps, err := loadCapabilities(s.termOverride)
	if err != nil {
		return &InitError{Code: EUnsupportedTerminal, Err: errors.Wrap(err, "termbox: unsupported terminal")}
	}
	s.caps = caps

	if tf, ok := ttyFile(s.in); ok {
		raw, rerr := enterRawMode(tf)
		if rerr != nil {
			return &InitError{Code: EFailedToOpenTTY, Err: errors.Wrap(rerr, "termbox: failed to open tty")}
		}
		s.rawMode = raw
	}

	w, h := s.queryTermSize()
	s.termWidth, s.termHeight = w, h

	s.back.Init(w, h)
	s.back.Clear()
	s.front.Init(w, h)
	s.front.Clear()

	s.ring = NewRingBuffer()
	s.inputMode = InputEsc
	s.outState = newOutputState()

	s.out.Write(s.caps.enterCA)
	s.out.Write(s.caps.enterKeypad)
	s.out.Write(s.caps.hideCursor)
	s.out.Write(s.caps.clearScreen)
	s.out.Flush()

	s.resize = newResizeSignal()

	s.inputBytes = make(chan []byte)
	go s.readLoop()

	instance = s
	return nil
}

// Shutdown restores the terminal: show-cursor, SGR-reset, clear-screen,
// exit-keypad, exit-CA, flush, then restores the original termios
// attributes.
func Shutdown() error {
	s := instance
	if s == nil {
		return nil
	}

	s.out.Write(s.caps.showCursor)
	s.out.Write(s.caps.sgrReset)
	s.out.Write(s.caps.clearScreen)
	s.out.Write(s.caps.exitKeypad)
	s.out.Write(s.caps.exitCA)
	s.out.Flush()

	s.resize.stop()

	if s.rawMode != nil {
		_ = exitRawMode(s.rawMode)
	}

	instance = nil
	return nil
}

// Width returns the current terminal width.
func Width() int {
	return instance.termWidth
}

// Height returns the current terminal height.
func Height() int {
	return instance.termHeight
}

// PutCell overwrites the back-buffer cell at (x,y). No-op if (x,y) is out
// of bounds.
func PutCell(x, y int, c Cell) {
	instance.back.Set(x, y, c)
}

// ChangeCell is sugar over PutCell.
func ChangeCell(x, y int, ch rune, fg, bg Attribute) {
	PutCell(x, y, Cell{Ch: ch, Fg: fg, Bg: bg})
}

// GetCell returns the current back-buffer cell at (x,y) and whether (x,y)
// was in bounds.
func GetCell(x, y int) (Cell, bool) {
	return instance.back.Cell(x, y)
}

// Blit copies a w*h rectangle of cells into the back buffer anchored at
// (x,y). The whole blit is rejected (no-op) if any destination cell would
// fall outside the back buffer, using the half-open check x+w>width ||
// y+h>height (spec.md's documented off-by-one fix). Source rows have
// stride w; destination rows have stride back-buffer width.
func Blit(x, y, w, h int, cells []Cell) {
	s := instance
	if x < 0 || y < 0 || w <= 0 || h <= 0 {
		return
	}
	if x+w > s.back.Width() || y+h > s.back.Height() {
		return
	}
	if len(cells) < w*h {
		return
	}

	for row := 0; row < h; row++ {
		srcRow := cells[row*w : row*w+w]
		for col := 0; col < w; col++ {
			s.back.Set(x+col, y+row, srcRow[col])
		}
	}
}

// Clear observes the resize flag, then fills the back buffer with the
// default cell.
func Clear() {
	instance.checkResize()
	instance.back.Clear()
}

// Present observes the resize flag, diffs back against front, and flushes
// the minimal byte sequence needed to reconcile the two to the terminal.
func Present() {
	s := instance
	s.checkResize()
	s.outState = present(s.out, s.caps, &s.back, &s.front, s.outState)
}

// SelectInputMode returns the current input mode when mode is 0,
// otherwise sets and returns the new mode.
func SelectInputMode(mode InputMode) InputMode {
	s := instance
	if mode == 0 {
		return s.inputMode
	}
	s.inputMode = mode
	return s.inputMode
}

// PollEvent blocks for the next event. On input overflow, or once the
// input stream has ended, it returns the zero Event instead; it does not
// report which of these happened.
func PollEvent() Event {
	_, ev := instance.waitEvent(-1)
	return ev
}

// PeekEvent waits up to timeoutMs for the next event. Returns (1, event)
// on delivery, (0, zero-Event) on timeout, (-1, zero-Event) on input
// overflow.
func PeekEvent(timeoutMs int) (int, Event) {
	return instance.waitEvent(timeoutMs)
}

// waitEvent implements the shared loop in spec.md §4.7: try extractEvent
// first; if empty, wait on the input stream (or timeout); on a spurious
// zero-length read, loop again; on overflow, return -1.
func (s *session) waitEvent(timeoutMs int) (int, Event) {
	if ev, ok := extractEvent(s.ring, s.inputMode, s.caps); ok {
		return 1, ev
	}

	var timer *time.Timer
	var timeoutCh <-chan time.Time
	if timeoutMs >= 0 {
		timer = time.NewTimer(time.Duration(timeoutMs) * time.Millisecond)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	for {
		select {
		case data, ok := <-s.inputBytes:
			if !ok {
				return 0, Event{}
			}
			if len(data) == 0 {
				continue // spurious wake, e.g. a resize signal interrupting the read
			}
			if len(data) > s.ring.Free() {
				return EInputOverflow, Event{}
			}
			_ = s.ring.Push(data)
			if ev, ok := extractEvent(s.ring, s.inputMode, s.caps); ok {
				return 1, ev
			}
		case <-timeoutCh:
			return 0, Event{}
		}
	}
}
