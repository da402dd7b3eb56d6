// Package termbox renders character-grid user interfaces to a terminal and
// reads keyboard input from it, without exposing the underlying terminfo
// escape-sequence protocol or raw input byte stream to the caller.
//
// # Quick Start
//
//	if err := termbox.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer termbox.Shutdown()
//
//	termbox.ChangeCell(0, 0, 'X', termbox.ColorRed, termbox.ColorDefault)
//	termbox.Present()
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Cell]: one character position with foreground/background descriptors
//   - [CellBuffer]: the dense W×H grid of cells (back buffer and front buffer)
//   - [RingBuffer]: the fixed-capacity byte queue feeding the input parser
//   - [capabilities]: resolved terminfo capability strings for the session's
//     $TERM
//
// # Double Buffering
//
// Applications mutate the back buffer with [PutCell], [ChangeCell] and
// [Blit]. [Present] diffs the back buffer against the front buffer (a
// mirror of what is currently on the terminal) and emits only the cursor
// moves, SGR changes and characters needed to reconcile the two. The front
// buffer is then updated to match.
//
// # Colors and Attributes
//
// Colors are one of the eight basic indices ([ColorBlack] .. [ColorWhite]),
// OR'd with attribute bits ([AttrBold], [AttrUnderline], [AttrBlink]) to
// form a single 16-bit fg or bg value. There is no 256-color or true-color
// mode and no wide-character column accounting.
//
// # Input
//
// [PollEvent] blocks for the next [Event]; [PeekEvent] waits up to a
// timeout and returns (0, zero-Event) on expiry. Input mode controls how a
// bare ESC byte is handled, see [SelectInputMode].
//
// # Resize
//
// A SIGWINCH handler sets a single pending-resize flag. [Present] and
// [Clear] observe it before doing any other work, resizing both buffers
// (preserving overlap) and forcing a full redraw.
//
// # Thread Safety
//
// Not thread-safe. A single goroutine is expected to drive every
// operation; the only concurrent actor is the OS signal delivery that sets
// the resize flag.
package termbox
