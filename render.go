package termbox

import "bufio"

// outputState is the attribute-state machine the render engine uses to
// suppress redundant SGR resets and cursor moves. Sentinel values force a
// fresh SGR and cursor move on the first emission after a full redraw.
type outputState struct {
	lastFg, lastBg Attribute
	lastX, lastY   int
}

const (
	sentinelColor = Attribute(0xFFFF)
	sentinelCoord = int(-2) // stands in for spec's 0xFFFFFFFE sentinel
)

func newOutputState() outputState {
	return outputState{lastFg: sentinelColor, lastBg: sentinelColor, lastX: sentinelCoord, lastY: sentinelCoord}
}

// present diffs back against front in row-major order and writes the
// minimal byte sequence to w needed to reconcile the two, then copies
// back into front. Returns the updated attribute state (callers persist
// it across calls).
func present(w *bufio.Writer, caps *capabilities, back, front *CellBuffer, st outputState) outputState {
	width, height := back.Width(), back.Height()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			bc, _ := back.Cell(x, y)
			fc, _ := front.Cell(x, y)
			if bc.Equal(fc) {
				continue
			}

			if bc.Fg != st.lastFg || bc.Bg != st.lastBg {
				w.Write(caps.sgrReset)
				w.Write(renderSGR(bc.Fg, bc.Bg))
				if bc.Fg.HasAttr(AttrBold) {
					w.Write(caps.bold)
				}
				if bc.Bg.HasAttr(AttrBlink) {
					w.Write(caps.blink)
				}
				st.lastFg, st.lastBg = bc.Fg, bc.Bg
			}

			if x == 0 || st.lastX != x-1 || st.lastY != y {
				w.Write(renderCursorMove(y+1, x+1))
			}
			st.lastX, st.lastY = x, y

			w.Write(encodeUTF8(bc.Ch))

			front.Set(x, y, bc)
		}
	}

	w.Flush()
	return st
}
