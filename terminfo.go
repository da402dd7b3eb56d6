package termbox

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/terminfo"
	_ "github.com/gdamore/tcell/terminfo/base"
	"github.com/pkg/errors"
)

// keySequence pairs a raw escape-sequence string (sans the leading ESC
// byte, which the parser strips off before matching) with the logical key
// it represents.
type keySequence struct {
	seq []byte
	key Key
}

// capabilities holds the resolved terminfo capability strings and input
// key sequences needed by the render engine and parser. It never touches
// a terminfo database file directly — resolution is delegated to
// terminfo.LookupTerminfo, the "terminfo database parsing" collaborator
// spec.md treats as out of scope.
type capabilities struct {
	enterCA     []byte
	exitCA      []byte
	showCursor  []byte
	hideCursor  []byte
	clearScreen []byte
	sgrReset    []byte
	sgr         string // printf template, two %d-ish params: fg idx, bg idx
	bold        []byte
	blink       []byte
	enterKeypad []byte
	exitKeypad  []byte
	cursorMove  string // printf template, two params: row, col (1-based)

	keySeqs []keySequence
}

// loadCapabilities resolves $TERM (or an explicit override) to a
// terminfo.Terminfo struct via tcell's bundled database and copies the
// subset of capabilities this library needs into a capabilities struct.
// It fails when tcell's bundled database has no entry for the terminal
// name (including an empty name); there is no fallback capability set.
func loadCapabilities(term string) (*capabilities, error) {
	if term == "" {
		term = os.Getenv("TERM")
	}

	ti, err := terminfo.LookupTerminfo(term)
	if err != nil {
		return nil, errors.Wrapf(err, "termbox: unsupported terminal %q", term)
	}

	c := &capabilities{
		enterCA:     []byte(ti.EnterCA),
		exitCA:      []byte(ti.ExitCA),
		showCursor:  []byte(ti.ShowCursor),
		hideCursor:  []byte(ti.HideCursor),
		clearScreen: []byte(ti.Clear),
		sgrReset:    []byte(ti.AttrOff),
		bold:        []byte(ti.Bold),
		blink:       []byte(ti.Blink),
		enterKeypad: []byte(ti.EnterKeypad),
		exitKeypad:  []byte(ti.ExitKeypad),
	}

	c.sgr = sgrTemplate
	c.cursorMove = cursorMoveTemplate

	c.keySeqs = buildKeySequences(ti)
	return c, nil
}

// sgrTemplate and cursorMoveTemplate are fixed parameterized templates in
// the classic ECMA-48/ANSI form, which every terminfo-described terminal
// this library targets (anything with 8-color SGR support) honors
// identically. tcell's own terminfo entries expose richer Setaf/Setab
// templates (256-color capable); this library deliberately uses the
// narrower 8-color CSI form because spec.md's Non-goals exclude 256-color
// and true-color support.
const (
	sgrTemplate        = "\x1b[0;%d;%dm"
	cursorMoveTemplate = "\x1b[%d;%dH"
)

// renderSGR formats the SGR template for the given foreground/background
// color indices (ECMA-48 30-37 for fg, 40-47 for bg).
func renderSGR(fg, bg Attribute) []byte {
	return []byte(fmt.Sprintf(sgrTemplate, 30+int(fg.Color()), 40+int(bg.Color())))
}

// renderCursorMove formats the cursor-move template for 1-based (row,col).
func renderCursorMove(row, col int) []byte {
	return []byte(fmt.Sprintf(cursorMoveTemplate, row, col))
}

// buildKeySequences extracts the closed set of recognized input key
// sequences (function keys, arrows, navigation cluster) from a resolved
// terminfo.Terminfo, skipping any capability the terminal doesn't define.
func buildKeySequences(ti *terminfo.Terminfo) []keySequence {
	add := func(seqs *[]keySequence, s string, k Key) {
		if s == "" {
			return
		}
		*seqs = append(*seqs, keySequence{seq: []byte(s), key: k})
	}

	var seqs []keySequence
	add(&seqs, ti.KeyF1, KeyF1)
	add(&seqs, ti.KeyF2, KeyF2)
	add(&seqs, ti.KeyF3, KeyF3)
	add(&seqs, ti.KeyF4, KeyF4)
	add(&seqs, ti.KeyF5, KeyF5)
	add(&seqs, ti.KeyF6, KeyF6)
	add(&seqs, ti.KeyF7, KeyF7)
	add(&seqs, ti.KeyF8, KeyF8)
	add(&seqs, ti.KeyF9, KeyF9)
	add(&seqs, ti.KeyF10, KeyF10)
	add(&seqs, ti.KeyF11, KeyF11)
	add(&seqs, ti.KeyF12, KeyF12)
	add(&seqs, ti.KeyInsert, KeyInsert)
	add(&seqs, ti.KeyDelete, KeyDelete)
	add(&seqs, ti.KeyHome, KeyHome)
	add(&seqs, ti.KeyEnd, KeyEnd)
	add(&seqs, ti.KeyPgUp, KeyPgup)
	add(&seqs, ti.KeyPgDn, KeyPgdn)
	add(&seqs, ti.KeyUp, KeyArrowUp)
	add(&seqs, ti.KeyDown, KeyArrowDown)
	add(&seqs, ti.KeyLeft, KeyArrowLeft)
	add(&seqs, ti.KeyRight, KeyArrowRight)

	// Every sequence here is ESC-prefixed; the parser strips the leading
	// ESC byte before matching, so strip it here too.
	for i := range seqs {
		if len(seqs[i].seq) > 0 && seqs[i].seq[0] == 0x1B {
			seqs[i].seq = seqs[i].seq[1:]
		}
	}
	return seqs
}
