package termbox

// Key is a 16-bit logical key code. It is set for non-printable keys
// (control characters and named keys) and zero for printable characters,
// which are instead carried in Event.Ch. It is nonzero for every
// non-printable key except KeyCtrlTilde, whose code is 0x00.
type Key uint16

// Control-character key codes, 0x00-0x1F plus 0x7F.
const (
	KeyCtrlTilde     Key = 0x00
	KeyCtrlA         Key = 0x01
	KeyCtrlB         Key = 0x02
	KeyCtrlC         Key = 0x03
	KeyCtrlD         Key = 0x04
	KeyCtrlE         Key = 0x05
	KeyCtrlF         Key = 0x06
	KeyCtrlG         Key = 0x07
	KeyBackspace     Key = 0x08
	KeyTab           Key = 0x09
	KeyCtrlJ         Key = 0x0A
	KeyCtrlK         Key = 0x0B
	KeyCtrlL         Key = 0x0C
	KeyEnter         Key = 0x0D
	KeyCtrlN         Key = 0x0E
	KeyCtrlO         Key = 0x0F
	KeyCtrlP         Key = 0x10
	KeyCtrlQ         Key = 0x11
	KeyCtrlR         Key = 0x12
	KeyCtrlS         Key = 0x13
	KeyCtrlT         Key = 0x14
	KeyCtrlU         Key = 0x15
	KeyCtrlV         Key = 0x16
	KeyCtrlW         Key = 0x17
	KeyCtrlX         Key = 0x18
	KeyCtrlY         Key = 0x19
	KeyCtrlZ         Key = 0x1A
	KeyEsc           Key = 0x1B
	KeyCtrlBackslash Key = 0x1C
	KeyCtrlRightSq   Key = 0x1D
	KeyCtrlCarat     Key = 0x1E
	KeyCtrlUnderscore Key = 0x1F
	KeySpace         Key = 0x20
	KeyBackspace2    Key = 0x7F
)

// Named keys occupy the top of the 16-bit range, counting down from
// 0xFFFF, so they can never collide with control characters or printable
// code points.
const (
	KeyF1 Key = 0xFFFF - iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// Modifier bits for Event.Mod.
type Modifier uint8

const (
	// ModAlt is set when a key was produced via the ESC-prefixed ALT
	// disambiguation in ALT input mode.
	ModAlt Modifier = 1 << iota
)

// Event is one delivered unit of keyboard input. Exactly one of Ch/Key is
// nonzero, except for a NUL byte (KeyCtrlTilde), where both are zero.
type Event struct {
	Ch  rune
	Key Key
	Mod Modifier
}

// InputMode selects how the parser disambiguates a bare ESC byte from the
// start of an ALT-modified key sequence.
type InputMode int

const (
	// InputEsc surfaces a lone, unmatched ESC byte as KeyEsc immediately.
	InputEsc InputMode = 1 << iota
	// InputAlt waits for a second byte after an unmatched ESC and reports
	// it with ModAlt set.
	InputAlt
)
