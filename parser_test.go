package termbox

import "testing"

func testCapabilities() *capabilities {
	return &capabilities{
		keySeqs: []keySequence{
			{seq: []byte("[A"), key: KeyArrowUp},
			{seq: []byte("[B"), key: KeyArrowDown},
			{seq: []byte("OP"), key: KeyF1},
		},
	}
}

func TestExtractEventBareEscInEscMode(t *testing.T) {
	r := NewRingBuffer()
	r.Push([]byte{0x1B})

	ev, ok := extractEvent(r, InputEsc, testCapabilities())
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.Key != KeyEsc || ev.Ch != 0 {
		t.Fatalf("got %+v, want KeyEsc", ev)
	}
	if r.Len() != 0 {
		t.Fatalf("ring should be empty, has %d bytes left", r.Len())
	}
}

func TestExtractEventAltModeEscLetter(t *testing.T) {
	r := NewRingBuffer()
	r.Push([]byte{0x1B, 'a'})

	ev, ok := extractEvent(r, InputAlt, testCapabilities())
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.Ch != 'a' || ev.Mod != ModAlt || ev.Key != 0 {
		t.Fatalf("got %+v, want ch='a' mod=ALT", ev)
	}
	if r.Len() != 0 {
		t.Fatalf("ring should be empty, has %d bytes left", r.Len())
	}
}

func TestExtractEventAltModeOnlyEscNeedsMore(t *testing.T) {
	r := NewRingBuffer()
	r.Push([]byte{0x1B})

	_, ok := extractEvent(r, InputAlt, testCapabilities())
	if ok {
		t.Fatal("expected need-more (not ok) with only ESC buffered")
	}
	if r.Len() != 1 {
		t.Fatalf("ring should be untouched, has %d bytes", r.Len())
	}
}

func TestExtractEventEscapeSequenceMatch(t *testing.T) {
	r := NewRingBuffer()
	r.Push([]byte("\x1b[A"))

	ev, ok := extractEvent(r, InputEsc, testCapabilities())
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.Key != KeyArrowUp {
		t.Fatalf("got %+v, want KeyArrowUp", ev)
	}
	if r.Len() != 0 {
		t.Fatal("expected the whole escape sequence consumed")
	}
}

func TestExtractEventControlCharacter(t *testing.T) {
	r := NewRingBuffer()
	r.Push([]byte{0x03}) // Ctrl-C

	ev, ok := extractEvent(r, InputEsc, testCapabilities())
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.Key != KeyCtrlC {
		t.Fatalf("got %+v, want KeyCtrlC", ev)
	}
}

func TestExtractEventPrintableUTF8(t *testing.T) {
	r := NewRingBuffer()
	r.Push([]byte("日"))

	ev, ok := extractEvent(r, InputEsc, testCapabilities())
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.Ch != '日' {
		t.Fatalf("got %+v, want '日'", ev)
	}
	if r.Len() != 0 {
		t.Fatal("expected all utf8 bytes consumed")
	}
}

func TestExtractEventTruncatedUTF8NeedsMore(t *testing.T) {
	r := NewRingBuffer()
	full := []byte("日")
	r.Push(full[:1]) // only the lead byte of a 3-byte sequence

	_, ok := extractEvent(r, InputEsc, testCapabilities())
	if ok {
		t.Fatal("expected need-more on a truncated UTF-8 sequence")
	}
	if r.Len() != 1 {
		t.Fatal("truncated prefix must be left in place")
	}
}

func TestExtractEventEmptyRingNeedsMore(t *testing.T) {
	r := NewRingBuffer()
	_, ok := extractEvent(r, InputEsc, testCapabilities())
	if ok {
		t.Fatal("expected need-more on an empty ring")
	}
}
