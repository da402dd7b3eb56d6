package termbox

// extractEvent inspects the oldest bytes in ring and, if a complete event
// is available, discards the consumed bytes and returns (event, true). If
// the ring is empty, holds a truncated UTF-8 character, or (in InputAlt
// mode) holds an ESC whose following character is not yet complete, it
// returns (zero, false) without discarding anything, so the caller can
// wait for more bytes and retry. A partial key sequence is not waited for:
// its leading ESC is reported as KeyEsc (InputEsc) or the next byte as an
// ALT-modified key (InputAlt).
func extractEvent(ring *RingBuffer, mode InputMode, caps *capabilities) (Event, bool) {
	n := ring.Len()
	if n == 0 {
		return Event{}, false
	}

	head := make([]byte, n)
	ring.Peek(head)

	if head[0] == byte(KeyEsc) {
		if ev, consumed, ok := matchKeySequence(head[1:], caps); ok {
			ring.Discard(1 + consumed)
			return ev, true
		}

		switch mode {
		case InputAlt:
			if n < 2 {
				return Event{}, false
			}
			if head[1] == byte(KeyEsc) {
				// A second ESC can't be the start of an ALT-modified
				// key; surface the first ESC alone.
				ring.Discard(1)
				return Event{Key: KeyEsc}, true
			}
			return decodeAltEvent(ring, head)
		default: // InputEsc
			ring.Discard(1)
			return Event{Key: KeyEsc}, true
		}
	}

	if head[0] < 0x20 || head[0] == 0x7F {
		ring.Discard(1)
		return Event{Key: Key(head[0])}, true
	}

	length := utf8SeqLength(head[0])
	if n < length {
		return Event{}, false
	}

	ch := decodeUTF8(head[:length])
	ring.Discard(length)
	return Event{Ch: ch}, true
}

// matchKeySequence tries to match rest (the bytes following a leading ESC
// that has already been peeked but not discarded) against every known
// key-sequence string. It returns the matched event, how many bytes of
// rest were consumed, and whether a match was found.
func matchKeySequence(rest []byte, caps *capabilities) (Event, int, bool) {
	if caps == nil {
		return Event{}, 0, false
	}
	for _, ks := range caps.keySeqs {
		if len(ks.seq) == 0 || len(ks.seq) > len(rest) {
			continue
		}
		match := true
		for i, b := range ks.seq {
			if rest[i] != b {
				match = false
				break
			}
		}
		if match {
			return Event{Key: ks.key}, len(ks.seq), true
		}
	}
	return Event{}, 0, false
}

// decodeAltEvent handles the ALT-mode case where ESC was not the start of
// a known key sequence: the second buffered byte (UTF-8-decoded, or taken
// as a control-key code if below 0x20) is reported with ModAlt set.
func decodeAltEvent(ring *RingBuffer, head []byte) (Event, bool) {
	second := head[1:]
	if second[0] < 0x20 {
		ring.Discard(2)
		return Event{Key: Key(second[0]), Mod: ModAlt}, true
	}

	length := utf8SeqLength(second[0])
	if len(second) < length {
		return Event{}, false
	}
	ch := decodeUTF8(second[:length])
	ring.Discard(1 + length)
	return Event{Ch: ch, Mod: ModAlt}, true
}
