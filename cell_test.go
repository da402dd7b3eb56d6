package termbox

import "testing"

func TestNewCellIsDefault(t *testing.T) {
	c := NewCell()
	if !c.Equal(DefaultCell) {
		t.Errorf("NewCell() = %+v, want %+v", c, DefaultCell)
	}
	if c.Ch != ' ' || c.Fg != ColorWhite || c.Bg != ColorBlack {
		t.Errorf("unexpected default cell fields: %+v", c)
	}
}

func TestCellEqual(t *testing.T) {
	a := Cell{Ch: 'x', Fg: ColorRed, Bg: ColorBlack}
	b := Cell{Ch: 'x', Fg: ColorRed, Bg: ColorBlack}
	c := Cell{Ch: 'y', Fg: ColorRed, Bg: ColorBlack}

	if !a.Equal(b) {
		t.Error("expected equal cells to compare equal")
	}
	if a.Equal(c) {
		t.Error("expected differing cells to compare unequal")
	}
}

func TestAttributeColorAndFlags(t *testing.T) {
	a := ColorRed | AttrBold | AttrBlink
	if a.Color() != ColorRed {
		t.Errorf("Color() = %v, want %v", a.Color(), ColorRed)
	}
	if !a.HasAttr(AttrBold) {
		t.Error("expected AttrBold set")
	}
	if !a.HasAttr(AttrBlink) {
		t.Error("expected AttrBlink set")
	}
	if a.HasAttr(AttrUnderline) {
		t.Error("expected AttrUnderline unset")
	}
}
