package canvas

import (
	"testing"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// newTestCells maps 800x600 onto 80x30 cells, so one pixel is 10x10 units.
func newTestCells() *Cells {
	return NewCells(800, 600, 80, 30)
}

func TestCellsFillRect(t *testing.T) {
	c := newTestCells()
	c.FillRect(core.NewBox(20, 250, 15, 100), core.ColorWhite)

	if c.Pixel(2, 25) != core.ColorWhite {
		t.Errorf("Pixel(2, 25) = %+v, expected white", c.Pixel(2, 25))
	}
	if c.Pixel(2, 34) != core.ColorWhite {
		t.Errorf("Pixel(2, 34) = %+v, expected white", c.Pixel(2, 34))
	}
	if c.Pixel(2, 24) != core.ColorBlack {
		t.Error("pixel above the paddle should stay black")
	}
	if c.Pixel(2, 35) != core.ColorBlack {
		t.Error("pixel below the paddle should stay black")
	}
	if c.Pixel(3, 30) != core.ColorBlack {
		t.Error("pixel right of the paddle should stay black")
	}
}

func TestCellsFillCircle(t *testing.T) {
	c := newTestCells()
	red := core.RGB(255, 0, 0)
	c.FillCircle(400, 300, 10, red)

	for _, p := range [][2]int{{39, 29}, {40, 29}, {39, 30}, {40, 30}} {
		if c.Pixel(p[0], p[1]) != red {
			t.Errorf("Pixel(%d, %d) should be red", p[0], p[1])
		}
	}
	if c.Pixel(38, 30) != core.ColorBlack || c.Pixel(41, 30) != core.ColorBlack {
		t.Error("pixels outside the disc should stay black")
	}
}

func TestCellsTinyCircleStillVisible(t *testing.T) {
	c := newTestCells()
	c.FillCircle(401, 301, 0.1, core.ColorWhite)

	if c.Pixel(40, 30) != core.ColorWhite {
		t.Errorf("sub-pixel disc should paint the pixel under its center, got %+v", c.Pixel(40, 30))
	}
}

func TestCellsTranslucentBlend(t *testing.T) {
	c := newTestCells()
	c.FillCircle(400, 300, 10, core.WithAlpha(core.ColorWhite, 0.5))

	p := c.Pixel(40, 30)
	if p.R != 128 || p.G != 128 || p.B != 128 {
		t.Errorf("half-transparent white over black = %+v, expected gray 128", p)
	}
}

func TestCellsGlow(t *testing.T) {
	c := newTestCells()
	red := core.RGB(255, 0, 0)
	c.FillCircleGlow(400, 300, 10, 25, red)

	if c.Pixel(40, 30) != red {
		t.Error("glow core should be fully opaque")
	}
	halo := c.Pixel(42, 30)
	if halo.R == 0 || halo.R == 255 {
		t.Errorf("halo pixel should be tinted, got %+v", halo)
	}
	if c.Pixel(45, 30) != core.ColorBlack {
		t.Error("pixel beyond the blur should stay black")
	}
}

func TestCellsDashedLine(t *testing.T) {
	c := newTestCells()
	c.DashedLine(400, 0, 400, 600, 2, 10, 10, core.ColorWhite)

	if c.Pixel(40, 0) != core.ColorWhite {
		t.Error("first dash should be drawn")
	}
	if c.Pixel(40, 1) != core.ColorBlack {
		t.Error("first gap should stay black")
	}
	if c.Pixel(40, 2) != core.ColorWhite {
		t.Error("second dash should be drawn")
	}
	if c.Pixel(39, 0) != core.ColorBlack {
		t.Error("line should be one pixel wide")
	}
}

func TestCellsClearRect(t *testing.T) {
	c := newTestCells()
	c.FillRect(core.NewBox(0, 0, 800, 600), core.ColorWhite)
	c.ClearRect(core.NewBox(0, 0, 800, 600))

	for py := 0; py < 60; py++ {
		for px := 0; px < 80; px++ {
			if c.Pixel(px, py) != core.ColorBlack {
				t.Fatalf("Pixel(%d, %d) not cleared", px, py)
			}
		}
	}
}

func TestCellsFlush(t *testing.T) {
	c := newTestCells()
	c.FillRect(core.NewBox(20, 250, 15, 100), core.ColorWhite)

	screen := core.NewScreen(80, 31)
	c.Flush(screen, 0, 1)

	// Cell row 12 holds pixel rows 24 (black) and 25 (white), drawn one row down
	cell := screen.GetCell(2, 13)
	if cell.Rune != HalfBlock {
		t.Errorf("expected half block, got %q", cell.Rune)
	}
	if cell.Fg != core.ColorBlack || cell.Bg != core.ColorWhite {
		t.Errorf("cell colours = fg %+v bg %+v, expected black over white", cell.Fg, cell.Bg)
	}
	if screen.GetCell(2, 0).Rune != ' ' {
		t.Error("row above the offset should be untouched")
	}
}

func TestCellsResize(t *testing.T) {
	c := newTestCells()
	c.Resize(40, 15)

	if c.Cols() != 40 || c.Rows() != 15 {
		t.Errorf("after Resize got %dx%d, expected 40x15", c.Cols(), c.Rows())
	}
	if w, h := c.Size(); w != 800 || h != 600 {
		t.Errorf("logical size should not change, got %gx%g", w, h)
	}

	c.Resize(0, 0)
	if c.Cols() != 1 || c.Rows() != 1 {
		t.Error("Resize should keep at least one cell")
	}
}
