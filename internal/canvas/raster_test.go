package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/neon-pong/internal/core"
)

var (
	rgbaBlack = color.RGBA{0, 0, 0, 255}
	rgbaWhite = color.RGBA{255, 255, 255, 255}
)

func TestRasterSize(t *testing.T) {
	r := NewRaster(800, 600, 1)
	if b := r.Image().Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("image bounds = %v, expected 800x600", b)
	}

	half := NewRaster(800, 600, 0.5)
	if b := half.Image().Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("scaled image bounds = %v, expected 400x300", b)
	}
	if w, h := half.Size(); w != 800 || h != 600 {
		t.Errorf("logical size = %gx%g, expected 800x600", w, h)
	}
}

func TestRasterFillRect(t *testing.T) {
	r := NewRaster(800, 600, 1)
	r.FillRect(core.NewBox(20, 250, 15, 100), core.ColorWhite)

	if got := r.Image().RGBAAt(25, 300); got != rgbaWhite {
		t.Errorf("inside paddle = %v, expected white", got)
	}
	if got := r.Image().RGBAAt(40, 300); got != rgbaBlack {
		t.Errorf("outside paddle = %v, expected black", got)
	}
}

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(800, 600, 1)
	r.FillCircle(400, 300, 10, core.RGB(255, 0, 0))

	if got := r.Image().RGBAAt(400, 300); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("disc center = %v, expected red", got)
	}
	if got := r.Image().RGBAAt(420, 300); got != rgbaBlack {
		t.Errorf("outside disc = %v, expected black", got)
	}
}

func TestRasterGlow(t *testing.T) {
	r := NewRaster(800, 600, 1)
	r.FillCircleGlow(400, 300, 10, 25, core.RGB(255, 0, 0))

	halo := r.Image().RGBAAt(420, 300)
	if halo.R == 0 || halo.R == 255 {
		t.Errorf("halo pixel should be tinted, got %v", halo)
	}
	if got := r.Image().RGBAAt(440, 300); got != rgbaBlack {
		t.Errorf("beyond blur = %v, expected black", got)
	}
}

func TestRasterDashedLine(t *testing.T) {
	r := NewRaster(800, 600, 1)
	r.DashedLine(400, 0, 400, 600, 2, 10, 10, core.ColorWhite)

	if got := r.Image().RGBAAt(400, 5); got != rgbaWhite {
		t.Errorf("dash pixel = %v, expected white", got)
	}
	if got := r.Image().RGBAAt(400, 15); got != rgbaBlack {
		t.Errorf("gap pixel = %v, expected black", got)
	}
}

func TestRasterSetScores(t *testing.T) {
	r := NewRaster(800, 600, 1)
	r.SetScores(3, 7)

	lit := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 800; x++ {
			if r.Image().RGBAAt(x, y) != rgbaBlack {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("SetScores should draw text near the top")
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(200, 100, 1)
	r.FillCircle(100, 50, 10, core.ColorWhite)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("decoded bounds = %v, expected 200x100", b)
	}
}

func TestRasterWritePNGFile(t *testing.T) {
	r := NewRaster(100, 100, 1)
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := r.WritePNGFile(path); err != nil {
		t.Fatalf("WritePNGFile() failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("PNG file not written: %v", err)
	}

	if err := r.WritePNGFile(filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Error("writing into a missing directory should fail")
	}
}
