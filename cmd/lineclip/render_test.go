package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/lineclip"
)

func renderHorizontal(t *testing.T) (*lineclip.Clipper, []lineclip.Segment, []lineclip.Result) {
	t.Helper()
	c, err := lineclip.NewClipper(lineclip.Pt(0, 0), lineclip.Pt(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	segs := []lineclip.Segment{lineclip.Seg(lineclip.Pt(-5, 5), lineclip.Pt(15, 5))}
	r, err := c.Clip(segs[0])
	if err != nil {
		t.Fatal(err)
	}
	return c, segs, []lineclip.Result{r}
}

func TestRender(t *testing.T) {
	c, segs, results := renderHorizontal(t)

	// Canvas spans (-6; -1) - (17; 11) at 10 pixels per unit.
	img := render(c.Viewport(), segs, results, 10)
	if got := img.Bounds().Dx(); got != 230 {
		t.Errorf("width = %d, want 230", got)
	}
	if got := img.Bounds().Dy(); got != 120 {
		t.Errorf("height = %d, want 120", got)
	}

	if got := img.RGBAAt(0, 0); got != backgroundColor {
		t.Errorf("background pixel = %v, want %v", got, backgroundColor)
	}

	// Grid (5; 5) is on the clipped part.
	if got := img.RGBAAt(110, 59); got.B <= got.R {
		t.Errorf("clipped pixel = %v, want clipped color", got)
	}

	// Grid (-3; 5) is on the input segment outside the viewport.
	if got := img.RGBAAt(30, 59); got.R <= got.B {
		t.Errorf("input pixel = %v, want input color", got)
	}
}

func TestCanvas_Project(t *testing.T) {
	c, segs, _ := renderHorizontal(t)
	cv := newCanvas(c.Viewport(), segs, 10)

	tests := []struct {
		p      lineclip.Point
		wx, wy float32
	}{
		{lineclip.Pt(-6, -1), 0, 0},
		{lineclip.Pt(0, 0), 60, 10},
		{lineclip.Pt(15, 5), 210, 60},
	}

	for _, tt := range tests {
		x, y := cv.project(tt.p)
		if x != tt.wx || y != tt.wy {
			t.Errorf("project(%v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.wx, tt.wy)
		}
	}
}

func TestSavePNG(t *testing.T) {
	c, segs, results := renderHorizontal(t)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := savePNG(path, c.Viewport(), segs, results, 10); err != nil {
		t.Fatalf("savePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 230 || img.Bounds().Dy() != 120 {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}
}

func TestSavePNG_BadScale(t *testing.T) {
	c, segs, results := renderHorizontal(t)
	if err := savePNG(filepath.Join(t.TempDir(), "out.png"), c.Viewport(), segs, results, 0); err == nil {
		t.Error("expected error for zero scale")
	}
}
