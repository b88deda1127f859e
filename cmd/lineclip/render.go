package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/lineclip"
)

var (
	backgroundColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	viewportColor   = color.RGBA{0x60, 0x60, 0x60, 0xff}
	inputColor      = color.RGBA{0xe0, 0x80, 0x80, 0xff}
	clippedColor    = color.RGBA{0x20, 0x40, 0xd0, 0xff}
)

// canvas maps grid coordinates to pixels.
type canvas struct {
	origin lineclip.Point // grid point drawn at pixel (0, 0)
	scale  float32
	img    *image.RGBA
	z      *vector.Rasterizer
}

// newCanvas creates a canvas covering the viewport and all segments with
// a one unit margin.
func newCanvas(vp lineclip.Viewport, segs []lineclip.Segment, scale int) *canvas {
	bounds := vp.Rectangle()
	for _, s := range segs {
		bounds = bounds.Union(image.Rectangle{
			Min: s.Start.ImagePoint(),
			Max: s.Start.ImagePoint().Add(image.Pt(1, 1)),
		})
		bounds = bounds.Union(image.Rectangle{
			Min: s.Finish.ImagePoint(),
			Max: s.Finish.ImagePoint().Add(image.Pt(1, 1)),
		})
	}
	bounds = bounds.Inset(-1)

	w, h := bounds.Dx()*scale, bounds.Dy()*scale
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	return &canvas{
		origin: lineclip.PointFromImage(bounds.Min),
		scale:  float32(scale),
		img:    img,
		z:      vector.NewRasterizer(w, h),
	}
}

// project returns the pixel position of p. The offset from the origin is
// bounded by the image size, so it fits the 26.6 range.
func (c *canvas) project(p lineclip.Point) (float32, float32) {
	d := p.Sub(c.origin).Fixed()
	return float32(d.X) / 64 * c.scale, float32(d.Y) / 64 * c.scale
}

// stroke draws the segments as lines of the given width in pixels.
func (c *canvas) stroke(segs []lineclip.Segment, width float32, col color.Color) {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())

	hw := width / 2
	for _, s := range segs {
		x0, y0 := c.project(s.Start)
		x1, y1 := c.project(s.Finish)

		dx, dy := x1-x0, y1-y0
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			c.z.MoveTo(x0-hw, y0-hw)
			c.z.LineTo(x0+hw, y0-hw)
			c.z.LineTo(x0+hw, y0+hw)
			c.z.LineTo(x0-hw, y0+hw)
			c.z.ClosePath()
			continue
		}

		nx, ny := -dy/l*hw, dx/l*hw
		c.z.MoveTo(x0+nx, y0+ny)
		c.z.LineTo(x1+nx, y1+ny)
		c.z.LineTo(x1-nx, y1-ny)
		c.z.LineTo(x0-nx, y0-ny)
		c.z.ClosePath()
	}

	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// render draws the viewport border, the input segments and the parts kept
// by the clipper.
func render(vp lineclip.Viewport, segs []lineclip.Segment, results []lineclip.Result, scale int) *image.RGBA {
	c := newCanvas(vp, segs, scale)

	edges := vp.Boundaries()
	c.stroke(edges[:], 2, viewportColor)
	c.stroke(segs, 2, inputColor)

	var kept []lineclip.Segment
	for _, r := range results {
		if !r.Outside() {
			kept = append(kept, r.Segment)
		}
	}
	c.stroke(kept, 4, clippedColor)

	return c.img
}

func savePNG(path string, vp lineclip.Viewport, segs []lineclip.Segment, results []lineclip.Result, scale int) error {
	if scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", scale)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, render(vp, segs, results, scale)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
