// Package shield holds the shield geometry of the icon: the polygon that is
// darkened on the background, and the looser bounds that letters must stay
// inside while they are being placed.
//
// The two differ: the drawn polygon is scaled by [Scale] while the placement
// bounds use the unscaled half-width, so letters may spill slightly past the
// dark region.
package shield

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

const (
	// CanvasSize is the edge length of the working canvas in pixels.
	CanvasSize = 512

	// Scale shrinks the drawn shield polygon relative to its nominal size.
	Scale = 0.88

	// OutOfBounds is the penalty added for each violated boundary rule.
	OutOfBounds = 1000.0
)

// MaskColor is the translucent dark purple painted inside the shield.
var MaskColor = color.NRGBA{R: 20, G: 10, B: 40, A: 240}

// Point is a position on the canvas in pixels.
type Point struct {
	X, Y float64
}

// Center returns the centre of the working canvas.
func Center() Point {
	return Point{X: CanvasSize / 2, Y: CanvasSize / 2}
}

// Polygon returns the five shield vertices around c, scaled by s:
// top-left, top-right, right shoulder, bottom tip, left shoulder.
func Polygon(c Point, s float64) []Point {
	return []Point{
		{c.X - 100*s, c.Y - 90*s},
		{c.X + 100*s, c.Y - 90*s},
		{c.X + 100*s, c.Y + 20*s},
		{c.X, c.Y + 150*s},
		{c.X - 100*s, c.Y + 20*s},
	}
}

// Mask draws the filled shield polygon on a transparent size x size canvas.
// The polygon is centred on the canvas.
func Mask(size int) *image.NRGBA {
	dc := gg.NewContext(size, size)
	c := Point{X: float64(size) / 2, Y: float64(size) / 2}
	for i, p := range Polygon(c, Scale) {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
			continue
		}
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.SetColor(MaskColor)
	dc.Fill()
	return imaging.Clone(dc.Image())
}

// Apply alpha-composites the shield mask over bg and returns the result.
// The mask is sized to the width of bg.
func Apply(bg image.Image) *image.NRGBA {
	mask := Mask(bg.Bounds().Dx())
	return imaging.Overlay(bg, mask, image.Point{}, 1.0)
}

// Bounds are the placement limits letters are scored against.
type Bounds struct {
	Center     Point
	HalfWidth  float64 // max horizontal reach from the centre
	Top        float64 // max reach above the centre
	TaperSlope float64 // horizontal shrink per pixel below the centre
}

// DefaultBounds returns the bounds used for the 512px icon.
func DefaultBounds() Bounds {
	return Bounds{
		Center:     Center(),
		HalfWidth:  110,
		Top:        100,
		TaperSlope: 0.6,
	}
}

// Penalty scores a letter of the given size centred at (x, y).
// Each violated rule adds [OutOfBounds]; zero means fully inside.
//
// Rules: the left, right and top edges of the letter box must lie within
// the bounds, and below the centre line the letter must fit under the taper,
// which is checked against a third of its size rather than half.
func (b Bounds) Penalty(x, y, size float64) float64 {
	var p float64
	half := size / 2
	if x-half < b.Center.X-b.HalfWidth {
		p += OutOfBounds
	}
	if x+half > b.Center.X+b.HalfWidth {
		p += OutOfBounds
	}
	if y-half < b.Center.Y-b.Top {
		p += OutOfBounds
	}
	if y > b.Center.Y {
		maxDX := b.HalfWidth - (y-b.Center.Y)*b.TaperSlope
		if math.Abs(x-b.Center.X)+size/3 > maxDX {
			p += OutOfBounds
		}
	}
	return p
}
