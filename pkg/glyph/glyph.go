// Package glyph draws the styled icon letters.
//
// Each letter is drawn on its own transparent square twice its size: a
// translucent shadow centred on the square, a dark stroke, and the fill
// shifted two pixels up and left so the shadow shows below-right. The square
// is then rotated and pasted onto a shared text layer.
package glyph

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/shieldicon/pkg/fonts"
	"github.com/matzehuels/shieldicon/pkg/placement"
)

const (
	// FillOffset shifts the fill and stroke up and left of the shadow.
	FillOffset = 2.0

	// StrokeWidth is the stroke radius in pixels.
	StrokeWidth = 2
)

// StrokeColor is the outline colour; its alpha is applied to the whole
// outline at once, not per stamp.
var StrokeColor = color.NRGBA{A: 200}

// Renderer draws letters with one font.
type Renderer struct {
	font *fonts.Font
}

// New returns a renderer for f.
func New(f *fonts.Font) *Renderer {
	return &Renderer{font: f}
}

// Render draws p's letter and rotates it by p.Rotation degrees
// counter-clockwise. The result grows to fit the rotated square.
func (r *Renderer) Render(p placement.Placement) *image.NRGBA {
	edge := int(p.Size * 2)
	face := r.font.Face(float64(int(p.Size)))
	defer face.Close()

	s := string(p.Char)
	centre := p.Size
	fill := centre - FillOffset

	dc := gg.NewContext(edge, edge)
	dc.SetFontFace(face)
	dc.SetColor(p.Shadow)
	drawCentred(dc, face, s, centre, centre)

	// The outline is stamped opaque on its own layer and blended once, so
	// overlapping stamps do not build up past the stroke alpha.
	outline := gg.NewContext(edge, edge)
	outline.SetFontFace(face)
	outline.SetColor(color.NRGBA{R: StrokeColor.R, G: StrokeColor.G, B: StrokeColor.B, A: 255})
	for dy := -StrokeWidth; dy <= StrokeWidth; dy++ {
		for dx := -StrokeWidth; dx <= StrokeWidth; dx++ {
			if dx*dx+dy*dy > StrokeWidth*StrokeWidth {
				continue
			}
			drawCentred(outline, face, s, fill+float64(dx), fill+float64(dy))
		}
	}
	img := imaging.Overlay(dc.Image(), outline.Image(), image.Point{}, float64(StrokeColor.A)/255)

	dc = gg.NewContextForImage(img)
	dc.SetFontFace(face)
	dc.SetColor(p.Color)
	drawCentred(dc, face, s, fill, fill)

	return imaging.Rotate(dc.Image(), p.Rotation, color.Transparent)
}

// drawCentred draws s horizontally centred on x with the baseline placed so
// that the span from ascender to descender is centred on y.
func drawCentred(dc *gg.Context, face font.Face, s string, x, y float64) {
	m := face.Metrics()
	baseline := y + float64(m.Ascent-m.Descent)/64/2
	dc.DrawStringAnchored(s, x, baseline, 0.5, 0)
}

// Paste composites g onto layer so that its centre lands on (x, y).
// The top-left corner is truncated toward zero.
func Paste(layer image.Image, g image.Image, x, y float64) *image.NRGBA {
	w, h := float64(g.Bounds().Dx()), float64(g.Bounds().Dy())
	pos := image.Pt(int(x-w/2), int(y-h/2))
	return imaging.Overlay(layer, g, pos, 1.0)
}

// Layer renders every placement onto a transparent width x height layer in
// placement order, so later letters cover earlier ones.
func (r *Renderer) Layer(width, height int, ps []placement.Placement) *image.NRGBA {
	layer := imaging.New(width, height, color.Transparent)
	for _, p := range ps {
		layer = Paste(layer, r.Render(p), p.X, p.Y)
	}
	return layer
}
