// Package background produces the square canvas the icon is drawn on.
//
// A background file is used when it exists. When it does not, a purple
// radial gradient is synthesized instead; when it exists but cannot be
// decoded, a flat dark purple canvas is used. Neither fallback is an error:
// the icon is always generated, and [Background.Fallback] records why the
// file was not used.
package background

import (
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/shieldicon/pkg/errors"
)

// Source tells where a background came from.
type Source string

const (
	SourceFile     Source = "file"
	SourceGradient Source = "gradient"
	SourceSolid    Source = "solid"
)

var (
	// SolidColor fills the canvas when the background file is unreadable.
	SolidColor = color.NRGBA{R: 30, G: 0, B: 60, A: 255}

	// GradientColor is the rim colour of the synthesized gradient; it fades
	// linearly to black at the centre.
	GradientColor = color.NRGBA{R: 90, G: 24, B: 154, A: 255}
)

// Background is a size x size canvas and its provenance.
type Background struct {
	Image    *image.NRGBA
	Source   Source
	Path     string
	Fallback error // why Path was not used; nil for SourceFile and for a missing file
}

// Load returns the background for path at size x size.
func Load(path string, size int) Background {
	bg := Background{Path: path}

	if _, err := os.Stat(path); err != nil {
		bg.Image = Gradient(size)
		bg.Source = SourceGradient
		if !os.IsNotExist(err) {
			bg.Fallback = errors.Wrap(errors.ErrCodeFileNotFound, err, "background %s", path)
		}
		return bg
	}

	img, err := imaging.Open(path)
	if err != nil {
		bg.Image = Solid(size)
		bg.Source = SourceSolid
		bg.Fallback = errors.Wrap(errors.ErrCodeDecode, err, "decoding background %s", path)
		return bg
	}

	bg.Image = imaging.Resize(img, size, size, imaging.Lanczos)
	bg.Source = SourceFile
	return bg
}

// Gradient draws concentric filled circles from the rim inwards, each
// darker than the last, over a black canvas.
func Gradient(size int) *image.NRGBA {
	dc := gg.NewContext(size, size)
	dc.SetColor(color.Black)
	dc.Clear()

	c := float64(size) / 2
	rmax := size / 2
	for r := rmax; r > 0; r-- {
		dc.SetColor(color.NRGBA{
			R: uint8(int(GradientColor.R) * r / rmax),
			G: uint8(int(GradientColor.G) * r / rmax),
			B: uint8(int(GradientColor.B) * r / rmax),
			A: 255,
		})
		dc.DrawCircle(c, c, float64(r))
		dc.Fill()
	}
	return imaging.Clone(dc.Image())
}

// Solid returns a size x size canvas filled with SolidColor.
func Solid(size int) *image.NRGBA {
	return imaging.New(size, size, SolidColor)
}
