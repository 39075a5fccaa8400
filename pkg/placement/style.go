package placement

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind groups letters that share a style.
type Kind int

const (
	KindBTS Kind = iota
	KindArmy
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindBTS:
		return "bts"
	case KindArmy:
		return "army"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Letter is one character of the fixed letter set.
type Letter struct {
	Char rune
	Kind Kind
}

// Letters returns the fixed letter set in canonical order.
func Letters() []Letter {
	return []Letter{
		{'B', KindBTS}, {'T', KindBTS}, {'S', KindBTS},
		{'A', KindArmy}, {'R', KindArmy}, {'M', KindArmy}, {'Y', KindArmy},
	}
}

// Style is how letters of one kind are coloured and sized.
type Style struct {
	Palette  []color.NRGBA // fill colours, one chosen per letter
	Shadow   color.NRGBA   // translucent shadow colour
	BaseSize float64       // smallest size before jitter
}

var (
	btsStyle = Style{
		Palette:  palette("#FFD700", "#FDB931", "#D4AF37"),
		Shadow:   color.NRGBA{R: 255, G: 215, B: 0, A: 100},
		BaseSize: 70,
	}
	armyStyle = Style{
		Palette:  palette("#FFFFFF", "#E0AAFF", "#D8BFD8"),
		Shadow:   color.NRGBA{R: 157, G: 78, B: 221, A: 100},
		BaseSize: 60,
	}
)

// StyleFor returns the style of kind k.
func StyleFor(k Kind) Style {
	if k == KindBTS {
		return btsStyle
	}
	return armyStyle
}

// palette parses opaque hex colours. The inputs are constants, so a parse
// failure is a programming error.
func palette(hexes ...string) []color.NRGBA {
	out := make([]color.NRGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("placement: bad palette colour %q: %v", h, err))
		}
		r, g, b := c.RGB255()
		out = append(out, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return out
}

// Hex formats c as #rrggbb, dropping alpha.
func Hex(c color.NRGBA) string {
	cf, _ := colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return cf.Hex()
}
