// Package fonts locates the bold TrueType font used for the icon letters.
//
// A font is looked up in three steps: an explicitly configured file, then
// the well-known bold fonts in the system font directories ([Candidates]),
// then the Go Bold font compiled into the binary. The embedded font means
// generation never fails for lack of a system font.
package fonts

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/matzehuels/shieldicon/pkg/errors"
)

// Candidates are the system font files tried in order.
var Candidates = []string{
	"arialbd.ttf",
	"seguiemj.ttf",
	"malgunbd.ttf",
	"DejaVuSans-Bold.ttf",
	"Arial Bold.ttf",
}

// EmbeddedName is the display name of the compiled-in fallback font.
const EmbeddedName = "Go Bold (embedded)"

// findFont is swapped out in tests.
var findFont = findfont.Find

// Font is a parsed TrueType font and where it came from.
type Font struct {
	Name     string // file name or EmbeddedName
	Path     string // empty for the embedded font
	Embedded bool

	ttf *truetype.Font
}

// Face returns a face at size points (72 DPI, so points equal pixels).
func (f *Font) Face(size float64) font.Face {
	return truetype.NewFace(f.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Load parses the TrueType file at path.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "font %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "reading font %s", path)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "parsing font %s", path)
	}
	return &Font{Name: filepath.Base(path), Path: path, ttf: ttf}, nil
}

// Resolve returns the font to draw with. A non-empty path must load;
// otherwise the first usable candidate wins and the embedded font is the
// last resort.
func Resolve(path string) (*Font, error) {
	if path != "" {
		return Load(path)
	}
	for _, name := range Candidates {
		p, err := findFont(name)
		if err != nil {
			continue
		}
		if f, err := Load(p); err == nil {
			return f, nil
		}
	}
	return Embedded(), nil
}

// Lookup reports, for each candidate, the path it resolves to ("" when the
// candidate is not installed).
func Lookup() map[string]string {
	out := make(map[string]string, len(Candidates))
	for _, name := range Candidates {
		p, err := findFont(name)
		if err != nil {
			p = ""
		}
		out[name] = p
	}
	return out
}

var (
	embedded     *Font
	embeddedOnce sync.Once
)

// Embedded returns the compiled-in Go Bold font.
// It is parsed once on first access.
func Embedded() *Font {
	embeddedOnce.Do(func() {
		ttf, err := truetype.Parse(gobold.TTF)
		if err != nil {
			panic("fonts: embedded Go Bold does not parse: " + err.Error())
		}
		embedded = &Font{Name: EmbeddedName, Embedded: true, ttf: ttf}
	})
	return embedded
}
