package window

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// bitmapSize is the pixel height of the built-in bitmap font.
const bitmapSize = 12

// systemFonts are tried in order when no font path is configured.
var systemFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	`C:\Windows\Fonts\arialbd.ttf`,
}

// face is a text face plus the scale it is drawn at.
type face struct {
	text.Face
	scale float64
}

// fontSet holds one face per text role.
type fontSet struct {
	title  face
	large  face
	medium face
	small  face
}

// fontSizes returns the title, large, medium and small sizes for a base (medium) size.
func fontSizes(base float64) (title, large, medium, small float64) {
	return base * 2.5, base * 5 / 3, base, base * 0.75
}

// loadFonts loads a TrueType font from path, or from the first system font found
// when path is empty. When nothing loads it falls back to the bitmap font.
func loadFonts(path string, base float64, logger *log.Logger) fontSet {
	candidates := systemFonts
	if path != "" {
		candidates = []string{path}
	}

	for _, p := range candidates {
		src, err := loadFaceSource(p)
		if err != nil {
			if path != "" {
				logger.Warn("could not load font, using built-in bitmap font", "path", p, "error", err)
			}
			continue
		}
		logger.Debug("font loaded", "path", p)
		return vectorFonts(src, base)
	}

	if path == "" {
		logger.Warn("no system font found, using built-in bitmap font")
	}
	return bitmapFonts(base)
}

// loadFaceSource reads and parses a font file.
func loadFaceSource(path string) (*text.GoTextFaceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return src, nil
}

// vectorFonts builds a face per role at its native size.
func vectorFonts(src *text.GoTextFaceSource, base float64) fontSet {
	title, large, medium, small := fontSizes(base)
	at := func(size float64) face {
		return face{Face: &text.GoTextFace{Source: src, Size: size}, scale: 1}
	}
	return fontSet{title: at(title), large: at(large), medium: at(medium), small: at(small)}
}

// bitmapFonts scales the single bitmap face to each role's size, rounded to
// whole pixels so glyphs stay sharp.
func bitmapFonts(base float64) fontSet {
	bitmap := text.NewGoXFace(bitmapfont.Face)
	title, large, medium, small := fontSizes(base)
	at := func(size float64) face {
		return face{Face: bitmap, scale: math.Max(1, math.Round(size/bitmapSize))}
	}
	return fontSet{title: at(title), large: at(large), medium: at(medium), small: at(small)}
}
