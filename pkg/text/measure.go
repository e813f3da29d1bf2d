package text

import (
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the face used when a Style has none: a fixed 7x13 bitmap
// font, so measurements are identical on every host.
var DefaultFace font.Face = basicfont.Face7x13

// Style selects the face and line spacing text is measured with.
type Style struct {
	Face font.Face
	// LineSpacing multiplies the face height between wrapped lines.
	// Zero means 1.
	LineSpacing float64
}

// LoadStyle loads a TrueType font at the given point size.
func LoadStyle(fontPath string, points float64) (Style, error) {
	face, err := gg.LoadFontFace(fontPath, points)
	if err != nil {
		return Style{}, err
	}
	return Style{Face: face}, nil
}

func (s Style) face() font.Face {
	if s.Face == nil {
		return DefaultFace
	}
	return s.Face
}

func (s Style) lineSpacing() float64 {
	if s.LineSpacing <= 0 {
		return 1
	}
	return s.LineSpacing
}

func (s Style) context() *gg.Context {
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(s.face())
	return dc
}

// MeasureText measures a single line of text.
func MeasureText(text string, style Style) (width, height float64) {
	return style.context().MeasureString(text)
}

// BreakTextIntoLines wraps text at spaces so each line fits maxWidth where
// possible. A single word wider than maxWidth keeps its own line.
func BreakTextIntoLines(text string, style Style, maxWidth float64) []string {
	return style.context().WordWrap(text, maxWidth)
}

// MeasureLines returns the widest line and the height of the block.
func MeasureLines(lines []string, style Style) (width, height float64) {
	dc := style.context()
	for _, line := range lines {
		w, _ := dc.MeasureString(line)
		width = math.Max(width, w)
	}
	n := len(lines)
	if n == 0 {
		return 0, 0
	}
	lineHeight := dc.FontHeight()
	return width, lineHeight + float64(n-1)*lineHeight*style.lineSpacing()
}
