// Package text provides a text leaf for the layout engine. It measures
// strings with a font face through gg and wraps them at spaces when the
// proposed width is finite.
package text

import (
	"fmt"

	"waterlayout/pkg/layout"
)

// Text is a leaf that displays a string.
type Text struct {
	Content  string
	Style    Style
	Stretch  layout.StretchAxis
	Priority float64
}

// New returns a text leaf using the default face.
func New(content string) *Text {
	return &Text{Content: content}
}

// Lines returns the lines the text wraps to for the given proposal.
func (t *Text) Lines(p layout.ProposalSize) []string {
	if !p.Width.IsFinite() {
		return []string{t.Content}
	}
	return BreakTextIntoLines(t.Content, t.Style, p.Width.Cap())
}

func (t *Text) Measure(p layout.ProposalSize) layout.Size {
	w, h := MeasureLines(t.Lines(p), t.Style)
	return p.Clamp(layout.NewSize(w, h))
}

func (t *Text) StretchAxis() layout.StretchAxis { return t.Stretch }
func (t *Text) LayoutPriority() float64         { return t.Priority }

func (t *Text) String() string {
	return fmt.Sprintf("Text(%q)", t.Content)
}
