package text

import (
	"reflect"
	"testing"

	"waterlayout/pkg/layout"
)

func TestMeasureText_DefaultFace(t *testing.T) {
	w, h := MeasureText("hello", Style{})
	if w != 35 || h != 13 {
		t.Errorf("Expected 35x13, got %gx%g", w, h)
	}
}

func TestText_Measure(t *testing.T) {
	tests := map[string]struct {
		content  string
		proposal layout.ProposalSize
		want     layout.Size
	}{
		"unspecified": {"hello world", layout.UnspecifiedProposal(), layout.NewSize(77, 13)},
		"unbounded":   {"hello world", layout.NewProposal(layout.Unbounded(), layout.Unspecified()), layout.NewSize(77, 13)},
		"wraps":       {"hello world", layout.NewProposal(layout.Bounded(50), layout.Unspecified()), layout.NewSize(35, 26)},
		"long word":   {"abcdefghij", layout.NewProposal(layout.Bounded(50), layout.Unspecified()), layout.NewSize(50, 13)},
		"height cap":  {"hello world", layout.NewProposal(layout.Bounded(50), layout.Bounded(20)), layout.NewSize(35, 20)},
		"empty":       {"", layout.UnspecifiedProposal(), layout.NewSize(0, 13)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := New(tc.content).Measure(tc.proposal)
			if got != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestText_LineSpacing(t *testing.T) {
	txt := &Text{Content: "hello world", Style: Style{LineSpacing: 1.5}}
	got := txt.Measure(layout.NewProposal(layout.Bounded(50), layout.Unspecified()))
	if got.Height != 13+19.5 {
		t.Errorf("Expected height 32.5, got %g", got.Height)
	}
}

func TestText_Lines(t *testing.T) {
	lines := New("one two three").Lines(layout.NewProposal(layout.Bounded(60), layout.Unspecified()))
	if !reflect.DeepEqual(lines, []string{"one two", "three"}) {
		t.Errorf("Expected [one two three] in two lines, got %q", lines)
	}
}

func TestText_InStack(t *testing.T) {
	row := layout.HStack(0, layout.Top, New("hi"), layout.Spacer{}, New("there"))
	p := row.Place(layout.NewRect(0, 0, 100, 13), layout.NewProposal(layout.Bounded(100), layout.Bounded(13)), layout.LayoutContext{})

	if got := p.Children[1].Frame.Width(); got != 100-14-35 {
		t.Errorf("Expected spacer width 51, got %g", got)
	}
	if got := p.Children[2].Frame.MinX(); got != 65 {
		t.Errorf("Expected trailing text at 65, got %g", got)
	}
}
