package layout

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tolerance = 1e-9

func expectRect(t *testing.T, name string, got, want Rect) {
	t.Helper()
	if !scalar.EqualWithinAbs(got.Origin.X, want.Origin.X, tolerance) ||
		!scalar.EqualWithinAbs(got.Origin.Y, want.Origin.Y, tolerance) ||
		!scalar.EqualWithinAbs(got.Size.Width, want.Size.Width, tolerance) ||
		!scalar.EqualWithinAbs(got.Size.Height, want.Size.Height, tolerance) {
		t.Errorf("%s: expected %s, got %s", name, want, got)
	}
}

func expectSize(t *testing.T, name string, got, want Size) {
	t.Helper()
	if !scalar.EqualWithinAbs(got.Width, want.Width, tolerance) ||
		!scalar.EqualWithinAbs(got.Height, want.Height, tolerance) {
		t.Errorf("%s: expected %s, got %s", name, want, got)
	}
}

// recorder is a leaf that remembers the last proposal it was measured with.
type recorder struct {
	size Size
	last *ProposalSize
}

func newRecorder(width, height float64) recorder {
	return recorder{size: NewSize(width, height), last: new(ProposalSize)}
}

func (r recorder) Measure(p ProposalSize) Size {
	*r.last = p
	return r.size
}

func (recorder) StretchAxis() StretchAxis { return StretchNone }
func (recorder) LayoutPriority() float64  { return 0 }

func bounded(width, height float64) ProposalSize {
	return NewProposal(Bounded(width), Bounded(height))
}

func placeAt(v Node, x, y, width, height float64, ctx LayoutContext) Placement {
	bound := NewRect(x, y, width, height)
	return v.Place(bound, ProposalFrom(bound.Size), ctx)
}
