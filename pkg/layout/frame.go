package layout

import (
	"fmt"
	"math"
	"strings"
)

// FrameAxis bounds one axis of a FrameLayout. Unspecified fields impose
// nothing: Min defaults to 0 and Max to +Inf. An axis with no field set
// is transparent and reports the child's own length.
type FrameAxis struct {
	Min   Dimension
	Ideal Dimension
	Max   Dimension
}

// FixedLength returns an axis that always resolves to v.
func FixedLength(v float64) FrameAxis {
	return FrameAxis{Min: Bounded(v), Ideal: Bounded(v), Max: Bounded(v)}
}

// IsZero reports whether the axis is transparent.
func (f FrameAxis) IsZero() bool {
	return !f.Min.IsSpecified() && !f.Ideal.IsSpecified() && !f.Max.IsSpecified()
}

func (f FrameAxis) bounds() (lo, hi float64) {
	return f.Min.Or(0), f.Max.Or(math.Inf(1))
}

// resolve returns the frame's length for a parent dimension. childLen is
// used when neither the parent nor the frame determines a length.
func (f FrameAxis) resolve(parent Dimension, childLen float64) float64 {
	lo, hi := f.bounds()
	switch {
	case f.IsZero():
		return childLen
	case parent.IsFinite():
		return clamp(parent.Cap(), lo, hi)
	case parent.IsUnbounded():
		if !math.IsInf(hi, 1) {
			return clamp(hi, lo, hi)
		}
		return clamp(childLen, lo, hi)
	case f.Ideal.IsSpecified():
		return clamp(f.Ideal.Cap(), lo, hi)
	default:
		return clamp(childLen, lo, hi)
	}
}

// propose returns the dimension offered to the child.
func (f FrameAxis) propose(parent Dimension) Dimension {
	lo, hi := f.bounds()
	switch {
	case f.IsZero():
		return parent
	case parent.IsFinite():
		return Bounded(clamp(parent.Cap(), lo, hi))
	case !math.IsInf(hi, 1):
		if !parent.IsSpecified() && f.Ideal.IsSpecified() {
			return Bounded(clamp(f.Ideal.Cap(), lo, hi))
		}
		return Bounded(hi)
	case !parent.IsSpecified() && f.Ideal.IsSpecified():
		return Bounded(clamp(f.Ideal.Cap(), lo, hi))
	default:
		return parent
	}
}

// stretch reports how the axis affects the container's stretch: an
// unbounded max makes it greedy, any other setting pins it.
func (f FrameAxis) stretch(child bool) bool {
	switch {
	case f.IsZero():
		return child
	case f.Max.IsUnbounded():
		return true
	default:
		return false
	}
}

func (f FrameAxis) String() string {
	if f.IsZero() {
		return "auto"
	}
	return fmt.Sprintf("%s/%s/%s", f.Min, f.Ideal, f.Max)
}

// FrameLayout constrains a single child to per-axis min, ideal and max
// lengths and aligns it within the resulting frame.
//
// On each axis a finite parent proposal is clamped to [min, max]; an
// unbounded proposal takes max when it is finite; an unspecified proposal
// takes ideal. Anything left undetermined falls back to the child's
// length clamped to [min, max].
type FrameLayout struct {
	Width     FrameAxis
	Height    FrameAxis
	Alignment Alignment
}

func (f FrameLayout) String() string {
	var b strings.Builder
	b.WriteString("Frame(")
	b.WriteString(f.Width.String())
	b.WriteString(", ")
	b.WriteString(f.Height.String())
	b.WriteString(")")
	return b.String()
}

func (f FrameLayout) Propose(parent ProposalSize, children []ChildMetadata, _ LayoutContext) []ProposalSize {
	p := ProposalSize{Width: f.Width.propose(parent.Width), Height: f.Height.propose(parent.Height)}
	out := make([]ProposalSize, len(children))
	for i := range out {
		out[i] = p
	}
	return out
}

func (f FrameLayout) Size(parent ProposalSize, children []ChildMetadata, _ LayoutContext) Size {
	var child Size
	for _, c := range children {
		child.Width = max(child.Width, c.Size.Width)
		child.Height = max(child.Height, c.Size.Height)
	}
	return parent.Clamp(Size{
		Width:  f.Width.resolve(parent.Width, child.Width),
		Height: f.Height.resolve(parent.Height, child.Height),
	})
}

func (f FrameLayout) Place(bound Rect, _ ProposalSize, children []ChildMetadata, ctx LayoutContext) []Placed {
	out := make([]Placed, len(children))
	for i, c := range children {
		out[i] = Placed{Rect: alignWithin(f.Alignment, bound, c), Context: ctx}
	}
	return out
}

// DeriveStretch keeps the child's stretch on transparent axes only.
func (f FrameLayout) DeriveStretch(children []StretchAxis) StretchAxis {
	child := StretchNone
	for _, s := range children {
		child = child.Union(s)
	}
	return stretchOf(
		f.Width.stretch(child.Along(Horizontal)),
		f.Height.stretch(child.Along(Vertical)),
	)
}
