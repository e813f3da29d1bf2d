package layout

import "fmt"

// StretchAxis is a node's static declaration of the axes along which it is
// willing to consume surplus space.
//
// MainAxis and CrossAxis are relative to the parent's orientation and are
// resolved to an absolute value when the parent collects ChildMetadata.
type StretchAxis uint8

const (
	StretchNone StretchAxis = iota
	StretchHorizontal
	StretchVertical
	StretchBoth
	StretchMainAxis
	StretchCrossAxis
)

// Resolve converts a relative declaration into an absolute one against a
// parent whose main axis is main. Parents without an orientation pass
// oriented=false, and relative declarations resolve to StretchNone there.
func (s StretchAxis) Resolve(main Axis, oriented bool) StretchAxis {
	switch s {
	case StretchMainAxis, StretchCrossAxis:
		if !oriented {
			return StretchNone
		}
		axis := main
		if s == StretchCrossAxis {
			axis = main.Cross()
		}
		if axis == Horizontal {
			return StretchHorizontal
		}
		return StretchVertical
	default:
		return s
	}
}

// Along reports whether an absolute stretch declaration covers axis.
// Relative declarations always report false; resolve them first.
func (s StretchAxis) Along(axis Axis) bool {
	switch s {
	case StretchBoth:
		return true
	case StretchHorizontal:
		return axis == Horizontal
	case StretchVertical:
		return axis == Vertical
	default:
		return false
	}
}

// Union combines two absolute stretch declarations.
func (s StretchAxis) Union(other StretchAxis) StretchAxis {
	h := s.Along(Horizontal) || other.Along(Horizontal)
	v := s.Along(Vertical) || other.Along(Vertical)
	return stretchOf(h, v)
}

func stretchOf(horizontal, vertical bool) StretchAxis {
	switch {
	case horizontal && vertical:
		return StretchBoth
	case horizontal:
		return StretchHorizontal
	case vertical:
		return StretchVertical
	default:
		return StretchNone
	}
}

func (s StretchAxis) String() string {
	switch s {
	case StretchHorizontal:
		return "horizontal"
	case StretchVertical:
		return "vertical"
	case StretchBoth:
		return "both"
	case StretchMainAxis:
		return "main"
	case StretchCrossAxis:
		return "cross"
	default:
		return "none"
	}
}

// Measurable is the capability every leaf exposes to the engine.
//
// Measure must be deterministic for a given proposal, return logical units,
// and respect hard caps: when proposal.Width is specified the returned width
// must not exceed it, and likewise for height. The engine does not check
// this at runtime.
type Measurable interface {
	Measure(proposal ProposalSize) Size
	StretchAxis() StretchAxis
	LayoutPriority() float64
}

// View is a node of the layout tree. Native leaves, containers, and
// modifiers are all Views.
type View interface {
	Measurable
}

// Node is a View that lays out descendants. Containers implement it; the
// engine falls back to Measure for plain leaves.
type Node interface {
	View
	SizeThatFits(proposal ProposalSize, ctx LayoutContext) Size
	Place(bound Rect, proposal ProposalSize, ctx LayoutContext) Placement
}

// minLengther is implemented by views with a main-axis floor, like Spacer.
type minLengther interface {
	MinimumLength() float64
}

func sizeThatFits(v View, proposal ProposalSize, ctx LayoutContext) Size {
	if n, ok := v.(Node); ok {
		return n.SizeThatFits(proposal, ctx).Clamped()
	}
	return v.Measure(proposal).Clamped()
}

func placeView(v View, bound Rect, proposal ProposalSize, ctx LayoutContext) Placement {
	if n, ok := v.(Node); ok {
		return n.Place(bound, proposal, ctx)
	}
	return Placement{View: v, Frame: bound, Context: ctx}
}

func minLength(v View) float64 {
	if m, ok := v.(minLengther); ok {
		return nonNegative(m.MinimumLength())
	}
	return 0
}

// Intrinsic is a leaf with a fixed intrinsic size. It never reports more
// than the proposal allows.
type Intrinsic struct {
	Width    float64
	Height   float64
	Stretch  StretchAxis
	Priority float64
}

// NewIntrinsic returns a leaf with the given intrinsic size.
func NewIntrinsic(width, height float64) Intrinsic {
	return Intrinsic{Width: width, Height: height}
}

func (i Intrinsic) Measure(p ProposalSize) Size {
	return p.Clamp(Size{Width: i.Width, Height: i.Height})
}

func (i Intrinsic) StretchAxis() StretchAxis { return i.Stretch }
func (i Intrinsic) LayoutPriority() float64  { return i.Priority }

func (i Intrinsic) String() string {
	return fmt.Sprintf("Intrinsic(%gx%g)", i.Width, i.Height)
}

// Fill is a greedy leaf: it takes every finite proposal and stretches along
// both axes. Unspecified or infinite proposals yield zero.
type Fill struct{}

func (Fill) Measure(p ProposalSize) Size {
	var s Size
	if p.Width.IsFinite() {
		s.Width = p.Width.Or(0)
	}
	if p.Height.IsFinite() {
		s.Height = p.Height.Or(0)
	}
	return s
}

func (Fill) StretchAxis() StretchAxis { return StretchBoth }
func (Fill) LayoutPriority() float64  { return 0 }
func (Fill) String() string           { return "Fill" }

// MeasureFunc adapts a host measurement closure to a leaf View.
type MeasureFunc func(ProposalSize) Size

func (f MeasureFunc) Measure(p ProposalSize) Size { return f(p) }
func (MeasureFunc) StretchAxis() StretchAxis      { return StretchNone }
func (MeasureFunc) LayoutPriority() float64       { return 0 }

// Spacer reports a zero intrinsic size and stretches along its parent's
// main axis. MinLength is a floor it keeps even when siblings overflow.
type Spacer struct {
	MinLength float64
}

func (Spacer) Measure(ProposalSize) Size { return Size{} }
func (Spacer) StretchAxis() StretchAxis  { return StretchMainAxis }
func (Spacer) LayoutPriority() float64   { return 0 }
func (s Spacer) MinimumLength() float64  { return s.MinLength }
func (s Spacer) String() string          { return "Spacer" }

// WithPriority overrides the layout priority of v.
func WithPriority(v View, priority float64) View {
	return &modified{View: v, priority: priority, stretch: v.StretchAxis()}
}

// WithStretch overrides the stretch declaration of v.
func WithStretch(v View, stretch StretchAxis) View {
	return &modified{View: v, priority: v.LayoutPriority(), stretch: stretch}
}

// modified overrides the capabilities of a view while forwarding
// measurement and placement to it.
type modified struct {
	View
	priority float64
	stretch  StretchAxis
}

func (m *modified) StretchAxis() StretchAxis { return m.stretch }
func (m *modified) LayoutPriority() float64  { return m.priority }

func (m *modified) SizeThatFits(p ProposalSize, ctx LayoutContext) Size {
	return sizeThatFits(m.View, p, ctx)
}

func (m *modified) Place(bound Rect, p ProposalSize, ctx LayoutContext) Placement {
	return placeView(m.View, bound, p, ctx)
}

func (m *modified) MinimumLength() float64 {
	return minLength(m.View)
}

func (m *modified) String() string {
	return fmt.Sprint(m.View)
}
