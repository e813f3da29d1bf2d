package layout

import "go.uber.org/zap"

// LayoutEngine runs full layout passes for a viewport. It holds the host
// inputs only: every call to Layout starts from scratch.
type LayoutEngine struct {
	viewport Size
	safeArea EdgeInsets
}

func NewLayoutEngine(viewportWidth, viewportHeight float64) *LayoutEngine {
	return &LayoutEngine{viewport: NewSize(viewportWidth, viewportHeight).Clamped()}
}

// SetViewport changes the screen size used by subsequent passes.
func (le *LayoutEngine) SetViewport(width, height float64) {
	le.viewport = NewSize(width, height).Clamped()
}

// SetSafeArea sets the insets of the platform chrome, in logical units
// from each screen edge.
func (le *LayoutEngine) SetSafeArea(insets EdgeInsets) {
	le.safeArea = insets.Clamped()
}

// Viewport returns the current screen size.
func (le *LayoutEngine) Viewport() Size {
	return le.viewport
}

// SafeArea returns the current safe-area insets.
func (le *LayoutEngine) SafeArea() EdgeInsets {
	return le.safeArea
}

// RootContext is the context the root view is laid out with.
func (le *LayoutEngine) RootContext() LayoutContext {
	return NewLayoutContext(le.safeArea)
}

// SafeBounds is the screen rect minus the safe-area insets.
func (le *LayoutEngine) SafeBounds() Rect {
	return Rect{Size: le.viewport}.Inset(le.safeArea)
}

// Layout measures root against the safe bounds and places it there.
//
// The root keeps its measured size and is centered, except along the axes
// it stretches, where it fills the safe bounds.
func (le *LayoutEngine) Layout(root View) Placement {
	bound := le.SafeBounds()
	ctx := le.RootContext()
	proposal := ProposalFrom(bound.Size)

	if root == nil {
		return Placement{Frame: bound, Context: ctx}
	}
	child := ChildMetadata{
		Proposal: proposal,
		Size:     sizeThatFits(root, proposal, ctx),
		Stretch:  root.StretchAxis().Resolve(Vertical, false),
	}
	frame := alignWithin(AlignCenter, bound, child)

	Logger().Debug("layout pass",
		zap.Stringer("viewport", le.viewport),
		zap.Stringer("safe_area", le.safeArea),
		zap.Stringer("root", frame),
	)
	return placeView(root, frame, ProposalFrom(frame.Size), ctx)
}
