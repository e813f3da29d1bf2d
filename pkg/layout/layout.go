package layout

// ChildMetadata is the per-child record a container hands to its Layout.
//
// Before a child is measured only Stretch, Priority and MinLength are set.
// After measurement Proposal echoes what the child was offered and Size is
// what it reported.
type ChildMetadata struct {
	Proposal ProposalSize
	Size     Size
	// Stretch is resolved against the parent's orientation, so it is always
	// one of StretchNone, StretchHorizontal, StretchVertical or StretchBoth.
	Stretch StretchAxis
	// Priority defaults to 0. Higher values receive surplus space first and
	// are compressed last.
	Priority float64
	// MinLength is the main-axis floor of a stretching child.
	MinLength float64
}

// StretchesAlong reports whether the child consumes surplus on axis.
func (m ChildMetadata) StretchesAlong(axis Axis) bool {
	return m.Stretch.Along(axis)
}

// Placed is the result of the place pass for one child.
type Placed struct {
	Rect    Rect
	Context LayoutContext
}

// Layout is a container algorithm. The three operations are invoked in
// order on every pass and must be pure: identical arguments give identical
// results.
type Layout interface {
	// Propose returns exactly one proposal per child, in child order.
	Propose(parent ProposalSize, children []ChildMetadata, ctx LayoutContext) []ProposalSize

	// Size returns the container's size once children were measured with
	// the proposals from Propose.
	Size(parent ProposalSize, children []ChildMetadata, ctx LayoutContext) Size

	// Place returns one rect and context per child given the bound the
	// container was granted by its own parent.
	Place(bound Rect, proposal ProposalSize, children []ChildMetadata, ctx LayoutContext) []Placed
}

// Oriented is implemented by layouts with a main axis. Children declaring
// StretchMainAxis or StretchCrossAxis are resolved against it.
type Oriented interface {
	Orientation() Axis
}

// SequentialLayout is implemented by layouts whose proposal for a child
// depends on the measured sizes of the children before it. The container
// measures children one at a time and calls ProposeNext with the measured
// prefix.
type SequentialLayout interface {
	Layout
	ProposeNext(parent ProposalSize, measured []ChildMetadata, ctx LayoutContext) ProposalSize
}

// ContextualLayout is implemented by layouts that hand children a modified
// LayoutContext. The container measures child i under ChildContext(ctx, i)
// so the sizing pass sees the same context as the place pass.
type ContextualLayout interface {
	ChildContext(ctx LayoutContext, index int) LayoutContext
}

// StretchDeriver is implemented by layouts that decide how their children's
// stretch declarations surface on the container itself. Without it a
// container stretches along every axis any child stretches along.
type StretchDeriver interface {
	DeriveStretch(children []StretchAxis) StretchAxis
}

func orientation(l Layout) (Axis, bool) {
	if o, ok := l.(Oriented); ok {
		return o.Orientation(), true
	}
	return Horizontal, false
}

func childContext(l Layout, ctx LayoutContext, index int) LayoutContext {
	if c, ok := l.(ContextualLayout); ok {
		return c.ChildContext(ctx, index)
	}
	return ctx
}

func placedOrDefault(placed []Placed, i int, ctx LayoutContext) Placed {
	if i < len(placed) {
		return placed[i]
	}
	return Placed{Context: ctx}
}
