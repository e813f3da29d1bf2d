package layout

import "fmt"

// IgnoreSafeAreaLayout lets a single child extend into the unsafe region
// on Edges. The child is proposed and placed with the bound grown by the
// context's safe-area insets on those edges, and the edges are recorded as
// ignored in the context it receives so descendants do not expand twice.
//
// Its child rect is the one case where a layout places outside its bound.
type IgnoreSafeAreaLayout struct {
	Edges EdgeSet
}

func (l IgnoreSafeAreaLayout) String() string { return fmt.Sprintf("IgnoreSafeArea(%s)", l.Edges) }

// expansion returns the insets the child grows by. Edges an ancestor already
// expanded into carry no inset any more.
func (l IgnoreSafeAreaLayout) expansion(ctx LayoutContext) EdgeInsets {
	return ctx.SafeArea.Only(l.Edges)
}

func (l IgnoreSafeAreaLayout) Propose(parent ProposalSize, children []ChildMetadata, ctx LayoutContext) []ProposalSize {
	p := parent.Outset(l.expansion(ctx))
	out := make([]ProposalSize, len(children))
	for i := range out {
		out[i] = p
	}
	return out
}

// Size reports the child's size minus the part of the expansion it took
// up. An axis whose proposal was not grown, or whose child stayed within
// the un-expanded cap, is reported as the child measured it.
func (l IgnoreSafeAreaLayout) Size(parent ProposalSize, children []ChildMetadata, ctx LayoutContext) Size {
	child := largest(children)
	return parent.Clamp(child.Shrink(l.used(parent, child, ctx)))
}

func (l IgnoreSafeAreaLayout) Place(bound Rect, p ProposalSize, children []ChildMetadata, ctx LayoutContext) []Placed {
	rect := bound.Outset(l.used(p, largest(children), ctx))
	childCtx := l.ChildContext(ctx, 0)
	out := make([]Placed, len(children))
	for i := range out {
		out[i] = Placed{Rect: rect, Context: childCtx}
	}
	return out
}

// used returns the expansion restricted to the axes where the child grew
// past the parent's finite cap.
func (l IgnoreSafeAreaLayout) used(parent ProposalSize, child Size, ctx LayoutContext) EdgeInsets {
	e := l.expansion(ctx)
	if !parent.Width.IsFinite() || child.Width <= parent.Width.Cap() {
		e.Leading, e.Trailing = 0, 0
	}
	if !parent.Height.IsFinite() || child.Height <= parent.Height.Cap() {
		e.Top, e.Bottom = 0, 0
	}
	return e
}

func largest(children []ChildMetadata) Size {
	var s Size
	for _, c := range children {
		s.Width = max(s.Width, c.Size.Width)
		s.Height = max(s.Height, c.Size.Height)
	}
	return s
}

// ChildContext zeroes the ignored edges and records them.
func (l IgnoreSafeAreaLayout) ChildContext(ctx LayoutContext, _ int) LayoutContext {
	return ctx.Ignoring(l.Edges)
}
