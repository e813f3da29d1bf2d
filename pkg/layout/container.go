package layout

import (
	"fmt"

	"go.uber.org/zap"
)

// Placement is the computed frame of a view and of its descendants. Frames
// are absolute: they share the coordinate space of the root bound.
type Placement struct {
	View View
	// Layout is the algorithm that placed Children; nil for leaves.
	Layout   Layout
	Frame    Rect
	Context  LayoutContext
	Children []Placement
}

// Walk visits p and its descendants depth-first in child order. Returning
// false from fn skips the descendants of that placement.
func (p Placement) Walk(fn func(p Placement, depth int) bool) {
	p.walk(fn, 0)
}

func (p Placement) walk(fn func(Placement, int) bool, depth int) {
	if !fn(p, depth) {
		return
	}
	for _, child := range p.Children {
		child.walk(fn, depth+1)
	}
}

// ContentBounds returns the union of the children's frames, or the frame
// itself when there are no children. For a scroll view this is the
// scrollable content extent the host needs.
func (p Placement) ContentBounds() Rect {
	if len(p.Children) == 0 {
		return p.Frame
	}
	bounds := p.Children[0].Frame
	for _, child := range p.Children[1:] {
		bounds = bounds.Union(child.Frame)
	}
	return bounds
}

// ChildSource supplies the children of a dynamic Container. It is consulted
// on every pass, so implementations may rebuild children lazily.
type ChildSource interface {
	Len() int
	At(i int) View
}

// Views is a ChildSource over a fixed slice.
type Views []View

func (v Views) Len() int      { return len(v) }
func (v Views) At(i int) View { return v[i] }

// ChildFunc is a ChildSource that builds child i on demand.
type ChildFunc struct {
	Count int
	Build func(i int) View
}

func (c ChildFunc) Len() int      { return c.Count }
func (c ChildFunc) At(i int) View { return c.Build(i) }

// binding holds what both container kinds share: the algorithm and the
// capability overrides the container exposes upward.
type binding struct {
	layout   Layout
	stretch  *StretchAxis
	priority float64
}

// FixedContainer binds a Layout to a static list of children.
type FixedContainer struct {
	binding
	children []View
}

// NewFixedContainer binds l to the given children.
func NewFixedContainer(l Layout, children ...View) *FixedContainer {
	return &FixedContainer{binding: binding{layout: l}, children: children}
}

// Children returns the container's children.
func (c *FixedContainer) Children() []View { return c.children }

// Layout returns the bound algorithm.
func (c *FixedContainer) Layout() Layout { return c.layout }

// SetStretch overrides the stretch declaration derived from the children.
func (c *FixedContainer) SetStretch(s StretchAxis) *FixedContainer {
	c.stretch = &s
	return c
}

// SetPriority sets the layout priority the container reports upward.
func (c *FixedContainer) SetPriority(p float64) *FixedContainer {
	c.priority = p
	return c
}

func (c *FixedContainer) Measure(p ProposalSize) Size {
	return c.SizeThatFits(p, LayoutContext{})
}

func (c *FixedContainer) StretchAxis() StretchAxis { return c.derivedStretch(c.children) }
func (c *FixedContainer) LayoutPriority() float64  { return c.priority }

func (c *FixedContainer) SizeThatFits(p ProposalSize, ctx LayoutContext) Size {
	return c.sizeThatFits(c, c.children, p, ctx)
}

func (c *FixedContainer) Place(bound Rect, p ProposalSize, ctx LayoutContext) Placement {
	return c.place(c, c.children, bound, p, ctx)
}

func (c *FixedContainer) String() string { return fmt.Sprint(c.layout) }

// Container binds a Layout to a ChildSource that is re-read on every pass.
type Container struct {
	binding
	source ChildSource
}

// NewContainer binds l to the given child source.
func NewContainer(l Layout, source ChildSource) *Container {
	return &Container{binding: binding{layout: l}, source: source}
}

// Layout returns the bound algorithm.
func (c *Container) Layout() Layout { return c.layout }

// SetStretch overrides the stretch declaration derived from the children.
func (c *Container) SetStretch(s StretchAxis) *Container {
	c.stretch = &s
	return c
}

// SetPriority sets the layout priority the container reports upward.
func (c *Container) SetPriority(p float64) *Container {
	c.priority = p
	return c
}

func (c *Container) children() []View {
	if c.source == nil {
		return nil
	}
	views := make([]View, c.source.Len())
	for i := range views {
		views[i] = c.source.At(i)
	}
	return views
}

func (c *Container) Measure(p ProposalSize) Size {
	return c.SizeThatFits(p, LayoutContext{})
}

func (c *Container) StretchAxis() StretchAxis { return c.derivedStretch(c.children()) }
func (c *Container) LayoutPriority() float64  { return c.priority }

func (c *Container) SizeThatFits(p ProposalSize, ctx LayoutContext) Size {
	return c.sizeThatFits(c, c.children(), p, ctx)
}

func (c *Container) Place(bound Rect, p ProposalSize, ctx LayoutContext) Placement {
	return c.place(c, c.children(), bound, p, ctx)
}

func (c *Container) String() string { return fmt.Sprint(c.layout) }

func (b *binding) derivedStretch(children []View) StretchAxis {
	if b.stretch != nil {
		return *b.stretch
	}
	main, oriented := orientation(b.layout)
	resolved := make([]StretchAxis, len(children))
	for i, child := range children {
		resolved[i] = child.StretchAxis().Resolve(main, oriented)
	}
	if d, ok := b.layout.(StretchDeriver); ok {
		return d.DeriveStretch(resolved)
	}
	out := StretchNone
	for _, s := range resolved {
		out = out.Union(s)
	}
	return out
}

// measure runs the propose step and measures every child with its proposal.
func (b *binding) measure(children []View, p ProposalSize, ctx LayoutContext) []ChildMetadata {
	main, oriented := orientation(b.layout)
	meta := make([]ChildMetadata, len(children))
	for i, child := range children {
		meta[i] = ChildMetadata{
			Stretch:   child.StretchAxis().Resolve(main, oriented),
			Priority:  child.LayoutPriority(),
			MinLength: minLength(child),
		}
	}

	if seq, ok := b.layout.(SequentialLayout); ok {
		for i, child := range children {
			proposal := seq.ProposeNext(p, meta[:i], ctx)
			meta[i].Proposal = proposal
			meta[i].Size = sizeThatFits(child, proposal, childContext(b.layout, ctx, i))
		}
		return meta
	}

	proposals := b.layout.Propose(p, meta, ctx)
	for i, child := range children {
		var proposal ProposalSize
		if i < len(proposals) {
			proposal = proposals[i]
		}
		meta[i].Proposal = proposal
		meta[i].Size = sizeThatFits(child, proposal, childContext(b.layout, ctx, i))
	}
	return meta
}

func (b *binding) sizeThatFits(self View, children []View, p ProposalSize, ctx LayoutContext) Size {
	meta := b.measure(children, p, ctx)
	size := b.layout.Size(p, meta, ctx).Clamped()
	tracePass("size",
		zap.Stringer("layout", stringer{self}),
		zap.Int("children", len(children)),
		zap.Stringer("proposal", p),
		zap.Stringer("size", size),
	)
	return size
}

func (b *binding) place(self View, children []View, bound Rect, p ProposalSize, ctx LayoutContext) Placement {
	meta := b.measure(children, p, ctx)
	placed := b.layout.Place(bound, p, meta, ctx)
	tracePass("place",
		zap.Stringer("layout", stringer{self}),
		zap.Int("children", len(children)),
		zap.Stringer("bound", bound),
		zap.Stringer("context", ctx),
	)

	out := Placement{View: self, Layout: b.layout, Frame: bound, Context: ctx}
	if len(children) > 0 {
		out.Children = make([]Placement, len(children))
	}
	for i, child := range children {
		pl := placedOrDefault(placed, i, ctx)
		out.Children[i] = placeView(child, pl.Rect, ProposalFrom(pl.Rect.Size), pl.Context)
	}
	return out
}

// stringer formats any value lazily for log fields.
type stringer struct{ v any }

func (s stringer) String() string { return fmt.Sprint(s.v) }
