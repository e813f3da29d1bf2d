package layout

import "fmt"

// PaddingLayout insets a single child. Safe-area insets overlapping the
// padding are consumed before the context reaches the child.
type PaddingLayout struct {
	Insets EdgeInsets
}

func (p PaddingLayout) String() string { return fmt.Sprintf("Padding%s", p.Insets) }

func (p PaddingLayout) insets() EdgeInsets { return p.Insets.Clamped() }

func (p PaddingLayout) Propose(parent ProposalSize, children []ChildMetadata, _ LayoutContext) []ProposalSize {
	out := make([]ProposalSize, len(children))
	inner := parent.Inset(p.insets())
	for i := range out {
		out[i] = inner
	}
	return out
}

func (p PaddingLayout) Size(parent ProposalSize, children []ChildMetadata, _ LayoutContext) Size {
	var content Size
	for _, c := range children {
		content.Width = max(content.Width, c.Size.Width)
		content.Height = max(content.Height, c.Size.Height)
	}
	return parent.Clamp(content.Grow(p.insets()))
}

func (p PaddingLayout) Place(bound Rect, _ ProposalSize, children []ChildMetadata, ctx LayoutContext) []Placed {
	inner := bound.Inset(p.insets())
	childCtx := p.ChildContext(ctx, 0)
	out := make([]Placed, len(children))
	for i := range out {
		out[i] = Placed{Rect: inner, Context: childCtx}
	}
	return out
}

// ChildContext subtracts the padding from the safe area.
func (p PaddingLayout) ChildContext(ctx LayoutContext, _ int) LayoutContext {
	return ctx.Consuming(p.insets())
}
