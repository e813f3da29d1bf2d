package layout

// ZStackLayout layers every child in the same bound. Each axis of the
// container's size is the largest child length on that axis.
type ZStackLayout struct {
	Alignment Alignment
}

func (ZStackLayout) String() string { return "ZStack" }

func (ZStackLayout) Propose(parent ProposalSize, children []ChildMetadata, _ LayoutContext) []ProposalSize {
	out := make([]ProposalSize, len(children))
	for i := range out {
		out[i] = parent
	}
	return out
}

func (ZStackLayout) Size(parent ProposalSize, children []ChildMetadata, _ LayoutContext) Size {
	var size Size
	var stretchH, stretchV bool
	for _, c := range children {
		if c.Size.Width > size.Width {
			size.Width = c.Size.Width
		}
		if c.Size.Height > size.Height {
			size.Height = c.Size.Height
		}
		stretchH = stretchH || c.StretchesAlong(Horizontal)
		stretchV = stretchV || c.StretchesAlong(Vertical)
	}
	if stretchH && parent.Width.IsFinite() {
		size.Width = parent.Width.Cap()
	}
	if stretchV && parent.Height.IsFinite() {
		size.Height = parent.Height.Cap()
	}
	return parent.Clamp(size)
}

func (z ZStackLayout) Place(bound Rect, _ ProposalSize, children []ChildMetadata, ctx LayoutContext) []Placed {
	out := make([]Placed, len(children))
	for i, c := range children {
		out[i] = Placed{Rect: alignWithin(z.Alignment, bound, c), Context: ctx}
	}
	return out
}

// alignWithin sizes a child to fit bound, filling it on the axes the child
// stretches along, and aligns the result.
func alignWithin(a Alignment, bound Rect, c ChildMetadata) Rect {
	size := Size{
		Width:  clamp(c.Size.Width, 0, bound.Size.Width),
		Height: clamp(c.Size.Height, 0, bound.Size.Height),
	}
	if c.StretchesAlong(Horizontal) {
		size.Width = bound.Size.Width
	}
	if c.StretchesAlong(Vertical) {
		size.Height = bound.Size.Height
	}
	return a.Place(bound, size)
}
