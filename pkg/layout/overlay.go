package layout

// OverlayLayout composes a base and a layer. The container is exactly as
// large as the base; the layer is proposed the base's measured size and
// may be drawn past the container's edges.
//
// Children beyond the second are treated as further layers over the same
// base.
type OverlayLayout struct {
	Alignment Alignment
}

func (OverlayLayout) String() string { return "Overlay" }

// ProposeNext proposes the parent's proposal to the base and the base's
// measured size to every layer.
func (OverlayLayout) ProposeNext(parent ProposalSize, measured []ChildMetadata, _ LayoutContext) ProposalSize {
	if len(measured) == 0 {
		return parent
	}
	return ProposalFrom(measured[0].Size)
}

// Propose applies ProposeNext to every prefix of children, so layers are
// proposed whatever size the base reports in children[0].
func (o OverlayLayout) Propose(parent ProposalSize, children []ChildMetadata, ctx LayoutContext) []ProposalSize {
	out := make([]ProposalSize, len(children))
	for i := range out {
		out[i] = o.ProposeNext(parent, children[:i], ctx)
	}
	return out
}

func (OverlayLayout) Size(parent ProposalSize, children []ChildMetadata, _ LayoutContext) Size {
	if len(children) == 0 {
		return Size{}
	}
	return parent.Clamp(children[0].Size)
}

func (o OverlayLayout) Place(bound Rect, _ ProposalSize, children []ChildMetadata, ctx LayoutContext) []Placed {
	out := make([]Placed, len(children))
	for i, c := range children {
		if i == 0 {
			out[i] = Placed{Rect: bound, Context: ctx}
			continue
		}
		out[i] = Placed{Rect: o.Alignment.Place(bound, c.Size), Context: ctx}
	}
	return out
}

// DeriveStretch surfaces only the base's stretch.
func (OverlayLayout) DeriveStretch(children []StretchAxis) StretchAxis {
	if len(children) == 0 {
		return StretchNone
	}
	return children[0]
}
