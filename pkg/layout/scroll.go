package layout

// ScrollLayout signals a scrollable region along Axis to the host. It does
// no clamping on that axis: the child is measured without a bound there
// and is placed at its full length even when that runs past the bound.
// The content extent is the ContentBounds of the scroll view's Placement.
type ScrollLayout struct {
	Axis Axis
}

func (s ScrollLayout) Orientation() Axis { return s.Axis }

func (s ScrollLayout) String() string {
	if s.Axis == Horizontal {
		return "ScrollView(horizontal)"
	}
	return "ScrollView(vertical)"
}

func (s ScrollLayout) Propose(parent ProposalSize, children []ChildMetadata, _ LayoutContext) []ProposalSize {
	p := proposalAlong(s.Axis, Unspecified(), parent.Along(s.Axis.Cross()))
	out := make([]ProposalSize, len(children))
	for i := range out {
		out[i] = p
	}
	return out
}

func (s ScrollLayout) Size(parent ProposalSize, children []ChildMetadata, _ LayoutContext) Size {
	main, cross := s.Axis, s.Axis.Cross()
	var mainLen, crossLen float64
	stretchCross := false
	for _, c := range children {
		mainLen = max(mainLen, c.Size.Along(main))
		crossLen = max(crossLen, c.Size.Along(cross))
		stretchCross = stretchCross || c.StretchesAlong(cross)
	}
	if d := parent.Along(main); d.IsFinite() {
		mainLen = d.Cap()
	}
	crossCap := parent.Along(cross)
	if stretchCross && crossCap.IsFinite() {
		crossLen = crossCap.Cap()
	}
	return sizeAlong(main, mainLen, crossCap.Clamp(crossLen))
}

func (s ScrollLayout) Place(bound Rect, _ ProposalSize, children []ChildMetadata, ctx LayoutContext) []Placed {
	main, cross := s.Axis, s.Axis.Cross()
	out := make([]Placed, len(children))
	for i, c := range children {
		mainLen := c.Size.Along(main)
		if c.StretchesAlong(main) {
			mainLen = max(mainLen, bound.Size.Along(main))
		}
		crossLen := min(c.Size.Along(cross), bound.Size.Along(cross))
		if c.StretchesAlong(cross) {
			crossLen = bound.Size.Along(cross)
		}
		out[i] = Placed{Rect: rectAlong(main, bound.Origin, 0, 0, mainLen, crossLen), Context: ctx}
	}
	return out
}

// DeriveStretch makes the scroll view greedy along its axis and keeps the
// content's stretch on the cross axis.
func (s ScrollLayout) DeriveStretch(children []StretchAxis) StretchAxis {
	cross := false
	for _, c := range children {
		cross = cross || c.Along(s.Axis.Cross())
	}
	if s.Axis == Horizontal {
		return stretchOf(true, cross)
	}
	return stretchOf(cross, true)
}
