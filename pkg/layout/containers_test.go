package layout

import (
	"testing"
)

func TestZStack_MaxPerAxis(t *testing.T) {
	z := ZStack(AlignCenter, NewIntrinsic(100, 20), NewIntrinsic(30, 60))

	size := z.SizeThatFits(UnspecifiedProposal(), LayoutContext{})
	expectSize(t, "zstack", size, NewSize(100, 60))

	p := placeAt(z, 0, 0, 100, 60, LayoutContext{})
	expectRect(t, "wide", p.Children[0].Frame, NewRect(0, 20, 100, 20))
	expectRect(t, "tall", p.Children[1].Frame, NewRect(35, 0, 30, 60))
}

func TestZStack_SameProposalToEveryChild(t *testing.T) {
	a, b := newRecorder(1, 1), newRecorder(2, 2)
	ZStack(AlignCenter, a, b).SizeThatFits(bounded(80, 40), LayoutContext{})

	if *a.last != *b.last || a.last.Width.Cap() != 80 || a.last.Height.Cap() != 40 {
		t.Errorf("Expected both children proposed [80, 40], got %s and %s", a.last, b.last)
	}
}

func TestZStack_StretchingChildFillsBound(t *testing.T) {
	z := ZStack(AlignTopLeading, Fill{}, NewIntrinsic(10, 10))

	expectSize(t, "bounded", z.SizeThatFits(bounded(50, 40), LayoutContext{}), NewSize(50, 40))
	p := placeAt(z, 0, 0, 50, 40, LayoutContext{})
	expectRect(t, "fill", p.Children[0].Frame, NewRect(0, 0, 50, 40))
}

func TestOverlay_SizeIsBase(t *testing.T) {
	rogue := MeasureFunc(func(ProposalSize) Size { return NewSize(500, 500) })

	tests := map[string]struct {
		base  View
		layer View
		want  Size
	}{
		"larger layer":  {NewIntrinsic(100, 50), NewIntrinsic(300, 300), NewSize(100, 50)},
		"smaller layer": {NewIntrinsic(100, 50), NewIntrinsic(10, 10), NewSize(100, 50)},
		"greedy layer":  {NewIntrinsic(60, 20), Fill{}, NewSize(60, 20)},
		"rogue layer":   {NewIntrinsic(60, 20), rogue, NewSize(60, 20)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			o := Overlay(tc.base, tc.layer, AlignCenter)
			expectSize(t, "overlay", o.SizeThatFits(UnspecifiedProposal(), LayoutContext{}), tc.want)
			expectSize(t, "overlay bounded", o.SizeThatFits(bounded(1000, 1000), LayoutContext{}), tc.want)
		})
	}
}

func TestOverlay_LayerProposedBaseSize(t *testing.T) {
	layer := newRecorder(10, 10)
	Overlay(NewIntrinsic(120, 40), layer, AlignCenter).SizeThatFits(UnspecifiedProposal(), LayoutContext{})

	if layer.last.Width.Cap() != 120 || layer.last.Height.Cap() != 40 {
		t.Errorf("Expected layer proposal [120, 40], got %s", layer.last)
	}
}

func TestOverlay_LayerNotClipped(t *testing.T) {
	rogue := MeasureFunc(func(ProposalSize) Size { return NewSize(140, 70) })
	o := Overlay(NewIntrinsic(100, 50), rogue, AlignCenter)

	p := placeAt(o, 10, 10, 100, 50, LayoutContext{})
	expectRect(t, "base", p.Children[0].Frame, NewRect(10, 10, 100, 50))
	expectRect(t, "layer", p.Children[1].Frame, NewRect(-10, 0, 140, 70))
}

func TestOverlay_StretchFollowsBase(t *testing.T) {
	if s := Overlay(NewIntrinsic(1, 1), Fill{}, AlignCenter).StretchAxis(); s != StretchNone {
		t.Errorf("Expected none, got %s", s)
	}
	if s := Overlay(Fill{}, NewIntrinsic(1, 1), AlignCenter).StretchAxis(); s != StretchBoth {
		t.Errorf("Expected both, got %s", s)
	}
}

func TestPadding_InflatesChild(t *testing.T) {
	tests := map[string]struct {
		proposal     ProposalSize
		wantProposal ProposalSize
	}{
		"unspecified": {UnspecifiedProposal(), UnspecifiedProposal()},
		"bounded":     {bounded(300, 200), bounded(268, 168)},
		"too small":   {bounded(20, 200), bounded(0, 168)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			child := newRecorder(100, 50)
			size := Padding(InsetsAll(16), child).SizeThatFits(tc.proposal, LayoutContext{})
			if *child.last != tc.wantProposal {
				t.Errorf("Expected child proposal %s, got %s", tc.wantProposal, child.last)
			}
			want := tc.proposal.Clamp(NewSize(132, 82))
			expectSize(t, "padding", size, want)
		})
	}
}

func TestPadding_PlacesChildInsetAndConsumesSafeArea(t *testing.T) {
	ctx := NewLayoutContext(EdgeInsets{Top: 10, Leading: 30})
	pad := Padding(InsetsAll(16), NewIntrinsic(100, 50))

	p := placeAt(pad, 0, 0, 132, 82, ctx)
	expectRect(t, "child", p.Children[0].Frame, NewRect(16, 16, 100, 50))

	got := p.Children[0].Context.SafeArea
	if got.Top != 0 || got.Leading != 14 {
		t.Errorf("Expected top 0 and leading 14, got %s", got)
	}
}

func TestFrame_Resolution(t *testing.T) {
	tests := map[string]struct {
		frame    FrameLayout
		child    View
		proposal ProposalSize
		want     Size
	}{
		"fixed": {
			FrameLayout{Width: FixedLength(80), Height: FixedLength(40)},
			NewIntrinsic(20, 10), UnspecifiedProposal(), NewSize(80, 40),
		},
		"max clamps parent": {
			FrameLayout{Width: FrameAxis{Max: Bounded(100)}},
			NewIntrinsic(300, 10), NewProposal(Bounded(250), Unspecified()), NewSize(100, 10),
		},
		"min raises parent": {
			FrameLayout{Width: FrameAxis{Min: Bounded(120)}},
			NewIntrinsic(10, 10), NewProposal(Bounded(90), Unspecified()), NewSize(90, 10),
		},
		"unbounded max takes parent": {
			FrameLayout{Width: FrameAxis{Max: Unbounded()}},
			NewIntrinsic(10, 10), NewProposal(Bounded(250), Unspecified()), NewSize(250, 10),
		},
		"ideal when unspecified": {
			FrameLayout{Width: FrameAxis{Ideal: Bounded(60), Max: Bounded(50)}},
			NewIntrinsic(10, 10), UnspecifiedProposal(), NewSize(50, 10),
		},
		"min over child": {
			FrameLayout{Height: FrameAxis{Min: Bounded(50)}},
			NewIntrinsic(10, 20), UnspecifiedProposal(), NewSize(10, 50),
		},
		"finite max on unbounded parent": {
			FrameLayout{Width: FrameAxis{Max: Bounded(70)}},
			NewIntrinsic(10, 10), NewProposal(Unbounded(), Unspecified()), NewSize(70, 10),
		},
		"transparent": {
			FrameLayout{},
			NewIntrinsic(33, 44), bounded(100, 100), NewSize(33, 44),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			size := Frame(tc.frame, tc.child).SizeThatFits(tc.proposal, LayoutContext{})
			expectSize(t, name, size, tc.want)
		})
	}
}

func TestFrame_AlignsChild(t *testing.T) {
	p := placeAt(FixedFrame(80, 40, NewIntrinsic(20, 10)), 0, 0, 80, 40, LayoutContext{})
	expectRect(t, "centered", p.Children[0].Frame, NewRect(30, 15, 20, 10))

	f := Frame(FrameLayout{Width: FixedLength(80), Height: FixedLength(40), Alignment: AlignBottomTrailing}, NewIntrinsic(20, 10))
	p = placeAt(f, 0, 0, 80, 40, LayoutContext{})
	expectRect(t, "bottom trailing", p.Children[0].Frame, NewRect(60, 30, 20, 10))
}

func TestFrame_Stretch(t *testing.T) {
	tests := map[string]struct {
		frame FrameLayout
		child View
		want  StretchAxis
	}{
		"fixed pins fill":         {FrameLayout{Width: FixedLength(10), Height: FixedLength(10)}, Fill{}, StretchNone},
		"transparent keeps child": {FrameLayout{Width: FixedLength(10)}, Fill{}, StretchVertical},
		"infinite max":            {FrameLayout{Width: FrameAxis{Max: Unbounded()}}, NewIntrinsic(1, 1), StretchHorizontal},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Frame(tc.frame, tc.child).StretchAxis(); got != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestGrid_RowHeight(t *testing.T) {
	grid := Grid(GridLayout{Columns: 2}, NewIntrinsic(10, 20), NewIntrinsic(10, 40), NewIntrinsic(10, 5))

	size := grid.SizeThatFits(NewProposal(Bounded(200), Unspecified()), LayoutContext{})
	expectSize(t, "grid", size, NewSize(200, 45))

	p := placeAt(grid, 0, 0, 200, 45, LayoutContext{})
	expectRect(t, "a", p.Children[0].Frame, NewRect(0, 0, 10, 20))
	expectRect(t, "b", p.Children[1].Frame, NewRect(100, 0, 10, 40))
	expectRect(t, "c", p.Children[2].Frame, NewRect(0, 40, 10, 5))
	if p.Children[0].Frame.MinY() != p.Children[1].Frame.MinY() {
		t.Error("Expected cells of one row at the same y")
	}
}

func TestGrid_ProposesColumnWidth(t *testing.T) {
	cell := newRecorder(1, 1)
	Grid(GridLayout{Columns: 3, HorizontalSpacing: 15}, cell).SizeThatFits(bounded(330, 100), LayoutContext{})

	if cell.last.Width.Cap() != 100 || cell.last.Height.IsSpecified() {
		t.Errorf("Expected [100, nil], got %s", cell.last)
	}
}

func TestGrid_DefaultWidth(t *testing.T) {
	tests := map[string]struct {
		grid     GridLayout
		proposal ProposalSize
		want     float64
	}{
		"unspecified": {GridLayout{Columns: 2}, UnspecifiedProposal(), DefaultGridWidth},
		"unbounded":   {GridLayout{Columns: 2}, NewProposal(Unbounded(), Unspecified()), DefaultGridWidth},
		"configured":  {GridLayout{Columns: 2, DefaultWidth: 500}, UnspecifiedProposal(), 500},
		"finite":      {GridLayout{Columns: 2, DefaultWidth: 500}, NewProposal(Bounded(90), Unspecified()), 90},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			size := Grid(tc.grid, NewIntrinsic(10, 10)).SizeThatFits(tc.proposal, LayoutContext{})
			if size.Width != tc.want {
				t.Errorf("Expected width %g, got %g", tc.want, size.Width)
			}
		})
	}
}

func TestGrid_WeightedColumns(t *testing.T) {
	widths := WeightedColumns{1, 3}.ColumnWidths(200, 2)
	if len(widths) != 2 || widths[0] != 50 || widths[1] != 150 {
		t.Errorf("Expected [50 150], got %v", widths)
	}

	widths = WeightedColumns{0, 0}.ColumnWidths(100, 2)
	if widths[0] != 50 || widths[1] != 50 {
		t.Errorf("Expected equal fallback, got %v", widths)
	}

	grid := Grid(GridLayout{Columns: 2, Sizing: WeightedColumns{1, 3}}, NewIntrinsic(500, 10), NewIntrinsic(500, 10))
	p := placeAt(grid, 0, 0, 200, 10, LayoutContext{})
	expectRect(t, "narrow", p.Children[0].Frame, NewRect(0, 0, 50, 10))
	expectRect(t, "wide", p.Children[1].Frame, NewRect(50, 0, 150, 10))
}

func TestScrollView_ContentExceedsBound(t *testing.T) {
	content := VStack(0, Leading, NewIntrinsic(50, 300), NewIntrinsic(50, 300))
	scroll := ScrollView(Vertical, content)

	size := scroll.SizeThatFits(bounded(100, 200), LayoutContext{})
	expectSize(t, "scroll", size, NewSize(50, 200))

	size = scroll.SizeThatFits(UnspecifiedProposal(), LayoutContext{})
	expectSize(t, "unspecified", size, NewSize(50, 600))

	p := placeAt(scroll, 0, 0, 100, 200, LayoutContext{})
	expectRect(t, "content", p.Children[0].Frame, NewRect(0, 0, 50, 600))
	expectRect(t, "content bounds", p.ContentBounds(), NewRect(0, 0, 50, 600))

	if s := scroll.StretchAxis(); s != StretchVertical {
		t.Errorf("Expected vertical stretch, got %s", s)
	}
}
