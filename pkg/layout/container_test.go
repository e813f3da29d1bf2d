package layout

import "testing"

func TestContainer_ReadsSourceEveryPass(t *testing.T) {
	builds := 0
	heights := []float64{10, 20, 30}
	source := ChildFunc{
		Count: len(heights),
		Build: func(i int) View {
			builds++
			return NewIntrinsic(10, heights[i])
		},
	}
	stack := LazyVStack(5, Leading, source)

	size := stack.SizeThatFits(UnspecifiedProposal(), LayoutContext{})
	expectSize(t, "lazy", size, NewSize(10, 70))
	if builds != 3 {
		t.Errorf("Expected 3 builds, got %d", builds)
	}

	heights[2] = 100
	size = stack.SizeThatFits(UnspecifiedProposal(), LayoutContext{})
	expectSize(t, "rebuilt", size, NewSize(10, 140))
}

func TestContainer_ViewsSource(t *testing.T) {
	views := Views{NewIntrinsic(10, 10), NewIntrinsic(20, 10)}
	row := LazyHStack(0, Top, views)

	p := placeAt(row, 0, 0, 30, 10, LayoutContext{})
	if len(p.Children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(p.Children))
	}
	expectRect(t, "second", p.Children[1].Frame, NewRect(10, 0, 20, 10))

	empty := NewContainer(NewVStackLayout(0, Leading), nil)
	expectSize(t, "empty", empty.SizeThatFits(UnspecifiedProposal(), LayoutContext{}), Size{})
}

func TestContainer_DerivedStretch(t *testing.T) {
	tests := map[string]struct {
		view View
		want StretchAxis
	}{
		"spacer in vstack":         {VStack(0, Leading, Spacer{}), StretchVertical},
		"spacer in hstack":         {HStack(0, Top, Spacer{}), StretchHorizontal},
		"hstack row in vstack":     {VStack(0, Leading, HStack(0, Top, NewIntrinsic(1, 1), Spacer{})), StretchHorizontal},
		"spacer in zstack":         {ZStack(AlignCenter, Spacer{}), StretchNone},
		"fill in padding":          {Padding(InsetsAll(4), Fill{}), StretchBoth},
		"rigid children":           {VStack(0, Leading, NewIntrinsic(1, 1)), StretchNone},
		"explicit override":        {VStack(0, Leading, Spacer{}).SetStretch(StretchHorizontal), StretchHorizontal},
		"cross declared in vstack": {VStack(0, Leading, WithStretch(NewIntrinsic(1, 1), StretchCrossAxis)), StretchHorizontal},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.view.StretchAxis(); got != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestContainer_PriorityOverride(t *testing.T) {
	c := VStack(0, Leading).SetPriority(3)
	if c.LayoutPriority() != 3 {
		t.Errorf("Expected priority 3, got %g", c.LayoutPriority())
	}
	if WithPriority(c, 7).LayoutPriority() != 7 {
		t.Error("Expected modifier to override container priority")
	}
}

func TestContainer_MeasureMatchesSizeThatFits(t *testing.T) {
	c := HStack(2, Top, NewIntrinsic(10, 4), NewIntrinsic(12, 6))
	p := bounded(100, 100)
	if c.Measure(p) != c.SizeThatFits(p, LayoutContext{}) {
		t.Errorf("Expected Measure to equal SizeThatFits, got %s and %s", c.Measure(p), c.SizeThatFits(p, LayoutContext{}))
	}
}

func TestPlacement_Walk(t *testing.T) {
	root := VStack(0, Leading,
		HStack(0, Top, NewIntrinsic(1, 1), NewIntrinsic(1, 1)),
		NewIntrinsic(1, 1),
	)
	p := placeAt(root, 0, 0, 10, 10, LayoutContext{})

	visited, maxDepth := 0, 0
	p.Walk(func(_ Placement, depth int) bool {
		visited++
		maxDepth = max(maxDepth, depth)
		return true
	})
	if visited != 5 || maxDepth != 2 {
		t.Errorf("Expected 5 nodes to depth 2, got %d to depth %d", visited, maxDepth)
	}

	visited = 0
	p.Walk(func(_ Placement, depth int) bool {
		visited++
		return depth == 0
	})
	if visited != 3 {
		t.Errorf("Expected pruned walk to visit 3, got %d", visited)
	}
}

func TestPlacement_Strings(t *testing.T) {
	tests := map[string]struct {
		view View
		want string
	}{
		"vstack":  {VStack(0, Leading), "VStack"},
		"hstack":  {LazyHStack(0, Top, nil), "HStack"},
		"zstack":  {ZStack(AlignCenter), "ZStack"},
		"padding": {Padding(InsetsAll(1), Fill{}), "Padding{top:1 leading:1 bottom:1 trailing:1}"},
		"grid":    {Grid(GridLayout{Columns: 3}), "Grid(3)"},
		"ignore":  {IgnoreSafeArea(EdgeTop|EdgeBottom, Fill{}), "IgnoreSafeArea(top|bottom)"},
		"scroll":  {ScrollView(Vertical, Fill{}), "ScrollView(vertical)"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.view.(interface{ String() string }).String(); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}
