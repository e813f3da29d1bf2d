package layout

// VStack stacks children top to bottom.
func VStack(spacing float64, alignment HorizontalAlignment, children ...View) *FixedContainer {
	return NewFixedContainer(NewVStackLayout(spacing, alignment), children...)
}

// HStack stacks children leading to trailing.
func HStack(spacing float64, alignment VerticalAlignment, children ...View) *FixedContainer {
	return NewFixedContainer(NewHStackLayout(spacing, alignment), children...)
}

// LazyVStack is a VStack whose children are read from source on each pass.
func LazyVStack(spacing float64, alignment HorizontalAlignment, source ChildSource) *Container {
	return NewContainer(NewVStackLayout(spacing, alignment), source)
}

// LazyHStack is an HStack whose children are read from source on each pass.
func LazyHStack(spacing float64, alignment VerticalAlignment, source ChildSource) *Container {
	return NewContainer(NewHStackLayout(spacing, alignment), source)
}

func ZStack(alignment Alignment, children ...View) *FixedContainer {
	return NewFixedContainer(ZStackLayout{Alignment: alignment}, children...)
}

// Overlay draws layer over base without letting it change base's size.
func Overlay(base, layer View, alignment Alignment) *FixedContainer {
	return NewFixedContainer(OverlayLayout{Alignment: alignment}, base, layer)
}

func Padding(insets EdgeInsets, child View) *FixedContainer {
	return NewFixedContainer(PaddingLayout{Insets: insets}, child)
}

func Frame(frame FrameLayout, child View) *FixedContainer {
	return NewFixedContainer(frame, child)
}

// FixedFrame pins child's frame to width x height, centering the child.
func FixedFrame(width, height float64, child View) *FixedContainer {
	return Frame(FrameLayout{
		Width:     FixedLength(width),
		Height:    FixedLength(height),
		Alignment: AlignCenter,
	}, child)
}

func Grid(grid GridLayout, children ...View) *FixedContainer {
	return NewFixedContainer(grid, children...)
}

func ScrollView(axis Axis, child View) *FixedContainer {
	return NewFixedContainer(ScrollLayout{Axis: axis}, child)
}

// IgnoreSafeArea lets child extend into the safe-area insets on edges.
func IgnoreSafeArea(edges EdgeSet, child View) *FixedContainer {
	return NewFixedContainer(IgnoreSafeAreaLayout{Edges: edges}, child)
}
