package layout

// HorizontalAlignment positions content along the x axis.
type HorizontalAlignment uint8

const (
	Leading HorizontalAlignment = iota
	HorizontalCenter
	Trailing
)

// VerticalAlignment positions content along the y axis.
type VerticalAlignment uint8

const (
	Top VerticalAlignment = iota
	VerticalCenter
	Bottom
)

func (h HorizontalAlignment) fraction() float64 {
	switch h {
	case HorizontalCenter:
		return 0.5
	case Trailing:
		return 1
	default:
		return 0
	}
}

func (v VerticalAlignment) fraction() float64 {
	switch v {
	case VerticalCenter:
		return 0.5
	case Bottom:
		return 1
	default:
		return 0
	}
}

func (h HorizontalAlignment) String() string {
	switch h {
	case HorizontalCenter:
		return "center"
	case Trailing:
		return "trailing"
	default:
		return "leading"
	}
}

func (v VerticalAlignment) String() string {
	switch v {
	case VerticalCenter:
		return "center"
	case Bottom:
		return "bottom"
	default:
		return "top"
	}
}

// Alignment is a 2D alignment: one of nine compass points.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

var (
	AlignTopLeading     = Alignment{Leading, Top}
	AlignTop            = Alignment{HorizontalCenter, Top}
	AlignTopTrailing    = Alignment{Trailing, Top}
	AlignLeading        = Alignment{Leading, VerticalCenter}
	AlignCenter         = Alignment{HorizontalCenter, VerticalCenter}
	AlignTrailing       = Alignment{Trailing, VerticalCenter}
	AlignBottomLeading  = Alignment{Leading, Bottom}
	AlignBottom         = Alignment{HorizontalCenter, Bottom}
	AlignBottomTrailing = Alignment{Trailing, Bottom}
)

// fraction returns 0, 0.5 or 1 for start, center or end along the axis.
func (a Alignment) fraction(axis Axis) float64 {
	if axis == Horizontal {
		return a.Horizontal.fraction()
	}
	return a.Vertical.fraction()
}

// Position returns the origin of an item of the given size aligned within
// bound. The item may be larger than bound, in which case the offset is
// negative for centered and trailing alignments.
func (a Alignment) Position(bound Rect, item Size) Point {
	return Point{
		X: bound.Origin.X + (bound.Size.Width-item.Width)*a.Horizontal.fraction(),
		Y: bound.Origin.Y + (bound.Size.Height-item.Height)*a.Vertical.fraction(),
	}
}

// Place returns a rect of the given size aligned within bound.
func (a Alignment) Place(bound Rect, item Size) Rect {
	return Rect{Origin: a.Position(bound, item), Size: item}
}

func (a Alignment) String() string {
	return a.Vertical.String() + "-" + a.Horizontal.String()
}
