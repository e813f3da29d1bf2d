package layout

import (
	"fmt"
	"math"
)

// Size is a width and height in logical units.
type Size struct {
	Width  float64
	Height float64
}

// NewSize returns a Size with the given dimensions.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Clamped returns the size with negative or NaN dimensions replaced by 0.
func (s Size) Clamped() Size {
	return Size{Width: nonNegative(s.Width), Height: nonNegative(s.Height)}
}

// Along returns the dimension of the size on the given axis.
func (s Size) Along(axis Axis) float64 {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Grow returns the size enlarged by the given insets.
func (s Size) Grow(insets EdgeInsets) Size {
	return Size{
		Width:  s.Width + insets.Horizontal(),
		Height: s.Height + insets.Vertical(),
	}
}

// Shrink returns the size reduced by the given insets, never below zero.
func (s Size) Shrink(insets EdgeInsets) Size {
	return Size{
		Width:  nonNegative(s.Width - insets.Horizontal()),
		Height: nonNegative(s.Height - insets.Vertical()),
	}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// sizeAlong builds a Size from main and cross lengths for the given main axis.
func sizeAlong(main Axis, mainLen, crossLen float64) Size {
	if main == Horizontal {
		return Size{Width: mainLen, Height: crossLen}
	}
	return Size{Width: crossLen, Height: mainLen}
}

// Point is an offset in logical units.
type Point struct {
	X float64
	Y float64
}

// Add returns p offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Along returns the coordinate of the point on the given axis.
func (p Point) Along(axis Axis) float64 {
	if axis == Horizontal {
		return p.X
	}
	return p.Y
}

// Rect is the final placement of a view: an origin and a size.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect creates a Rect from an origin and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

func (r Rect) MinX() float64   { return r.Origin.X }
func (r Rect) MinY() float64   { return r.Origin.Y }
func (r Rect) MaxX() float64   { return r.Origin.X + r.Size.Width }
func (r Rect) MaxY() float64   { return r.Origin.Y + r.Size.Height }
func (r Rect) Width() float64  { return r.Size.Width }
func (r Rect) Height() float64 { return r.Size.Height }

// Inset returns the rect shrunk by the given insets. The resulting size is
// clamped to zero; the origin still moves by the leading and top insets.
func (r Rect) Inset(insets EdgeInsets) Rect {
	return Rect{
		Origin: Point{X: r.Origin.X + insets.Leading, Y: r.Origin.Y + insets.Top},
		Size:   r.Size.Shrink(insets),
	}
}

// Outset returns the rect expanded outward by the given insets.
func (r Rect) Outset(insets EdgeInsets) Rect {
	return Rect{
		Origin: Point{X: r.Origin.X - insets.Leading, Y: r.Origin.Y - insets.Top},
		Size:   r.Size.Grow(insets),
	}
}

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Origin: Point{X: r.Origin.X + dx, Y: r.Origin.Y + dy}, Size: r.Size}
}

// ContainsRect reports whether other lies fully within r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.MinX() >= r.MinX() && other.MinY() >= r.MinY() &&
		other.MaxX() <= r.MaxX() && other.MaxY() <= r.MaxY()
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	x := math.Min(r.MinX(), other.MinX())
	y := math.Min(r.MinY(), other.MinY())
	right := math.Max(r.MaxX(), other.MaxX())
	bottom := math.Max(r.MaxY(), other.MaxY())
	return NewRect(x, y, right-x, bottom-y)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %s)", r.Origin.X, r.Origin.Y, r.Size)
}

// rectAlong builds a Rect from main/cross offsets and lengths relative to origin.
func rectAlong(main Axis, origin Point, mainOff, crossOff, mainLen, crossLen float64) Rect {
	if main == Horizontal {
		return NewRect(origin.X+mainOff, origin.Y+crossOff, mainLen, crossLen)
	}
	return NewRect(origin.X+crossOff, origin.Y+mainOff, crossLen, mainLen)
}

// Axis is a layout direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// EdgeSet is a bitset of rectangle edges.
type EdgeSet uint8

const (
	EdgeTop EdgeSet = 1 << iota
	EdgeLeading
	EdgeBottom
	EdgeTrailing

	EdgesNone       EdgeSet = 0
	EdgesHorizontal         = EdgeLeading | EdgeTrailing
	EdgesVertical           = EdgeTop | EdgeBottom
	EdgesAll                = EdgesHorizontal | EdgesVertical
)

// Has reports whether every edge in e is present in s.
func (s EdgeSet) Has(e EdgeSet) bool {
	return s&e == e
}

func (s EdgeSet) String() string {
	if s == EdgesNone {
		return "none"
	}
	if s == EdgesAll {
		return "all"
	}
	names := []struct {
		edge EdgeSet
		name string
	}{
		{EdgeTop, "top"},
		{EdgeLeading, "leading"},
		{EdgeBottom, "bottom"},
		{EdgeTrailing, "trailing"},
	}
	out := ""
	for _, n := range names {
		if s.Has(n.edge) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	return out
}

// EdgeInsets holds a length for each edge of a rectangle. It is used for
// padding amounts and for safe-area envelopes.
type EdgeInsets struct {
	Top      float64
	Leading  float64
	Bottom   float64
	Trailing float64
}

// InsetsAll returns insets with the same value on every edge.
func InsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Top: v, Leading: v, Bottom: v, Trailing: v}
}

// InsetsSymmetric returns insets with vertical (top/bottom) and horizontal
// (leading/trailing) values.
func InsetsSymmetric(vertical, horizontal float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Leading: horizontal, Bottom: vertical, Trailing: horizontal}
}

// Horizontal returns Leading + Trailing.
func (e EdgeInsets) Horizontal() float64 {
	return e.Leading + e.Trailing
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Only keeps the insets on the given edges and zeroes the rest.
func (e EdgeInsets) Only(edges EdgeSet) EdgeInsets {
	var out EdgeInsets
	if edges.Has(EdgeTop) {
		out.Top = e.Top
	}
	if edges.Has(EdgeLeading) {
		out.Leading = e.Leading
	}
	if edges.Has(EdgeBottom) {
		out.Bottom = e.Bottom
	}
	if edges.Has(EdgeTrailing) {
		out.Trailing = e.Trailing
	}
	return out
}

// Without zeroes the insets on the given edges.
func (e EdgeInsets) Without(edges EdgeSet) EdgeInsets {
	return e.Only(EdgesAll &^ edges)
}

// Sub subtracts other edge by edge, clamping each result to zero.
func (e EdgeInsets) Sub(other EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Top:      nonNegative(e.Top - other.Top),
		Leading:  nonNegative(e.Leading - other.Leading),
		Bottom:   nonNegative(e.Bottom - other.Bottom),
		Trailing: nonNegative(e.Trailing - other.Trailing),
	}
}

// Clamped replaces negative or NaN insets with zero.
func (e EdgeInsets) Clamped() EdgeInsets {
	return e.Sub(EdgeInsets{})
}

// IsZero reports whether every inset is zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

func (e EdgeInsets) String() string {
	return fmt.Sprintf("{top:%g leading:%g bottom:%g trailing:%g}", e.Top, e.Leading, e.Bottom, e.Trailing)
}
