package layout

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DefaultGridWidth is the width a grid lays out into when its parent
// proposes no finite width and GridLayout.DefaultWidth is unset.
const DefaultGridWidth = 320.0

// ColumnSizing partitions the width left after spacing into column widths.
type ColumnSizing interface {
	ColumnWidths(available float64, columns int) []float64
}

// EqualColumns gives every column the same width.
type EqualColumns struct{}

func (EqualColumns) ColumnWidths(available float64, columns int) []float64 {
	widths := make([]float64, columns)
	for i := range widths {
		widths[i] = nonNegative(available) / float64(columns)
	}
	return widths
}

// WeightedColumns sizes columns proportionally to their weights. Missing
// weights count as 1 and negative weights as 0.
type WeightedColumns []float64

func (w WeightedColumns) ColumnWidths(available float64, columns int) []float64 {
	weights := make([]float64, columns)
	for i := range weights {
		weights[i] = 1
		if i < len(w) {
			weights[i] = nonNegative(w[i])
		}
	}
	total := floats.Sum(weights)
	if total == 0 {
		return EqualColumns{}.ColumnWidths(available, columns)
	}
	floats.Scale(nonNegative(available)/total, weights)
	return weights
}

// GridLayout places children row-major into a fixed number of columns.
// Each row is as tall as its tallest cell.
type GridLayout struct {
	Columns           int
	HorizontalSpacing float64
	VerticalSpacing   float64
	// Alignment positions each child within its cell.
	Alignment Alignment
	// Sizing defaults to EqualColumns.
	Sizing ColumnSizing
	// DefaultWidth replaces DefaultGridWidth when positive.
	DefaultWidth float64
}

func (g GridLayout) String() string { return fmt.Sprintf("Grid(%d)", g.columns()) }

func (g GridLayout) columns() int {
	if g.Columns < 1 {
		return 1
	}
	return g.Columns
}

func (g GridLayout) rows(n int) int {
	c := g.columns()
	return (n + c - 1) / c
}

// width resolves the width the grid lays out into.
func (g GridLayout) width(parent Dimension) float64 {
	if parent.IsFinite() {
		return parent.Cap()
	}
	if g.DefaultWidth > 0 {
		return g.DefaultWidth
	}
	return DefaultGridWidth
}

func (g GridLayout) columnWidths(width float64) []float64 {
	c := g.columns()
	sizing := g.Sizing
	if sizing == nil {
		sizing = EqualColumns{}
	}
	available := width - nonNegative(g.HorizontalSpacing)*float64(c-1)
	widths := sizing.ColumnWidths(available, c)
	if len(widths) != c {
		widths = EqualColumns{}.ColumnWidths(available, c)
	}
	return widths
}

func (g GridLayout) rowHeights(children []ChildMetadata) []float64 {
	c := g.columns()
	heights := make([]float64, g.rows(len(children)))
	for i, child := range children {
		if r := i / c; child.Size.Height > heights[r] {
			heights[r] = child.Size.Height
		}
	}
	return heights
}

func (g GridLayout) Propose(parent ProposalSize, children []ChildMetadata, _ LayoutContext) []ProposalSize {
	widths := g.columnWidths(g.width(parent.Width))
	out := make([]ProposalSize, len(children))
	for i := range out {
		out[i] = ProposalSize{Width: Bounded(widths[i%len(widths)]), Height: Unspecified()}
	}
	return out
}

func (g GridLayout) Size(parent ProposalSize, children []ChildMetadata, _ LayoutContext) Size {
	heights := g.rowHeights(children)
	height := floats.Sum(heights)
	if len(heights) > 1 {
		height += nonNegative(g.VerticalSpacing) * float64(len(heights)-1)
	}
	return parent.Clamp(Size{Width: g.width(parent.Width), Height: height})
}

func (g GridLayout) Place(bound Rect, _ ProposalSize, children []ChildMetadata, ctx LayoutContext) []Placed {
	c := g.columns()
	widths := g.columnWidths(bound.Size.Width)
	heights := g.rowHeights(children)

	out := make([]Placed, len(children))
	y := 0.0
	for r, rowHeight := range heights {
		cellHeight := clamp(rowHeight, 0, bound.Size.Height-y)
		x := 0.0
		for col := 0; col < c; col++ {
			i := r*c + col
			if i >= len(children) {
				break
			}
			cell := NewRect(bound.Origin.X+x, bound.Origin.Y+y, clamp(widths[col], 0, bound.Size.Width-x), cellHeight)
			out[i] = Placed{Rect: alignWithin(g.Alignment, cell, children[i]), Context: ctx}
			x = min(x+widths[col]+nonNegative(g.HorizontalSpacing), bound.Size.Width)
		}
		y = min(y+rowHeight+nonNegative(g.VerticalSpacing), bound.Size.Height)
	}
	return out
}
