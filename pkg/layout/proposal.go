package layout

import (
	"fmt"
	"math"
)

// Dimension is the proposal for a single axis.
//
// The zero value is unspecified: the child reports its ideal length. A
// specified value is a hard upper bound, and +Inf means "take as much as
// you want".
type Dimension struct {
	value     float64
	specified bool
}

// Unspecified returns a Dimension that carries no upper bound.
func Unspecified() Dimension {
	return Dimension{}
}

// Bounded returns a Dimension capped at v. Negative and NaN values clamp to 0.
func Bounded(v float64) Dimension {
	return Dimension{value: nonNegative(v), specified: true}
}

// Unbounded returns a specified Dimension of +Inf.
func Unbounded() Dimension {
	return Dimension{value: math.Inf(1), specified: true}
}

// Value returns the proposed length and whether one was specified.
func (d Dimension) Value() (float64, bool) {
	return d.value, d.specified
}

// IsSpecified reports whether the dimension carries a bound.
func (d Dimension) IsSpecified() bool {
	return d.specified
}

// IsUnbounded reports whether the dimension is specified as +Inf.
func (d Dimension) IsUnbounded() bool {
	return d.specified && math.IsInf(d.value, 1)
}

// IsFinite reports whether the dimension is a specified, finite bound.
func (d Dimension) IsFinite() bool {
	return d.specified && !math.IsInf(d.value, 1)
}

// Or returns the proposed value, or fallback when unspecified.
func (d Dimension) Or(fallback float64) float64 {
	if d.specified {
		return d.value
	}
	return fallback
}

// Cap returns the upper bound implied by the dimension; +Inf when unspecified.
func (d Dimension) Cap() float64 {
	return d.Or(math.Inf(1))
}

// Clamp restricts v to [0, Cap()].
func (d Dimension) Clamp(v float64) float64 {
	return math.Min(nonNegative(v), d.Cap())
}

// Shrink reduces a specified dimension by amount, never below zero.
func (d Dimension) Shrink(amount float64) Dimension {
	if !d.specified {
		return d
	}
	return Bounded(d.value - amount)
}

// Grow enlarges a specified dimension by amount.
func (d Dimension) Grow(amount float64) Dimension {
	if !d.specified {
		return d
	}
	return Bounded(d.value + amount)
}

func (d Dimension) String() string {
	switch {
	case !d.specified:
		return "nil"
	case d.IsUnbounded():
		return "inf"
	default:
		return fmt.Sprintf("%g", d.value)
	}
}

// ProposalSize is a soft constraint on both axes offered to a child before
// it is measured.
type ProposalSize struct {
	Width  Dimension
	Height Dimension
}

// NewProposal returns a ProposalSize from two dimensions.
func NewProposal(width, height Dimension) ProposalSize {
	return ProposalSize{Width: width, Height: height}
}

// UnspecifiedProposal asks a child for its ideal size on both axes.
func UnspecifiedProposal() ProposalSize {
	return ProposalSize{}
}

// ProposalFrom proposes exactly the given size as a cap on both axes.
func ProposalFrom(s Size) ProposalSize {
	return ProposalSize{Width: Bounded(s.Width), Height: Bounded(s.Height)}
}

// Along returns the proposal for the given axis.
func (p ProposalSize) Along(axis Axis) Dimension {
	if axis == Horizontal {
		return p.Width
	}
	return p.Height
}

// Inset shrinks each specified axis by the insets on that axis.
func (p ProposalSize) Inset(insets EdgeInsets) ProposalSize {
	return ProposalSize{
		Width:  p.Width.Shrink(insets.Horizontal()),
		Height: p.Height.Shrink(insets.Vertical()),
	}
}

// Outset grows each specified axis by the insets on that axis.
func (p ProposalSize) Outset(insets EdgeInsets) ProposalSize {
	return ProposalSize{
		Width:  p.Width.Grow(insets.Horizontal()),
		Height: p.Height.Grow(insets.Vertical()),
	}
}

// Clamp caps s to the proposal on each axis and clamps negatives to zero.
func (p ProposalSize) Clamp(s Size) Size {
	return Size{Width: p.Width.Clamp(s.Width), Height: p.Height.Clamp(s.Height)}
}

func (p ProposalSize) String() string {
	return fmt.Sprintf("[%s, %s]", p.Width, p.Height)
}

// proposalAlong builds a ProposalSize from main and cross dimensions.
func proposalAlong(main Axis, mainDim, crossDim Dimension) ProposalSize {
	if main == Horizontal {
		return ProposalSize{Width: mainDim, Height: crossDim}
	}
	return ProposalSize{Width: crossDim, Height: mainDim}
}
