package layout

import "fmt"

// LayoutContext carries the safe-area envelope down the tree.
//
// SafeArea holds the insets of the unsafe region measured from the edges of
// the bound the context travels with. Ignored records edges that an
// ancestor has already expanded into. A LayoutContext is a value: every
// helper returns a modified copy.
type LayoutContext struct {
	SafeArea EdgeInsets
	Ignored  EdgeSet
}

// NewLayoutContext creates a root context from the host's safe-area insets.
func NewLayoutContext(safeArea EdgeInsets) LayoutContext {
	return LayoutContext{SafeArea: safeArea.Clamped()}
}

// WithSafeArea returns a copy with the safe-area insets replaced.
func (c LayoutContext) WithSafeArea(safeArea EdgeInsets) LayoutContext {
	c.SafeArea = safeArea.Clamped()
	return c
}

// Ignoring returns the context a child sees after its parent expanded into
// the given edges: those insets are spent and the edges are recorded.
func (c LayoutContext) Ignoring(edges EdgeSet) LayoutContext {
	c.SafeArea = c.SafeArea.Without(edges)
	c.Ignored |= edges
	return c
}

// Consuming returns the context a child sees after its parent applied the
// given insets itself, such as padding. Overlapping safe-area insets are
// subtracted edge by edge.
func (c LayoutContext) Consuming(insets EdgeInsets) LayoutContext {
	c.SafeArea = c.SafeArea.Sub(insets)
	return c
}

func (c LayoutContext) String() string {
	return fmt.Sprintf("safe=%s ignored=%s", c.SafeArea, c.Ignored)
}
