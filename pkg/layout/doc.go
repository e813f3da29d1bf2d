// Package layout computes sizes and positions for a declarative view tree
// without depending on any native toolkit.
//
// Every container negotiates with its children in three passes:
//
//   - Propose: the container sends one ProposalSize to each child.
//   - Size: children report the size they chose; the container reports its own.
//   - Place: once the container has been granted a bound, it returns one Rect
//     and one LayoutContext per child.
//
// Native leaves take part through the Measurable contract. Containers are
// built by binding a Layout algorithm to a list of children with
// FixedContainer or Container, and both expose the same Measurable surface
// upward so trees nest arbitrarily. LayoutEngine drives a full pass from a
// screen size and a root safe-area context and returns a Placement tree.
package layout
