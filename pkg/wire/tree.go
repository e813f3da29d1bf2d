package wire

import (
	"encoding/binary"
	"fmt"

	"waterlayout/pkg/layout"
)

// NodeLen is the size of one pre-order node of an encoded placement tree.
const NodeLen = PlacedLen + 4

// EncodePlacement writes p and its descendants in pre-order. Each node is
// a Placed record followed by a u32 child count; the list is prefixed with
// the total node count. Views and layouts are not encoded.
func EncodePlacement(p layout.Placement) []byte {
	nodes := 0
	p.Walk(func(layout.Placement, int) bool {
		nodes++
		return true
	})
	dst := make([]byte, 0, 4+nodes*NodeLen)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(nodes))
	p.Walk(func(n layout.Placement, _ int) bool {
		dst = AppendPlaced(dst, layout.Placed{Rect: n.Frame, Context: n.Context})
		dst = binary.LittleEndian.AppendUint32(dst, uint32(len(n.Children)))
		return true
	})
	return dst
}

// DecodePlacement rebuilds a tree written by EncodePlacement. The decoded
// placements carry frames and contexts only.
func DecodePlacement(buf []byte) (layout.Placement, error) {
	d := NewDecoder(buf)
	total := d.count(NodeLen)
	if d.err == nil && total == 0 {
		d.err = fmt.Errorf("%w: empty tree", ErrShortBuffer)
	}
	budget := total
	root := d.node(&budget)
	if d.err == nil && budget != 0 {
		d.err = fmt.Errorf("%w: %d nodes declared but not linked", ErrTrailingData, budget)
	}
	if err := d.finish(); err != nil {
		return layout.Placement{}, fmt.Errorf("decoding placement tree: %w", err)
	}
	return root, nil
}

// node reads one node and its subtree, spending budget so a corrupt child
// count cannot recurse past the declared node total.
func (d *Decoder) node(budget *int) layout.Placement {
	if d.err != nil {
		return layout.Placement{}
	}
	if *budget == 0 {
		d.err = fmt.Errorf("%w: child count exceeds node total", ErrShortBuffer)
		return layout.Placement{}
	}
	*budget--
	placed := d.Placed()
	n := int(d.u32())
	p := layout.Placement{Frame: placed.Rect, Context: placed.Context}
	if d.err != nil || n == 0 {
		return p
	}
	if n > *budget {
		d.err = fmt.Errorf("%w: child count exceeds node total", ErrShortBuffer)
		return p
	}
	p.Children = make([]layout.Placement, n)
	for i := range p.Children {
		p.Children[i] = d.node(budget)
	}
	return p
}
