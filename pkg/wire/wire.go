// Package wire encodes layout values as flat little-endian float32 records
// for hosts that call the engine across a language boundary.
//
// Record layouts, in order:
//
//	Size, Point     2 x f32
//	Rect            4 x f32 (x, y, width, height)
//	ProposalSize    2 x f32, NaN for unspecified, +Inf for unbounded
//	EdgeInsets      4 x f32 (top, leading, bottom, trailing)
//	LayoutContext   EdgeInsets + u8 ignored edge set
//	ChildMetadata   ProposalSize + Size + u8 stretch + f32 priority + f32 min length
//
// Lists are prefixed with a u32 element count.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"waterlayout/pkg/layout"
)

const (
	SizeLen          = 8
	PointLen         = 8
	RectLen          = 16
	ProposalLen      = 8
	InsetsLen        = 16
	ContextLen       = InsetsLen + 1
	ChildMetadataLen = ProposalLen + SizeLen + 1 + 4 + 4
	PlacedLen        = RectLen + ContextLen
)

var (
	// ErrShortBuffer is returned when a record is cut off.
	ErrShortBuffer = errors.New("wire: short buffer")
	// ErrTrailingData is returned when bytes remain after a complete decode.
	ErrTrailingData = errors.New("wire: trailing data")
	// ErrInvalidStretch is returned for a stretch byte that is not an
	// absolute StretchAxis.
	ErrInvalidStretch = errors.New("wire: invalid stretch value")
)

func appendF32(dst []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v)))
}

func appendDimension(dst []byte, d layout.Dimension) []byte {
	v, ok := d.Value()
	if !ok {
		return appendF32(dst, math.NaN())
	}
	return appendF32(dst, v)
}

func AppendSize(dst []byte, s layout.Size) []byte {
	dst = appendF32(dst, s.Width)
	return appendF32(dst, s.Height)
}

func AppendPoint(dst []byte, p layout.Point) []byte {
	dst = appendF32(dst, p.X)
	return appendF32(dst, p.Y)
}

func AppendRect(dst []byte, r layout.Rect) []byte {
	dst = AppendPoint(dst, r.Origin)
	return AppendSize(dst, r.Size)
}

func AppendProposal(dst []byte, p layout.ProposalSize) []byte {
	dst = appendDimension(dst, p.Width)
	return appendDimension(dst, p.Height)
}

func AppendInsets(dst []byte, e layout.EdgeInsets) []byte {
	dst = appendF32(dst, e.Top)
	dst = appendF32(dst, e.Leading)
	dst = appendF32(dst, e.Bottom)
	return appendF32(dst, e.Trailing)
}

func AppendContext(dst []byte, c layout.LayoutContext) []byte {
	dst = AppendInsets(dst, c.SafeArea)
	return append(dst, byte(c.Ignored))
}

// AppendChildMetadata writes one metadata record. Relative stretch values
// are written as StretchNone: metadata always carries resolved stretch.
func AppendChildMetadata(dst []byte, m layout.ChildMetadata) []byte {
	dst = AppendProposal(dst, m.Proposal)
	dst = AppendSize(dst, m.Size)
	stretch := m.Stretch
	if stretch > layout.StretchBoth {
		stretch = layout.StretchNone
	}
	dst = append(dst, byte(stretch))
	dst = appendF32(dst, m.Priority)
	return appendF32(dst, m.MinLength)
}

func AppendPlaced(dst []byte, p layout.Placed) []byte {
	dst = AppendRect(dst, p.Rect)
	return AppendContext(dst, p.Context)
}

// EncodeChildren writes a counted list of metadata records.
func EncodeChildren(children []layout.ChildMetadata) []byte {
	dst := make([]byte, 0, 4+len(children)*ChildMetadataLen)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(children)))
	for _, c := range children {
		dst = AppendChildMetadata(dst, c)
	}
	return dst
}

// EncodePlaced writes a counted list of place-pass results.
func EncodePlaced(placed []layout.Placed) []byte {
	dst := make([]byte, 0, 4+len(placed)*PlacedLen)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(placed)))
	for _, p := range placed {
		dst = AppendPlaced(dst, p)
	}
	return dst
}

// EncodeProposals writes a counted list of proposals.
func EncodeProposals(proposals []layout.ProposalSize) []byte {
	dst := make([]byte, 0, 4+len(proposals)*ProposalLen)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(proposals)))
	for _, p := range proposals {
		dst = AppendProposal(dst, p)
	}
	return dst
}

// Decoder reads records sequentially from a buffer. The first error sticks
// and every later read returns zero values.
type Decoder struct {
	buf []byte
	off int
	err error
}

func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Err returns the first error encountered.
func (d *Decoder) Err() error {
	return d.err
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.off
}

func (d *Decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if d.Remaining() < n {
		d.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, n, d.off, d.Remaining())
		return nil
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b
}

func (d *Decoder) u8() uint8 {
	b := d.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (d *Decoder) u32() uint32 {
	b := d.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (d *Decoder) f32() float64 {
	return float64(math.Float32frombits(d.u32()))
}

func (d *Decoder) dimension() layout.Dimension {
	v := d.f32()
	switch {
	case math.IsNaN(v):
		return layout.Unspecified()
	case math.IsInf(v, 1):
		return layout.Unbounded()
	default:
		return layout.Bounded(v)
	}
}

func (d *Decoder) Size() layout.Size {
	w := d.f32()
	h := d.f32()
	return layout.NewSize(w, h)
}

func (d *Decoder) Point() layout.Point {
	x := d.f32()
	y := d.f32()
	return layout.Point{X: x, Y: y}
}

func (d *Decoder) Rect() layout.Rect {
	origin := d.Point()
	size := d.Size()
	return layout.Rect{Origin: origin, Size: size}
}

func (d *Decoder) Proposal() layout.ProposalSize {
	w := d.dimension()
	h := d.dimension()
	return layout.NewProposal(w, h)
}

func (d *Decoder) Insets() layout.EdgeInsets {
	var e layout.EdgeInsets
	e.Top = d.f32()
	e.Leading = d.f32()
	e.Bottom = d.f32()
	e.Trailing = d.f32()
	return e
}

func (d *Decoder) Context() layout.LayoutContext {
	safe := d.Insets()
	ignored := layout.EdgeSet(d.u8()) & layout.EdgesAll
	return layout.LayoutContext{SafeArea: safe, Ignored: ignored}
}

func (d *Decoder) ChildMetadata() layout.ChildMetadata {
	var m layout.ChildMetadata
	m.Proposal = d.Proposal()
	m.Size = d.Size()
	stretch := layout.StretchAxis(d.u8())
	if d.err == nil && stretch > layout.StretchBoth {
		d.err = fmt.Errorf("%w: %d", ErrInvalidStretch, stretch)
	}
	m.Stretch = stretch
	m.Priority = d.f32()
	m.MinLength = d.f32()
	return m
}

func (d *Decoder) Placed() layout.Placed {
	r := d.Rect()
	c := d.Context()
	return layout.Placed{Rect: r, Context: c}
}

// count reads a list header and checks the buffer can hold that many
// records of recordLen bytes.
func (d *Decoder) count(recordLen int) int {
	n := int(d.u32())
	if d.err == nil && n > d.Remaining()/recordLen {
		d.err = fmt.Errorf("%w: %d records of %d bytes, have %d", ErrShortBuffer, n, recordLen, d.Remaining())
		return 0
	}
	return n
}

// DecodeChildren reads a buffer written by EncodeChildren.
func DecodeChildren(buf []byte) ([]layout.ChildMetadata, error) {
	d := NewDecoder(buf)
	n := d.count(ChildMetadataLen)
	out := make([]layout.ChildMetadata, n)
	for i := range out {
		out[i] = d.ChildMetadata()
	}
	if err := d.finish(); err != nil {
		return nil, fmt.Errorf("decoding child metadata: %w", err)
	}
	return out, nil
}

// DecodePlaced reads a buffer written by EncodePlaced.
func DecodePlaced(buf []byte) ([]layout.Placed, error) {
	d := NewDecoder(buf)
	n := d.count(PlacedLen)
	out := make([]layout.Placed, n)
	for i := range out {
		out[i] = d.Placed()
	}
	if err := d.finish(); err != nil {
		return nil, fmt.Errorf("decoding placements: %w", err)
	}
	return out, nil
}

// DecodeProposals reads a buffer written by EncodeProposals.
func DecodeProposals(buf []byte) ([]layout.ProposalSize, error) {
	d := NewDecoder(buf)
	n := d.count(ProposalLen)
	out := make([]layout.ProposalSize, n)
	for i := range out {
		out[i] = d.Proposal()
	}
	if err := d.finish(); err != nil {
		return nil, fmt.Errorf("decoding proposals: %w", err)
	}
	return out, nil
}

func (d *Decoder) finish() error {
	if d.err != nil {
		return d.err
	}
	if d.Remaining() != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingData, d.Remaining())
	}
	return nil
}
