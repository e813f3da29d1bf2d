package wire

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"waterlayout/pkg/layout"
)

func TestProposalSentinels(t *testing.T) {
	buf := AppendProposal(nil, layout.NewProposal(layout.Unspecified(), layout.Unbounded()))
	if len(buf) != ProposalLen {
		t.Fatalf("Expected %d bytes, got %d", ProposalLen, len(buf))
	}

	width := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))
	height := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
	if !math.IsNaN(float64(width)) {
		t.Errorf("Expected NaN for unspecified width, got %v", width)
	}
	if !math.IsInf(float64(height), 1) {
		t.Errorf("Expected +Inf for unbounded height, got %v", height)
	}

	got := NewDecoder(buf).Proposal()
	if got.Width.IsSpecified() || !got.Height.IsUnbounded() {
		t.Errorf("Expected [nil, inf], got %s", got)
	}
}

func TestNegativeInfinityClampsToZero(t *testing.T) {
	var buf []byte
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(math.Inf(-1))))
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(12))

	got := NewDecoder(buf).Proposal()
	if got.Width.Cap() != 0 || got.Height.Cap() != 12 {
		t.Errorf("Expected [0, 12], got %s", got)
	}
}

func TestChildMetadataRoundTrip(t *testing.T) {
	children := []layout.ChildMetadata{
		{
			Proposal: layout.NewProposal(layout.Unspecified(), layout.Bounded(200)),
			Size:     layout.NewSize(50, 12.5),
			Stretch:  layout.StretchNone,
			Priority: 1,
		},
		{
			Proposal:  layout.NewProposal(layout.Unbounded(), layout.Bounded(0)),
			Stretch:   layout.StretchHorizontal,
			MinLength: 8,
		},
	}

	buf := EncodeChildren(children)
	if len(buf) != 4+2*ChildMetadataLen {
		t.Fatalf("Expected %d bytes, got %d", 4+2*ChildMetadataLen, len(buf))
	}
	got, err := DecodeChildren(buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}
	for i := range children {
		if got[i] != children[i] {
			t.Errorf("Record %d: expected %+v, got %+v", i, children[i], got[i])
		}
	}
}

func TestRelativeStretchWrittenAsNone(t *testing.T) {
	buf := AppendChildMetadata(nil, layout.ChildMetadata{Stretch: layout.StretchMainAxis})
	if buf[ProposalLen+SizeLen] != byte(layout.StretchNone) {
		t.Errorf("Expected stretch byte 0, got %d", buf[ProposalLen+SizeLen])
	}
}

func TestDecodeErrors(t *testing.T) {
	valid := EncodeChildren([]layout.ChildMetadata{{Stretch: layout.StretchBoth}})

	badStretch := append([]byte(nil), valid...)
	badStretch[4+ProposalLen+SizeLen] = 9

	tests := map[string]struct {
		buf  []byte
		want error
	}{
		"empty":         {nil, ErrShortBuffer},
		"truncated":     {valid[:len(valid)-1], ErrShortBuffer},
		"trailing":      {append(append([]byte(nil), valid...), 0), ErrTrailingData},
		"huge count":    {[]byte{0xff, 0xff, 0xff, 0x7f}, ErrShortBuffer},
		"stretch value": {badStretch, ErrInvalidStretch},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeChildren(tc.buf)
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPlacedRoundTrip(t *testing.T) {
	placed := []layout.Placed{
		{Rect: layout.NewRect(0, -44, 390, 810), Context: layout.LayoutContext{
			SafeArea: layout.EdgeInsets{Bottom: 34},
			Ignored:  layout.EdgeTop,
		}},
		{Rect: layout.NewRect(16, 16, 100, 50)},
	}

	got, err := DecodePlaced(EncodePlaced(placed))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := range placed {
		if got[i] != placed[i] {
			t.Errorf("Record %d: expected %+v, got %+v", i, placed[i], got[i])
		}
	}
}

func TestProposalsRoundTrip(t *testing.T) {
	layoutAlg := layout.NewHStackLayout(0, layout.Top)
	proposals := layoutAlg.Propose(layout.NewProposal(layout.Bounded(300), layout.Bounded(40)), make([]layout.ChildMetadata, 3), layout.LayoutContext{})

	got, err := DecodeProposals(EncodeProposals(proposals))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 proposals, got %d", len(got))
	}
	for i := range got {
		if got[i] != proposals[i] {
			t.Errorf("Proposal %d: expected %s, got %s", i, proposals[i], got[i])
		}
	}
}
