package layout

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// StackLayout arranges children one after another along Axis.
//
// Children are measured with an unspecified main-axis proposal and the
// parent's cross-axis proposal. Surplus main-axis space goes to stretching
// children, highest priority tier first; when children overflow, the
// non-stretching ones are compressed from the lowest priority tier upward,
// never below MinCompressedLength, and whatever still does not fit is
// truncated at the end of the bound.
type StackLayout struct {
	Axis    Axis
	Spacing float64
	// Alignment positions children on the cross axis. Its main-axis
	// component positions the run of children when nothing stretches and
	// the bound is longer than the content.
	Alignment Alignment
}

// NewVStackLayout returns a vertical stack layout.
func NewVStackLayout(spacing float64, alignment HorizontalAlignment) StackLayout {
	return StackLayout{
		Axis:      Vertical,
		Spacing:   spacing,
		Alignment: Alignment{Horizontal: alignment, Vertical: Top},
	}
}

// NewHStackLayout returns a horizontal stack layout.
func NewHStackLayout(spacing float64, alignment VerticalAlignment) StackLayout {
	return StackLayout{
		Axis:      Horizontal,
		Spacing:   spacing,
		Alignment: Alignment{Horizontal: Leading, Vertical: alignment},
	}
}

func (s StackLayout) Orientation() Axis { return s.Axis }

func (s StackLayout) String() string {
	if s.Axis == Horizontal {
		return "HStack"
	}
	return "VStack"
}

func (s StackLayout) totalSpacing(n int) float64 {
	if n < 2 {
		return 0
	}
	return nonNegative(s.Spacing) * float64(n-1)
}

func (s StackLayout) Propose(parent ProposalSize, children []ChildMetadata, _ LayoutContext) []ProposalSize {
	cross := parent.Along(s.Axis.Cross())
	out := make([]ProposalSize, len(children))
	for i := range children {
		out[i] = proposalAlong(s.Axis, Unspecified(), cross)
	}
	return out
}

func (s StackLayout) Size(parent ProposalSize, children []ChildMetadata, _ LayoutContext) Size {
	main, cross := s.Axis, s.Axis.Cross()

	lengths := make([]float64, len(children))
	var crossLen float64
	var stretchMain, stretchCross bool
	for i, c := range children {
		if c.StretchesAlong(main) {
			lengths[i] = c.MinLength
			stretchMain = true
		} else {
			lengths[i] = c.Size.Along(main)
		}
		if c.StretchesAlong(cross) {
			stretchCross = true
		}
		if l := c.Size.Along(cross); l > crossLen {
			crossLen = l
		}
	}
	mainLen := floats.Sum(lengths) + s.totalSpacing(len(children))

	mainCap, crossCap := parent.Along(main), parent.Along(cross)
	if stretchMain && mainCap.IsFinite() {
		mainLen = mainCap.Or(mainLen)
	}
	if stretchCross && crossCap.IsFinite() {
		crossLen = crossCap.Or(crossLen)
	}
	return sizeAlong(main, mainCap.Clamp(mainLen), crossCap.Clamp(crossLen))
}

func (s StackLayout) Place(bound Rect, _ ProposalSize, children []ChildMetadata, ctx LayoutContext) []Placed {
	n := len(children)
	if n == 0 {
		return nil
	}
	main, cross := s.Axis, s.Axis.Cross()
	available := bound.Size.Along(main)
	crossExtent := bound.Size.Along(cross)

	lengths := s.mainLengths(available, children)

	offset := 0.0
	if leftover := available - floats.Sum(lengths) - s.totalSpacing(n); leftover > 0 {
		offset = leftover * s.Alignment.fraction(main)
	}

	out := make([]Placed, n)
	for i, c := range children {
		start := offset
		if start > available {
			start = available
		}
		length := lengths[i]
		if start+length > available {
			length = nonNegative(available - start)
		}

		crossLen := c.Size.Along(cross)
		if c.StretchesAlong(cross) || crossLen > crossExtent {
			crossLen = crossExtent
		}
		crossOff := (crossExtent - crossLen) * s.Alignment.fraction(cross)

		out[i] = Placed{
			Rect:    rectAlong(main, bound.Origin, start, crossOff, length, crossLen),
			Context: ctx,
		}
		offset = start + length + nonNegative(s.Spacing)
	}
	return out
}

// mainLengths resolves every child's main-axis length for the available
// space: surplus is handed to stretching children, overflow is taken from
// non-stretching ones.
func (s StackLayout) mainLengths(available float64, children []ChildMetadata) []float64 {
	main := s.Axis
	lengths := make([]float64, len(children))
	var stretching, rigid []int
	for i, c := range children {
		if c.StretchesAlong(main) {
			lengths[i] = c.MinLength
			stretching = append(stretching, i)
		} else {
			lengths[i] = c.Size.Along(main)
			rigid = append(rigid, i)
		}
	}

	surplus := available - floats.Sum(lengths) - s.totalSpacing(len(children))
	switch {
	case surplus > 0 && len(stretching) > 0:
		distributeSurplus(lengths, children, stretching, surplus)
	case surplus < 0:
		compress(lengths, children, rigid, -surplus)
	}
	return lengths
}

// priorityTiers groups indices by priority. Tiers are sorted ascending;
// indices keep child order within a tier.
func priorityTiers(children []ChildMetadata, indices []int) [][]int {
	byPriority := make(map[float64][]int)
	var priorities []float64
	for _, i := range indices {
		p := children[i].Priority
		if _, ok := byPriority[p]; !ok {
			priorities = append(priorities, p)
		}
		byPriority[p] = append(byPriority[p], i)
	}
	sort.Float64s(priorities)
	tiers := make([][]int, len(priorities))
	for t, p := range priorities {
		tiers[t] = byPriority[p]
	}
	return tiers
}

// distributeSurplus gives the whole surplus to the highest priority tier of
// stretching children, split equally. Lower tiers keep their floor.
func distributeSurplus(lengths []float64, children []ChildMetadata, stretching []int, surplus float64) {
	tiers := priorityTiers(children, stretching)
	top := tiers[len(tiers)-1]
	share := surplus / float64(len(top))
	given := 0.0
	for k, i := range top {
		if k == len(top)-1 {
			lengths[i] += surplus - given
			break
		}
		lengths[i] += share
		given += share
	}
}

// compress shrinks rigid children, lowest priority tier first, until the
// deficit is absorbed or every child reached its floor. Within a tier each
// child gives up space in proportion to how far it is above its floor.
func compress(lengths []float64, children []ChildMetadata, rigid []int, deficit float64) {
	for _, tier := range priorityTiers(children, rigid) {
		if deficit <= 0 {
			return
		}
		capacity := make([]float64, len(tier))
		for k, i := range tier {
			floor := lengths[i]
			if floor > MinCompressedLength {
				floor = MinCompressedLength
			}
			capacity[k] = lengths[i] - floor
		}
		total := floats.Sum(capacity)
		if total <= 0 {
			continue
		}
		if total <= deficit {
			for k, i := range tier {
				lengths[i] -= capacity[k]
			}
			deficit -= total
			continue
		}
		ratio := deficit / total
		for k, i := range tier {
			lengths[i] -= capacity[k] * ratio
		}
		deficit = 0
	}
}
