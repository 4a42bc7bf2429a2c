package domain

// LineCount is the number of lines in a complete cast.
const LineCount = 6

// LineKind names the four outcomes of a coin-toss round.
type LineKind string

// Possible line kinds
const (
	LineKindOldYang   LineKind = "old_yang"
	LineKindYoungYang LineKind = "young_yang"
	LineKindYoungYin  LineKind = "young_yin"
	LineKindOldYin    LineKind = "old_yin"
)

// Line is a single mark of a hexagram. Position counts from 1 (bottom)
// to 6 (top). Lines are values and are never modified after creation.
type Line struct {
	IsYang     bool `json:"is_yang"`
	IsChanging bool `json:"is_changing"`
	Position   int  `json:"position"   validate:"min=1,max=6"`
}

// Kind classifies the line by polarity and stability.
func (l Line) Kind() LineKind {
	switch {
	case l.IsYang && l.IsChanging:
		return LineKindOldYang
	case l.IsYang:
		return LineKindYoungYang
	case l.IsChanging:
		return LineKindOldYin
	default:
		return LineKindYoungYin
	}
}

// Heads returns the number of heads in the three-coin round that
// produces this kind of line.
func (l Line) Heads() int {
	switch l.Kind() {
	case LineKindOldYang:
		return 3
	case LineKindYoungYang:
		return 2
	case LineKindYoungYin:
		return 1
	default:
		return 0
	}
}

// Transformed returns the line a changing line turns into: polarity
// flipped and no longer changing. Stable lines are returned unchanged.
func (l Line) Transformed() Line {
	if !l.IsChanging {
		return l
	}
	return Line{IsYang: !l.IsYang, IsChanging: false, Position: l.Position}
}

// HasChangingLines reports whether any line in the cast is changing.
func HasChangingLines(lines []Line) bool {
	for _, l := range lines {
		if l.IsChanging {
			return true
		}
	}
	return false
}

// ValidateCast checks that lines form a complete cast: exactly six lines
// whose positions are the set {1..6}.
func ValidateCast(lines []Line) error {
	if len(lines) != LineCount {
		return ErrInvalidLineCount
	}

	var seen [LineCount + 1]bool
	for _, l := range lines {
		if l.Position < 1 || l.Position > LineCount || seen[l.Position] {
			return ErrInvalidLineCount
		}
		seen[l.Position] = true
	}

	return nil
}
