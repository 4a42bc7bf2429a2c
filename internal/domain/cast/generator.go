package cast

import (
	"github.com/phrazzld/yijing-api/internal/domain"
)

// CoinsPerLine is the number of coins tossed for one line.
const CoinsPerLine = 3

// Generator produces cast lines by simulating three-coin rounds.
type Generator struct {
	coins CoinSource
}

// NewGenerator creates a Generator backed by a fresh, non-reproducible
// random source. Every cast it produces is independent of previous runs.
func NewGenerator() *Generator {
	return &Generator{coins: globalSource{}}
}

// NewSeededGenerator creates a Generator whose casts are fully determined
// by seed. Given the same seed, the same sequence of calls yields the same
// lines.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{coins: newSeededSource(seed)}
}

// NewGeneratorWithSource creates a Generator that flips coins using src.
// This is useful when you want to control the coin outcomes directly.
func NewGeneratorWithSource(src CoinSource) *Generator {
	return &Generator{coins: src}
}

// Generate tosses three coins and returns the line for the given position.
//
// The number of heads selects the line:
//
//	3 heads -> old yang   (yang, changing)    p = 1/8
//	2 heads -> young yang (yang, stable)      p = 3/8
//	1 head  -> young yin  (yin, stable)       p = 3/8
//	0 heads -> old yin    (yin, changing)     p = 1/8
func (g *Generator) Generate(position int) domain.Line {
	heads := 0
	for i := 0; i < CoinsPerLine; i++ {
		if g.coins.Flip() {
			heads++
		}
	}
	return LineFromHeads(heads, position)
}

// Cast generates a complete six-line cast, bottom line first.
func (g *Generator) Cast() []domain.Line {
	lines := make([]domain.Line, 0, domain.LineCount)
	for position := 1; position <= domain.LineCount; position++ {
		lines = append(lines, g.Generate(position))
	}
	return lines
}

// LineFromHeads maps a head count of a three-coin round to a line.
// Counts outside 0..3 are clamped.
func LineFromHeads(heads, position int) domain.Line {
	switch {
	case heads >= 3:
		return domain.Line{IsYang: true, IsChanging: true, Position: position}
	case heads == 2:
		return domain.Line{IsYang: true, IsChanging: false, Position: position}
	case heads == 1:
		return domain.Line{IsYang: false, IsChanging: false, Position: position}
	default:
		return domain.Line{IsYang: false, IsChanging: true, Position: position}
	}
}
