package hexagram

import (
	"fmt"
	"sort"

	"github.com/phrazzld/yijing-api/internal/domain"
)

// Number range of hexagrams.
const (
	MinNumber = 1
	MaxNumber = 64
)

// Catalog is the read-only reference data the resolver looks records up in.
type Catalog interface {
	// Lookup returns the record for number and whether it exists.
	Lookup(number int) (*domain.Hexagram, bool)
}

// Resolver maps casts to hexagram reference records.
type Resolver struct {
	catalog Catalog
}

// NewResolver creates a Resolver over catalog. A nil catalog behaves like
// an empty dataset: every lookup reports ErrHexagramNotFound.
func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Number computes the hexagram number of a complete cast without looking
// it up. Position 1 is the least significant bit, yang is 1 and yin is 0;
// the number is the bit value plus one.
func Number(lines []domain.Line) (int, error) {
	if err := domain.ValidateCast(lines); err != nil {
		return 0, err
	}

	sorted := make([]domain.Line, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	value := 0
	for i, l := range sorted {
		if l.IsYang {
			value |= 1 << i
		}
	}

	return clamp(value + 1), nil
}

// Transform returns the cast that results once every changing line has
// turned: changing lines flip polarity and stop changing, stable lines are
// kept. The input is not modified.
func Transform(lines []domain.Line) []domain.Line {
	transformed := make([]domain.Line, len(lines))
	for i, l := range lines {
		transformed[i] = l.Transformed()
	}
	return transformed
}

// Resolve returns the record of the hexagram formed by lines.
//
// Errors:
//   - ErrInvalidLineCount unless lines are six lines with positions 1..6
//   - ErrHexagramNotFound when the catalog has no record for the number
func (r *Resolver) Resolve(lines []domain.Line) (*domain.Hexagram, error) {
	number, err := Number(lines)
	if err != nil {
		return nil, err
	}
	return r.ResolveByNumber(number)
}

// ResolveSecond returns the record of the hexagram the cast turns into.
// When no line is changing it resolves to the same record as Resolve, so
// callers normally check domain.HasChangingLines first.
func (r *Resolver) ResolveSecond(lines []domain.Line) (*domain.Hexagram, error) {
	if err := domain.ValidateCast(lines); err != nil {
		return nil, err
	}
	return r.Resolve(Transform(lines))
}

// ResolveByNumber returns the record for number, or ErrHexagramNotFound.
func (r *Resolver) ResolveByNumber(number int) (*domain.Hexagram, error) {
	if r.catalog == nil {
		return nil, fmt.Errorf("hexagram %d: %w", number, domain.ErrHexagramNotFound)
	}

	record, ok := r.catalog.Lookup(number)
	if !ok || record == nil {
		return nil, fmt.Errorf("hexagram %d: %w", number, domain.ErrHexagramNotFound)
	}

	return record, nil
}

// clamp keeps n inside [MinNumber, MaxNumber].
func clamp(n int) int {
	if n < MinNumber {
		return MinNumber
	}
	if n > MaxNumber {
		return MaxNumber
	}
	return n
}
