package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/yijing-api/internal/domain"
	"github.com/phrazzld/yijing-api/internal/domain/safety"
	"github.com/phrazzld/yijing-api/internal/service"
)

// MockReadingService implements service.ReadingService for testing
type MockReadingService struct {
	// Custom behavior functions
	CastReadingFn   func(ctx context.Context, req service.CastRequest) (*domain.Reading, error)
	InterpretCastFn func(ctx context.Context, lines []domain.Line, req service.CastRequest) (*domain.Reading, error)
	HexagramFn      func(ctx context.Context, number int) (*domain.Hexagram, error)
	HexagramsFn     func(ctx context.Context) []*domain.Hexagram
	ClassifyFn      func(ctx context.Context, question string) domain.SafetyCheck

	// Default response values
	Reading *domain.Reading
	Record  *domain.Hexagram
	Records []*domain.Hexagram
	Err     error

	mu       sync.Mutex
	requests []service.CastRequest
	casts    [][]domain.Line
	numbers  []int
}

// CastReading implements service.ReadingService
func (m *MockReadingService) CastReading(ctx context.Context, req service.CastRequest) (*domain.Reading, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.CastReadingFn != nil {
		return m.CastReadingFn(ctx, req)
	}
	return m.Reading, m.Err
}

// InterpretCast implements service.ReadingService
func (m *MockReadingService) InterpretCast(
	ctx context.Context,
	lines []domain.Line,
	req service.CastRequest,
) (*domain.Reading, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.casts = append(m.casts, lines)
	m.mu.Unlock()

	if m.InterpretCastFn != nil {
		return m.InterpretCastFn(ctx, lines, req)
	}
	return m.Reading, m.Err
}

// Hexagram implements service.ReadingService
func (m *MockReadingService) Hexagram(ctx context.Context, number int) (*domain.Hexagram, error) {
	m.mu.Lock()
	m.numbers = append(m.numbers, number)
	m.mu.Unlock()

	if m.HexagramFn != nil {
		return m.HexagramFn(ctx, number)
	}
	return m.Record, m.Err
}

// Hexagrams implements service.ReadingService
func (m *MockReadingService) Hexagrams(ctx context.Context) []*domain.Hexagram {
	if m.HexagramsFn != nil {
		return m.HexagramsFn(ctx)
	}
	return m.Records
}

// Classify implements service.ReadingService. Without ClassifyFn it runs the
// real classifier.
func (m *MockReadingService) Classify(ctx context.Context, question string) domain.SafetyCheck {
	if m.ClassifyFn != nil {
		return m.ClassifyFn(ctx, question)
	}
	return safety.Classify(question)
}

// Requests returns the cast requests received so far.
func (m *MockReadingService) Requests() []service.CastRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]service.CastRequest(nil), m.requests...)
}

// Casts returns the line sets passed to InterpretCast.
func (m *MockReadingService) Casts() [][]domain.Line {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]domain.Line(nil), m.casts...)
}

// Numbers returns the hexagram numbers requested so far.
func (m *MockReadingService) Numbers() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.numbers...)
}

var _ service.ReadingService = (*MockReadingService)(nil)
