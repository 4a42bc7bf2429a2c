package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/yijing-api/internal/domain"
	"github.com/phrazzld/yijing-api/internal/domain/hexagram"
	"github.com/phrazzld/yijing-api/internal/domain/interpret"
	"github.com/phrazzld/yijing-api/internal/domain/safety"
	"github.com/phrazzld/yijing-api/internal/events"
	"github.com/phrazzld/yijing-api/internal/platform/logger"
	"github.com/phrazzld/yijing-api/internal/redact"
)

// HexagramCatalog is the loaded reference dataset.
type HexagramCatalog interface {
	hexagram.Catalog

	// All returns every record in ascending number order.
	All() []*domain.Hexagram
}

// LineCaster produces a complete six-line cast.
type LineCaster interface {
	Cast() []domain.Line
}

// CastRequest carries the caller-supplied parts of a reading.
type CastRequest struct {
	Question  string
	UserNotes string
	Tags      []string
}

// ReadingService provides reading and reference operations.
type ReadingService interface {
	// CastReading casts six lines and builds a reading from them.
	CastReading(ctx context.Context, req CastRequest) (*domain.Reading, error)

	// InterpretCast builds a reading from lines cast elsewhere.
	InterpretCast(ctx context.Context, lines []domain.Line, req CastRequest) (*domain.Reading, error)

	// Hexagram returns the record for number.
	Hexagram(ctx context.Context, number int) (*domain.Hexagram, error)

	// Hexagrams returns every record of the dataset.
	Hexagrams(ctx context.Context) []*domain.Hexagram

	// Classify evaluates a question against the safety rules.
	Classify(ctx context.Context, question string) domain.SafetyCheck
}

type readingServiceImpl struct {
	catalog         HexagramCatalog
	resolver        *hexagram.Resolver
	caster          LineCaster
	eventEmitter    events.EventEmitter
	defaultHexagram int
	logger          *slog.Logger
}

// NewReadingService creates a ReadingService. defaultHexagram is the record
// substituted when a cast resolves to a number missing from the dataset.
func NewReadingService(
	catalog HexagramCatalog,
	caster LineCaster,
	eventEmitter events.EventEmitter,
	defaultHexagram int,
	logger *slog.Logger,
) (ReadingService, error) {
	if catalog == nil {
		return nil, NewReadingServiceError("create_service", "catalog cannot be nil", ErrNilDependency)
	}
	if caster == nil {
		return nil, NewReadingServiceError("create_service", "caster cannot be nil", ErrNilDependency)
	}
	if eventEmitter == nil {
		return nil, NewReadingServiceError("create_service", "eventEmitter cannot be nil", ErrNilDependency)
	}
	if defaultHexagram < hexagram.MinNumber || defaultHexagram > hexagram.MaxNumber {
		return nil, &ReadingServiceError{
			Operation: "create_service",
			Message:   fmt.Sprintf("default hexagram %d out of range", defaultHexagram),
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &readingServiceImpl{
		catalog:         catalog,
		resolver:        hexagram.NewResolver(catalog),
		caster:          caster,
		eventEmitter:    eventEmitter,
		defaultHexagram: defaultHexagram,
		logger:          logger.With("component", "reading_service"),
	}, nil
}

// CastReading casts a fresh set of lines and interprets them.
func (s *readingServiceImpl) CastReading(ctx context.Context, req CastRequest) (*domain.Reading, error) {
	lines := s.caster.Cast()
	return s.buildReading(ctx, "cast_reading", lines, req)
}

// InterpretCast interprets lines supplied by the caller.
func (s *readingServiceImpl) InterpretCast(
	ctx context.Context,
	lines []domain.Line,
	req CastRequest,
) (*domain.Reading, error) {
	return s.buildReading(ctx, "interpret_cast", lines, req)
}

func (s *readingServiceImpl) buildReading(
	ctx context.Context,
	operation string,
	lines []domain.Line,
	req CastRequest,
) (*domain.Reading, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	question := strings.TrimSpace(req.Question)

	if err := domain.ValidateCast(lines); err != nil {
		log.Warn("rejected incomplete cast", "operation", operation, "line_count", len(lines))
		return nil, NewReadingServiceError(operation, "invalid cast", err)
	}

	primary, err := s.resolvePrimary(log, lines)
	if err != nil {
		return nil, NewReadingServiceError(operation, "failed to resolve hexagram", err)
	}

	var second *domain.Hexagram
	if domain.HasChangingLines(lines) {
		second, err = s.resolver.ResolveSecond(lines)
		if err != nil {
			if !errors.Is(err, domain.ErrHexagramNotFound) {
				return nil, NewReadingServiceError(operation, "failed to resolve resulting hexagram", err)
			}
			log.Warn("resulting hexagram missing from dataset, trend omitted",
				"error", err,
				"hexagram_number", primary.Number)
			second = nil
		}
	}

	interpretation := interpret.Compose(primary, lines, question, second)

	reading, err := domain.NewReading(question, primary, lines, interpretation, second)
	if err != nil {
		log.Error("failed to build reading", "error", err, "hexagram_number", primary.Number)
		return nil, NewReadingServiceError(operation, "failed to build reading", err)
	}
	reading.UserNotes = strings.TrimSpace(req.UserNotes)
	reading.Tags = cleanTags(req.Tags)

	s.publish(ctx, log, reading)

	log.Info("reading composed",
		"operation", operation,
		"reading_id", reading.ID,
		"hexagram_number", reading.HexagramNumber,
		"second_hexagram", reading.SecondHexagramNumber != nil,
		"safety_level", reading.Interpretation.SafetyCheck.Level,
		"question", redact.Question(question))

	return reading, nil
}

// resolvePrimary resolves the cast, falling back to the default hexagram
// when the computed number has no record.
func (s *readingServiceImpl) resolvePrimary(log *slog.Logger, lines []domain.Line) (*domain.Hexagram, error) {
	primary, err := s.resolver.Resolve(lines)
	if err == nil {
		return primary, nil
	}
	if !errors.Is(err, domain.ErrHexagramNotFound) {
		return nil, err
	}

	fallback, fbErr := s.resolver.ResolveByNumber(s.defaultHexagram)
	if fbErr != nil {
		log.Error("default hexagram missing from dataset",
			"error", fbErr,
			"default_hexagram", s.defaultHexagram)
		return nil, err
	}

	log.Warn("hexagram missing from dataset, using default",
		"error", err,
		"default_hexagram", s.defaultHexagram)
	return fallback, nil
}

// publish hands the reading to collaborators. A failing collaborator does
// not invalidate the reading.
func (s *readingServiceImpl) publish(ctx context.Context, log *slog.Logger, reading *domain.Reading) {
	event, err := events.NewEvent(events.TypeReadingCast, reading)
	if err != nil {
		log.Error("failed to create reading event", "error", err, "reading_id", reading.ID)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to deliver reading event",
			"error", redact.Error(err),
			"reading_id", reading.ID,
			"event_id", event.ID)
	}
}

// Hexagram returns the record for number.
func (s *readingServiceImpl) Hexagram(ctx context.Context, number int) (*domain.Hexagram, error) {
	h, err := s.resolver.ResolveByNumber(number)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("hexagram lookup failed", "hexagram_number", number)
		return nil, NewReadingServiceError("get_hexagram", "lookup failed", err)
	}
	return h, nil
}

// Hexagrams returns the whole dataset.
func (s *readingServiceImpl) Hexagrams(ctx context.Context) []*domain.Hexagram {
	return s.catalog.All()
}

// Classify runs the safety classifier.
func (s *readingServiceImpl) Classify(ctx context.Context, question string) domain.SafetyCheck {
	check := safety.Classify(question)
	logger.FromContextOrDefault(ctx, s.logger).Debug("question classified",
		"safety_level", check.Level,
		"question", redact.Question(question))
	return check
}

// cleanTags trims tags and drops blanks and duplicates, keeping order.
func cleanTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
