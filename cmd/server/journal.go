package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/yijing-api/internal/domain"
	"github.com/phrazzld/yijing-api/internal/events"
)

// readingJournal receives every composed reading. Storage is left to an
// external collaborator; the server records the reading's metadata in the
// log so each cast stays traceable.
type readingJournal struct {
	logger *slog.Logger
}

func newReadingJournal(logger *slog.Logger) *readingJournal {
	return &readingJournal{logger: logger.With("component", "reading_journal")}
}

// HandleEvent implements events.EventHandler.
func (j *readingJournal) HandleEvent(ctx context.Context, event *events.Event) error {
	var reading domain.Reading
	if err := event.UnmarshalPayload(&reading); err != nil {
		j.logger.Error("failed to decode reading event", "error", err, "event_id", event.ID)
		return fmt.Errorf("failed to decode reading event: %w", err)
	}

	if err := reading.Validate(); err != nil {
		j.logger.Error("received invalid reading", "error", err, "event_id", event.ID)
		return fmt.Errorf("invalid reading %s: %w", reading.ID, err)
	}

	attrs := []any{
		"event_id", event.ID,
		"reading_id", reading.ID,
		"date", reading.Date,
		"hexagram_number", reading.HexagramNumber,
		"safety_level", reading.Interpretation.SafetyCheck.Level,
		"tag_count", len(reading.Tags),
	}
	if reading.SecondHexagramNumber != nil {
		attrs = append(attrs, "second_hexagram_number", *reading.SecondHexagramNumber)
	}
	j.logger.Info("reading recorded", attrs...)
	return nil
}
