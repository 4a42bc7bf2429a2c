package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Reading
var (
	ErrEmptyReadingID       = errors.New("reading ID cannot be empty")
	ErrEmptyReadingDate     = errors.New("reading date cannot be empty")
	ErrEmptyHexagramName    = errors.New("hexagram name cannot be empty")
	ErrInvalidHexagramRange = errors.New("hexagram number must be between 1 and 64")
)

// LineData is the persisted shape of a single cast line.
type LineData struct {
	IsYang     bool `json:"is_yang"`
	IsChanging bool `json:"is_changing"`
	Position   int  `json:"position"`
}

// Reading is the record handed to the persistence collaborator after a
// cast. The engine only fills it in; storing and tagging happen elsewhere.
type Reading struct {
	ID                   uuid.UUID            `json:"id"`
	Date                 time.Time            `json:"date"`
	Question             string               `json:"question,omitempty"`
	HexagramNumber       int                  `json:"hexagram_number"`
	HexagramName         string               `json:"hexagram_name"`
	Lines                [LineCount]LineData  `json:"lines"`
	Interpretation       InterpretationResult `json:"interpretation"`
	Summary              string               `json:"summary,omitempty"`
	SecondHexagramNumber *int                 `json:"second_hexagram_number,omitempty"`
	UserNotes            string               `json:"user_notes,omitempty"`
	Tags                 []string             `json:"tags,omitempty"`
	Outcome              string               `json:"outcome,omitempty"`
}

// NewReading builds a Reading for a resolved cast. It generates a new UUID,
// stamps the current time and copies the lines into their persisted shape.
// second may be nil when no line was changing.
// Returns an error if validation fails.
func NewReading(
	question string,
	primary *Hexagram,
	lines []Line,
	interpretation InterpretationResult,
	second *Hexagram,
) (*Reading, error) {
	if primary == nil {
		return nil, ErrHexagramNotFound
	}
	if err := ValidateCast(lines); err != nil {
		return nil, err
	}

	reading := &Reading{
		ID:             uuid.New(),
		Date:           time.Now().UTC(),
		Question:       question,
		HexagramNumber: primary.Number,
		HexagramName:   primary.Name,
		Interpretation: interpretation,
	}

	for _, l := range lines {
		reading.Lines[l.Position-1] = LineData(l)
	}

	if second != nil {
		n := second.Number
		reading.SecondHexagramNumber = &n
	}

	if len(interpretation.Now) > 0 {
		reading.Summary = primary.Name + ": " + interpretation.Now[0]
	}

	if err := reading.Validate(); err != nil {
		return nil, err
	}

	return reading, nil
}

// Validate checks if the Reading has valid data.
// Returns an error if any field fails validation.
func (r *Reading) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyReadingID
	}

	if r.Date.IsZero() {
		return ErrEmptyReadingDate
	}

	if !isValidHexagramNumber(r.HexagramNumber) {
		return ErrInvalidHexagramRange
	}

	if r.HexagramName == "" {
		return ErrEmptyHexagramName
	}

	if r.SecondHexagramNumber != nil && !isValidHexagramNumber(*r.SecondHexagramNumber) {
		return ErrInvalidHexagramRange
	}

	for i, l := range r.Lines {
		if l.Position != i+1 {
			return ErrInvalidLineCount
		}
	}

	return nil
}

// CastLines converts the persisted lines back into domain lines.
func (r *Reading) CastLines() []Line {
	lines := make([]Line, 0, LineCount)
	for _, l := range r.Lines {
		lines = append(lines, Line(l))
	}
	return lines
}

func isValidHexagramNumber(n int) bool {
	return n >= 1 && n <= 64
}
