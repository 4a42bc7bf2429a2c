package api

import "github.com/phrazzld/yijing-api/internal/domain"

// CastReadingRequest is the payload of POST /api/readings. Every field is
// optional; an empty body is accepted.
type CastReadingRequest struct {
	Question  string   `json:"question"   validate:"max=1000"`
	UserNotes string   `json:"user_notes" validate:"max=4000"`
	Tags      []string `json:"tags"       validate:"max=20,dive,max=64"`
}

// LineRequest is one client-supplied line.
type LineRequest struct {
	IsYang     bool `json:"is_yang"`
	IsChanging bool `json:"is_changing"`
	Position   int  `json:"position"    validate:"min=1,max=6"`
}

// InterpretCastRequest is the payload of POST /api/readings/interpret.
type InterpretCastRequest struct {
	CastReadingRequest
	Lines []LineRequest `json:"lines" validate:"required,len=6,dive"`
}

// ClassifyRequest is the payload of POST /api/safety/classify.
type ClassifyRequest struct {
	Question string `json:"question" validate:"max=1000"`
}

// HexagramSummary is a dataset entry in the list response.
type HexagramSummary struct {
	Number    int    `json:"number"`
	Name      string `json:"name"`
	KeyPhrase string `json:"key_phrase,omitempty"`
}

// HexagramListResponse is the body of GET /api/hexagrams.
type HexagramListResponse struct {
	Count     int               `json:"count"`
	Hexagrams []HexagramSummary `json:"hexagrams"`
}

func toDomainLines(lines []LineRequest) []domain.Line {
	out := make([]domain.Line, len(lines))
	for i, l := range lines {
		out[i] = domain.Line(l)
	}
	return out
}

func toSummaries(records []*domain.Hexagram) []HexagramSummary {
	out := make([]HexagramSummary, 0, len(records))
	for _, h := range records {
		out = append(out, HexagramSummary{
			Number:    h.Number,
			Name:      h.Name,
			KeyPhrase: h.KeyPhrase,
		})
	}
	return out
}
