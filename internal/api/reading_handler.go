package api

import (
	"net/http"

	"github.com/phrazzld/yijing-api/internal/api/shared"
	"github.com/phrazzld/yijing-api/internal/service"
)

// ReadingHandler handles reading requests
type ReadingHandler struct {
	readingService service.ReadingService
}

// NewReadingHandler creates a new ReadingHandler
func NewReadingHandler(readingService service.ReadingService) *ReadingHandler {
	return &ReadingHandler{readingService: readingService}
}

// CastReading handles POST /api/readings
func (h *ReadingHandler) CastReading(w http.ResponseWriter, r *http.Request) {
	var req CastReadingRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}

	reading, err := h.readingService.CastReading(r.Context(), castRequest(req))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, reading)
}

// InterpretCast handles POST /api/readings/interpret
func (h *ReadingHandler) InterpretCast(w http.ResponseWriter, r *http.Request) {
	var req InterpretCastRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	reading, err := h.readingService.InterpretCast(r.Context(), toDomainLines(req.Lines), castRequest(req.CastReadingRequest))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, reading)
}

func castRequest(req CastReadingRequest) service.CastRequest {
	return service.CastRequest{
		Question:  req.Question,
		UserNotes: req.UserNotes,
		Tags:      req.Tags,
	}
}
