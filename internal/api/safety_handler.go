package api

import (
	"net/http"

	"github.com/phrazzld/yijing-api/internal/api/shared"
	"github.com/phrazzld/yijing-api/internal/service"
)

// SafetyHandler exposes the question classifier
type SafetyHandler struct {
	readingService service.ReadingService
}

// NewSafetyHandler creates a new SafetyHandler
func NewSafetyHandler(readingService service.ReadingService) *SafetyHandler {
	return &SafetyHandler{readingService: readingService}
}

// Classify handles POST /api/safety/classify. An empty body classifies an
// absent question.
func (h *SafetyHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, h.readingService.Classify(r.Context(), req.Question))
}
