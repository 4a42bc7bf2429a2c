package api

import (
	"net/http"

	"github.com/phrazzld/yijing-api/internal/api/shared"
	"github.com/phrazzld/yijing-api/internal/service"
)

// HexagramHandler serves the reference dataset
type HexagramHandler struct {
	readingService service.ReadingService
}

// NewHexagramHandler creates a new HexagramHandler
func NewHexagramHandler(readingService service.ReadingService) *HexagramHandler {
	return &HexagramHandler{readingService: readingService}
}

// ListHexagrams handles GET /api/hexagrams
func (h *HexagramHandler) ListHexagrams(w http.ResponseWriter, r *http.Request) {
	records := h.readingService.Hexagrams(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, HexagramListResponse{
		Count:     len(records),
		Hexagrams: toSummaries(records),
	})
}

// GetHexagram handles GET /api/hexagrams/{number}
func (h *HexagramHandler) GetHexagram(w http.ResponseWriter, r *http.Request) {
	number, err := getPathInt(r, "number")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid hexagram number")
		return
	}

	record, err := h.readingService.Hexagram(r.Context(), number)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, record)
}
