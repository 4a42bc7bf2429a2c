package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/yijing-api/internal/api/shared"
	"github.com/phrazzld/yijing-api/internal/domain"
	"github.com/phrazzld/yijing-api/internal/platform/logger"
)

// getPathInt extracts an integer path parameter.
func getPathInt(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, fmt.Errorf("%s is required: %w", paramName, domain.ErrValidation)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid format: %w", paramName, domain.ErrValidation)
	}
	return n, nil
}

// decodeAndValidate reads the JSON body into v and validates it, writing a
// 400 response on failure. With allowEmpty an absent body leaves v at its
// zero value.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}, allowEmpty bool) bool {
	log := logger.FromContext(r.Context())

	if err := shared.DecodeJSON(r, v); err != nil {
		if !(allowEmpty && errors.Is(err, shared.ErrEmptyBody)) {
			log.Debug("rejected request body", "error", err)
			msg := "Invalid request format"
			if errors.Is(err, shared.ErrEmptyBody) {
				msg = GetSafeErrorMessage(err)
			}
			shared.RespondWithError(w, r, http.StatusBadRequest, msg)
			return false
		}
	}

	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}

	return true
}
