package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/yijing-api/internal/api"
	apiMiddleware "github.com/phrazzld/yijing-api/internal/api/middleware"
	"github.com/phrazzld/yijing-api/internal/api/shared"
)

// requestTimeout bounds the time a handler may spend on one request.
const requestTimeout = 30 * time.Second

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status    string `json:"status"`
	Hexagrams int    `json:"hexagrams"`
}

// setupRouter creates the router with middleware and every API route.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(apiMiddleware.Trace(app.logger))

	readingHandler := api.NewReadingHandler(app.readingService)
	hexagramHandler := api.NewHexagramHandler(app.readingService)
	safetyHandler := api.NewSafetyHandler(app.readingService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/readings", readingHandler.CastReading)
		r.Post("/readings/interpret", readingHandler.InterpretCast)

		r.Get("/hexagrams", hexagramHandler.ListHexagrams)
		r.Get("/hexagrams/{number}", hexagramHandler.GetHexagram)

		r.Post("/safety/classify", safetyHandler.Classify)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, healthResponse{
			Status:    "ok",
			Hexagrams: app.dataset.Len(),
		})
	})

	return r
}
