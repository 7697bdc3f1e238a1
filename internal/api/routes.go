package api

import (
	"github.com/gofiber/fiber/v3"

	"github.com/codesimplify/backend/internal/auth"
)

// SetupRoutes wires the API. Chat deliberately carries no auth: the
// conversational endpoint holds no user data and mirrors the public
// behavior of the original service. Handlers run in registration order,
// so the auth middleware must come before the route handler.
func SetupRoutes(app *fiber.App, h *Handler, verifier *auth.Verifier) {
	api := app.Group("/api")

	api.Post("/chat", h.Chat)

	requireAuth := verifier.Middleware()
	api.Post("/summarize", requireAuth, h.Summarize)
	api.Post("/analyze-file", requireAuth, h.AnalyzeFile)
	api.Get("/scans", requireAuth, h.RecentScans)
}
