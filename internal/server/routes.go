package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusfaq/internal/handlers/api"
)

// Handlers groups the API handlers mounted by RegisterRoutes.
type Handlers struct {
	Query *api.QueryHandler
	Admin *api.AdminHandler
	FAQs  *api.FAQHandler
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(h Handlers) {
	s.App.Get("/healthz", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Inbound queries
	s.App.Post("/api/query", h.Query.Query)
	s.App.Post("/webhook", h.Query.Webhook)

	// Admin surface
	s.App.Get("/api/admin/stats", h.Admin.Stats)
	s.App.Post("/api/admin/refresh", h.Admin.Refresh)
	s.App.Get("/api/faqs", h.FAQs.List)
	s.App.Get("/api/faqs/:id", h.FAQs.Get)
	s.App.Post("/api/faqs", h.FAQs.Create)
	s.App.Delete("/api/faqs/:id", h.FAQs.Delete)
}
