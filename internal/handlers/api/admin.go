package api

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"campusfaq/internal/models"
)

// FAQCache is the FAQ aggregation cache as seen by the admin surface.
type FAQCache interface {
	Refresh(ctx context.Context) int
	Stats() models.AggregatorStats
}

// KeywordCache is the keyword store as seen by the admin surface.
type KeywordCache interface {
	Refresh(ctx context.Context) int
	Stats() models.KeywordStoreStats
}

// AdminHandler exposes cache state and forced refreshes.
type AdminHandler struct {
	faqs     FAQCache
	keywords KeywordCache
}

// NewAdminHandler creates a new API admin handler.
func NewAdminHandler(faqs FAQCache, keywords KeywordCache) *AdminHandler {
	return &AdminHandler{faqs: faqs, keywords: keywords}
}

// FAQStats implements metrics.StatsProvider.
func (h *AdminHandler) FAQStats() models.AggregatorStats { return h.faqs.Stats() }

// KeywordStats implements metrics.StatsProvider.
func (h *AdminHandler) KeywordStats() models.KeywordStoreStats { return h.keywords.Stats() }

// Stats returns the current cache counters.
func (h *AdminHandler) Stats(c fiber.Ctx) error {
	return jsonSuccess(c, models.StatsResponse{
		FAQ:      h.FAQStats(),
		Keywords: h.KeywordStats(),
	})
}

// Refresh forces both caches to reload and returns their new sizes.
func (h *AdminHandler) Refresh(c fiber.Ctx) error {
	return jsonSuccess(c, models.RefreshResponse{
		FAQEntries:     h.faqs.Refresh(c.Context()),
		KeywordEntries: h.keywords.Refresh(c.Context()),
	})
}
