package api

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"campusfaq/internal/db"
	"campusfaq/internal/models"
)

// FAQStore manages FAQs in the structured store.
type FAQStore interface {
	ListFAQs(ctx context.Context) ([]models.StoredFAQ, error)
	GetFAQByID(ctx context.Context, id uuid.UUID) (*models.StoredFAQ, error)
	CreateFAQ(ctx context.Context, question, answer string, category *string) (*models.StoredFAQ, error)
	DeleteFAQ(ctx context.Context, id uuid.UUID) error
}

// FAQHandler manages structured-store FAQs via JSON API.
type FAQHandler struct {
	store FAQStore
	cache FAQCache
}

// NewFAQHandler creates a new API FAQ handler. Changes force a cache refresh
// so they are visible to the next query.
func NewFAQHandler(store FAQStore, cache FAQCache) *FAQHandler {
	return &FAQHandler{store: store, cache: cache}
}

// List returns all stored FAQs.
func (h *FAQHandler) List(c fiber.Ctx) error {
	faqs, err := h.store.ListFAQs(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch faqs")
	}
	if faqs == nil {
		faqs = []models.StoredFAQ{}
	}
	return jsonSuccess(c, faqs)
}

// Get returns a single stored FAQ.
func (h *FAQHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid faq id")
	}

	faq, err := h.store.GetFAQByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrFAQNotFound) {
			return jsonError(c, fiber.StatusNotFound, "faq not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch faq")
	}
	return jsonSuccess(c, faq)
}

// Create adds a new FAQ.
func (h *FAQHandler) Create(c fiber.Ctx) error {
	var body struct {
		Question string  `json:"question"`
		Answer   string  `json:"answer"`
		Category *string `json:"category"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	question := strings.TrimSpace(body.Question)
	answer := strings.TrimSpace(body.Answer)
	if question == "" || answer == "" {
		return jsonError(c, fiber.StatusBadRequest, "question and answer are required")
	}

	created, err := h.store.CreateFAQ(c.Context(), question, answer, body.Category)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateQuestion) {
			return jsonError(c, fiber.StatusConflict, "question already exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to create faq")
	}

	h.cache.Refresh(c.Context())
	return jsonStatus(c, fiber.StatusCreated, created)
}

// Delete removes an FAQ by ID.
func (h *FAQHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid faq id")
	}

	if err := h.store.DeleteFAQ(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrFAQNotFound) {
			return jsonError(c, fiber.StatusNotFound, "faq not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete faq")
	}

	h.cache.Refresh(c.Context())
	return jsonSuccess(c, fiber.Map{"deleted": id})
}
