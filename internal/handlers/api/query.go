package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"campusfaq/internal/metrics"
	"campusfaq/internal/models"
)

// Dispatcher produces one response per intent request.
type Dispatcher interface {
	Dispatch(ctx context.Context, req models.IntentRequest) models.IntentResponse
}

// QueryHandler answers intent requests via JSON API.
type QueryHandler struct {
	dispatcher Dispatcher
}

// NewQueryHandler creates a new API query handler.
func NewQueryHandler(dispatcher Dispatcher) *QueryHandler {
	return &QueryHandler{dispatcher: dispatcher}
}

// Query dispatches a {intentName, parameters, queryText} request and returns {responseText}.
func (h *QueryHandler) Query(c fiber.Ctx) error {
	var req models.IntentRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.IntentName) == "" && strings.TrimSpace(req.QueryText) == "" {
		return jsonError(c, fiber.StatusBadRequest, "intentName or queryText is required")
	}

	resp := h.dispatch(c.Context(), req)
	return jsonSuccess(c, resp)
}

// Webhook answers a Dialogflow ES fulfillment request.
// Errors are still answered with a fulfillment text so the agent always has something to say.
func (h *QueryHandler) Webhook(c fiber.Ctx) error {
	var body models.WebhookRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.WebhookResponse{
			FulfillmentText: "Sorry, I couldn't understand that request.",
		})
	}

	req := models.IntentRequest{
		IntentName: body.QueryResult.Intent.DisplayName,
		Parameters: stringParams(body.QueryResult.Parameters),
		QueryText:  body.QueryResult.QueryText,
	}

	resp := h.dispatch(c.Context(), req)
	return c.JSON(models.WebhookResponse{FulfillmentText: resp.ResponseText})
}

func (h *QueryHandler) dispatch(ctx context.Context, req models.IntentRequest) models.IntentResponse {
	resp := h.dispatcher.Dispatch(ctx, req)
	metrics.RecordQuery(req.IntentName, resp.Source)
	return resp
}

// stringParams flattens Dialogflow parameter values to strings. Numbers such
// as a numeric student ID arrive as float64.
func stringParams(raw map[string]any) map[string]string {
	params := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			params[k] = val
		case float64:
			params[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			params[k] = fmt.Sprint(val)
		}
	}
	return params
}
