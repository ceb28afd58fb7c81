package models

import "time"

// SourceStats reports the last contribution of a single FAQ source.
type SourceStats struct {
	Source    FAQSource `json:"source"`
	Entries   int       `json:"entries"`
	LastError string    `json:"last_error,omitempty"`
}

// AggregatorStats describes the FAQ aggregation cache.
type AggregatorStats struct {
	Entries     int           `json:"entries"`
	RefreshedAt *time.Time    `json:"refreshed_at"`
	Sources     []SourceStats `json:"sources"`
}

// KeywordStoreStats describes the keyword store.
type KeywordStoreStats struct {
	Entries   int        `json:"entries"`
	LoadedAt  *time.Time `json:"loaded_at"`
	LastError string     `json:"last_error,omitempty"`
}

// StatsResponse is returned by the admin stats endpoint.
type StatsResponse struct {
	FAQ      AggregatorStats   `json:"faq"`
	Keywords KeywordStoreStats `json:"keywords"`
}

// RefreshResponse is returned by the admin refresh endpoint.
type RefreshResponse struct {
	FAQEntries     int `json:"faq_entries"`
	KeywordEntries int `json:"keyword_entries"`
}

// WebhookRequest is the subset of a Dialogflow ES fulfillment request the service reads.
type WebhookRequest struct {
	ResponseID  string `json:"responseId"`
	QueryResult struct {
		QueryText  string         `json:"queryText"`
		Parameters map[string]any `json:"parameters"`
		Intent     struct {
			DisplayName string `json:"displayName"`
		} `json:"intent"`
	} `json:"queryResult"`
}

// WebhookResponse is the Dialogflow ES fulfillment response.
type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}
