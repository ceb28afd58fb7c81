package models

// Response sources, also used as query lookup outcomes.
const (
	ResponseStructured = "structured"
	ResponseNotFound   = "not_found"
	ResponseFAQ        = "faq"
	ResponseKeyword    = "keyword"
	ResponseUnknown    = "unknown"
	ResponseError      = "error"
)

// IntentRequest is the inbound request handed to the dispatcher.
type IntentRequest struct {
	IntentName string            `json:"intentName"`
	Parameters map[string]string `json:"parameters"`
	QueryText  string            `json:"queryText,omitempty"`
}

// Param returns the first non-empty parameter among keys.
func (r IntentRequest) Param(keys ...string) string {
	for _, k := range keys {
		if v, ok := r.Parameters[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

// IntentResponse carries the single response produced for a request.
type IntentResponse struct {
	ResponseText string `json:"responseText"`
	Source       string `json:"source"`
}
