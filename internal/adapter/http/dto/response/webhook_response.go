package response

import "fiscalai/internal/usecase"

// WebhookAckResponse acknowledges a gateway delivery. Processed is false for
// event types the service deliberately ignores.
type WebhookAckResponse struct {
	Received  bool   `json:"received"`
	Processed bool   `json:"processed"`
	EventType string `json:"event_type,omitempty"`
}

func FromWebhookResult(r usecase.WebhookResult) WebhookAckResponse {
	return WebhookAckResponse{Received: true, Processed: r.Processed, EventType: r.EventType}
}
