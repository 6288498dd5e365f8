package entities

import "time"

// AuditEntry records a state-changing operation. Recording is best-effort:
// a failed audit write never rolls back the financial transaction.
type AuditEntry struct {
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Before     string    `json:"before,omitempty"`
	After      string    `json:"after,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// NotificationEvent informs downstream channels of approvals, rejections and
// payments. Delivery is fire-and-forget.
type NotificationEvent struct {
	Kind       string `json:"kind"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Message    string `json:"message"`
}
