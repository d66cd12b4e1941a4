package domain

import (
	"encoding/json"
	"time"
)

// AuditEntry is one recorded entity change, written by the worker from the changes topic.
type AuditEntry struct {
	ID         int64           `json:"id" db:"id"`
	Entity     string          `json:"entity" db:"entity"`
	Action     string          `json:"action" db:"action"`
	EntityID   int64           `json:"entity_id" db:"entity_id"`
	Payload    json.RawMessage `json:"payload" db:"payload"`
	OccurredAt time.Time       `json:"occurred_at" db:"occurred_at"`
}
