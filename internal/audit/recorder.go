package audit

import (
	"context"
	"time"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/Domenick1991/airportadm/internal/kafka"
	"github.com/Domenick1991/airportadm/internal/repository"
)

// Recorder turns consumed change events into audit log rows.
type Recorder struct {
	entries repository.AuditRepository
}

func NewRecorder(entries repository.AuditRepository) *Recorder {
	return &Recorder{entries: entries}
}

func (r *Recorder) Record(ctx context.Context, event kafka.ChangeEvent) error {
	entry := &domain.AuditEntry{
		Entity:     event.Entity,
		Action:     event.Action,
		EntityID:   event.EntityID,
		Payload:    event.Payload,
		OccurredAt: event.OccurredAt,
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now()
	}
	return r.entries.Insert(ctx, entry)
}
