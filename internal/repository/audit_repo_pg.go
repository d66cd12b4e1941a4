package repository

import (
	"context"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type PGAuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) AuditRepository {
	return &PGAuditRepository{db: db}
}

func (r *PGAuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	return r.db.QueryRow(ctx, `INSERT INTO audit_log (entity, action, entity_id, payload, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, entry.Entity, entry.Action, entry.EntityID, entry.Payload, entry.OccurredAt).
		Scan(&entry.ID)
}

func (r *PGAuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, entity, action, entity_id, payload, occurred_at FROM audit_log ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[domain.AuditEntry])
}

var _ AuditRepository = (*PGAuditRepository)(nil)
