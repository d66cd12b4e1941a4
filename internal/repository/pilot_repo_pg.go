package repository

import (
	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PilotRepository = Repository[domain.Pilot, domain.PilotFilter]

func NewPilotRepository(db *pgxpool.Pool) PilotRepository {
	return NewPGRepository(db, Mapping[domain.Pilot, domain.PilotFilter]{
		Table:         "pilots",
		Columns:       []string{"id", "first_name", "last_name", "flying_hours", "created_at", "updated_at"},
		InsertColumns: []string{"first_name", "last_name", "flying_hours"},
		InsertValues:  func(p *domain.Pilot) []any { return []any{p.FirstName, p.LastName, p.FlyingHours} },
		UpdateColumns: []string{"first_name", "last_name", "flying_hours"},
		UpdateValues:  func(p *domain.Pilot) []any { return []any{p.FirstName, p.LastName, p.FlyingHours} },
		ID:            func(p *domain.Pilot) int64 { return p.ID },
		Filter:        pilotConds,
		Dependents:    []Dependent{{Table: "flights", Column: "pilot_id"}},
	})
}

func pilotConds(f domain.PilotFilter) []Cond {
	var conds []Cond
	if f.FirstName != "" {
		conds = append(conds, Cond{Expr: `first_name ILIKE '%%' || $%d || '%%'`, Arg: f.FirstName})
	}
	if f.LastName != "" {
		conds = append(conds, Cond{Expr: `last_name ILIKE '%%' || $%d || '%%'`, Arg: f.LastName})
	}
	return conds
}
