package repository

import (
	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TravelClassRepository = Repository[domain.TravelClass, domain.TravelClassFilter]

func NewTravelClassRepository(db *pgxpool.Pool) TravelClassRepository {
	return NewPGRepository(db, Mapping[domain.TravelClass, domain.TravelClassFilter]{
		Table:         "travel_classes",
		Columns:       []string{"id", "type", "created_at", "updated_at"},
		InsertColumns: []string{"type"},
		InsertValues:  func(t *domain.TravelClass) []any { return []any{t.Type} },
		UpdateColumns: []string{"type"},
		UpdateValues:  func(t *domain.TravelClass) []any { return []any{t.Type} },
		ID:            func(t *domain.TravelClass) int64 { return t.ID },
		Filter:        travelClassConds,
		Dependents:    []Dependent{{Table: "plane_tickets", Column: "travel_class_id"}},
	})
}

func travelClassConds(f domain.TravelClassFilter) []Cond {
	var conds []Cond
	if f.Type != "" {
		conds = append(conds, Cond{Expr: `type ILIKE '%%' || $%d || '%%'`, Arg: f.Type})
	}
	return conds
}
