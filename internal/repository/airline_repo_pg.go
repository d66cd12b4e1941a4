package repository

import (
	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirlineRepository = Repository[domain.Airline, domain.AirlineFilter]

func NewAirlineRepository(db *pgxpool.Pool) AirlineRepository {
	return NewPGRepository(db, Mapping[domain.Airline, domain.AirlineFilter]{
		Table:         "airlines",
		Columns:       []string{"id", "name", "created_at", "updated_at"},
		InsertColumns: []string{"name"},
		InsertValues:  func(a *domain.Airline) []any { return []any{a.Name} },
		UpdateColumns: []string{"name"},
		UpdateValues:  func(a *domain.Airline) []any { return []any{a.Name} },
		ID:            func(a *domain.Airline) int64 { return a.ID },
		Filter:        airlineConds,
		Dependents:    []Dependent{{Table: "flights", Column: "airline_id"}},
	})
}

func airlineConds(f domain.AirlineFilter) []Cond {
	var conds []Cond
	if f.Name != "" {
		conds = append(conds, Cond{Expr: `name ILIKE '%%' || $%d || '%%'`, Arg: f.Name})
	}
	return conds
}
