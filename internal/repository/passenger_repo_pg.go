package repository

import (
	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PassengerRepository = Repository[domain.Passenger, domain.PassengerFilter]

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return NewPGRepository(db, Mapping[domain.Passenger, domain.PassengerFilter]{
		Table:         "passengers",
		Columns:       []string{"id", "first_name", "last_name", "passport", "email", "created_at", "updated_at"},
		InsertColumns: []string{"first_name", "last_name", "passport", "email"},
		InsertValues:  func(p *domain.Passenger) []any { return []any{p.FirstName, p.LastName, p.Passport, p.Email} },
		UpdateColumns: []string{"first_name", "last_name", "passport", "email"},
		UpdateValues:  func(p *domain.Passenger) []any { return []any{p.FirstName, p.LastName, p.Passport, p.Email} },
		ID:            func(p *domain.Passenger) int64 { return p.ID },
		Filter:        passengerConds,
		Dependents:    []Dependent{{Table: "plane_tickets", Column: "passenger_id"}},
	})
}

func passengerConds(f domain.PassengerFilter) []Cond {
	var conds []Cond
	if f.FirstName != "" {
		conds = append(conds, Cond{Expr: `first_name ILIKE '%%' || $%d || '%%'`, Arg: f.FirstName})
	}
	if f.LastName != "" {
		conds = append(conds, Cond{Expr: `last_name ILIKE '%%' || $%d || '%%'`, Arg: f.LastName})
	}
	if f.Passport != "" {
		conds = append(conds, Cond{Expr: `passport = $%d`, Arg: f.Passport})
	}
	return conds
}
