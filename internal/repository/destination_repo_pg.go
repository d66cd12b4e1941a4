package repository

import (
	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DestinationRepository = Repository[domain.Destination, domain.DestinationFilter]

func NewDestinationRepository(db *pgxpool.Pool) DestinationRepository {
	return NewPGRepository(db, Mapping[domain.Destination, domain.DestinationFilter]{
		Table:         "destinations",
		Columns:       []string{"id", "airport", "city", "country", "created_at", "updated_at"},
		InsertColumns: []string{"airport", "city", "country"},
		InsertValues:  func(d *domain.Destination) []any { return []any{d.Airport, d.City, d.Country} },
		UpdateColumns: []string{"airport", "city", "country"},
		UpdateValues:  func(d *domain.Destination) []any { return []any{d.Airport, d.City, d.Country} },
		ID:            func(d *domain.Destination) int64 { return d.ID },
		Filter:        destinationConds,
		Dependents: []Dependent{
			{Table: "flights", Column: "start_destination_id"},
			{Table: "flights", Column: "end_destination_id"},
		},
	})
}

func destinationConds(f domain.DestinationFilter) []Cond {
	var conds []Cond
	if f.Airport != "" {
		conds = append(conds, Cond{Expr: `airport ILIKE '%%' || $%d || '%%'`, Arg: f.Airport})
	}
	if f.City != "" {
		conds = append(conds, Cond{Expr: `city ILIKE '%%' || $%d || '%%'`, Arg: f.City})
	}
	return conds
}
