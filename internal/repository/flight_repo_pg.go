package repository

import (
	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository = Repository[domain.Flight, domain.FlightFilter]

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return NewPGRepository(db, Mapping[domain.Flight, domain.FlightFilter]{
		Table: "flights",
		Columns: []string{
			"id", "airline_id", "pilot_id", "start_destination_id", "end_destination_id",
			"departure_time", "landing_time", "created_at", "updated_at",
		},
		InsertColumns: []string{
			"airline_id", "pilot_id", "start_destination_id", "end_destination_id",
			"departure_time", "landing_time",
		},
		InsertValues: func(f *domain.Flight) []any {
			return []any{f.AirlineID, f.PilotID, f.StartDestinationID, f.EndDestinationID, f.DepartureTime, f.LandingTime}
		},
		UpdateColumns: []string{
			"airline_id", "pilot_id", "start_destination_id", "end_destination_id",
			"departure_time", "landing_time",
		},
		UpdateValues: func(f *domain.Flight) []any {
			return []any{f.AirlineID, f.PilotID, f.StartDestinationID, f.EndDestinationID, f.DepartureTime, f.LandingTime}
		},
		ID:         func(f *domain.Flight) int64 { return f.ID },
		Filter:     flightConds,
		Dependents: []Dependent{{Table: "plane_tickets", Column: "flight_id"}},
	})
}

func flightConds(f domain.FlightFilter) []Cond {
	var conds []Cond
	if f.AirlineID != nil {
		conds = append(conds, Cond{Expr: `airline_id = $%d`, Arg: *f.AirlineID})
	}
	if f.DepartureFrom != nil {
		conds = append(conds, Cond{Expr: `departure_time >= $%d`, Arg: *f.DepartureFrom})
	}
	if f.DepartureTo != nil {
		conds = append(conds, Cond{Expr: `departure_time <= $%d`, Arg: *f.DepartureTo})
	}
	return conds
}
