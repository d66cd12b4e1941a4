package repository

import (
	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlaneTicketRepository = Repository[domain.PlaneTicket, domain.PlaneTicketFilter]

func NewPlaneTicketRepository(db *pgxpool.Pool) PlaneTicketRepository {
	return NewPGRepository(db, Mapping[domain.PlaneTicket, domain.PlaneTicketFilter]{
		Table: "plane_tickets",
		Columns: []string{
			"id", "price_cents", "seat_number", "purchase_date",
			"passenger_id", "travel_class_id", "flight_id", "created_at", "updated_at",
		},
		InsertColumns: []string{"price_cents", "seat_number", "purchase_date", "passenger_id", "travel_class_id", "flight_id"},
		InsertValues: func(t *domain.PlaneTicket) []any {
			return []any{t.PriceCents, t.SeatNumber, t.PurchaseDate, t.PassengerID, t.TravelClassID, t.FlightID}
		},
		UpdateColumns: []string{"price_cents", "seat_number", "purchase_date", "passenger_id", "travel_class_id", "flight_id"},
		UpdateValues: func(t *domain.PlaneTicket) []any {
			return []any{t.PriceCents, t.SeatNumber, t.PurchaseDate, t.PassengerID, t.TravelClassID, t.FlightID}
		},
		ID:     func(t *domain.PlaneTicket) int64 { return t.ID },
		Filter: ticketConds,
	})
}

func ticketConds(f domain.PlaneTicketFilter) []Cond {
	var conds []Cond
	if f.FlightID != nil {
		conds = append(conds, Cond{Expr: `flight_id = $%d`, Arg: *f.FlightID})
	}
	if f.PriceMinCents != nil {
		conds = append(conds, Cond{Expr: `price_cents >= $%d`, Arg: *f.PriceMinCents})
	}
	if f.PriceMaxCents != nil {
		conds = append(conds, Cond{Expr: `price_cents <= $%d`, Arg: *f.PriceMaxCents})
	}
	return conds
}
