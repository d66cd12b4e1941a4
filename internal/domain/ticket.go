package domain

import "time"

type PlaneTicket struct {
	ID            int64     `json:"id" db:"id"`
	PriceCents    int64     `json:"price_cents" db:"price_cents"`
	SeatNumber    int       `json:"seat_number" db:"seat_number"`
	PurchaseDate  time.Time `json:"purchase_date" db:"purchase_date"`
	PassengerID   int64     `json:"passenger_id" db:"passenger_id"`
	TravelClassID int64     `json:"travel_class_id" db:"travel_class_id"`
	FlightID      int64     `json:"flight_id" db:"flight_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type PlaneTicketFilter struct {
	FlightID      *int64
	PriceMinCents *int64
	PriceMaxCents *int64
}

func (f PlaneTicketFilter) Empty() bool {
	return f.FlightID == nil && f.PriceMinCents == nil && f.PriceMaxCents == nil
}
