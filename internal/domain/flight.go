package domain

import "time"

type Flight struct {
	ID                 int64     `json:"id" db:"id"`
	AirlineID          int64     `json:"airline_id" db:"airline_id"`
	PilotID            int64     `json:"pilot_id" db:"pilot_id"`
	StartDestinationID int64     `json:"start_destination_id" db:"start_destination_id"`
	EndDestinationID   int64     `json:"end_destination_id" db:"end_destination_id"`
	DepartureTime      time.Time `json:"departure_time" db:"departure_time"`
	LandingTime        time.Time `json:"landing_time" db:"landing_time"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

type FlightFilter struct {
	AirlineID     *int64
	DepartureFrom *time.Time
	DepartureTo   *time.Time
}

func (f FlightFilter) Empty() bool {
	return f.AirlineID == nil && f.DepartureFrom == nil && f.DepartureTo == nil
}
