package domain

import "time"

type Destination struct {
	ID        int64     `json:"id" db:"id"`
	Airport   string    `json:"airport" db:"airport"`
	City      string    `json:"city" db:"city"`
	Country   string    `json:"country" db:"country"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type DestinationFilter struct {
	Airport string
	City    string
}

func (f DestinationFilter) Empty() bool {
	return f.Airport == "" && f.City == ""
}
