package domain

import "time"

type Airline struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AirlineFilter narrows airline listings; empty fields impose no constraint.
type AirlineFilter struct {
	Name string
}

func (f AirlineFilter) Empty() bool {
	return f.Name == ""
}
