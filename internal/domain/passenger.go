package domain

import "time"

type Passenger struct {
	ID        int64     `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Passport  string    `json:"passport" db:"passport"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type PassengerFilter struct {
	FirstName string
	LastName  string
	Passport  string
}

func (f PassengerFilter) Empty() bool {
	return f.FirstName == "" && f.LastName == "" && f.Passport == ""
}
