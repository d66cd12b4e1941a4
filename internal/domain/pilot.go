package domain

import "time"

type Pilot struct {
	ID          int64     `json:"id" db:"id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	FlyingHours int       `json:"flying_hours" db:"flying_hours"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type PilotFilter struct {
	FirstName string
	LastName  string
}

func (f PilotFilter) Empty() bool {
	return f.FirstName == "" && f.LastName == ""
}
