package domain

import "time"

type TravelClass struct {
	ID        int64     `json:"id" db:"id"`
	Type      string    `json:"type" db:"type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type TravelClassFilter struct {
	Type string
}

func (f TravelClassFilter) Empty() bool {
	return f.Type == ""
}
