package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type ApiUser struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type ApiUserFilter struct {
	Username string
	Role     string
}

func (f ApiUserFilter) Empty() bool {
	return f.Username == "" && f.Role == ""
}
