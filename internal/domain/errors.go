package domain

import "errors"

var (
	// ErrNotFound signals an absent row for the requested primary key.
	ErrNotFound = errors.New("entity not found")
	// ErrHasDependents blocks deletion while rows in other tables still reference the entity.
	ErrHasDependents = errors.New("entity has dependent rows")
	// ErrInvalidReference signals a foreign key that does not resolve to an existing row.
	ErrInvalidReference = errors.New("referenced entity does not exist")
	// ErrAlreadyExists signals a unique constraint violation, currently only usernames.
	ErrAlreadyExists = errors.New("entity already exists")
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
