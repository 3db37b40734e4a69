package errors

import "errors"

var (
	// ErrUserAlreadyExists is returned when an email is already registered,
	// whether caught by the pre-insert lookup or by the unique index on
	// users.email.
	ErrUserAlreadyExists = errors.New("user already exists")
)
