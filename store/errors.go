package store

import "errors"

var (
	// ErrDuplicateEmail is returned when registering an email that already
	// has an account.
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrUserNotFound is returned when no account matches the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrOrderExists is returned by an insert whose order id is already
	// taken.
	ErrOrderExists = errors.New("order id already exists")

	// ErrOrderNotFound is returned when no order matches the given id.
	ErrOrderNotFound = errors.New("order not found")

	// ErrBookNotFound is returned when no catalog entry matches the given
	// title.
	ErrBookNotFound = errors.New("book not found")
)
