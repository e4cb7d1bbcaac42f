package entity

import "fmt"

// Domain errors form a closed set of failure kinds. Each carries the value
// that caused it so callers can surface it without re-deriving context.
// Storage and transport failures are not modeled here; they propagate as
// plain wrapped errors.

type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email format: %s", e.Email)
}

type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name: %q, name must be at least 2 characters", e.Name)
}

type UserNotFoundError struct {
	ID int64
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user not found with id: %d", e.ID)
}

type EmailAlreadyExistsError struct {
	Email string
}

func (e *EmailAlreadyExistsError) Error() string {
	return fmt.Sprintf("email already exists: %s", e.Email)
}
