package entity

import (
	"strings"
	"time"
)

// User is the aggregate root for the user domain.
//
// ID and CreatedAt are assigned by the persistence layer on first save;
// their zero values mean "not yet persisted".
type User struct {
	ID        int64
	Email     string
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

// NewUser builds an unpersisted user with IsActive defaulting to true.
func NewUser(email, name string) *User {
	return &User{
		Email:    email,
		Name:     name,
		IsActive: true,
	}
}

// Persisted reports whether the store has assigned the user an identity.
func (u *User) Persisted() bool {
	return u.ID != 0
}

// Validate checks the current field values and returns a typed domain error
// on the first violation. It reads only the entity's own fields.
//
// Email must be non-empty and contain "@"; a lone "@" passes. Name must be
// at least 2 characters; no trimming is applied, so whitespace-only names
// of sufficient length pass. Both rules are documented behavior.
func (u *User) Validate() error {
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return &InvalidEmailError{Email: u.Email}
	}
	if len(u.Name) < 2 {
		return &InvalidNameError{Name: u.Name}
	}
	return nil
}
