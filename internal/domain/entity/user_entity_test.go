package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_InvalidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{"empty", ""},
		{"no at sign", "userexample.com"},
		{"plain word", "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUser(tt.email, "Valid Name")
			err := u.Validate()

			require.Error(t, err)
			var invalid *InvalidEmailError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.email, invalid.Email)
		})
	}
}

func TestValidate_InvalidName(t *testing.T) {
	tests := []struct {
		name     string
		userName string
	}{
		{"empty", ""},
		{"single char", "J"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUser("user@example.com", tt.userName)
			err := u.Validate()

			require.Error(t, err)
			var invalid *InvalidNameError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.userName, invalid.Name)
		})
	}
}

func TestValidate_EmailCheckedBeforeName(t *testing.T) {
	u := NewUser("no-at-sign", "J")
	err := u.Validate()

	var invalidEmail *InvalidEmailError
	require.ErrorAs(t, err, &invalidEmail)
}

func TestValidate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		email string
		uname string
	}{
		{"regular", "user@example.com", "John Doe"},
		{"minimal name", "a@b.com", "Jo"},
		// a lone "@" passes the contains check
		{"lone at sign", "@", "Jo"},
		// no trimming: whitespace-only names of length >= 2 pass
		{"whitespace name", "user@example.com", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUser(tt.email, tt.uname)
			require.NoError(t, u.Validate())
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	valid := NewUser("user@example.com", "John")
	require.NoError(t, valid.Validate())
	require.NoError(t, valid.Validate())

	invalid := NewUser("bad", "John")
	first := invalid.Validate()
	second := invalid.Validate()
	require.Error(t, first)
	assert.Equal(t, first, second)
}

func TestValidate_PureReadOnly(t *testing.T) {
	u := NewUser("user@example.com", "John")
	before := *u
	_ = u.Validate()
	assert.Equal(t, before, *u)
}

func TestNewUser_Defaults(t *testing.T) {
	u := NewUser("user@example.com", "John")

	assert.True(t, u.IsActive)
	assert.False(t, u.Persisted())
	assert.True(t, u.CreatedAt.IsZero())
}
