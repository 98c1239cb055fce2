package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user NewUser) (User, error)
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) error
}

// User represents a stored account.
type User struct {
	ID               uuid.UUID
	Role             string
	LastLoginAs      string
	FirstName        string
	LastName         string
	Email            string
	PasswordHash     string
	Language         string
	NativeLanguage   string
	IsEmailConfirmed bool
	IsFirstLogin     bool
	LastLogin        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUser carries the fields written on signup.
type NewUser struct {
	Role           string
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string
	Language       string
	NativeLanguage string
}

// UserUpdate is a partial update. Nil fields are left untouched.
type UserUpdate struct {
	PasswordHash     *string
	LastLoginAs      *string
	IsEmailConfirmed *bool
	IsFirstLogin     *bool
	LastLogin        *time.Time
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.PasswordHash == nil && u.LastLoginAs == nil &&
		u.IsEmailConfirmed == nil && u.IsFirstLogin == nil && u.LastLogin == nil
}
