// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"fileshare/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when a create collides with an existing phone number or external ID.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByPhoneNumber retrieves a single user by their E.164 phone number.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)

	// FindByExternalID retrieves a single user by their identity provider subject.
	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// Create persists a new user. It validates the identity invariant before writing and
	// returns ErrUserAlreadyExists when a unique key is taken.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the profile fields of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// MarkPhoneVerified sets the phone-verified flag.
	MarkPhoneVerified(ctx context.Context, id uuid.UUID) error

	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)

	// List returns users newest first.
	List(ctx context.Context, limit int) ([]*entity.User, error)
}
