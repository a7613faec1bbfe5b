// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fileshare/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}

// --- Input DTOs ---

// UpdateProfileInput holds the fields to change; nil fields are left untouched.
type UpdateProfileInput struct {
	Name           *string
	Email          *string
	ProfilePicture *string
}
