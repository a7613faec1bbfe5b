// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"fileshare/internal/domain/entity"
)

// SessionOutput is a minted bearer credential.
type SessionOutput struct {
	Token     string
	ExpiresAt time.Time
}

// ExternalLoginInput carries an identity provider ID token.
type ExternalLoginInput struct {
	IDToken string
	Name    string
}

// ExternalLoginOutput returns the signed-in user and their bearer credential.
type ExternalLoginOutput struct {
	Session *SessionOutput
	User    *entity.User
	Created bool
}

// SessionUsecase mints and checks bearer credentials.
type SessionUsecase interface {
	Mint(ctx context.Context, user *entity.User) (*SessionOutput, error)
	Authenticate(ctx context.Context, token string) (*entity.User, error)
	ExternalLogin(ctx context.Context, input ExternalLoginInput) (*ExternalLoginOutput, error)
}
