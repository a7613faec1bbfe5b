// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fileshare/internal/domain/entity"
)

// --- Input DTOs ---

// VerifyCodeInput defines the data submitted to verify a one-time code.
type VerifyCodeInput struct {
	PhoneNumber string
	Code        string
	Name        string // Required only when the phone number has no user yet.
}

// --- Output DTOs ---

// IssueCodeOutput reports whether the number belongs to a new user and whether the SMS went out.
type IssueCodeOutput struct {
	PhoneNumber string
	IsNewUser   bool
	Delivered   bool
	// DeliveryError is the user-facing remediation message when Delivered is false.
	DeliveryError string
}

// VerifyCodeOutput returns the signed-in user and their bearer credential.
type VerifyCodeOutput struct {
	Session *SessionOutput
	User    *entity.User
	Created bool
}

// OTPUsecase issues and verifies one-time codes sent by SMS.
type OTPUsecase interface {
	IssueCode(ctx context.Context, phoneNumber string) (*IssueCodeOutput, error)
	VerifyCode(ctx context.Context, input VerifyCodeInput) (*VerifyCodeOutput, error)
	// PurgeExpired deletes codes past their expiry and returns how many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}
