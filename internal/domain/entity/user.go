// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AuthMethod records how a user first proved their identity.
type AuthMethod string

const (
	AuthMethodExternal AuthMethod = "external"
	AuthMethodPhone    AuthMethod = "phone"
)

// MinNameLength is the minimum display name length in characters.
const MinNameLength = 2

var (
	// ErrIdentityRequired is returned when a user has neither an external ID nor a phone number.
	ErrIdentityRequired = errors.New("user requires an external id or a phone number")
	// ErrNameTooShort is returned when the display name is shorter than MinNameLength.
	ErrNameTooShort = errors.New("user name must be at least 2 characters")
)

// User is a person identified either by an external identity provider or by a verified phone number.
type User struct {
	ID              uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	ExternalID      *string    // Identity provider subject, nil for phone-only users.
	PhoneNumber     *string    // E.164 phone number, nil for external-only users.
	AuthMethod      AuthMethod // How the user first signed in.
	Name            string     // The user's display name.
	Email           *string    // Optional contact email, stored lower-cased.
	ProfilePicture  string     // Optional profile picture URL.
	IsPhoneVerified bool       // Set once a one-time code for PhoneNumber has been verified.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the invariants that must hold before a user is written.
func (u *User) Validate() error {
	if isBlank(u.ExternalID) && isBlank(u.PhoneNumber) {
		return ErrIdentityRequired
	}
	if utf8.RuneCountInString(strings.TrimSpace(u.Name)) < MinNameLength {
		return ErrNameTooShort
	}

	return nil
}

// Phone returns the phone number or an empty string.
func (u *User) Phone() string {
	if u.PhoneNumber == nil {
		return ""
	}

	return *u.PhoneNumber
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
