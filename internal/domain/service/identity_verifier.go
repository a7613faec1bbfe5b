package service

import "context"

// ExternalIdentity is the verified subject of an identity provider token.
type ExternalIdentity struct {
	UID            string
	Name           string
	Email          string
	PhoneNumber    string
	ProfilePicture string
}

// ExternalIdentityVerifier verifies identity provider ID tokens.
type ExternalIdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*ExternalIdentity, error)
}
