// Package firebase verifies Firebase ID tokens for external identity login.
package firebase

import (
	"context"
	"log/slog"

	"fileshare/config"
	"fileshare/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// tokenVerifier is the subset of *auth.Client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

type verifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewVerifier creates an identity verifier backed by the Firebase Admin SDK.
func NewVerifier(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.ExternalIdentityVerifier, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return newVerifier(client, logger), nil
}

func newVerifier(client tokenVerifier, logger *slog.Logger) *verifier {
	return &verifier{client: client, logger: logger}
}

// VerifyIDToken checks the token signature and audience and extracts the profile claims.
func (v *verifier) VerifyIDToken(ctx context.Context, idToken string) (*service.ExternalIdentity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Warn("Firebase ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	return &service.ExternalIdentity{
		UID:            token.UID,
		Name:           claimString(token.Claims, "name"),
		Email:          claimString(token.Claims, "email"),
		PhoneNumber:    claimString(token.Claims, "phone_number"),
		ProfilePicture: claimString(token.Claims, "picture"),
	}, nil
}

func claimString(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
