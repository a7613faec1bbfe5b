package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "fileshare/internal/delivery/context"
	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/repository"
	"fileshare/internal/domain/service"
	"fileshare/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	tokenService service.TokenService
	verifier     service.ExternalIdentityVerifier
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Verifier     service.ExternalIdentityVerifier `optional:"true"`
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService. A nil verifier disables external login.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		verifier:     params.Verifier,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Mint issues a bearer credential for the user.
func (srv *sessionService) Mint(ctx context.Context, user *entity.User) (*usecase.SessionOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to mint session", slog.Any("error", err), slog.Any("user_id", user.ID))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.SessionOutput{Token: token, ExpiresAt: expiresAt}, nil
}

// Authenticate resolves a bearer credential to its user.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "missing token")
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ExternalLogin signs in with an identity provider token. The user is matched by provider
// subject, then by a phone number asserted by the provider, and created otherwise.
func (srv *sessionService) ExternalLogin(ctx context.Context, input usecase.ExternalLoginInput) (*usecase.ExternalLoginOutput, error) {
	if srv.verifier == nil {
		return nil, errors.WithStack(domainerrors.ErrExternalLoginDisabled)
	}

	identity, err := srv.verifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrExternalTokenInvalid, err.Error())
	}

	var user *entity.User
	created := false

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByExternalID(ctx, identity.UID)
		if err == nil {
			user = existing

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by external id")
		}

		if identity.PhoneNumber != "" {
			linked, err := srv.linkPhoneUser(ctx, userRepo, identity)
			if err != nil {
				return err
			}
			if linked != nil {
				user = linked

				return nil
			}
		}

		newUser := newExternalUser(identity, input.Name)
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return errors.Wrap(domainerrors.ErrConflict, "user created concurrently")
			}

			return errors.Wrap(err, "failed to create user")
		}
		user = newUser
		created = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("External login failed", slog.Any("error", err))

		return nil, err
	}

	session, err := srv.Mint(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("External login succeeded", slog.Any("user_id", user.ID), slog.Bool("created", created))

	return &usecase.ExternalLoginOutput{Session: session, User: user, Created: created}, nil
}

// linkPhoneUser attaches the external subject to an existing user that owns the asserted phone
// number. It returns nil when no such user exists.
func (srv *sessionService) linkPhoneUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	identity *service.ExternalIdentity,
) (*entity.User, error) {
	existing, err := userRepo.FindByPhoneNumber(ctx, identity.PhoneNumber)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by phone number")
	}
	if existing.ExternalID != nil {
		// The number belongs to a user linked to another subject.
		return nil, errors.Wrap(domainerrors.ErrConflict, "phone number linked to another account")
	}

	uid := identity.UID
	existing.ExternalID = &uid
	if err := userRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrConflict, "external id linked concurrently")
		}

		return nil, errors.Wrap(err, "failed to link external id")
	}

	return existing, nil
}

func newExternalUser(identity *service.ExternalIdentity, requestedName string) *entity.User {
	uid := identity.UID
	user := &entity.User{
		ExternalID:     &uid,
		AuthMethod:     entity.AuthMethodExternal,
		Name:           firstNonEmpty(strings.TrimSpace(requestedName), strings.TrimSpace(identity.Name)),
		ProfilePicture: identity.ProfilePicture,
	}
	if email := normalizeEmail(identity.Email); email != "" {
		user.Email = &email
	}
	if identity.PhoneNumber != "" {
		phoneNumber := identity.PhoneNumber
		user.PhoneNumber = &phoneNumber
		// The provider verified the number as part of its own sign-in.
		user.IsPhoneVerified = true
	}

	return user
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
