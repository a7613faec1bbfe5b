package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "fileshare/internal/delivery/context"
	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/repository"
	"fileshare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetProfile retrieves the user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Getting user profile", slog.Any("user_id", userID))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := findUser(ctx, repoFactory.NewUserRepository(), userID)
		if err != nil {
			return err
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of input. An empty email clears it.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		foundUser, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			foundUser.Name = strings.TrimSpace(*input.Name)
		}
		if input.Email != nil {
			if email := normalizeEmail(*input.Email); email != "" {
				foundUser.Email = &email
			} else {
				foundUser.Email = nil
			}
		}
		if input.ProfilePicture != nil {
			foundUser.ProfilePicture = strings.TrimSpace(*input.ProfilePicture)
		}

		if err := foundUser.Validate(); err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}
		if err := userRepo.Update(ctx, foundUser); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = foundUser

		return nil
	})
	if err != nil {
		logger.Warn("Failed to update profile", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	logger.Info("Profile updated", slog.Any("user_id", userID))

	return user, nil
}

func findUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
