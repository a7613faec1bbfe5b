// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fileshare/config"
	deliverycontext "fileshare/internal/delivery/context"
	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/phone"
	"fileshare/internal/domain/repository"
	"fileshare/internal/domain/service"
	"fileshare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxAttemptRaces bounds how often a mismatch re-reads a record whose counter moved underneath it.
const maxAttemptRaces = 3

// otpService implements the OTPUsecase interface.
type otpService struct {
	txManager   repository.TransactionManager
	otpRepo     repository.OTPRepository
	userRepo    repository.UserRepository
	hasher      service.CodeHasher
	dispatcher  usecase.NotificationDispatcher
	sessions    usecase.SessionUsecase
	codeTTL     time.Duration
	maxAttempts int
	codeLength  int
	logger      *slog.Logger
	now         func() time.Time
}

// OTPServiceParams holds dependencies for OTPService, injected by Fx.
type OTPServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OTPRepo    repository.OTPRepository
	UserRepo   repository.UserRepository
	Hasher     service.CodeHasher
	Dispatcher usecase.NotificationDispatcher
	Sessions   usecase.SessionUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOTPService is the constructor for otpService.
func NewOTPService(params OTPServiceParams) usecase.OTPUsecase {
	return &otpService{
		txManager:   params.TxManager,
		otpRepo:     params.OTPRepo,
		userRepo:    params.UserRepo,
		hasher:      params.Hasher,
		dispatcher:  params.Dispatcher,
		sessions:    params.Sessions,
		codeTTL:     params.Config.OTP.CodeTTL,
		maxAttempts: params.Config.OTP.MaxAttempts,
		codeLength:  params.Config.OTP.CodeLength,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *otpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueCode creates a fresh code for the phone number and texts it. Earlier unverified codes stay
// in place; verification always targets the newest one. A failed SMS does not fail the call.
func (srv *otpService) IssueCode(ctx context.Context, phoneNumber string) (*usecase.IssueCodeOutput, error) {
	normalized, err := phone.Normalize(phoneNumber)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidPhoneNumber, err.Error())
	}

	code, err := entity.GenerateNumericCode(srv.codeLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate code")
	}
	codeHash, err := srv.hasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash code")
	}

	now := srv.now()
	otp := &entity.OTP{
		PhoneNumber: normalized,
		CodeHash:    codeHash,
		ExpiresAt:   now.Add(srv.codeTTL),
		CreatedAt:   now,
	}
	if err := srv.otpRepo.Create(ctx, otp); err != nil {
		return nil, errors.Wrap(err, "failed to store code")
	}

	isNewUser := false
	if _, err := srv.userRepo.FindByPhoneNumber(ctx, normalized); err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to look up user")
		}
		isNewUser = true
	}

	output := &usecase.IssueCodeOutput{
		PhoneNumber: normalized,
		IsNewUser:   isNewUser,
		Delivered:   true,
	}
	if err := srv.dispatcher.SendCode(ctx, normalized, code); err != nil {
		output.Delivered = false
		output.DeliveryError = deliveryMessage(err)
	}

	srv.log(ctx).Info("Verification code issued",
		slog.String("phone", phone.Mask(normalized)),
		slog.Bool("new_user", isNewUser),
		slog.Bool("delivered", output.Delivered),
	)

	return output, nil
}

// VerifyCode checks a submitted code against the newest unverified code for the phone number and
// signs the user in, creating them on first verification.
func (srv *otpService) VerifyCode(ctx context.Context, input usecase.VerifyCodeInput) (*usecase.VerifyCodeOutput, error) {
	normalized, err := phone.Normalize(input.PhoneNumber)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidPhoneNumber, err.Error())
	}
	submitted := strings.TrimSpace(input.Code)

	for race := 0; race < maxAttemptRaces; race++ {
		otp, err := srv.otpRepo.FindLatestUnverified(ctx, normalized)
		if err != nil {
			if errors.Is(err, repository.ErrOTPNotFound) {
				return nil, errors.Wrap(domainerrors.ErrOTPNotFound, "no pending code")
			}

			return nil, errors.Wrap(err, "failed to find code")
		}

		now := srv.now()
		switch otp.State(now, srv.maxAttempts) {
		case entity.OTPStateExpired:
			return nil, errors.Wrap(domainerrors.ErrOTPExpired, "code expired")
		case entity.OTPStateExhausted:
			return nil, errors.Wrap(domainerrors.ErrOTPAttemptsExhausted, "attempt ceiling reached")
		}

		if submitted == "" || !srv.hasher.Check(submitted, otp.CodeHash) {
			attempts, err := srv.otpRepo.IncrementAttempts(ctx, otp.ID, otp.Attempts)
			if errors.Is(err, repository.ErrOTPStateChanged) {
				// Another verification moved the counter; evaluate the fresh state.
				continue
			}
			if err != nil {
				return nil, errors.Wrap(err, "failed to record attempt")
			}

			srv.log(ctx).Info("Verification code rejected",
				slog.String("phone", phone.Mask(normalized)),
				slog.Int("attempts", attempts),
			)
			if attempts >= srv.maxAttempts {
				return nil, errors.Wrap(domainerrors.ErrOTPAttemptsExhausted, "attempt ceiling reached")
			}

			return nil, errors.Wrap(domainerrors.ErrInvalidOTP, "code mismatch")
		}

		return srv.completeVerification(ctx, otp, normalized, input.Name, now)
	}

	return nil, errors.Wrap(domainerrors.ErrConflict, "code changed concurrently")
}

func (srv *otpService) completeVerification(
	ctx context.Context,
	otp *entity.OTP,
	normalized, name string,
	now time.Time,
) (*usecase.VerifyCodeOutput, error) {
	var user *entity.User
	created := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOTPRepository().MarkVerified(ctx, otp.ID, srv.maxAttempts, now); err != nil {
			if errors.Is(err, repository.ErrOTPStateChanged) {
				return errors.Wrap(domainerrors.ErrConflict, "code already used")
			}

			return errors.Wrap(err, "failed to mark code verified")
		}

		userRepo := repoFactory.NewUserRepository()
		existing, err := userRepo.FindByPhoneNumber(ctx, normalized)
		switch {
		case err == nil:
			if err := userRepo.MarkPhoneVerified(ctx, existing.ID); err != nil {
				return errors.Wrap(err, "failed to mark phone verified")
			}
			existing.IsPhoneVerified = true
			user = existing

			return nil
		case !errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(err, "failed to find user")
		}

		// Rolling back keeps the code usable for a retry that includes a name.
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return errors.Wrap(domainerrors.ErrMissingName, "new user without name")
		}

		phoneNumber := normalized
		newUser := &entity.User{
			PhoneNumber:     &phoneNumber,
			AuthMethod:      entity.AuthMethodPhone,
			Name:            trimmed,
			IsPhoneVerified: true,
		}
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
		return nil, err
	}

	session, err := srv.sessions.Mint(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Phone verified",
		slog.String("user_id", user.ID.String()),
		slog.Bool("created", created),
	)

	return &usecase.VerifyCodeOutput{
		Session: session,
		User:    user,
		Created: created,
	}, nil
}

// PurgeExpired deletes codes that can no longer be verified.
func (srv *otpService) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := srv.otpRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired codes")
	}
	if deleted > 0 {
		srv.log(ctx).Debug("Purged expired codes", slog.Int64("count", deleted))
	}

	return deleted, nil
}
