package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"fileshare/config"
	"fileshare/internal/delivery"
	"fileshare/internal/domain/lifecycle"
	"fileshare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the OTP sweeper
type SweeperParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	OTPUC  usecase.OTPUsecase
}

// otpSweeper deletes expired one-time codes on a fixed interval. PostgreSQL has no row TTL, so
// this is what keeps otp_codes bounded.
type otpSweeper struct {
	otpUC    usecase.OTPUsecase
	interval time.Duration
	logger   *slog.Logger

	running  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// NewOTPSweeper registers the sweeper as a delivery and stops it with the application.
func NewOTPSweeper(params SweeperParams) (delivery.Delivery, error) {
	sweeper := newOTPSweeper(params.OTPUC, params.Cfg.OTP.SweepInterval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: sweeper.stop,
	})

	return sweeper, nil
}

func newOTPSweeper(otpUC usecase.OTPUsecase, interval time.Duration, logger *slog.Logger) *otpSweeper {
	if interval <= 0 {
		interval = time.Minute
	}

	return &otpSweeper{
		otpUC:    otpUC,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Serve sweeps once immediately and then on every tick until stopped.
func (s *otpSweeper) Serve(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("OTP sweeper is already running")
	}
	defer close(s.done)

	s.logger.Info("Starting OTP sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
		}
	}
}

func (s *otpSweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	deleted, err := s.otpUC.PurgeExpired(sweepCtx)
	if err != nil {
		// The next tick retries.
		s.logger.Warn("OTP sweep failed", slog.Any("error", err))

		return
	}
	if deleted > 0 {
		s.logger.Info("OTP sweep removed expired codes", slog.Int64("count", deleted))
	}
}

func (s *otpSweeper) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	s.logger.Info("Stopping OTP sweeper")
	if !s.running.Load() {
		return nil
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "OTP sweeper did not stop in time")
	}
}
