package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUsecase "fileshare/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOTPSweeper_SweepsUntilStopped(t *testing.T) {
	otpUC := mockUsecase.NewMockOTPUsecase(t)
	calls := make(chan struct{}, 16)

	// A failed sweep must not end the loop.
	otpUC.EXPECT().PurgeExpired(mock.Anything).Return(0, errors.New("db down")).Once()
	otpUC.EXPECT().PurgeExpired(mock.Anything).
		Run(func(context.Context) {
			select {
			case calls <- struct{}{}:
			default:
			}
		}).
		Return(2, nil)

	sweeper := newOTPSweeper(otpUC, 5*time.Millisecond, discardLogger())

	served := make(chan error, 1)
	go func() { served <- sweeper.Serve(context.Background()) }()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("sweeper did not keep sweeping after a failure")
		}
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.stop(stopCtx))
	require.NoError(t, <-served)

	// Stopping twice is harmless.
	assert.NoError(t, sweeper.stop(stopCtx))
}

func TestOTPSweeper_StopsWithContext(t *testing.T) {
	otpUC := mockUsecase.NewMockOTPUsecase(t)
	otpUC.EXPECT().PurgeExpired(mock.Anything).Return(0, nil)

	sweeper := newOTPSweeper(otpUC, time.Hour, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- sweeper.Serve(ctx) }()

	cancel()
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper ignored context cancellation")
	}

	assert.Error(t, sweeper.Serve(context.Background()))
}

func TestOTPSweeper_StopBeforeServe(t *testing.T) {
	sweeper := newOTPSweeper(mockUsecase.NewMockOTPUsecase(t), 0, discardLogger())

	assert.Equal(t, time.Minute, sweeper.interval)
	assert.NoError(t, sweeper.stop(context.Background()))
}
