package errors

import (
	"net/http"
	"testing"

	"fileshare/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrOTPExpired.WrapMessage("verify otp")

	assert.True(t, errors.Is(err, ErrOTPExpired))
	assert.False(t, errors.Is(err, ErrInvalidOTP))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "OTP_EXPIRED", appErr.ErrorCode())
}

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	detailed := ErrStorageFailure.WithDetails("bucket unreachable")

	assert.True(t, errors.Is(detailed, ErrStorageFailure))
	assert.Equal(t, "bucket unreachable", detailed.Details())
	assert.Empty(t, ErrStorageFailure.Details())
}

func TestTaxonomyHTTPCodes(t *testing.T) {
	tests := []struct {
		err  *BaseError
		code int
	}{
		{ErrValidationFailed, http.StatusBadRequest},
		{ErrOTPAttemptsExhausted, http.StatusBadRequest},
		{ErrMissingName, http.StatusBadRequest},
		{ErrShareNotFound, http.StatusNotFound},
		{ErrShareGone, http.StatusGone},
		{ErrShareOwnershipViolation, http.StatusForbidden},
		{ErrConflict, http.StatusConflict},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrTokenExpired, http.StatusUnauthorized},
		{ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{ErrRateLimited, http.StatusTooManyRequests},
		{ErrStorageFailure, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
		})
	}
}

func TestProviderError(t *testing.T) {
	generic := NewProviderError("twilio", 20003, "authenticate")
	restricted := NewTrialRestrictedError("twilio", 21608, "unverified number")

	assert.Equal(t, "SMS_DELIVERY_FAILED", generic.ErrorCode())
	assert.False(t, generic.TrialRestricted())
	assert.NotContains(t, generic.Message(), "authenticate")

	assert.Equal(t, "SMS_DESTINATION_NOT_VERIFIED", restricted.ErrorCode())
	assert.True(t, restricted.TrialRestricted())
	assert.Equal(t, 21608, restricted.Code())

	var appErr AppError
	assert.True(t, errors.As(errors.Wrap(restricted, "send"), &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert share")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert share", err.Details())
}
