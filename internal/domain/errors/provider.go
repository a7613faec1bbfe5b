package errors

import (
	"fmt"
	"net/http"
)

// ProviderError is returned by outbound messaging adapters. Provider detail is kept for logs
// and never rendered to clients.
type ProviderError struct {
	provider        string
	code            int
	detail          string
	trialRestricted bool
}

// NewProviderError creates a generic delivery failure.
func NewProviderError(provider string, code int, detail string) *ProviderError {
	return &ProviderError{provider: provider, code: code, detail: detail}
}

// NewTrialRestrictedError marks a destination that the provider account may not message
// until the number is verified with the provider.
func NewTrialRestrictedError(provider string, code int, detail string) *ProviderError {
	return &ProviderError{provider: provider, code: code, detail: detail, trialRestricted: true}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: provider error %d: %s", e.provider, e.code, e.detail)
}

// HTTPCode returns the HTTP status code
func (e *ProviderError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *ProviderError) ErrorCode() string {
	if e.trialRestricted {
		return "SMS_DESTINATION_NOT_VERIFIED"
	}

	return "SMS_DELIVERY_FAILED"
}

// Message returns the user-friendly error message
func (e *ProviderError) Message() string {
	if e.trialRestricted {
		return "The phone number is not verified with the SMS provider. Verify it in the provider console or upgrade the account"
	}

	return "Failed to send SMS, please try again later"
}

// Details returns the provider detail for logging
func (e *ProviderError) Details() string {
	return e.detail
}

// Provider returns the provider name.
func (e *ProviderError) Provider() string {
	return e.provider
}

// Code returns the provider-specific error code.
func (e *ProviderError) Code() int {
	return e.code
}

// TrialRestricted reports whether the failure was caused by a trial account restriction.
func (e *ProviderError) TrialRestricted() bool {
	return e.trialRestricted
}
