package entity

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// OTPState is the lifecycle state of a one-time code as seen by a verification attempt.
type OTPState int

const (
	OTPStateIssued OTPState = iota
	OTPStateVerified
	OTPStateExpired
	OTPStateExhausted
)

func (s OTPState) String() string {
	switch s {
	case OTPStateIssued:
		return "issued"
	case OTPStateVerified:
		return "verified"
	case OTPStateExpired:
		return "expired"
	case OTPStateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// OTP is a one-time code sent to a phone number. Only the code hash is persisted.
type OTP struct {
	ID          uuid.UUID
	PhoneNumber string
	CodeHash    string
	ExpiresAt   time.Time
	Verified    bool
	Attempts    int
	CreatedAt   time.Time
}

// State evaluates the code at now. Expiry takes precedence over the attempt ceiling.
func (o *OTP) State(now time.Time, maxAttempts int) OTPState {
	switch {
	case o.Verified:
		return OTPStateVerified
	case o.IsExpired(now):
		return OTPStateExpired
	case o.IsExhausted(maxAttempts):
		return OTPStateExhausted
	default:
		return OTPStateIssued
	}
}

// IsExpired reports whether now is past the expiry time.
func (o *OTP) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// IsExhausted reports whether the attempt counter reached the ceiling.
func (o *OTP) IsExhausted(maxAttempts int) bool {
	return o.Attempts >= maxAttempts
}

// GenerateNumericCode returns a uniformly random code of the given length with no leading zero,
// e.g. 100000-999999 for length 6.
func GenerateNumericCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("code length must be positive")
	}

	low := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length-1)), nil)
	if length == 1 {
		low = big.NewInt(0)
	}
	high := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	span := new(big.Int).Sub(high, low)

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", errors.Wrap(err, "failed to read random code")
	}

	code := n.Add(n, low).String()
	if len(code) < length {
		code = strings.Repeat("0", length-len(code)) + code
	}

	return code, nil
}
