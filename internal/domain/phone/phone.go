// Package phone normalizes user-supplied phone numbers to E.164.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/pkg/errors"
)

// ErrInvalidNumber is returned for input that cannot be a phone number.
var ErrInvalidNumber = errors.New("invalid phone number")

// Normalize strips formatting characters, adds a leading "+" when missing and returns the
// E.164 form of a possible international number.
func Normalize(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "", ErrInvalidNumber
	}

	num, err := phonenumbers.Parse("+"+digits.String(), "")
	if err != nil {
		return "", errors.Wrap(ErrInvalidNumber, err.Error())
	}
	if !phonenumbers.IsPossibleNumber(num) {
		return "", ErrInvalidNumber
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// Mask hides all but the last four digits, for logs.
func Mask(e164 string) string {
	if len(e164) <= 4 {
		return e164
	}

	return strings.Repeat("*", len(e164)-4) + e164[len(e164)-4:]
}
