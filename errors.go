package qsim

import "github.com/pkg/errors"

var (
	// ErrInvalidInput marks a request rejected before any simulation ran.
	ErrInvalidInput = errors.New("invalid input")

	// ErrResourceLimit is returned when a register would not fit the state budget.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

/*
ValidateSecret checks that a secret is a non-empty string of '0' and '1'
characters. The returned error wraps ErrInvalidInput and names the first
offending position.
*/
func ValidateSecret(secret string) error {
	if secret == "" {
		return errors.Wrap(ErrInvalidInput, "secret must not be empty")
	}

	// everything before the first offender is ASCII, so the byte offset i
	// is also the character position
	for i, r := range secret {
		if r != '0' && r != '1' {
			return errors.Wrapf(ErrInvalidInput, "secret contains %q at position %d, only 0 and 1 are allowed", r, i)
		}
	}

	return nil
}

// ValidateShots rejects non-positive shot counts.
func ValidateShots(shots int) error {
	if shots <= 0 {
		return errors.Wrapf(ErrInvalidInput, "shots must be at least 1, got %d", shots)
	}
	return nil
}
