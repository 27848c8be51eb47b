package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether the account or the password failed.
	// The reason is to prevent account-enumeration side channels on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidInput covers malformed request payloads caught before the core runs.
	ErrInvalidInput = errors.New("invalid input")
	// ErrBadRequest covers structurally valid input that misses a required choice,
	// such as a login carrying neither name nor email.
	ErrBadRequest = errors.New("bad request")
	// ErrConflict signals a store-level uniqueness violation on name or email.
	ErrConflict = errors.New("conflict")
	// ErrAlreadyAuthenticated rejects a login performed with a live session.
	ErrAlreadyAuthenticated = errors.New("already authenticated")
	// ErrUnauthenticated is returned by operations requiring a live session when none is present.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrTooManyAttempts rejects a recovery request while an unexpired attempt is outstanding.
	ErrTooManyAttempts = errors.New("too many recovery attempts")
	// ErrNoActiveAttempt covers both "never requested" and "already expired" on reset.
	ErrNoActiveAttempt = errors.New("no active recovery attempt")
	// ErrCodeMismatch is returned on a wrong recovery code; the attempt is not consumed.
	ErrCodeMismatch = errors.New("recovery code mismatch")
	// ErrDeliveryFailed surfaces outbound mail failure; the attempt row is kept.
	ErrDeliveryFailed = errors.New("recovery code delivery failed")
	// ErrDeleteFailed signals a session delete that affected zero rows after a
	// successful liveness check, which is a server-side consistency fault.
	ErrDeleteFailed = errors.New("session delete failed")
)
