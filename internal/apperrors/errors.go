package apperrors

import "errors"

// Sentinel errors for the failure cases handlers need to tell apart.
// Anything not matching one of these is treated as an unexpected
// internal error: logged with detail, returned to the client as a
// generic 500.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login failures don't reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrUserNotFound is returned when a user row is absent. Tokens are
	// stateless, so a valid token can outlive its user row.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoToken is returned when a protected route is called without a
	// bearer token.
	ErrNoToken = errors.New("access denied")

	// ErrInvalidToken is returned when token verification fails for any
	// reason (bad signature, expired, malformed).
	ErrInvalidToken = errors.New("invalid token")

	// ErrGateway is returned when the external completion service fails.
	// The underlying cause is logged server-side, never echoed to the
	// client.
	ErrGateway = errors.New("failed to generate a response")
)
