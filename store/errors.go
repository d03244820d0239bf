package store

import "errors"

var (
	// ErrNotFound covers both a missing record and one owned by another
	// user. The two cases must stay indistinguishable to callers.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a unique field (username or email) is already taken.
	ErrConflict = errors.New("duplicate record")

	// ErrInvalidCredentials is returned for unknown email and wrong password
	// alike, so login failures never reveal which part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports missing or invalid input. Its message is safe to
// show to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
