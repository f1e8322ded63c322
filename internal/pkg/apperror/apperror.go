package apperror

import "errors"

// Error wraps a domain sentinel with the message shown to API callers.
// errors.Is still matches the sentinel through Unwrap.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches a caller-facing message to err.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Err: err, Message: message}
}

// Message returns the caller-facing message carried by err, or err.Error()
// when none was attached.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
