package session

import (
	"errors"
	"fmt"
)

// ValidationError is a caller mistake: bad operation, bad bracket,
// unparsable answer, or an action sent in the wrong phase. The session
// state is guaranteed unchanged when one is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
