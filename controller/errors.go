package controller

import (
	"errors"
	"fmt"
)

// invalidError marks failures caused by bad input so that callers can
// distinguish them from internal errors.
type invalidError struct {
	msg string
}

func (e invalidError) Error() string {
	return e.msg
}

func invalidf(format string, args ...any) error {
	return invalidError{msg: fmt.Sprintf(format, args...)}
}

// IsInvalid reports whether err was caused by bad input.
func IsInvalid(err error) bool {
	var ie invalidError
	return errors.As(err, &ie)
}
