package errs

import "errors"

// IsValidation reports whether err is one of the input validation kinds.
// It also looks inside errors.Join results, so aggregated constructor errors qualify.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}
