package order

import (
	"fmt"
	"regexp"

	"foodorder/internal/pkg/errs"
)

// MaxNumberLength is the storage limit for order numbers.
const MaxNumberLength = 20

var numberPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// Number is the human readable order reference shared with the customer.
// It is an uppercase alphanumeric token, not a sequence.
type Number struct {
	value string
}

// NewNumber validates an order number received from a client or generated internally.
func NewNumber(value string) (Number, error) {
	if value == "" {
		return Number{}, errs.NewValueIsRequiredError("order number")
	}
	if len(value) > MaxNumberLength {
		return Number{}, errs.NewValueIsOutOfRangeError("order number length", len(value), 1, MaxNumberLength)
	}
	if !numberPattern.MatchString(value) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q must contain only A-Z and 0-9", value),
		)
	}
	return Number{value: value}, nil
}

func (n Number) String() string {
	return n.value
}

func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

func (n Number) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	return nil
}
