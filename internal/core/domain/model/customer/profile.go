package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	maxEmailLength    = 254
	maxFullNameLength = 120
	maxPhoneLength    = 20
)

var (
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

	phonePattern = regexp.MustCompile(`^[0-9+\-() ]+$`)
)

// Profile is the contact data a customer supplies with an order.
type Profile struct {
	email    string
	fullName string
	phone    string
	address  string

	guard guard.ConstructorGuard
}

// NewProfile validates contact data. Phone and address are optional.
func NewProfile(email, fullName, phone, address string) (Profile, error) {
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)

	if err := errors.Join(
		validateEmail(email),
		validateFullName(fullName),
		validatePhone(phone),
	); err != nil {
		return Profile{}, err
	}

	return Profile{
		email:    email,
		fullName: fullName,
		phone:    phone,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (p Profile) Validate() error {
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

func (p Profile) Email() string    { return p.email }
func (p Profile) FullName() string { return p.fullName }
func (p Profile) Phone() string    { return p.phone }
func (p Profile) Address() string  { return p.address }

func validateEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if n := utf8.RuneCountInString(email); n > maxEmailLength {
		return errs.NewValueIsOutOfRangeError("email length", n, 1, maxEmailLength)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid address", email))
	}
	return nil
}

func validateFullName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("full name")
	}
	if n := utf8.RuneCountInString(name); n > maxFullNameLength {
		return errs.NewValueIsOutOfRangeError("full name length", n, 1, maxFullNameLength)
	}
	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if n := utf8.RuneCountInString(phone); n > maxPhoneLength {
		return errs.NewValueIsOutOfRangeError("phone length", n, 1, maxPhoneLength)
	}
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q contains unsupported characters", phone))
	}
	return nil
}
