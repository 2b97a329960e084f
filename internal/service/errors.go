package service

import (
	"errors"
	"strings"
)

// ValidationError is a recoverable rejection of caller input. Its message is
// meant to be shown to the user as is.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingFields && len(e.Fields) > 0
}

var (
	ErrMissingFields      = &ValidationError{Message: "required fields are missing"}
	ErrLoginTaken         = &ValidationError{Message: "login already exists"}
	ErrPasswordMismatch   = &ValidationError{Message: "passwords do not match"}
	ErrPasswordCharset    = &ValidationError{Message: "password must contain only Latin letters and digits"}
	ErrEmptyCart          = &ValidationError{Message: "cart is empty"}
	ErrNoPaymentMethod    = &ValidationError{Message: "payment method is required"}
	ErrNotAuthenticated   = errors.New("no account is logged in")
	ErrForbidden          = errors.New("administrator role required")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrOrderNotFound      = errors.New("order not found")
)

func missingFields(labels []string) *ValidationError {
	return &ValidationError{
		Message: "please fill in the following fields: " + strings.Join(labels, ", "),
		Fields:  labels,
	}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
