package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// emailPattern is intentionally permissive: a basic shape check, not
// full RFC 5322.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// ValidationError reports a single malformed or missing input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Validate checks a registration request. The password is only
// checked for presence here; hashing policy lives in the crypto
// package.
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("name", "name is required")
	}
	if strings.TrimSpace(r.Surname) == "" {
		return invalid("surname", "surname is required")
	}
	if strings.TrimSpace(r.Username) == "" {
		return invalid("username", "username is required")
	}
	if r.Email == "" {
		return invalid("email", "email is required")
	}
	if !emailPattern.MatchString(r.Email) {
		return invalid("email", "email is not a valid address")
	}
	if r.Password == "" {
		return invalid("password", "password is required")
	}
	return nil
}

// Validate checks a profile update. Only fields the caller supplied
// are checked.
func (r UpdateProfileRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return invalid("name", "name cannot be empty")
	}
	if r.Surname != nil && strings.TrimSpace(*r.Surname) == "" {
		return invalid("surname", "surname cannot be empty")
	}
	if r.Username != nil && strings.TrimSpace(*r.Username) == "" {
		return invalid("username", "username cannot be empty")
	}
	if r.Email != nil && !emailPattern.MatchString(*r.Email) {
		return invalid("email", "email is not a valid address")
	}
	return nil
}

// Validate checks an event creation request. The date comparison is
// made once, against the supplied now; a date equal to now passes.
func (r CreateEventRequest) Validate(now time.Time) error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("name", "event name is required")
	}
	if r.Date.IsZero() {
		return invalid("date", "event date is required")
	}
	if r.Date.Before(now) {
		return invalid("date", "event date cannot be in the past")
	}
	if strings.TrimSpace(r.Time) == "" {
		return invalid("time", "event time is required")
	}
	if strings.TrimSpace(r.Location) == "" {
		return invalid("location", "event location is required")
	}
	if err := ValidateGuests(r.Guests); err != nil {
		return err
	}
	return nil
}

// Validate checks a single embedded guest. Email is optional but must
// match the basic pattern when present.
func (g Guest) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return invalid("name", "guest name is required")
	}
	if strings.TrimSpace(g.Surname) == "" {
		return invalid("surname", "guest surname is required")
	}
	if g.Email != "" && !emailPattern.MatchString(g.Email) {
		return invalid("email", "guest email is not a valid address")
	}
	return nil
}

// ValidateGuests checks a full replacement guest list.
func ValidateGuests(guests []Guest) error {
	for i, g := range guests {
		if err := g.Validate(); err != nil {
			return prefixField(fmt.Sprintf("guests[%d]", i), err)
		}
	}
	return nil
}

// Validate checks a single embedded expense.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return invalid("name", "expense name is required")
	}
	if e.Amount < 0 {
		return invalid("amount", "expense amount cannot be negative")
	}
	if strings.TrimSpace(e.Category) == "" {
		return invalid("category", "expense category is required")
	}
	return nil
}

// Validate checks a budget replacement request.
func (r UpdateBudgetRequest) Validate() error {
	if r.Budget < 0 {
		return invalid("budget", "budget cannot be negative")
	}
	for i, e := range r.Expenses {
		if err := e.Validate(); err != nil {
			return prefixField(fmt.Sprintf("expenses[%d]", i), err)
		}
	}
	return nil
}

// prefixField qualifies a nested field name with its collection index,
// e.g. "guests[2].email".
func prefixField(prefix string, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return invalid(prefix+"."+ve.Field, ve.Message)
	}
	return err
}
