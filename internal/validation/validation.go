package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var timeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateName checks if a profile name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 4 {
		return ValidationError{Field: "password", Message: "password must be at least 4 characters"}
	}
	return nil
}

// ValidateEmail checks if an email address is valid. An empty email is
// accepted: the field is optional on a profile.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidateGrade checks if a grade level is within the school range
func ValidateGrade(grade int) error {
	if grade < 1 || grade > 12 {
		return ValidationError{Field: "grade", Message: "grade must be between 1 and 12"}
	}
	return nil
}

// ValidateClockTime checks if a value is a zero-padded 24-hour HH:mm string
func ValidateClockTime(value string) error {
	if !timeRegex.MatchString(value) {
		return ValidationError{Field: "time", Message: "time must be HH:mm"}
	}
	return nil
}

// ValidateTimeRange checks both times and that start precedes end.
// Zero-padded HH:mm strings compare lexicographically in clock order.
func ValidateTimeRange(start, end string) error {
	if err := ValidateClockTime(start); err != nil {
		return ValidationError{Field: "startTime", Message: "time must be HH:mm"}
	}
	if err := ValidateClockTime(end); err != nil {
		return ValidationError{Field: "endTime", Message: "time must be HH:mm"}
	}
	if start >= end {
		return ValidationError{Field: "startTime", Message: "start time must be before end time"}
	}
	return nil
}

// ValidateScore checks if a score is within the 0-100 range
func ValidateScore(score int) error {
	if score < 0 || score > 100 {
		return ValidationError{Field: "score", Message: "score must be between 0 and 100"}
	}
	return nil
}
