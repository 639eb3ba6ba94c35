package validation

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)*$`)

// Result collects per-field validation errors in first-detected order.
// The zero value is not usable; use NewResult.
type Result struct {
	fields []string
	errors map[string]string
}

// NewResult returns an empty validation result.
func NewResult() *Result {
	return &Result{errors: make(map[string]string)}
}

// Add records the first error for a field. Later errors for the same
// field are ignored.
func (r *Result) Add(field, message string) {
	if _, ok := r.errors[field]; ok {
		return
	}
	r.fields = append(r.fields, field)
	r.errors[field] = message
}

// Valid reports whether no field errors were recorded.
func (r *Result) Valid() bool {
	return len(r.errors) == 0
}

// Errors returns the field to message mapping.
func (r *Result) Errors() map[string]string {
	return r.errors
}

// First returns the message of the first detected error, or "" when valid.
func (r *Result) First() string {
	if len(r.fields) == 0 {
		return ""
	}
	return r.errors[r.fields[0]]
}

// ValidateRegistration checks registration input. Fields are validated
// independently; the first failing rule per field wins.
func ValidateRegistration(email, password, passwordConfirm, username string) *Result {
	res := NewResult()

	if strings.TrimSpace(username) == "" {
		res.Add("username", "Please enter a username.")
	}

	if strings.TrimSpace(email) == "" {
		res.Add("email", "Please enter an email.")
	} else if !emailRegex.MatchString(email) {
		res.Add("email", "Please enter a valid email address.")
	}

	if password == "" {
		res.Add("password", "Please enter a password.")
	} else if len(password) < 8 {
		res.Add("password", "Please enter a password with 8 or more characters.")
	} else if password != passwordConfirm {
		res.Add("password", "Passwords do not match.")
	}

	return res
}

// ValidateLogin checks login input. Login only rejects empty fields;
// it does not re-validate password strength.
func ValidateLogin(password, username string) *Result {
	res := NewResult()

	if strings.TrimSpace(username) == "" {
		res.Add("username", "Please enter a username.")
	}

	if password == "" {
		res.Add("password", "Please enter a password.")
	}

	return res
}
