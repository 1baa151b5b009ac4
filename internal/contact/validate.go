package contact

import "regexp"

// Input is one untrusted contact-form candidate.
type Input struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// local-part @ domain, no whitespace, at least one dot in the domain.
// Syntax only; no DNS or mailbox checks.
var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate is pure and deterministic. Required fields are checked before
// email syntax, so a candidate failing both reports the missing field.
func Validate(in Input) *RejectError {
	if in.Name == "" || in.Email == "" || in.Subject == "" || in.Message == "" {
		return ErrFieldsRequired
	}
	if !emailRx.MatchString(in.Email) {
		return ErrInvalidEmail
	}
	return nil
}
