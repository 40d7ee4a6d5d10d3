package services

import "errors"

// Submission and parsing failures surfaced to the HTTP layer. Fulfillment
// provider failures never appear here: they are absorbed into a pending
// letter and do not reach the caller.
var (
	ErrInvalidAddress    = errors.New("address must contain at least a name and a street line")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrSendForbidden     = errors.New("cannot send to this recipient")
	ErrNoAddress         = errors.New("no address available for this recipient")
	ErrInvalidToken      = errors.New("invalid token")
)

// MissingFieldError marks a required submission field that was left empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}
