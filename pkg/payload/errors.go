package payload

import "errors"

var (
	ErrUnknownType        = errors.New("payload: unknown content type")
	ErrIncomplete         = errors.New("payload: required field is empty")
	ErrInvalidURL         = errors.New("payload: invalid URL")
	ErrInvalidWhatsApp    = errors.New("payload: invalid WhatsApp number")
	ErrInvalidPhoneLength = errors.New("payload: invalid phone length")
	ErrInvalidEmail       = errors.New("payload: invalid email address")
)
