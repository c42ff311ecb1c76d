package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when content is empty or only whitespace.
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	// ErrFailedToGenerateQRCode is returned when the matrix cannot be built,
	// usually because the content exceeds the symbol capacity.
	ErrFailedToGenerateQRCode = errors.New("qrcode: failed to generate QR code")
	ErrInvalidStyle           = errors.New("qrcode: invalid style")
	ErrUnsupportedFormat      = errors.New("qrcode: unsupported export format")
	ErrInvalidLogo            = errors.New("qrcode: invalid logo")
	ErrRemoteLogoDisabled     = errors.New("qrcode: remote logos are disabled")
	ErrLogoFetch              = errors.New("qrcode: failed to fetch logo")
	ErrLogoTooLarge           = errors.New("qrcode: logo exceeds size limit")
)
