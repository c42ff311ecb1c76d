package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/qrkit/internal/service"
	"github.com/dmitrymomot/qrkit/pkg/binder"
	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/phone"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/style"
)

// HTTPError is an HTTP status with the translation key of its message.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Translation key, e.g. "http.not_found" or "errors.invalidUrl"
}

func (e HTTPError) Error() string {
	return e.Key
}

// Slug is the machine-readable error code: the key without its section.
func (e HTTPError) Slug() string {
	if i := strings.LastIndexByte(e.Key, '.'); i >= 0 {
		return e.Key[i+1:]
	}
	return e.Key
}

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "http.bad_request"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "http.not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: "http.method_not_allowed"}
	ErrPayloadTooLarge      = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "http.payload_too_large"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "http.unsupported_media_type"}
	ErrTooManyRequests      = HTTPError{Code: http.StatusTooManyRequests, Key: "http.too_many_requests"}
	ErrInternal             = HTTPError{Code: http.StatusInternalServerError, Key: "http.internal"}

	ErrUnknownType        = HTTPError{Code: http.StatusBadRequest, Key: "http.unknown_type"}
	ErrUnknownSubtype     = HTTPError{Code: http.StatusBadRequest, Key: "http.unknown_subtype"}
	ErrUnknownTemplate    = HTTPError{Code: http.StatusBadRequest, Key: "http.unknown_template"}
	ErrUnsupportedFormat  = HTTPError{Code: http.StatusBadRequest, Key: "http.unsupported_format"}
	ErrInvalidStyle       = HTTPError{Code: http.StatusUnprocessableEntity, Key: "http.invalid_style"}
	ErrInvalidLogo        = HTTPError{Code: http.StatusUnprocessableEntity, Key: "http.invalid_logo"}
	ErrLogoUnavailable    = HTTPError{Code: http.StatusUnprocessableEntity, Key: "http.logo_unavailable"}
	ErrRemoteLogoDisabled = HTTPError{Code: http.StatusUnprocessableEntity, Key: "http.remote_logo_disabled"}
	ErrContentTooLong     = HTTPError{Code: http.StatusUnprocessableEntity, Key: "http.content_too_long"}

	ErrIncomplete          = HTTPError{Code: http.StatusUnprocessableEntity, Key: "errors.incomplete"}
	ErrGradientUnsupported = HTTPError{Code: http.StatusUnprocessableEntity, Key: "errors.gradientUnsupported"}
)

// errorTable maps domain errors to responses, most specific first.
var errorTable = []struct {
	target error
	resp   HTTPError
}{
	{binder.ErrBodyTooLarge, ErrPayloadTooLarge},
	{binder.ErrMissingContentType, ErrUnsupportedMediaType},
	{binder.ErrUnsupportedMediaType, ErrUnsupportedMediaType},
	{binder.ErrEmptyBody, ErrBadRequest},
	{binder.ErrFailedToParseJSON, ErrBadRequest},

	{payload.ErrUnknownType, ErrUnknownType},
	{phone.ErrUnknownSubtype, ErrUnknownSubtype},
	{service.ErrUnknownTemplate, ErrUnknownTemplate},
	{style.ErrUnknownFormat, ErrUnsupportedFormat},
	{qrcode.ErrUnsupportedFormat, ErrUnsupportedFormat},

	{payload.ErrIncomplete, ErrIncomplete},
	{qrcode.ErrEmptyContent, ErrIncomplete},
	{payload.ErrInvalidURL, kindError(payload.KindInvalidURL)},
	{payload.ErrInvalidWhatsApp, kindError(payload.KindInvalidWhatsApp)},
	{payload.ErrInvalidPhoneLength, kindError(payload.KindInvalidPhoneLength)},
	{payload.ErrInvalidEmail, kindError(payload.KindInvalidEmail)},

	{style.ErrGradientUnsupported, ErrGradientUnsupported},
	{qrcode.ErrInvalidStyle, ErrInvalidStyle},
	{qrcode.ErrRemoteLogoDisabled, ErrRemoteLogoDisabled},
	{qrcode.ErrLogoFetch, ErrLogoUnavailable},
	{qrcode.ErrLogoTooLarge, ErrLogoUnavailable},
	{qrcode.ErrInvalidLogo, ErrInvalidLogo},
	{qrcode.ErrFailedToGenerateQRCode, ErrContentTooLong},
}

func kindError(k payload.ErrorKind) HTTPError {
	return HTTPError{Code: http.StatusUnprocessableEntity, Key: k.TranslationKey()}
}

// toHTTPError resolves err to its response; unknown errors are internal.
func toHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	for _, e := range errorTable {
		if errors.Is(err, e.target) {
			return e.resp
		}
	}
	return ErrInternal
}
