package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/qrkit/pkg/i18n"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// JSONResponse is the envelope of every JSON body.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail carries a localized message; Details lists messages per invalid field.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (a *API) ok(w http.ResponseWriter, data any, meta map[string]any) {
	writeJSON(w, http.StatusOK, JSONResponse{Data: data, Meta: meta})
}

// fail writes err as a localized error envelope.
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	resp := toHTTPError(err)
	lang := a.lang(r)

	detail := &ErrorDetail{
		Code:    resp.Slug(),
		Message: a.tr.T(lang, resp.Key),
	}
	if ve := validator.Extract(err); ve != nil {
		detail.Details = a.localizeDetails(lang, ve)
	}

	if resp.Code >= http.StatusInternalServerError {
		a.logger.ErrorContext(ctx, "request failed", logger.Error(err))
	} else {
		a.logger.DebugContext(ctx, "request rejected", slog.String("code", detail.Code), logger.Error(err))
	}

	writeJSON(w, resp.Code, JSONResponse{Error: detail})
}

func (a *API) localizeDetails(lang string, errs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(errs))
	for _, e := range errs {
		msg := e.Message
		if e.TranslationKey != "" && a.tr.HasTranslation(lang, e.TranslationKey) {
			msg = a.tr.Values(lang, e.TranslationKey, e.TranslationValues)
		}
		out[e.Field] = append(out[e.Field], msg)
	}
	return out
}

func (a *API) lang(r *http.Request) string {
	return i18n.GetLocale(r.Context())
}
