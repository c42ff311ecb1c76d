package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/qrkit/internal/service"
	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/phone"
	"github.com/dmitrymomot/qrkit/pkg/style"
)

// option is a value with its localized label.
type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type typeResponse struct {
	service.TypeInfo
	Label string `json:"label"`
}

func (a *API) types(w http.ResponseWriter, r *http.Request) {
	lang := a.lang(r)

	infos := a.svc.Types()
	data := make([]typeResponse, 0, len(infos))
	for _, info := range infos {
		data = append(data, typeResponse{TypeInfo: info, Label: a.tr.T(lang, "types."+info.Type.String())})
	}

	subtypes := make([]option, 0, len(phone.Subtypes()))
	for _, st := range phone.Subtypes() {
		subtypes = append(subtypes, option{Value: st.String(), Label: a.tr.T(lang, "phone."+st.String())})
	}
	encryptions := make([]option, 0, len(payload.Encryptions()))
	for _, enc := range payload.Encryptions() {
		encryptions = append(encryptions, option{Value: enc, Label: a.tr.T(lang, "wifi."+enc)})
	}

	a.ok(w, data, map[string]any{
		"lang":          lang,
		"phoneSubtypes": subtypes,
		"encryptions":   encryptions,
	})
}

func (a *API) templates(w http.ResponseWriter, r *http.Request) {
	a.ok(w, a.svc.Templates(), map[string]any{
		"formats":        style.Formats(),
		"bodyShapes":     style.BodyShapes(),
		"eyeFrameShapes": style.EyeFrameShapes(),
		"eyeBallShapes":  style.EyeBallShapes(),
		"logos":          style.Logos(),
		"defaultStyle":   a.svc.DefaultStyle(),
	})
}

type payloadRequest struct {
	Type         string            `json:"type"`
	PhoneSubtype string            `json:"phoneSubtype"`
	Fields       map[string]string `json:"fields"`
}

type validateResponse struct {
	Valid   bool              `json:"valid"`
	Error   payload.ErrorKind `json:"error,omitempty"`
	Message string            `json:"message,omitempty"`
}

// validate never fails on the payload itself: an unknown type is reported as invalid.
func (a *API) validate(w http.ResponseWriter, r *http.Request) {
	var req payloadRequest
	if err := a.bindJSON(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}

	lang := a.lang(r)
	in, err := service.ParseInput(req.Type, req.PhoneSubtype, req.Fields)
	switch {
	case errors.Is(err, payload.ErrUnknownType):
		a.ok(w, validateResponse{Message: a.tr.T(lang, ErrUnknownType.Key)}, nil)
		return
	case err != nil:
		a.fail(w, r, err)
		return
	}

	res := a.svc.Validate(r.Context(), in)
	resp := validateResponse{Valid: res.Valid, Error: res.Error}
	switch {
	case res.Error != payload.KindNone:
		resp.Message = a.tr.T(lang, res.Error.TranslationKey())
	case res.Incomplete():
		resp.Message = a.tr.T(lang, ErrIncomplete.Key)
	}
	a.ok(w, resp, nil)
}

type encodeRequest struct {
	payloadRequest
	// Legacy disables escaping of reserved characters in VCARD and MECARD payloads.
	Legacy bool `json:"legacy"`
}

type encodeResponse struct {
	Payload string `json:"payload"`
	Valid   bool   `json:"valid"`
}

func (a *API) encode(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if err := a.bindJSON(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	in, err := service.ParseInput(req.Type, req.PhoneSubtype, req.Fields)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	var opts []payload.EncodeOption
	if req.Legacy {
		opts = append(opts, payload.WithLegacyEncoding())
	}
	enc, err := a.svc.Encode(r.Context(), in, opts...)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, encodeResponse{Payload: enc.Payload, Valid: enc.Result.Valid}, nil)
}

type maskRequest struct {
	Phone   string `json:"phone"`
	Subtype string `json:"subtype"`
}

func (a *API) mask(w http.ResponseWriter, r *http.Request) {
	var req maskRequest
	if err := a.bindJSON(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	st, err := phone.ParseSubtype(req.Subtype)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, a.svc.Mask(req.Phone, st), nil)
}

type renderRequest struct {
	encodeRequest
	Style    style.Style `json:"style"`
	Template string      `json:"template"`
	Format   string      `json:"format"`
	Size     int         `json:"size"`
}

// render answers with the file itself. Style keys absent from the body keep
// their default values; a template without a type encodes the template content.
func (a *API) render(w http.ResponseWriter, r *http.Request) {
	req := renderRequest{Style: a.svc.DefaultStyle()}
	if err := a.bindJSON(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}

	format, err := style.ParseFormat(req.Format)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	var in service.Input
	if req.Type != "" || req.Template == "" {
		if in, err = service.ParseInput(req.Type, req.PhoneSubtype, req.Fields); err != nil {
			a.fail(w, r, err)
			return
		}
	}

	out, err := a.svc.Render(r.Context(), service.RenderRequest{
		Input:    in,
		Style:    req.Style,
		Template: req.Template,
		Format:   format,
		Size:     req.Size,
		Legacy:   req.Legacy,
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}

	cacheStatus := "MISS"
	if out.Cached {
		cacheStatus = "HIT"
	}
	h := w.Header()
	h.Set("Content-Type", out.MIMEType())
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename()))
	h.Set("Content-Length", strconv.Itoa(len(out.Data)))
	h.Set("X-QR-Size", strconv.Itoa(out.Size))
	h.Set("X-Cache", cacheStatus)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Data)
}
