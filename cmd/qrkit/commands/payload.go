package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/qrkit/internal/config"
	"github.com/dmitrymomot/qrkit/internal/service"
	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/phone"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// ErrInvalidPayload is returned by validate when the input is rejected or incomplete.
var ErrInvalidPayload = errors.New("invalid payload")

// PayloadFlags describe one payload on the command line.
type PayloadFlags struct {
	Type    string
	Subtype string
	// Fields holds repeated key=value pairs.
	Fields []string
}

func (f PayloadFlags) input() (service.Input, error) {
	fields, err := parseFields(f.Fields)
	if err != nil {
		return service.Input{}, err
	}
	return service.ParseInput(f.Type, f.Subtype, fields)
}

type validateOutput struct {
	Valid   bool              `json:"valid"`
	Error   payload.ErrorKind `json:"error,omitempty"`
	Message string            `json:"message,omitempty"`
}

// RunValidate reports whether the payload is acceptable. It fails with
// ErrInvalidPayload after printing the result when it is not.
func RunValidate(ctx context.Context, cfg config.Config, io IOTuple, g Globals, p PayloadFlags) error {
	if err := g.validate(); err != nil {
		return err
	}
	in, err := p.input()
	if err != nil {
		return err
	}
	rt, err := newRuntime(ctx, cfg, g.Lang)
	if err != nil {
		return err
	}
	defer rt.close()

	res := rt.svc.Validate(ctx, in)
	out := validateOutput{Valid: res.Valid, Error: res.Error}
	switch {
	case res.Error != payload.KindNone:
		out.Message = rt.tr.T(rt.lang, res.Error.TranslationKey())
	case res.Incomplete():
		out.Message = rt.tr.T(rt.lang, "errors.incomplete")
	}

	if g.json() {
		err = writeJSON(io.Writer, out)
	} else if out.Valid {
		_, err = fmt.Fprintln(io.Writer, "valid")
	} else {
		_, err = fmt.Fprintf(io.Writer, "invalid: %s\n", out.Message)
	}
	if err != nil {
		return err
	}
	if !out.Valid {
		return ErrInvalidPayload
	}
	return nil
}

// RunEncode prints the payload string; with qr set it also draws the symbol on the terminal.
func RunEncode(ctx context.Context, cfg config.Config, io IOTuple, g Globals, p PayloadFlags, legacy, qr bool) error {
	if err := g.validate(); err != nil {
		return err
	}
	in, err := p.input()
	if err != nil {
		return err
	}
	rt, err := newRuntime(ctx, cfg, g.Lang)
	if err != nil {
		return err
	}
	defer rt.close()

	var opts []payload.EncodeOption
	if legacy {
		opts = append(opts, payload.WithLegacyEncoding())
	}
	enc, err := rt.svc.Encode(ctx, in, opts...)
	if err != nil {
		return rt.localize(errorKey(enc.Result), err)
	}

	if g.json() {
		return writeJSON(io.Writer, enc)
	}
	if _, err := fmt.Fprintln(io.Writer, enc.Payload); err != nil {
		return err
	}
	if !qr {
		return nil
	}
	art, err := qrcode.Terminal(enc.Payload, false)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(io.Writer, art)
	return err
}

// RunMask prints the display form of a phone number.
func RunMask(io IOTuple, g Globals, raw, subtype string) error {
	if err := g.validate(); err != nil {
		return err
	}
	st, err := phone.ParseSubtype(subtype)
	if err != nil {
		return err
	}

	masked := service.New().Mask(raw, st)
	if g.json() {
		return writeJSON(io.Writer, masked)
	}
	_, err = fmt.Fprintln(io.Writer, masked.Masked)
	return err
}

func errorKey(res payload.Result) string {
	if res.Error != payload.KindNone {
		return res.Error.TranslationKey()
	}
	return "errors.incomplete"
}
