package style

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownFormat = errors.New("style: unknown export format")
	// ErrGradientUnsupported blocks exports whose format cannot carry a gradient.
	ErrGradientUnsupported = errors.New("style: gradients are not supported in PDF and EPS exports")
)

// ExportBaseName is the file name, without extension, of exported symbols.
const ExportBaseName = "qrcode-pro-export"

// Format is an export file format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
	FormatEPS Format = "eps"
)

func Formats() []Format {
	return []Format{FormatPNG, FormatSVG, FormatPDF, FormatEPS}
}

// ParseFormat resolves s case-insensitively; empty input yields PNG.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	if f == "" {
		return FormatPNG, nil
	}
	switch f {
	case FormatPNG, FormatSVG, FormatPDF, FormatEPS:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatSVG:
		return "image/svg+xml"
	case FormatPDF:
		return "application/pdf"
	case FormatEPS:
		return "application/postscript"
	}
	return "application/octet-stream"
}

// SupportsGradient reports whether exports in f can carry a gradient fill.
func (f Format) SupportsGradient() bool {
	return f != FormatPDF && f != FormatEPS
}

// Filename returns the download name for f, e.g. "qrcode-pro-export.svg".
func (f Format) Filename() string {
	return ExportBaseName + f.Extension()
}

// CheckExport rejects an active gradient for formats that cannot carry one.
func (s Style) CheckExport(f Format) error {
	if s.Gradient && !f.SupportsGradient() {
		return ErrGradientUnsupported
	}
	return nil
}
