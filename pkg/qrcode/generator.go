package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// recoveryLevel is level Q: about 25% of the codewords can be restored.
const recoveryLevel = skipqrcode.High

// QuietZone is the blank border, in modules, around every symbol.
const QuietZone = 4

// defaultSize is the size in pixels used when no size is specified
const defaultSize = 256

func newSymbol(content string) (*skipqrcode.QRCode, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	q, err := skipqrcode.New(content, recoveryLevel)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return q, nil
}

// Generate creates a plain black-on-white PNG symbol of size pixels.
func Generate(content string, size int) ([]byte, error) {
	q, err := newSymbol(content)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := q.PNG(size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

// GenerateBase64Image returns Generate's PNG as a data URI, ready for an <img src>.
//
//	<img src="{{.QrCode}}">
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}

// Matrix returns the module grid of content, QuietZone modules of border included.
// true marks a dark module; rows run top to bottom.
func Matrix(content string) ([][]bool, error) {
	q, err := newSymbol(content)
	if err != nil {
		return nil, err
	}
	return q.Bitmap(), nil
}

// Terminal renders content with half-block characters for display in a terminal.
// inverse swaps dark and light for terminals with a light background.
func Terminal(content string, inverse bool) (string, error) {
	q, err := newSymbol(content)
	if err != nil {
		return "", err
	}
	return q.ToSmallString(inverse), nil
}
