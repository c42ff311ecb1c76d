package style

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// Accepted ranges.
const (
	MinLogoSize   = 0.1
	MaxLogoSize   = 0.5
	MinLogoMargin = 0
	MaxLogoMargin = 20
	MinResolution = 100
	MaxResolution = 4000
)

// Style is the full set of cosmetic parameters of a symbol.
type Style struct {
	BodyShape     BodyShape     `json:"bodyShape" yaml:"bodyShape"`
	EyeFrameShape EyeFrameShape `json:"eyeFrameShape" yaml:"eyeFrameShape"`
	EyeBallShape  EyeBallShape  `json:"eyeBallShape" yaml:"eyeBallShape"`
	FgColor       string        `json:"fgColor" yaml:"fgColor"`
	BgColor       string        `json:"bgColor" yaml:"bgColor"`
	Gradient      bool          `json:"isGradient" yaml:"isGradient"`
	GradientColor string        `json:"gradientColor" yaml:"gradientColor"`
	// Logo is a data URI, an http(s) URL or a preset ID from Logos; empty means no logo.
	Logo string `json:"logo,omitempty" yaml:"logo,omitempty"`
	// LogoSize is the logo width as a fraction of the symbol width.
	LogoSize float64 `json:"logoSize" yaml:"logoSize"`
	// LogoMargin is the clear space around the logo in pixels at a 300px preview.
	LogoMargin int `json:"logoMargin" yaml:"logoMargin"`
	// Resolution is the default export size in pixels.
	Resolution int `json:"resolution" yaml:"resolution"`
}

// Default returns black square modules on white with no logo.
func Default() Style {
	return Style{
		BodyShape:     BodySquare,
		EyeFrameShape: EyeFrameSquare,
		EyeBallShape:  EyeBallSquare,
		FgColor:       "#000000",
		BgColor:       "#FFFFFF",
		Gradient:      false,
		GradientColor: "#444444",
		LogoSize:      0.4,
		LogoMargin:    5,
		Resolution:    1000,
	}
}

// Validate reports every invalid parameter as validator.ValidationErrors.
func (s Style) Validate() error {
	return validator.Apply(
		validator.OneOf("bodyShape", s.BodyShape, BodyShapes()),
		validator.OneOf("eyeFrameShape", s.EyeFrameShape, EyeFrameShapes()),
		validator.OneOf("eyeBallShape", s.EyeBallShape, EyeBallShapes()),
		validator.HexColor("fgColor", s.FgColor),
		validator.HexColor("bgColor", s.BgColor),
		validator.When(s.Gradient, validator.HexColor("gradientColor", s.GradientColor)),
		validator.Between("logoSize", s.LogoSize, MinLogoSize, MaxLogoSize),
		validator.Between("logoMargin", s.LogoMargin, MinLogoMargin, MaxLogoMargin),
		validator.Between("resolution", s.Resolution, MinResolution, MaxResolution),
		validator.When(!IsDataURI(s.Logo), validator.URLWithScheme("logo", ResolveLogo(s.Logo), "http", "https")),
	)
}

// GradientEnd returns the closing gradient color, falling back to the foreground.
func (s Style) GradientEnd() string {
	if s.GradientColor == "" {
		return s.FgColor
	}
	return s.GradientColor
}

// HasLogo reports whether a logo is set.
func (s Style) HasLogo() bool {
	return strings.TrimSpace(s.Logo) != ""
}

// IsDataURI reports whether logo is an inline "data:" URI.
func IsDataURI(logo string) bool {
	return strings.HasPrefix(strings.ToLower(logo), "data:")
}

// IsRemote reports whether logo is an http(s) URL.
func IsRemote(logo string) bool {
	l := strings.ToLower(logo)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// ClampSize limits size to the accepted resolution range. Zero or negative sizes fall back to fallback.
func ClampSize(size, fallback int) int {
	if size <= 0 {
		size = fallback
	}
	return min(max(size, MinResolution), MaxResolution)
}
