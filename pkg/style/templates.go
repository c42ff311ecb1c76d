package style

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

// Template is a named preset. Nil fields leave the corresponding Style field untouched.
type Template struct {
	Label         string         `json:"label" yaml:"label"`
	Content       string         `json:"content,omitempty" yaml:"content"`
	BodyShape     *BodyShape     `json:"bodyShape,omitempty" yaml:"bodyShape"`
	EyeFrameShape *EyeFrameShape `json:"eyeFrameShape,omitempty" yaml:"eyeFrameShape"`
	EyeBallShape  *EyeBallShape  `json:"eyeBallShape,omitempty" yaml:"eyeBallShape"`
	FgColor       *string        `json:"fgColor,omitempty" yaml:"fgColor"`
	BgColor       *string        `json:"bgColor,omitempty" yaml:"bgColor"`
	Gradient      *bool          `json:"isGradient,omitempty" yaml:"isGradient"`
	GradientColor *string        `json:"gradientColor,omitempty" yaml:"gradientColor"`
	Logo          *string        `json:"logo,omitempty" yaml:"logo"`
}

// Apply returns s with every field set in t copied over.
func (t Template) Apply(s Style) Style {
	if t.BodyShape != nil {
		s.BodyShape = *t.BodyShape
	}
	if t.EyeFrameShape != nil {
		s.EyeFrameShape = *t.EyeFrameShape
	}
	if t.EyeBallShape != nil {
		s.EyeBallShape = *t.EyeBallShape
	}
	if t.FgColor != nil {
		s.FgColor = *t.FgColor
	}
	if t.BgColor != nil {
		s.BgColor = *t.BgColor
	}
	if t.Gradient != nil {
		s.Gradient = *t.Gradient
	}
	if t.GradientColor != nil {
		s.GradientColor = *t.GradientColor
	}
	if t.Logo != nil {
		s.Logo = *t.Logo
	}
	return s
}

var loadTemplates = sync.OnceValues(func() ([]Template, error) {
	return ParseTemplates(templatesYAML)
})

// ParseTemplates decodes a YAML list of templates.
func ParseTemplates(data []byte) ([]Template, error) {
	var list []Template
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("style: parse templates: %w", err)
	}
	for i, t := range list {
		if strings.TrimSpace(t.Label) == "" {
			return nil, fmt.Errorf("style: template %d has no label", i)
		}
	}
	return list, nil
}

// Templates returns the built-in presets in display order.
func Templates() []Template {
	list, err := loadTemplates()
	if err != nil {
		panic(err)
	}
	out := make([]Template, len(list))
	copy(out, list)
	return out
}

// FindTemplate looks a preset up by label, case-insensitively.
func FindTemplate(label string) (Template, bool) {
	for _, t := range Templates() {
		if strings.EqualFold(t.Label, strings.TrimSpace(label)) {
			return t, true
		}
	}
	return Template{}, false
}
