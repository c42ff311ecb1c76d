package style

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed logos.yaml
var logosYAML []byte

// LogoPreset is a built-in logo a style can reference by ID instead of a URL.
type LogoPreset struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

var loadLogos = sync.OnceValues(func() ([]LogoPreset, error) {
	return ParseLogos(logosYAML)
})

// ParseLogos decodes a YAML list of logo presets. IDs must be unique and URLs http(s).
func ParseLogos(data []byte) ([]LogoPreset, error) {
	var list []LogoPreset
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("style: parse logos: %w", err)
	}
	seen := make(map[string]bool, len(list))
	for i, l := range list {
		id := strings.ToLower(strings.TrimSpace(l.ID))
		switch {
		case id == "":
			return nil, fmt.Errorf("style: logo %d has no id", i)
		case seen[id]:
			return nil, fmt.Errorf("style: duplicate logo id %q", l.ID)
		case !IsRemote(l.URL):
			return nil, fmt.Errorf("style: logo %q has no http(s) url", l.ID)
		}
		seen[id] = true
	}
	return list, nil
}

// Logos returns the built-in logo presets in display order.
func Logos() []LogoPreset {
	list, err := loadLogos()
	if err != nil {
		panic(err)
	}
	out := make([]LogoPreset, len(list))
	copy(out, list)
	return out
}

// FindLogo looks a preset up by ID, case-insensitively.
func FindLogo(id string) (LogoPreset, bool) {
	id = strings.TrimSpace(id)
	for _, l := range Logos() {
		if strings.EqualFold(l.ID, id) {
			return l, true
		}
	}
	return LogoPreset{}, false
}

// ResolveLogo returns the URL of the preset named by logo, or logo unchanged
// when it is not a preset ID.
func ResolveLogo(logo string) string {
	if p, ok := FindLogo(logo); ok {
		return p.URL
	}
	return logo
}
