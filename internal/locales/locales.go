// Package locales embeds the translation files served by qrkit.
package locales

import "embed"

// FS holds one YAML file per language, each keyed by its language code.
//
//go:embed *.yaml
var FS embed.FS
