package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language was negotiated.
const DefaultLanguage = "pt"

// Translator looks up messages by language and dot-separated key. It is safe for concurrent use.
type Translator struct {
	mu            sync.RWMutex
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range translations {
		if lang == "" || messages == nil {
			return nil, fmt.Errorf("%w: empty language %q", ErrInvalidTranslations, lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded",
		slog.Any("languages", t.supportedLanguages()),
		slog.String("default", t.defaultLang))
	return t, nil
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the loaded languages, default first, the rest sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		if lang != t.defaultLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	if _, ok := t.translations[t.defaultLang]; ok {
		langs = append([]string{t.defaultLang}, langs...)
	}
	return langs
}

// HasTranslation reports whether lang itself defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookup(lang, key)
	return ok
}

// lookup traverses nested maps along the dot-separated key.
func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if current, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

// resolve finds key in lang, then in the default language.
func (t *Translator) resolve(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.lookup(lang, key); ok {
		return s, true
	}
	if lang != t.defaultLang {
		if s, ok := t.lookup(t.defaultLang, key); ok {
			return s, true
		}
	}
	if t.logMissing {
		t.logger.Debug("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

// T translates key for lang. args are name/value pairs substituted into "%{name}" placeholders.
//
//	tr.T("en", "validation.between", "field", "logoSize", "min", "0.1", "max", "0.5")
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Values(lang, key, pairs(args))
}

// Td translates key, returning defaultValue when neither lang nor the default language has it.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.resolve(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	return substitute(tmpl, pairs(args))
}

// Values translates key with arbitrary placeholder values, formatted with fmt.Sprint.
// Slices are joined with ", ".
func (t *Translator) Values(lang, key string, values map[string]any) string {
	tmpl, ok := t.resolve(lang, key)
	if !ok {
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return substitute(tmpl, values)
}

// Tc translates key for the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func pairs(args []string) map[string]any {
	if len(args) < 2 {
		return nil
	}
	params := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces "%{name}" placeholders. Unknown placeholders are kept.
func substitute(tmpl string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		val, ok := values[match[2:len(match)-1]]
		if !ok {
			return match
		}
		return format(val)
	})
}

func format(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice {
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = fmt.Sprint(rv.Index(i).Interface())
		}
		return strings.Join(items, ", ")
	}
	return fmt.Sprint(v)
}
