// Package i18n localizes user-facing text. Messages are written in English
// in code and used as catalog keys; translations for other locales come from
// YAML files embedded in this package and registered in an x/text catalog.
//
//	tr, _ := i18n.New("ja")
//	ctx = i18n.WithLanguage(ctx, tr.Resolve(query, acceptLanguage))
//	msg := tr.Sprintf(ctx, "Signed in with %s", "Google")
package i18n

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Source is the language the message keys are written in.
var Source = language.English

//go:embed locales/*.yaml
var localesFS embed.FS

type contextKey struct{}

// WithLanguage returns a context carrying the request language.
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, contextKey{}, tag)
}

// LanguageFromContext returns the request language, if one was set.
func LanguageFromContext(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(contextKey{}).(language.Tag)
	return tag, ok
}

// Translator formats messages for the supported languages.
type Translator struct {
	catalog   catalog.Catalog
	supported []language.Tag
	matcher   language.Matcher
	fallback  language.Tag
}

// New loads the embedded catalogs. defaultLocale is used when a request
// names no supported language; it must be one of the loaded locales or the
// source language.
func New(defaultLocale string) (*Translator, error) {
	return NewFromFS(localesFS, defaultLocale)
}

// NewFromFS loads locales/*.yaml from fsys.
func NewFromFS(fsys fs.FS, defaultLocale string) (*Translator, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parsing default locale %q: %w", defaultLocale, err)
	}

	builder := catalog.NewBuilder(catalog.Fallback(Source))

	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("globbing locale files: %w", err)
	}
	sort.Strings(paths)

	supported := []language.Tag{Source}
	for _, p := range paths {
		tag, err := loadFile(fsys, p, builder)
		if err != nil {
			return nil, err
		}
		supported = append(supported, tag)
	}

	idx := -1
	for i, tag := range supported {
		if tag == fallback {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("default locale %q has no catalog", defaultLocale)
	}

	// The matcher prefers its first tag when nothing matches.
	ordered := append([]language.Tag{fallback}, supported[:idx]...)
	ordered = append(ordered, supported[idx+1:]...)

	return &Translator{
		catalog:   builder,
		supported: ordered,
		matcher:   language.NewMatcher(ordered),
		fallback:  fallback,
	}, nil
}

func loadFile(fsys fs.FS, p string, builder *catalog.Builder) (language.Tag, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return language.Und, fmt.Errorf("reading %s: %w", p, err)
	}
	doc, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return language.Und, fmt.Errorf("parsing %s: %w", p, err)
	}

	locale, _ := doc["locale"].(string)
	if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); locale != want {
		return language.Und, fmt.Errorf("%s: locale %q must match file name %q", p, locale, want)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("%s: %w", p, err)
	}

	messages, ok := doc["messages"].(map[string]any)
	if !ok {
		return language.Und, fmt.Errorf("%s: messages map is required", p)
	}
	for key, raw := range messages {
		text, ok := raw.(string)
		if !ok {
			return language.Und, fmt.Errorf("%s: message %q is not a string", p, key)
		}
		if err := builder.SetString(tag, key, text); err != nil {
			return language.Und, fmt.Errorf("%s: registering %q: %w", p, key, err)
		}
	}
	return tag, nil
}

// Default returns the fallback language.
func (t *Translator) Default() language.Tag { return t.fallback }

// Supported returns the supported languages, default first.
func (t *Translator) Supported() []language.Tag {
	out := make([]language.Tag, len(t.supported))
	copy(out, t.supported)
	return out
}

// Match returns the supported language closest to the preferences, or the
// default when none is close.
func (t *Translator) Match(prefs ...language.Tag) language.Tag {
	if len(prefs) == 0 {
		return t.fallback
	}
	_, idx, conf := t.matcher.Match(prefs...)
	if conf == language.No {
		return t.fallback
	}
	return t.supported[idx]
}

// Resolve picks the language for a request: an explicit lang value wins,
// then the Accept-Language header, then the default.
func (t *Translator) Resolve(lang, acceptLanguage string) language.Tag {
	if lang = strings.TrimSpace(lang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			return t.Match(tag)
		}
	}
	if acceptLanguage = strings.TrimSpace(acceptLanguage); acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			return t.Match(tags...)
		}
	}
	return t.fallback
}

// Printer returns a printer for tag backed by the loaded catalog.
func (t *Translator) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(t.catalog))
}

// Sprintf formats key in the context's language, or the default.
func (t *Translator) Sprintf(ctx context.Context, key string, args ...any) string {
	tag, ok := LanguageFromContext(ctx)
	if !ok {
		tag = t.fallback
	}
	return t.Printer(tag).Sprintf(key, args...)
}
