package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"doctors/internal/domain"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

// Resolver matches request preferences to a catalog locale and renders
// language display names. Every method takes the locale explicitly and the
// Resolver holds no mutable state.
type Resolver struct {
	bundle    *Bundle
	supported []language.Tag
	locales   []string
	matcher   language.Matcher
}

// NewResolver builds a Resolver over bundle. defaultLocale is chosen when no
// requested locale matches and must exist in the bundle.
func NewResolver(bundle *Bundle, defaultLocale string) (*Resolver, error) {
	if !bundle.HasLocale(defaultLocale) {
		return nil, fmt.Errorf("default locale %q is not defined in catalogs", defaultLocale)
	}

	locales := []string{defaultLocale}
	for _, locale := range bundle.Locales() {
		if locale != defaultLocale {
			locales = append(locales, locale)
		}
	}

	supported := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		supported = append(supported, tag)
	}

	return &Resolver{
		bundle:    bundle,
		supported: supported,
		locales:   locales,
		matcher:   language.NewMatcher(supported),
	}, nil
}

// Default returns the tag used when nothing else matches.
func (r *Resolver) Default() language.Tag {
	return r.supported[0]
}

// Supported returns the catalog tags, default first.
func (r *Resolver) Supported() []language.Tag {
	out := make([]language.Tag, len(r.supported))
	copy(out, r.supported)
	return out
}

// Match returns the supported tag closest to the preferences, or the default.
func (r *Resolver) Match(preferred ...language.Tag) language.Tag {
	return r.supported[r.index(preferred...)]
}

func (r *Resolver) index(preferred ...language.Tag) int {
	if len(preferred) == 0 {
		return 0
	}
	_, idx, confidence := r.matcher.Match(preferred...)
	if confidence == language.No {
		return 0
	}
	return idx
}

// FromAcceptLanguage resolves an Accept-Language header value. Malformed or
// empty headers resolve to the default.
func (r *Resolver) FromAcceptLanguage(header string) language.Tag {
	header = strings.TrimSpace(header)
	if header == "" {
		return r.Default()
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return r.Default()
	}
	return r.Match(tags...)
}

// Parse resolves a single locale string such as "zh-TW" or "zh_Hant".
func (r *Resolver) Parse(value string) (language.Tag, bool) {
	value = strings.ReplaceAll(strings.TrimSpace(value), "_", "-")
	if value == "" {
		return r.Default(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return r.Default(), false
	}
	return r.Match(tag), true
}

// Resolve picks the request locale: an explicit lang value wins over the
// Accept-Language header.
func (r *Resolver) Resolve(lang, acceptLanguage string) language.Tag {
	if tag, ok := r.Parse(lang); ok {
		return tag
	}
	return r.FromAcceptLanguage(acceptLanguage)
}

// LanguageName returns the display name of a doctor's language code in the
// given locale. Unrecognized codes report false.
func (r *Resolver) LanguageName(code domain.Language, tag language.Tag) (string, bool) {
	if !code.IsValid() {
		return "", false
	}
	return r.bundle.Message(r.locales[r.index(tag)], "language."+string(code))
}
