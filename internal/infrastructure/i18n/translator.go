// Package i18n resolves the display language of a request and translates
// table labels, screen titles and column headers.
package i18n

import (
	"fmt"

	"github.com/pos/backoffice/internal/domain/datatable"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the languages with a catalog, in matcher preference order
var Supported = []language.Tag{language.English, language.Arabic}

// Translator owns the message catalog and the language matcher
type Translator struct {
	catalog    catalog.Catalog
	matcher    language.Matcher
	defaultTag language.Tag
}

// NewTranslator builds the catalog. defaultLang is used when a request names
// no supported language.
func NewTranslator(defaultLang string) (*Translator, error) {
	defaultTag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLang, err)
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range arabic {
		if err := b.SetString(language.Arabic, key, msg); err != nil {
			return nil, fmt.Errorf("failed to register message %q: %w", key, err)
		}
	}

	t := &Translator{
		catalog: b,
		matcher: language.NewMatcher(Supported),
	}
	t.defaultTag = t.match(defaultTag)
	return t, nil
}

// Resolve picks the supported language for a request. An explicit lang wins
// over the Accept-Language header; anything unsupported gets the default.
func (t *Translator) Resolve(lang, acceptLanguage string) language.Tag {
	if lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			if matched, ok := t.matchStrict(tag); ok {
				return matched
			}
		}
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if matched, ok := t.matchStrict(tags...); ok {
				return matched
			}
		}
	}
	return t.defaultTag
}

// Default returns the fallback language
func (t *Translator) Default() language.Tag {
	return t.defaultTag
}

func (t *Translator) matchStrict(tags ...language.Tag) (language.Tag, bool) {
	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return language.Und, false
	}
	return Supported[index], true
}

func (t *Translator) match(tag language.Tag) language.Tag {
	if matched, ok := t.matchStrict(tag); ok {
		return matched
	}
	return language.English
}

// Printer returns a message printer for tag over the catalog
func (t *Translator) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(t.catalog))
}

// Text translates an English key, formatting args into it
func (t *Translator) Text(tag language.Tag, key string, args ...any) string {
	return t.Printer(tag).Sprintf(key, args...)
}

// Labels returns the table label resolver for tag
func (t *Translator) Labels(tag language.Tag) datatable.LabelFunc {
	p := t.Printer(tag)
	return func(key string, args ...any) string {
		return p.Sprintf(datatable.DefaultLabels(key), args...)
	}
}

// Direction returns the reading direction of tag
func Direction(tag language.Tag) datatable.Direction {
	base, _ := tag.Base()
	switch base.String() {
	case "ar", "he", "fa", "ur":
		return datatable.RTL
	default:
		return datatable.LTR
	}
}

// Direction returns the reading direction of tag
func (t *Translator) Direction(tag language.Tag) datatable.Direction {
	return Direction(tag)
}
