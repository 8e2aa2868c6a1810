package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"golang.org/x/text/language"
)

// Languages supported by the backend, English first.
var Languages = []string{"en", "es", "ca", "ar", "fr"}

const (
	// FallbackLanguage is the authoritative entry when a requested language is missing.
	FallbackLanguage = "en"

	PlaceholderName        = "Unnamed"
	PlaceholderDescription = "No description"
)

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
	language.Catalan,
	language.Arabic,
	language.French,
})

// NormalizeLanguage reduces an Accept-Language style value to a supported base code.
// Unknown or empty input yields "en".
func NormalizeLanguage(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return FallbackLanguage
	}

	tags, _, err := language.ParseAcceptLanguage(v)
	if err != nil || len(tags) == 0 {
		return FallbackLanguage
	}

	_, idx, conf := languageMatcher.Match(tags...)
	if conf == language.No {
		return FallbackLanguage
	}
	return Languages[idx]
}

// Localized is a multilingual text value keyed by language code.
//
// The backend sends either a plain string or an object; both are normalized
// on decode so callers never branch on the wire shape. A plain string is
// stored under "en".
type Localized map[string]string

// NewLocalized returns a value with only the English entry set.
func NewLocalized(en string) Localized {
	return Localized{FallbackLanguage: en}
}

// UnmarshalJSON accepts a string, an object of strings, or null.
func (l *Localized) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Localized{FallbackLanguage: s}
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Localized, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			// non-string entries are not text
			continue
		}
		out[k] = s
	}
	*l = out
	return nil
}

// Get returns the entry for lang, then the English entry, then placeholder.
func (l Localized) Get(lang, placeholder string) string {
	if s := strings.TrimSpace(l[lang]); s != "" {
		return l[lang]
	}
	if s := strings.TrimSpace(l[FallbackLanguage]); s != "" {
		return l[FallbackLanguage]
	}
	return placeholder
}

// Name resolves display text using the "Unnamed" placeholder.
func (l Localized) Name(lang string) string {
	return l.Get(lang, PlaceholderName)
}

// Description resolves display text using the "No description" placeholder.
func (l Localized) Description(lang string) string {
	return l.Get(lang, PlaceholderDescription)
}

// English returns the trimmed English entry.
func (l Localized) English() string {
	return strings.TrimSpace(l[FallbackLanguage])
}

// Trimmed returns a copy with every supported language present and trimmed.
func (l Localized) Trimmed() Localized {
	out := make(Localized, len(Languages))
	for _, lang := range Languages {
		out[lang] = strings.TrimSpace(l[lang])
	}
	return out
}
