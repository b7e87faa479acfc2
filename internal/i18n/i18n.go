// Package i18n holds the storefront's static translation tables. The bundle
// is plain lookup data injected into the HTTP layer; it is never mutated.
package i18n

import "grocery-storefront/internal/domain"

const (
	English    = "en"
	Portuguese = "pt"
)

// Bundle maps message keys to per-language strings.
type Bundle struct {
	languages []string
	messages  map[string]map[string]string
}

// New builds a bundle from a key -> language -> text table.
func New(messages map[string]map[string]string, languages ...string) *Bundle {
	return &Bundle{languages: languages, messages: messages}
}

// Languages returns the supported language codes.
func (b *Bundle) Languages() []string {
	out := make([]string, len(b.languages))
	copy(out, b.languages)
	return out
}

// Strings returns the full key -> text table for lang, falling back to
// English for keys without a translation. Unknown languages are ErrNotFound.
func (b *Bundle) Strings(lang string) (map[string]string, error) {
	known := false
	for _, l := range b.languages {
		if l == lang {
			known = true
			break
		}
	}
	if !known {
		return nil, domain.ErrNotFound
	}
	out := make(map[string]string, len(b.messages))
	for key, byLang := range b.messages {
		if text, ok := byLang[lang]; ok && text != "" {
			out[key] = text
			continue
		}
		if text, ok := byLang[English]; ok {
			out[key] = text
		}
	}
	return out, nil
}
