// Package i18n holds all user-facing copy for the two storefront locales and
// the process-wide language/currency setting.
package i18n

import (
	"strings"

	"narie-storefront/internal/domain"
)

func table(lang domain.Language) map[string]string {
	if lang == domain.LanguageVI {
		return translationsVI
	}
	return translationsEN
}

// T looks up a translation key for the given language. Unknown keys come
// back verbatim so a missing entry shows up on screen instead of as a blank.
func T(lang domain.Language, key string) string {
	if v, ok := table(lang)[key]; ok {
		return v
	}
	return key
}

// Table returns a copy of the full translation table for a language, served
// to the storefront in one request.
func Table(lang domain.Language) map[string]string {
	src := table(lang)
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// LegalDoc identifies one of the legal texts.
type LegalDoc string

const (
	LegalPrivacy LegalDoc = "privacy"
	LegalTerms   LegalDoc = "terms"
)

// LegalSections splits a legal document into its numbered sections for
// display. Sections are separated by blank lines in the authored copy; each
// section keeps its heading line followed by the body.
func LegalSections(lang domain.Language, doc LegalDoc) ([]string, error) {
	var key string
	switch doc {
	case LegalPrivacy:
		key = "legal.privacy.content"
	case LegalTerms:
		key = "legal.terms.content"
	default:
		return nil, domain.ErrNotFound
	}
	content := T(lang, key)

	var sections []string
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Split(block, "\n")
		var kept []string
		for _, line := range lines {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				kept = append(kept, trimmed)
			}
		}
		if len(kept) > 0 {
			sections = append(sections, strings.Join(kept, "\n"))
		}
	}
	return sections, nil
}
