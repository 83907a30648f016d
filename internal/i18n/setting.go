package i18n

import (
	"sync"

	"narie-storefront/internal/domain"
)

// Setting is the process-wide language/currency state. Selecting a language
// always selects its paired currency in the same step.
type Setting struct {
	mu   sync.Mutex
	lang domain.Language
}

// NewSetting starts in English (USD).
func NewSetting() *Setting {
	return &Setting{lang: domain.LanguageEN}
}

// SetLanguage switches the locale; the currency follows deterministically.
func (s *Setting) SetLanguage(lang domain.Language) error {
	if !lang.Valid() {
		return domain.ErrValidation
	}
	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
	return nil
}

// Language returns the active locale.
func (s *Setting) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Currency returns the currency paired with the active locale.
func (s *Setting) Currency() domain.Currency {
	return domain.CurrencyFor(s.Language())
}
