package domain

// Language is one of the two storefront locales.
type Language string

const (
	LanguageEN Language = "en"
	LanguageVI Language = "vi"
)

// Valid reports whether l is a supported locale.
func (l Language) Valid() bool {
	return l == LanguageEN || l == LanguageVI
}

// Currency is the display currency paired with a language.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyVND Currency = "VND"
)

// CurrencyFor returns the currency deterministically paired with a language:
// en pays in USD, vi in VND. There is no independent currency override.
func CurrencyFor(l Language) Currency {
	if l == LanguageVI {
		return CurrencyVND
	}
	return CurrencyUSD
}
