package domain

// Category buckets catalog products for storefront filtering.
type Category string

const (
	CategorySignature    Category = "signature"
	CategorySeasonal     Category = "seasonal"
	CategoryLimited      Category = "limited"
	CategoryAccessory    Category = "accessory"
	CategoryEssentialOil Category = "essential_oil"
)

// Product is a language-projected catalog entry. Name, Description and
// ScentNotes are already in the requested language. Both price fields are
// carried regardless of language: they are independently authored, never
// converted from one another.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PriceUSDCents int64    `json:"priceUsdCents"`
	PriceVND      int64    `json:"priceVnd"`
	Description   string   `json:"description,omitempty"`
	ScentNotes    []string `json:"scentNotes"`
	Image         string   `json:"image"`
	Category      Category `json:"category"`
	ColorTheme    string   `json:"colorTheme,omitempty"`
}
