package domain

// Variant is a purchasable modifier of a cart line. Gift adds a flat
// per-unit surcharge for the box and card.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantGift     Variant = "gift"
)

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	return v == VariantStandard || v == VariantGift
}

// CartLine is one distinct (product, variant) entry in the cart. At most one
// line exists per (ProductID, Variant) pair; repeated adds merge into it.
type CartLine struct {
	ProductID string  `json:"productId"`
	Variant   Variant `json:"variant"`
	Quantity  int     `json:"quantity"`
}
