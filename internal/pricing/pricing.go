// Package pricing computes cart money amounts. Every function is a pure
// function of its inputs; USD amounts are kept in cents so all arithmetic
// stays integral.
package pricing

import (
	"narie-storefront/internal/domain"
)

// Flat per-unit surcharge for the gift variant, per currency. Not a
// percentage and not a conversion of the other currency's value.
const (
	giftSurchargeUSDCents int64 = 500
	giftSurchargeVND      int64 = 100000
)

// Free-shipping thresholds and flat fees, per currency.
const (
	freeShippingThresholdUSDCents int64 = 5000
	freeShippingThresholdVND      int64 = 1000000
	shippingFeeUSDCents           int64 = 500
	shippingFeeVND                int64 = 35000
)

// UnitPrice returns the per-unit price of a product in the given currency,
// including the gift surcharge when variant is gift.
func UnitPrice(p domain.Product, variant domain.Variant, currency domain.Currency) int64 {
	base := p.PriceUSDCents
	surcharge := giftSurchargeUSDCents
	if currency == domain.CurrencyVND {
		base = p.PriceVND
		surcharge = giftSurchargeVND
	}
	if variant == domain.VariantGift {
		return base + surcharge
	}
	return base
}

// LineTotal returns the price of one cart line: unit price times quantity.
func LineTotal(p domain.Product, line domain.CartLine, currency domain.Currency) int64 {
	return UnitPrice(p, line.Variant, currency) * int64(line.Quantity)
}

// ShippingCost returns the flat shipping fee, waived once the subtotal
// reaches the currency's free-shipping threshold. An empty cart ships
// nothing and costs nothing.
func ShippingCost(subtotal int64, currency domain.Currency) int64 {
	if subtotal <= 0 {
		return 0
	}
	threshold, fee := freeShippingThresholdUSDCents, shippingFeeUSDCents
	if currency == domain.CurrencyVND {
		threshold, fee = freeShippingThresholdVND, shippingFeeVND
	}
	if subtotal >= threshold {
		return 0
	}
	return fee
}

// GrandTotal returns subtotal plus shipping.
func GrandTotal(subtotal int64, currency domain.Currency) int64 {
	return subtotal + ShippingCost(subtotal, currency)
}
