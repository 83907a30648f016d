package pricing

import (
	"testing"

	"narie-storefront/internal/domain"
)

var candle = domain.Product{
	ID:            "1",
	Name:          "Spring Bud",
	PriceUSDCents: 3500,
	PriceVND:      850000,
}

func TestUnitPriceStandard(t *testing.T) {
	if got := UnitPrice(candle, domain.VariantStandard, domain.CurrencyUSD); got != 3500 {
		t.Fatalf("expected 3500, got %d", got)
	}
	if got := UnitPrice(candle, domain.VariantStandard, domain.CurrencyVND); got != 850000 {
		t.Fatalf("expected 850000, got %d", got)
	}
}

func TestUnitPriceGiftSurcharge(t *testing.T) {
	if got := UnitPrice(candle, domain.VariantGift, domain.CurrencyUSD); got != 4000 {
		t.Fatalf("expected 4000, got %d", got)
	}
	if got := UnitPrice(candle, domain.VariantGift, domain.CurrencyVND); got != 950000 {
		t.Fatalf("expected 950000, got %d", got)
	}
}

func TestLineTotalGiftSurchargePerUnit(t *testing.T) {
	line := domain.CartLine{ProductID: "1", Variant: domain.VariantGift, Quantity: 3}
	// Surcharge applies per unit, not once per line.
	if got := LineTotal(candle, line, domain.CurrencyUSD); got != 12000 {
		t.Fatalf("expected 12000, got %d", got)
	}
}

func TestShippingCostUSDThreshold(t *testing.T) {
	cases := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{"exactly at threshold", 5000, 0},
		{"one cent below", 4999, 500},
		{"above threshold", 9000, 0},
		{"empty cart", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShippingCost(tc.subtotal, domain.CurrencyUSD); got != tc.want {
				t.Fatalf("subtotal %d: expected %d, got %d", tc.subtotal, tc.want, got)
			}
		})
	}
}

func TestShippingCostVNDThreshold(t *testing.T) {
	if got := ShippingCost(999999, domain.CurrencyVND); got != 35000 {
		t.Fatalf("expected flat VND fee, got %d", got)
	}
	if got := ShippingCost(1000000, domain.CurrencyVND); got != 0 {
		t.Fatalf("expected free shipping, got %d", got)
	}
}

func TestGrandTotal(t *testing.T) {
	if got := GrandTotal(4999, domain.CurrencyUSD); got != 5499 {
		t.Fatalf("expected 5499, got %d", got)
	}
	if got := GrandTotal(5000, domain.CurrencyUSD); got != 5000 {
		t.Fatalf("expected 5000, got %d", got)
	}
	if got := GrandTotal(0, domain.CurrencyUSD); got != 0 {
		t.Fatalf("empty cart must total zero, got %d", got)
	}
}
