package cart

import (
	"testing"

	"narie-storefront/internal/domain"
)

func TestAddItemMergesSameKey(t *testing.T) {
	s := New()
	if err := s.AddItem("1", 2, domain.VariantStandard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.AddItem("1", 3, domain.VariantStandard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := s.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", lines[0].Quantity)
	}
}

func TestAddItemDistinctVariants(t *testing.T) {
	s := New()
	_ = s.AddItem("1", 1, domain.VariantStandard)
	_ = s.AddItem("1", 1, domain.VariantGift)
	if got := len(s.Lines()); got != 2 {
		t.Fatalf("expected two lines, got %d", got)
	}
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	s := New()
	if err := s.AddItem("1", 0, domain.VariantStandard); err == nil {
		t.Fatal("expected validation error for zero quantity")
	}
	if err := s.AddItem("1", -2, domain.VariantStandard); err == nil {
		t.Fatal("expected validation error for negative quantity")
	}
	if got := len(s.Lines()); got != 0 {
		t.Fatalf("cart should be empty, got %d lines", got)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	s := New()
	_ = s.AddItem("1", 2, domain.VariantStandard)
	s.UpdateQuantity("1", domain.VariantStandard, 0)
	if got := len(s.Lines()); got != 0 {
		t.Fatalf("expected line removed, got %d lines", got)
	}
}

func TestUpdateQuantityAbsoluteSet(t *testing.T) {
	s := New()
	_ = s.AddItem("1", 2, domain.VariantStandard)
	s.UpdateQuantity("1", domain.VariantStandard, 7)
	lines := s.Lines()
	if lines[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", lines[0].Quantity)
	}
}

func TestUpdateQuantityMissingLineNoop(t *testing.T) {
	s := New()
	_ = s.AddItem("1", 1, domain.VariantStandard)
	s.UpdateQuantity("2", domain.VariantStandard, 5)
	s.UpdateQuantity("1", domain.VariantGift, 5)
	lines := s.Lines()
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("unexpected lines after no-op updates: %+v", lines)
	}
}

func TestRemoveItemMissingNoop(t *testing.T) {
	s := New()
	_ = s.AddItem("1", 1, domain.VariantStandard)
	s.RemoveItem("9", domain.VariantStandard)
	if got := len(s.Lines()); got != 1 {
		t.Fatalf("expected one line, got %d", got)
	}
}

func TestTotalItemCount(t *testing.T) {
	s := New()
	if got := s.TotalItemCount(); got != 0 {
		t.Fatalf("empty cart count should be 0, got %d", got)
	}
	_ = s.AddItem("1", 2, domain.VariantStandard)
	_ = s.AddItem("2", 3, domain.VariantGift)
	if got := s.TotalItemCount(); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
	s.Clear()
	if got := s.TotalItemCount(); got != 0 {
		t.Fatalf("expected count 0 after clear, got %d", got)
	}
}

func TestToggleVisibilityDoesNotTouchLines(t *testing.T) {
	s := New()
	_ = s.AddItem("1", 2, domain.VariantStandard)
	if !s.ToggleVisibility() {
		t.Fatal("expected drawer open after first toggle")
	}
	if s.ToggleVisibility() {
		t.Fatal("expected drawer closed after second toggle")
	}
	if got := s.TotalItemCount(); got != 2 {
		t.Fatalf("toggle must not affect lines, count %d", got)
	}
}

func TestLinesReturnsSnapshot(t *testing.T) {
	s := New()
	_ = s.AddItem("1", 2, domain.VariantStandard)
	lines := s.Lines()
	lines[0].Quantity = 99
	if s.Lines()[0].Quantity != 2 {
		t.Fatal("mutating the snapshot must not affect the store")
	}
}
