package catalog

import (
	"errors"
	"testing"

	"narie-storefront/internal/domain"
)

func TestSharedIDsAcrossLanguages(t *testing.T) {
	s := New()
	en := s.List(domain.LanguageEN)
	vi := s.List(domain.LanguageVI)
	if len(en) == 0 || len(en) != len(vi) {
		t.Fatalf("catalog sizes differ: en=%d vi=%d", len(en), len(vi))
	}
	for i := range en {
		if en[i].ID != vi[i].ID {
			t.Fatalf("id drift at index %d: %q vs %q", i, en[i].ID, vi[i].ID)
		}
	}
}

func TestPricesAuthoredNotConverted(t *testing.T) {
	s := New()
	p, err := s.Get(domain.LanguageVI, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PriceVND != 850000 {
		t.Fatalf("expected authored VND price 850000, got %d", p.PriceVND)
	}
	if p.PriceUSDCents != 3500 {
		t.Fatalf("expected authored USD price 3500, got %d", p.PriceUSDCents)
	}
}

func TestGetLanguageProjection(t *testing.T) {
	s := New()
	en, err := s.Get(domain.LanguageEN, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vi, err := s.Get(domain.LanguageVI, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if en.Name != "Spring Bud" || vi.Name != "Mầm Xuân" {
		t.Fatalf("unexpected names %q / %q", en.Name, vi.Name)
	}
	if en.Image != vi.Image {
		t.Fatal("image must not vary by language")
	}
}

func TestGetUnknownID(t *testing.T) {
	s := New()
	if _, err := s.Get(domain.LanguageEN, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByCategory(t *testing.T) {
	s := New()
	oils := s.ListByCategory(domain.LanguageEN, domain.CategoryEssentialOil)
	if len(oils) != 2 {
		t.Fatalf("expected 2 essential oils, got %d", len(oils))
	}
	for _, p := range oils {
		if p.Category != domain.CategoryEssentialOil {
			t.Fatalf("wrong category on %q", p.ID)
		}
	}
	if got := s.ListByCategory(domain.LanguageEN, domain.Category("nope")); len(got) != 0 {
		t.Fatalf("unknown category must be empty, got %d", len(got))
	}
}

func TestInventoryMatchesCatalog(t *testing.T) {
	s := New()
	inv := s.Inventory(domain.LanguageEN)
	if len(inv) != len(s.List(domain.LanguageEN)) {
		t.Fatalf("inventory size %d != catalog size", len(inv))
	}
	if inv[0].Name != "Spring Bud" || len(inv[0].Notes) == 0 {
		t.Fatalf("unexpected inventory head %+v", inv[0])
	}
}
