package catalog

import (
	"narie-storefront/internal/domain"
)

// localized holds the per-language text of an entry.
type localized struct {
	Name        string
	Description string
	ScentNotes  []string
}

// entry is a canonical catalog record: one id, both languages, both prices.
// A single table replaces per-language product lists so ids cannot drift
// between locales.
type entry struct {
	ID            string
	EN            localized
	VI            localized
	PriceUSDCents int64
	PriceVND      int64
	Image         string
	Category      domain.Category
	ColorTheme    string
}

// Store is the immutable in-memory product catalog. Entries keep authoring
// order for listing; lookups go through an id index.
type Store struct {
	entries []entry
	byID    map[string]int
}

// New builds a Store over the built-in catalog data.
func New() *Store {
	return newStore(entries)
}

func newStore(es []entry) *Store {
	byID := make(map[string]int, len(es))
	for i, e := range es {
		byID[e.ID] = i
	}
	return &Store{entries: es, byID: byID}
}

func (e entry) project(lang domain.Language) domain.Product {
	loc := e.EN
	if lang == domain.LanguageVI {
		loc = e.VI
	}
	notes := make([]string, len(loc.ScentNotes))
	copy(notes, loc.ScentNotes)
	return domain.Product{
		ID:            e.ID,
		Name:          loc.Name,
		PriceUSDCents: e.PriceUSDCents,
		PriceVND:      e.PriceVND,
		Description:   loc.Description,
		ScentNotes:    notes,
		Image:         e.Image,
		Category:      e.Category,
		ColorTheme:    e.ColorTheme,
	}
}

// List returns every product projected into the given language.
func (s *Store) List(lang domain.Language) []domain.Product {
	out := make([]domain.Product, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.project(lang))
	}
	return out
}

// ListByCategory returns products of one category in authoring order.
func (s *Store) ListByCategory(lang domain.Language, cat domain.Category) []domain.Product {
	out := make([]domain.Product, 0)
	for _, e := range s.entries {
		if e.Category == cat {
			out = append(out, e.project(lang))
		}
	}
	return out
}

// Get returns one product by id, or domain.ErrNotFound.
func (s *Store) Get(lang domain.Language, id string) (*domain.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := s.entries[i].project(lang)
	return &p, nil
}

// Inventory returns the id/name/notes listing embedded in recommendation
// prompts so the model grounds its pick in real products.
func (s *Store) Inventory(lang domain.Language) []domain.InventoryItem {
	out := make([]domain.InventoryItem, 0, len(s.entries))
	for _, e := range s.entries {
		p := e.project(lang)
		out = append(out, domain.InventoryItem{ID: p.ID, Name: p.Name, Notes: p.ScentNotes})
	}
	return out
}
