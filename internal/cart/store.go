// Package cart holds the in-memory shopping cart. There is exactly one store
// per process; nothing is persisted, a restart empties the bag.
package cart

import (
	"sync"

	"narie-storefront/internal/domain"
)

// Store owns the cart lines and the drawer visibility flag. The original
// storefront serialized mutations through a single-threaded event loop; an
// HTTP server gets concurrent requests, so a mutex preserves the same
// one-writer-at-a-time semantics.
type Store struct {
	mu     sync.Mutex
	lines  []domain.CartLine
	isOpen bool
}

// New returns an empty cart store.
func New() *Store {
	return &Store{}
}

func (s *Store) find(productID string, variant domain.Variant) int {
	for i, l := range s.lines {
		if l.ProductID == productID && l.Variant == variant {
			return i
		}
	}
	return -1
}

// AddItem merges quantity into the (productID, variant) line, creating it on
// first add. Non-positive quantities are rejected with domain.ErrValidation.
func (s *Store) AddItem(productID string, quantity int, variant domain.Variant) error {
	if quantity < 1 {
		return domain.ErrValidation
	}
	if !variant.Valid() {
		return domain.ErrValidation
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.find(productID, variant); i >= 0 {
		s.lines[i].Quantity += quantity
		return nil
	}
	s.lines = append(s.lines, domain.CartLine{ProductID: productID, Variant: variant, Quantity: quantity})
	return nil
}

// RemoveItem deletes the matching line. Removing an absent line is a no-op.
func (s *Store) RemoveItem(productID string, variant domain.Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.find(productID, variant); i >= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	}
}

// UpdateQuantity sets the line's quantity to an absolute value. Anything
// below 1 removes the line; updating an absent line is a no-op.
func (s *Store) UpdateQuantity(productID string, variant domain.Variant, quantity int) {
	if quantity < 1 {
		s.RemoveItem(productID, variant)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.find(productID, variant); i >= 0 {
		s.lines[i].Quantity = quantity
	}
}

// Clear empties all lines. The drawer flag is untouched.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// ToggleVisibility flips the drawer-open flag and returns the new value.
func (s *Store) ToggleVisibility() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
	return s.isOpen
}

// IsOpen reports the drawer flag.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// TotalItemCount sums quantities across all lines (the navbar badge).
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// Lines returns a snapshot copy of the cart lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}
