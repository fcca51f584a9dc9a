package editor

import "github.com/ozgurkaracam/aytas-flyer/internal/modules/products"

// State is the edit-session state.
type State int

const (
	// Empty means there is nothing to edit; the buffer holds defaults.
	Empty State = iota
	// Editing means the buffer mirrors the selected product's fields.
	Editing
)

// Session tracks the selected product and mirrors its editable fields into a
// transient form buffer. The buffer is always a copy, never a shared
// reference, so half-typed edits cannot leak into the preview before a field
// commit.
type Session struct {
	store  *Store
	buffer products.Draft
}

func NewSession(store *Store) *Session {
	s := &Session{store: store}
	s.Refresh()
	return s
}

func (s *Session) Store() *Store { return s.store }

func (s *Session) State() State {
	if s.store.Selected() < 0 {
		return Empty
	}
	return Editing
}

// Buffer returns the current form buffer.
func (s *Session) Buffer() products.Draft { return s.buffer }

// Refresh resets the buffer to a copy of the selected product, or to
// defaults when the store is empty. Call after any selection or store change.
func (s *Session) Refresh() {
	if p, ok := s.store.Get(s.store.Selected()); ok {
		s.buffer = products.DraftOf(p)
		return
	}
	s.buffer = products.EmptyDraft()
}

// Select makes index the active product and resets the buffer.
func (s *Session) Select(index int) {
	s.store.Select(index)
	s.Refresh()
}

// Add appends a product from the given draft, selects it, and mirrors it
// into the buffer.
func (s *Session) Add(d products.Draft) products.Product {
	p := s.store.Add(d)
	s.Refresh()
	return p
}

// Remove deletes the selected product. When that empties the list the
// session transitions to Empty and the buffer resets to defaults.
func (s *Session) Remove() bool {
	idx := s.store.Selected()
	if idx < 0 {
		return false
	}
	ok := s.store.Remove(idx)
	s.Refresh()
	return ok
}

// SetField writes one field edit through to both the buffer (local echo) and
// the store entry at the session's index.
func (s *Session) SetField(f products.Field, value string) bool {
	idx := s.store.Selected()
	if idx < 0 {
		return false
	}
	if !s.store.UpdateField(idx, f, value) {
		return false
	}
	applyToDraft(&s.buffer, f, value)
	return true
}

func applyToDraft(d *products.Draft, f products.Field, value string) {
	switch f {
	case products.FieldName:
		d.Name = value
	case products.FieldDesc:
		d.Desc = value
	case products.FieldWeightValue:
		d.WeightValue = value
	case products.FieldWeightUnit:
		d.WeightUnit = value
	case products.FieldPriceMain:
		d.PriceMain = value
	case products.FieldPriceCents:
		d.PriceCents = value
	case products.FieldTheme:
		d.Theme = products.Theme(value)
	case products.FieldColor:
		d.Color = products.Color(value)
	case products.FieldImage:
		d.Image = value
	}
}
