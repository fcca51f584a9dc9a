// Package editor holds the authoritative client-side product list and the
// edit-session state the studio form works against. Local state is the source
// of truth; a configured Syncer replicates mutations to the server on a
// best-effort, fire-and-forget basis.
package editor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
	"github.com/ozgurkaracam/aytas-flyer/internal/shared/debounce"
)

// DebounceQuiet is the quiet period before a field edit is replicated.
const DebounceQuiet = 450 * time.Millisecond

// Syncer replicates store mutations to the remote collaborator. Failures are
// logged and swallowed; the local store is never rolled back.
type Syncer interface {
	CreateProduct(ctx context.Context, p products.Product) error
	UpdateProduct(ctx context.Context, id string, changes map[products.Field]string) error
	DeleteProduct(ctx context.Context, id string) error
}

// Store is the ordered, selectable product collection.
type Store struct {
	mu       sync.Mutex
	items    []products.Product
	selected int // -1 when the list is empty

	syncer  Syncer // nil when running local-only
	logger  *slog.Logger
	deb     *debounce.Debouncer[string]
	pending map[string]map[products.Field]string // accumulated edits per product id
}

func NewStore(syncer Syncer, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		selected: -1,
		syncer:   syncer,
		logger:   logger,
		deb:      debounce.New[string](DebounceQuiet),
		pending:  make(map[string]map[products.Field]string),
	}
}

// Load replaces the list (initial fetch or seed) and selects the first entry.
// Loaded products are assumed to exist remotely already; nothing is synced.
func (s *Store) Load(items []products.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]products.Product, len(items))
	copy(s.items, items)
	if len(s.items) > 0 {
		s.selected = 0
	} else {
		s.selected = -1
	}
}

// Products returns a copy of the list in display order.
func (s *Store) Products() []products.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]products.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Selected returns the active index, or -1 when the list is empty.
func (s *Store) Selected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Get returns a copy of the product at index.
func (s *Store) Get(index int) (products.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return products.Product{}, false
	}
	return s.items[index], true
}

// Select changes the active index, clamped into bounds.
func (s *Store) Select(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		s.selected = -1
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(s.items) {
		index = len(s.items) - 1
	}
	s.selected = index
}

// Add appends a new product built from the draft, assigns id and
// position == previous count, and selects it.
func (s *Store) Add(d products.Draft) products.Product {
	s.mu.Lock()

	p := products.Product{
		ID:          uuid.NewString(),
		Name:        d.Name,
		Desc:        d.Desc,
		WeightValue: d.WeightValue,
		WeightUnit:  d.WeightUnit,
		PriceMain:   d.PriceMain,
		PriceCents:  d.PriceCents,
		Theme:       d.Theme,
		Color:       d.Color,
		Image:       d.Image,
		Position:    len(s.items),
	}
	if p.Image == "" {
		p.Image = products.DefaultImage
	}
	s.items = append(s.items, p)
	s.selected = len(s.items) - 1
	s.mu.Unlock()

	if s.syncer != nil {
		go func() {
			if err := s.syncer.CreateProduct(context.Background(), p); err != nil {
				s.logger.Warn("remote create failed", "product_id", p.ID, "err", err)
			}
		}()
	}
	return p
}

// UpdateField replaces one field on the product at index, leaving id and
// position untouched. The remote write is debounced per product id, so rapid
// keystrokes coalesce and edits to different products never cancel each other.
func (s *Store) UpdateField(index int, f products.Field, value string) bool {
	s.mu.Lock()
	if index < 0 || index >= len(s.items) {
		s.mu.Unlock()
		return false
	}
	if !s.items[index].Apply(f, value) {
		s.mu.Unlock()
		return false
	}
	id := s.items[index].ID

	if s.syncer != nil {
		if s.pending[id] == nil {
			s.pending[id] = make(map[products.Field]string)
		}
		s.pending[id][f] = value
	}
	s.mu.Unlock()

	if s.syncer != nil {
		s.deb.Schedule(id, func() { s.flushPending(id) })
	}
	return true
}

// Remove deletes the product at index. The selection moves to
// max(0, min(index, newCount-1)), or the store becomes empty.
func (s *Store) Remove(index int) bool {
	s.mu.Lock()
	if index < 0 || index >= len(s.items) {
		s.mu.Unlock()
		return false
	}
	id := s.items[index].ID
	s.items = append(s.items[:index], s.items[index+1:]...)

	if len(s.items) == 0 {
		s.selected = -1
	} else {
		next := index
		if next > len(s.items)-1 {
			next = len(s.items) - 1
		}
		if next < 0 {
			next = 0
		}
		s.selected = next
	}
	delete(s.pending, id)
	s.mu.Unlock()

	s.deb.Cancel(id)
	if s.syncer != nil {
		go func() {
			if err := s.syncer.DeleteProduct(context.Background(), id); err != nil {
				s.logger.Warn("remote delete failed", "product_id", id, "err", err)
			}
		}()
	}
	return true
}

// Close stops pending debounce timers. In-flight remote calls keep running.
func (s *Store) Close() {
	s.deb.Stop()
}

func (s *Store) flushPending(id string) {
	s.mu.Lock()
	changes := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()

	if len(changes) == 0 || s.syncer == nil {
		return
	}
	if err := s.syncer.UpdateProduct(context.Background(), id, changes); err != nil {
		s.logger.Warn("remote update failed", "product_id", id, "err", err)
	}
}
