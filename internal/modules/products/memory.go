package products

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo keeps products in process memory. Used when no DB_DSN is
// configured and by tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Product
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Product)}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryRepo) Create(ctx context.Context, p Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ID]; ok {
		return ErrDuplicateID
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.items[p.ID] = p
	return nil
}

func (r *MemoryRepo) UpdateFields(ctx context.Context, id string, changes map[Field]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	for f, v := range changes {
		p.Apply(f, v)
	}
	p.UpdatedAt = time.Now()
	r.items[id] = p
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
