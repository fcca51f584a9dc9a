package campaigns

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Campaign
	order []string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Campaign)}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Campaign, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.sorted(r.items[id]))
	}
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return Campaign{}, ErrNotFound
	}
	return r.sorted(c), nil
}

func (r *MemoryRepo) Create(ctx context.Context, c Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	r.items[c.ID] = c
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, id, title, validText string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	c.Title = title
	c.ValidText = validText
	r.items[id] = c
	return nil
}

func (r *MemoryRepo) AddItem(ctx context.Context, it Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[it.CampaignID]
	if !ok {
		return ErrNotFound
	}
	c.Items = append(c.Items, it)
	r.items[it.CampaignID] = c
	return nil
}

// sorted returns a copy with items ordered by position.
func (r *MemoryRepo) sorted(c Campaign) Campaign {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	c.Items = items
	return c
}
