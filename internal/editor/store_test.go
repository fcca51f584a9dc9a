package editor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
)

// fakeSyncer records replication calls for assertions.
type fakeSyncer struct {
	mu      sync.Mutex
	created []products.Product
	updated []map[products.Field]string
	deleted []string
}

func (f *fakeSyncer) CreateProduct(_ context.Context, p products.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, p)
	return nil
}

func (f *fakeSyncer) UpdateProduct(_ context.Context, id string, changes map[products.Field]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make(map[products.Field]string, len(changes))
	for k, v := range changes {
		cp[k] = v
	}
	f.updated = append(f.updated, cp)
	return nil
}

func (f *fakeSyncer) DeleteProduct(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSyncer) counts() (int, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created), len(f.updated), len(f.deleted)
}

func loadN(s *Store, n int) {
	items := make([]products.Product, n)
	for i := range items {
		items[i] = products.Product{ID: string(rune('a' + i)), Name: "P", Position: i}
	}
	s.Load(items)
}

func TestLoadSelectsFirst(t *testing.T) {
	s := NewStore(nil, nil)
	defer s.Close()

	assert.Equal(t, -1, s.Selected())

	loadN(s, 3)
	assert.Equal(t, 0, s.Selected())
	assert.Equal(t, 3, s.Count())

	s.Load(nil)
	assert.Equal(t, -1, s.Selected())
}

func TestAddAssignsIdentityAndSelects(t *testing.T) {
	s := NewStore(nil, nil)
	defer s.Close()
	loadN(s, 2)

	p := s.Add(products.Draft{Name: "Yeni"})
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 2, p.Position, "position is the pre-add count")
	assert.Equal(t, 2, s.Selected(), "new product becomes active")
	assert.Equal(t, products.DefaultImage, p.Image, "empty image falls back to the default")
}

func TestSelectClamps(t *testing.T) {
	s := NewStore(nil, nil)
	defer s.Close()
	loadN(s, 3)

	s.Select(99)
	assert.Equal(t, 2, s.Selected())
	s.Select(-5)
	assert.Equal(t, 0, s.Selected())
}

func TestRemoveSelectionClamp(t *testing.T) {
	s := NewStore(nil, nil)
	defer s.Close()
	loadN(s, 3)

	// Removing the last entry moves selection to the new last.
	s.Select(2)
	require.True(t, s.Remove(2))
	assert.Equal(t, 1, s.Selected())

	// Removing in the middle keeps the same index (next item slides in).
	loadN(s, 3)
	s.Select(1)
	require.True(t, s.Remove(1))
	assert.Equal(t, 1, s.Selected())

	// Emptying the list goes back to no selection.
	loadN(s, 1)
	require.True(t, s.Remove(0))
	assert.Equal(t, -1, s.Selected())
	assert.False(t, s.Remove(0), "out of range")
}

func TestUpdateFieldLocalEcho(t *testing.T) {
	s := NewStore(nil, nil)
	defer s.Close()
	loadN(s, 1)

	require.True(t, s.UpdateField(0, products.FieldName, "Çaykur"))
	p, ok := s.Get(0)
	require.True(t, ok)
	assert.Equal(t, "Çaykur", p.Name)

	assert.False(t, s.UpdateField(0, products.Field("bogus"), "x"))
	assert.False(t, s.UpdateField(5, products.FieldName, "x"))
}

func TestAddAndRemoveReplicate(t *testing.T) {
	f := &fakeSyncer{}
	s := NewStore(f, nil)
	defer s.Close()

	p := s.Add(products.Draft{Name: "Eker"})
	require.Eventually(t, func() bool {
		c, _, _ := f.counts()
		return c == 1
	}, time.Second, 5*time.Millisecond)

	require.True(t, s.Remove(0))
	require.Eventually(t, func() bool {
		_, _, d := f.counts()
		return d == 1
	}, time.Second, 5*time.Millisecond)

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, p.ID, f.created[0].ID)
	assert.Equal(t, p.ID, f.deleted[0])
}

func TestUpdateFieldDebouncesAndAccumulates(t *testing.T) {
	f := &fakeSyncer{}
	s := NewStore(f, nil)
	defer s.Close()
	loadN(s, 1)

	// Several quick edits to one product coalesce into a single remote call
	// carrying the latest value of each touched field.
	s.UpdateField(0, products.FieldName, "E")
	s.UpdateField(0, products.FieldName, "Ek")
	s.UpdateField(0, products.FieldName, "Eker")
	s.UpdateField(0, products.FieldPriceMain, "3")

	require.Eventually(t, func() bool {
		_, u, _ := f.counts()
		return u == 1
	}, 2*time.Second, 10*time.Millisecond)

	f.mu.Lock()
	got := f.updated[0]
	f.mu.Unlock()
	assert.Equal(t, "Eker", got[products.FieldName])
	assert.Equal(t, "3", got[products.FieldPriceMain])
}

func TestRemoveCancelsPendingSync(t *testing.T) {
	f := &fakeSyncer{}
	s := NewStore(f, nil)
	defer s.Close()
	loadN(s, 1)

	s.UpdateField(0, products.FieldName, "gone")
	require.True(t, s.Remove(0))

	// Give the debounce window time to elapse; the queued update must not fire
	// for a product that was deleted meanwhile.
	time.Sleep(DebounceQuiet + 100*time.Millisecond)
	_, u, d := f.counts()
	assert.Equal(t, 0, u)
	assert.Equal(t, 1, d)
}
