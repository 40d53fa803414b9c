package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"parts-store/models"
)

type fakeCatalog struct {
	products map[int64]models.Product
}

func newFakeCatalog(ids ...int64) *fakeCatalog {
	c := &fakeCatalog{products: map[int64]models.Product{}}
	for _, id := range ids {
		c.products[id] = models.Product{ID: id, Name: "part"}
	}
	return c
}

func (c *fakeCatalog) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return &p, nil
}

func (c *fakeCatalog) Create(ctx context.Context, p *models.Product) error {
	p.ID = int64(len(c.products) + 1)
	c.products[p.ID] = *p
	return nil
}

// fakeCartStore enforces the same keys and constraints as the cart_items table.
type fakeCartStore struct {
	mu      sync.Mutex
	catalog *fakeCatalog
	nextID  int64
	items   map[int64]models.CartItem
}

func newFakeCartStore(catalog *fakeCatalog) *fakeCartStore {
	return &fakeCartStore{catalog: catalog, items: map[int64]models.CartItem{}}
}

func (f *fakeCartStore) findLine(cartID string, productID int64) (models.CartItem, bool) {
	for _, it := range f.items {
		if it.CartID == cartID && it.ProductID == productID {
			return it, true
		}
	}
	return models.CartItem{}, false
}

func (f *fakeCartStore) Create(ctx context.Context, item *models.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.catalog.products[item.ProductID]; !ok {
		return models.ErrProductNotFound
	}
	if _, ok := f.findLine(item.CartID, item.ProductID); ok {
		return models.ErrDuplicateLineItem
	}
	f.nextID++
	item.CartItemID = f.nextID
	item.Version = 1
	f.items[item.CartItemID] = *item
	return nil
}

func (f *fakeCartStore) AddOrIncrement(ctx context.Context, item *models.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.catalog.products[item.ProductID]; !ok {
		return models.ErrProductNotFound
	}
	if existing, ok := f.findLine(item.CartID, item.ProductID); ok {
		if existing.Count > models.MaxItemCount-item.Count {
			return models.ErrInvalidCartItem
		}
		existing.Count += item.Count
		existing.Version++
		f.items[existing.CartItemID] = existing
		*item = existing
		return nil
	}
	f.nextID++
	item.CartItemID = f.nextID
	item.Version = 1
	f.items[item.CartItemID] = *item
	return nil
}

func (f *fakeCartStore) GetByID(ctx context.Context, id int64) (*models.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	it, ok := f.items[id]
	if !ok {
		return nil, models.ErrCartItemNotFound
	}
	return &it, nil
}

func (f *fakeCartStore) ListByCart(ctx context.Context, cartID string) ([]models.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []models.CartItem{}
	for _, it := range f.items {
		if it.CartID == cartID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CartItemID < out[j].CartItemID })
	return out, nil
}

func (f *fakeCartStore) UpdateCount(ctx context.Context, cartID string, id int64, count, version int) (*models.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	it, ok := f.items[id]
	if !ok || it.CartID != cartID {
		return nil, models.ErrCartItemNotFound
	}
	if version != 0 && it.Version != version {
		return nil, models.ErrVersionConflict
	}
	it.Count = count
	it.Version++
	f.items[id] = it
	return &it, nil
}

func (f *fakeCartStore) Delete(ctx context.Context, cartID string, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	it, ok := f.items[id]
	if !ok || it.CartID != cartID {
		return models.ErrCartItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeCartStore) DeleteByCart(ctx context.Context, cartID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for id, it := range f.items {
		if it.CartID == cartID {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeCartStore) CountByCart(ctx context.Context, cartID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for _, it := range f.items {
		if it.CartID == cartID {
			total += it.Count
		}
	}
	return total, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
