package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mkarneev/homestock/internal/store"
	"github.com/mkarneev/homestock/models"
)

// In-memory fakes used by the sync and device flow tests. The flows span
// many store calls, so stateful fakes read better than mock expectations.

type memSettings struct {
	mu      sync.Mutex
	m       map[string]string
	failSet map[string]error
}

func newMemSettings() *memSettings {
	return &memSettings{m: make(map[string]string)}
}

func (s *memSettings) GetSetting(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	if !ok {
		return "", store.ErrSettingNotFound
	}
	return v, nil
}

func (s *memSettings) SetSetting(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failSet[key]; ok {
		return err
	}
	s.m[key] = value
	return nil
}

func (s *memSettings) DeleteSetting(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

type memItems struct {
	mu    sync.Mutex
	items map[string]models.StockItem
}

func newMemItems(seed ...models.StockItem) *memItems {
	s := &memItems{items: make(map[string]models.StockItem)}
	for _, it := range seed {
		s.items[it.ID] = it
	}
	return s
}

func (s *memItems) SaveItem(_ context.Context, item models.StockItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
	return nil
}

func (s *memItems) GetItem(_ context.Context, id string) (models.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return models.StockItem{}, store.ErrItemNotFound
	}
	return it, nil
}

func (s *memItems) GetAllItems(_ context.Context) ([]models.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StockItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memItems) SearchItems(ctx context.Context, query string) ([]models.StockItem, error) {
	all, _ := s.GetAllItems(ctx)
	q := strings.ToLower(query)
	out := make([]models.StockItem, 0)
	for _, it := range all {
		if strings.Contains(strings.ToLower(it.Name), q) || strings.Contains(strings.ToLower(it.Category), q) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *memItems) DeleteItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

func (s *memItems) ReplaceAllItems(_ context.Context, items []models.StockItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]models.StockItem, len(items))
	for _, it := range items {
		s.items[it.ID] = it
	}
	return nil
}

type memCategories struct {
	mu    sync.Mutex
	names []string
}

func newMemCategories(names ...string) *memCategories {
	return &memCategories{names: names}
}

func (s *memCategories) AddCategory(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.names {
		if n == name {
			return nil
		}
	}
	s.names = append(s.names, name)
	return nil
}

func (s *memCategories) GetAllCategories(_ context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, models.Category{Name: n})
	}
	return out, nil
}

func (s *memCategories) DeleteCategory(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.names[:0]
	for _, n := range s.names {
		if n != name {
			kept = append(kept, n)
		}
	}
	s.names = kept
	return nil
}

func (s *memCategories) ReplaceAllCategories(_ context.Context, categories []models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = s.names[:0]
	for _, c := range categories {
		s.names = append(s.names, c.Name)
	}
	return nil
}

// memSnapshot mirrors the store's atomic snapshot apply. failWith simulates
// a rolled-back transaction: when set, neither collection is touched.
type memSnapshot struct {
	items      *memItems
	categories *memCategories
	failWith   error
}

func (s *memSnapshot) ReplaceAll(ctx context.Context, items []models.StockItem, categories []models.Category) error {
	if s.failWith != nil {
		return s.failWith
	}
	if err := s.items.ReplaceAllItems(ctx, items); err != nil {
		return err
	}
	return s.categories.ReplaceAllCategories(ctx, categories)
}

// memBlobs fakes the remote blob store. failUpload and failAll simulate
// server-side and transport failures.
type memBlobs struct {
	mu         sync.Mutex
	blobs      map[string][]byte
	uploadedAt map[string]time.Time
	failUpload bool
	failAll    bool
}

var errBlobStoreDown = errors.New("blob store down")

func newMemBlobs() *memBlobs {
	return &memBlobs{
		blobs:      make(map[string][]byte),
		uploadedAt: make(map[string]time.Time),
	}
}

func (b *memBlobs) Upload(_ context.Context, filename string, content []byte) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failAll || b.failUpload {
		return "", errBlobStoreDown
	}
	b.blobs[filename] = content
	b.uploadedAt[filename] = time.Now()
	return "/api/blobs/" + filename, nil
}

func (b *memBlobs) List(_ context.Context, prefix string) ([]models.BlobRef, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failAll {
		return nil, errBlobStoreDown
	}
	var refs []models.BlobRef
	for name := range b.blobs {
		if strings.HasPrefix(name, prefix) {
			refs = append(refs, models.BlobRef{URL: "/api/blobs/" + name, UploadedAt: b.uploadedAt[name]})
		}
	}
	return refs, nil
}

func (b *memBlobs) Fetch(_ context.Context, url string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failAll {
		return nil, errBlobStoreDown
	}
	name := strings.TrimPrefix(url, "/api/blobs/")
	content, ok := b.blobs[name]
	if !ok {
		return nil, errBlobStoreDown
	}
	return content, nil
}

func (b *memBlobs) Delete(_ context.Context, url string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failAll {
		return errBlobStoreDown
	}
	name := strings.TrimPrefix(url, "/api/blobs/")
	delete(b.blobs, name)
	delete(b.uploadedAt, name)
	return nil
}
