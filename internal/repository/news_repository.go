package repository

import (
	"sync"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/store"
)

type NewsRepository interface {
	GetAll() []model.News
	FindByID(id string) (*model.News, error)
	Save(n model.News) error
	Delete(id string) error
	ReplaceAll(items []model.News) error
}

type newsRepository struct {
	store *store.Store
	mu    sync.RWMutex
	items []model.News
}

func NewNewsRepository(st *store.Store, seed []model.News) NewsRepository {
	items := []model.News{}
	if err := st.Load("news", &items); err != nil {
		items = append([]model.News{}, seed...)
		st.Save("news", items)
	}
	return &newsRepository{store: st, items: items}
}

func (r *newsRepository) persist() error {
	return r.store.Save("news", r.items)
}

func (r *newsRepository) GetAll() []model.News {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.News{}, r.items...)
}

func (r *newsRepository) FindByID(id string) (*model.News, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			n := r.items[i]
			return &n, nil
		}
	}
	return nil, ErrNotFound
}

func (r *newsRepository) Save(n model.News) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == n.ID {
			r.items[i] = n
			return r.persist()
		}
	}
	r.items = append([]model.News{n}, r.items...)
	return r.persist()
}

func (r *newsRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return r.persist()
		}
	}
	return ErrNotFound
}

func (r *newsRepository) ReplaceAll(items []model.News) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.News{}, items...)
	return r.persist()
}
