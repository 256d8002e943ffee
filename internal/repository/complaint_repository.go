package repository

import (
	"sort"
	"sync"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/store"
)

type ComplaintRepository interface {
	GetAll() []model.Complaint
	FindByID(id string) (*model.Complaint, error)
	Create(c model.Complaint) error
	Update(c model.Complaint) error
	ReplaceAll(items []model.Complaint) error
}

type complaintRepository struct {
	store *store.Store
	mu    sync.RWMutex
	items []model.Complaint
}

func NewComplaintRepository(st *store.Store, seed []model.Complaint) ComplaintRepository {
	items := []model.Complaint{}
	if err := st.Load("complaints", &items); err != nil {
		items = append([]model.Complaint{}, seed...)
		st.Save("complaints", items)
	}
	return &complaintRepository{store: st, items: items}
}

func (r *complaintRepository) persist() error {
	return r.store.Save("complaints", r.items)
}

func (r *complaintRepository) GetAll() []model.Complaint {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Complaint{}, r.items...)
}

func (r *complaintRepository) FindByID(id string) (*model.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			c := r.items[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Create menyisipkan pengaduan baru dan menjaga urutan timestamp terbaru dulu.
func (r *complaintRepository) Create(c model.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.Complaint{c}, r.items...)
	sort.SliceStable(r.items, func(i, j int) bool {
		return r.items[i].Timestamp > r.items[j].Timestamp
	})
	return r.persist()
}

func (r *complaintRepository) Update(c model.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == c.ID {
			r.items[i] = c
			return r.persist()
		}
	}
	return ErrNotFound
}

func (r *complaintRepository) ReplaceAll(items []model.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.Complaint{}, items...)
	return r.persist()
}
