package repository

import (
	"sync"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/store"
)

type RoleRepository interface {
	GetAll() []model.RoleDefinition
	FindByID(id string) (*model.RoleDefinition, error)
	Save(def model.RoleDefinition) error
	Delete(id string) error
	ReplaceAll(items []model.RoleDefinition) error
}

type roleRepository struct {
	store *store.Store
	mu    sync.RWMutex
	items []model.RoleDefinition
}

func NewRoleRepository(st *store.Store, seed []model.RoleDefinition) RoleRepository {
	items := []model.RoleDefinition{}
	if err := st.Load("roles", &items); err != nil {
		items = append([]model.RoleDefinition{}, seed...)
		st.Save("roles", items)
	}
	return &roleRepository{store: st, items: items}
}

func (r *roleRepository) persist() error { return r.store.Save("roles", r.items) }

func (r *roleRepository) GetAll() []model.RoleDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.RoleDefinition{}, r.items...)
}

func (r *roleRepository) FindByID(id string) (*model.RoleDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			def := r.items[i]
			return &def, nil
		}
	}
	return nil, ErrNotFound
}

// Save meng-upsert; definisi baru ditambahkan di belakang (urutan lookup table).
func (r *roleRepository) Save(def model.RoleDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == def.ID {
			r.items[i] = def
			return r.persist()
		}
	}
	r.items = append(r.items, def)
	return r.persist()
}

func (r *roleRepository) Delete(id string) error {
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

func (r *roleRepository) ReplaceAll(items []model.RoleDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.RoleDefinition{}, items...)
	return r.persist()
}

type SectionRepository interface {
	GetAll() []model.SectionDefinition
	FindByID(id string) (*model.SectionDefinition, error)
	FindByName(name string) (*model.SectionDefinition, error)
	Save(def model.SectionDefinition) error
	Delete(id string) error
	ReplaceAll(items []model.SectionDefinition) error
}

type sectionRepository struct {
	store *store.Store
	mu    sync.RWMutex
	items []model.SectionDefinition
}

func NewSectionRepository(st *store.Store, seed []model.SectionDefinition) SectionRepository {
	items := []model.SectionDefinition{}
	if err := st.Load("sections", &items); err != nil {
		items = append([]model.SectionDefinition{}, seed...)
		st.Save("sections", items)
	}
	return &sectionRepository{store: st, items: items}
}

func (r *sectionRepository) persist() error { return r.store.Save("sections", r.items) }

func (r *sectionRepository) GetAll() []model.SectionDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.SectionDefinition{}, r.items...)
}

func (r *sectionRepository) FindByID(id string) (*model.SectionDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			def := r.items[i]
			return &def, nil
		}
	}
	return nil, ErrNotFound
}

func (r *sectionRepository) FindByName(name string) (*model.SectionDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].Name == name {
			def := r.items[i]
			return &def, nil
		}
	}
	return nil, ErrNotFound
}

func (r *sectionRepository) Save(def model.SectionDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == def.ID {
			r.items[i] = def
			return r.persist()
		}
	}
	r.items = append(r.items, def)
	return r.persist()
}

func (r *sectionRepository) Delete(id string) error {
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

func (r *sectionRepository) ReplaceAll(items []model.SectionDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.SectionDefinition{}, items...)
	return r.persist()
}

type JabatanRepository interface {
	GetAll() []model.JabatanDefinition
	FindByID(id string) (*model.JabatanDefinition, error)
	Save(def model.JabatanDefinition) error
	Delete(id string) error
	ReplaceAll(items []model.JabatanDefinition) error
}

type jabatanRepository struct {
	store *store.Store
	mu    sync.RWMutex
	items []model.JabatanDefinition
}

func NewJabatanRepository(st *store.Store, seed []model.JabatanDefinition) JabatanRepository {
	items := []model.JabatanDefinition{}
	if err := st.Load("jabatans", &items); err != nil {
		items = append([]model.JabatanDefinition{}, seed...)
		st.Save("jabatans", items)
	}
	return &jabatanRepository{store: st, items: items}
}

func (r *jabatanRepository) persist() error { return r.store.Save("jabatans", r.items) }

func (r *jabatanRepository) GetAll() []model.JabatanDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.JabatanDefinition{}, r.items...)
}

func (r *jabatanRepository) FindByID(id string) (*model.JabatanDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			def := r.items[i]
			return &def, nil
		}
	}
	return nil, ErrNotFound
}

func (r *jabatanRepository) Save(def model.JabatanDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == def.ID {
			r.items[i] = def
			return r.persist()
		}
	}
	r.items = append(r.items, def)
	return r.persist()
}

func (r *jabatanRepository) Delete(id string) error {
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

func (r *jabatanRepository) ReplaceAll(items []model.JabatanDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.JabatanDefinition{}, items...)
	return r.persist()
}
