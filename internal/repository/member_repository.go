package repository

import (
	"strings"
	"sync"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/store"
)

type MemberRepository interface {
	GetAll() []model.Member
	FindByID(id string) (*model.Member, error)
	FindByEmail(email string) (*model.Member, error)
	Save(m model.Member) error
	Delete(id string) error
	UpdateAssignment(id, role, seksi, jabatan string) error
	RenameRole(oldName, newName string) error
	RenameSeksi(oldName, newName string) error
	RenameJabatan(oldName, newName string) error
	RoleInUse(name string) bool
	SeksiInUse(name string) bool
	JabatanInUse(name string) bool
	ReplaceAll(items []model.Member) error
}

type memberRepository struct {
	store *store.Store
	mu    sync.RWMutex
	items []model.Member
}

func NewMemberRepository(st *store.Store, seed []model.Member) MemberRepository {
	items := []model.Member{}
	if err := st.Load("members", &items); err != nil {
		items = append([]model.Member{}, seed...)
		st.Save("members", items)
	}
	return &memberRepository{store: st, items: items}
}

func (r *memberRepository) persist() error {
	return r.store.Save("members", r.items)
}

func (r *memberRepository) GetAll() []model.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Member{}, r.items...)
}

func (r *memberRepository) FindByID(id string) (*model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			m := r.items[i]
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memberRepository) FindByEmail(email string) (*model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if strings.EqualFold(r.items[i].Email, email) {
			m := r.items[i]
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

// Save meng-upsert: member baru diletakkan di depan, member lama ditimpa.
func (r *memberRepository) Save(m model.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == m.ID {
			r.items[i] = m
			return r.persist()
		}
	}
	r.items = append([]model.Member{m}, r.items...)
	return r.persist()
}

func (r *memberRepository) Delete(id string) error {
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

func (r *memberRepository) UpdateAssignment(id, role, seksi, jabatan string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Role = role
			r.items[i].Seksi = seksi
			r.items[i].Jabatan = jabatan
			return r.persist()
		}
	}
	return ErrNotFound
}

// Rename* menulis ulang member yang masih memakai nama lama (FK berbasis nama).
func (r *memberRepository) RenameRole(oldName, newName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].Role == oldName {
			r.items[i].Role = newName
		}
	}
	return r.persist()
}

func (r *memberRepository) RenameSeksi(oldName, newName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].Seksi == oldName {
			r.items[i].Seksi = newName
		}
	}
	return r.persist()
}

func (r *memberRepository) RenameJabatan(oldName, newName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].Jabatan == oldName {
			r.items[i].Jabatan = newName
		}
	}
	return r.persist()
}

func (r *memberRepository) RoleInUse(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].Role == name {
			return true
		}
	}
	return false
}

func (r *memberRepository) SeksiInUse(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].Seksi == name {
			return true
		}
	}
	return false
}

func (r *memberRepository) JabatanInUse(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].Jabatan == name {
			return true
		}
	}
	return false
}

func (r *memberRepository) ReplaceAll(items []model.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.Member{}, items...)
	return r.persist()
}
