package repository

import (
	"sync"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/store"
)

type SPPDRepository interface {
	GetAll() []model.SPPD
	FindByID(id string) (*model.SPPD, error)
	Create(s model.SPPD) error
	Update(s model.SPPD) error
	ReplaceAll(items []model.SPPD) error
}

type sppdRepository struct {
	store *store.Store
	mu    sync.RWMutex
	items []model.SPPD
}

func NewSPPDRepository(st *store.Store, seed []model.SPPD) SPPDRepository {
	items := []model.SPPD{}
	if err := st.Load("sppds", &items); err != nil {
		items = append([]model.SPPD{}, seed...)
		st.Save("sppds", items)
	}
	return &sppdRepository{store: st, items: items}
}

func (r *sppdRepository) persist() error {
	return r.store.Save("sppds", r.items)
}

func (r *sppdRepository) GetAll() []model.SPPD {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.SPPD{}, r.items...)
}

func (r *sppdRepository) FindByID(id string) (*model.SPPD, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			s := r.items[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *sppdRepository) Create(s model.SPPD) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.SPPD{s}, r.items...)
	return r.persist()
}

func (r *sppdRepository) Update(s model.SPPD) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == s.ID {
			r.items[i] = s
			return r.persist()
		}
	}
	return ErrNotFound
}

func (r *sppdRepository) ReplaceAll(items []model.SPPD) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.SPPD{}, items...)
	return r.persist()
}

type SPPDReportRepository interface {
	GetAll() []model.SPPDReport
	FindByID(id string) (*model.SPPDReport, error)
	GetBySppdID(sppdID string) []model.SPPDReport
	Upsert(rep model.SPPDReport) error
	ReplaceAll(items []model.SPPDReport) error
}

type sppdReportRepository struct {
	store *store.Store
	mu    sync.RWMutex
	items []model.SPPDReport
}

func NewSPPDReportRepository(st *store.Store, seed []model.SPPDReport) SPPDReportRepository {
	items := []model.SPPDReport{}
	if err := st.Load("sppdReports", &items); err != nil {
		items = append([]model.SPPDReport{}, seed...)
		st.Save("sppdReports", items)
	}
	return &sppdReportRepository{store: st, items: items}
}

func (r *sppdReportRepository) persist() error {
	return r.store.Save("sppdReports", r.items)
}

func (r *sppdReportRepository) GetAll() []model.SPPDReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.SPPDReport{}, r.items...)
}

func (r *sppdReportRepository) FindByID(id string) (*model.SPPDReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			rep := r.items[i]
			return &rep, nil
		}
	}
	return nil, ErrNotFound
}

func (r *sppdReportRepository) GetBySppdID(sppdID string) []model.SPPDReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []model.SPPDReport
	for i := range r.items {
		if r.items[i].SppdId == sppdID {
			list = append(list, r.items[i])
		}
	}
	return list
}

// Upsert: laporan ulang dari anggota yang sama menimpa record lama, tidak
// pernah menambah record kedua.
func (r *sppdReportRepository) Upsert(rep model.SPPDReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == rep.ID {
			r.items[i] = rep
			return r.persist()
		}
	}
	r.items = append(r.items, rep)
	return r.persist()
}

func (r *sppdReportRepository) ReplaceAll(items []model.SPPDReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.SPPDReport{}, items...)
	return r.persist()
}
