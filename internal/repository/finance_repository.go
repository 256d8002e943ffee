package repository

import (
	"sort"
	"sync"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/store"
)

type FinanceRepository interface {
	GetAll() []model.FinancialTransaction
	FindByID(id string) (*model.FinancialTransaction, error)
	Create(t model.FinancialTransaction) error
	Save(t model.FinancialTransaction) error
	Delete(id string) error
	ReplaceAll(items []model.FinancialTransaction) error
}

type financeRepository struct {
	store *store.Store
	mu    sync.RWMutex
	items []model.FinancialTransaction
}

func NewFinanceRepository(st *store.Store, seed []model.FinancialTransaction) FinanceRepository {
	items := []model.FinancialTransaction{}
	if err := st.Load("financialTransactions", &items); err != nil {
		items = append([]model.FinancialTransaction{}, seed...)
		st.Save("financialTransactions", items)
	}
	return &financeRepository{store: st, items: items}
}

func (r *financeRepository) persist() error {
	return r.store.Save("financialTransactions", r.items)
}

func (r *financeRepository) sortByDate() {
	sort.SliceStable(r.items, func(i, j int) bool {
		return r.items[i].Date > r.items[j].Date
	})
}

func (r *financeRepository) GetAll() []model.FinancialTransaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.FinancialTransaction{}, r.items...)
}

func (r *financeRepository) FindByID(id string) (*model.FinancialTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			t := r.items[i]
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

// Create menolak id yang sudah ada. Dipakai jalur pembayaran reimbursement:
// id `fin-reimburse-<id>` yang deterministik membuat pembayaran ganda gagal.
func (r *financeRepository) Create(t model.FinancialTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == t.ID {
			return ErrDuplicateID
		}
	}
	r.items = append([]model.FinancialTransaction{t}, r.items...)
	r.sortByDate()
	return r.persist()
}

func (r *financeRepository) Save(t model.FinancialTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == t.ID {
			r.items[i] = t
			r.sortByDate()
			return r.persist()
		}
	}
	r.items = append([]model.FinancialTransaction{t}, r.items...)
	r.sortByDate()
	return r.persist()
}

func (r *financeRepository) Delete(id string) error {
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

func (r *financeRepository) ReplaceAll(items []model.FinancialTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.FinancialTransaction{}, items...)
	return r.persist()
}

type ReimbursementRepository interface {
	GetAll() []model.ReimbursementRequest
	FindByID(id string) (*model.ReimbursementRequest, error)
	Create(req model.ReimbursementRequest) error
	Update(req model.ReimbursementRequest) error
	ReplaceAll(items []model.ReimbursementRequest) error
}

type reimbursementRepository struct {
	store *store.Store
	mu    sync.RWMutex
	items []model.ReimbursementRequest
}

func NewReimbursementRepository(st *store.Store, seed []model.ReimbursementRequest) ReimbursementRepository {
	items := []model.ReimbursementRequest{}
	if err := st.Load("reimbursementRequests", &items); err != nil {
		items = append([]model.ReimbursementRequest{}, seed...)
		st.Save("reimbursementRequests", items)
	}
	return &reimbursementRepository{store: st, items: items}
}

func (r *reimbursementRepository) persist() error {
	return r.store.Save("reimbursementRequests", r.items)
}

func (r *reimbursementRepository) GetAll() []model.ReimbursementRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.ReimbursementRequest{}, r.items...)
}

func (r *reimbursementRepository) FindByID(id string) (*model.ReimbursementRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			req := r.items[i]
			return &req, nil
		}
	}
	return nil, ErrNotFound
}

func (r *reimbursementRepository) Create(req model.ReimbursementRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.ReimbursementRequest{req}, r.items...)
	return r.persist()
}

func (r *reimbursementRepository) Update(req model.ReimbursementRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == req.ID {
			r.items[i] = req
			return r.persist()
		}
	}
	return ErrNotFound
}

func (r *reimbursementRepository) ReplaceAll(items []model.ReimbursementRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.ReimbursementRequest{}, items...)
	return r.persist()
}
