package repository

import (
	"sync"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/store"
)

type DirectiveRepository interface {
	GetAll() []model.EmergencyDirective
	FindByID(id string) (*model.EmergencyDirective, error)
	Save(d model.EmergencyDirective) error
	Delete(id string) error
	ReplaceAll(items []model.EmergencyDirective) error
}

type directiveRepository struct {
	store *store.Store
	mu    sync.RWMutex
	items []model.EmergencyDirective
}

func NewDirectiveRepository(st *store.Store, seed []model.EmergencyDirective) DirectiveRepository {
	items := []model.EmergencyDirective{}
	if err := st.Load("directives", &items); err != nil {
		items = append([]model.EmergencyDirective{}, seed...)
		st.Save("directives", items)
	}
	return &directiveRepository{store: st, items: items}
}

func (r *directiveRepository) persist() error {
	return r.store.Save("directives", r.items)
}

func (r *directiveRepository) GetAll() []model.EmergencyDirective {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.EmergencyDirective{}, r.items...)
}

func (r *directiveRepository) FindByID(id string) (*model.EmergencyDirective, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			d := r.items[i]
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (r *directiveRepository) Save(d model.EmergencyDirective) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == d.ID {
			r.items[i] = d
			return r.persist()
		}
	}
	r.items = append([]model.EmergencyDirective{d}, r.items...)
	return r.persist()
}

func (r *directiveRepository) Delete(id string) error {
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

func (r *directiveRepository) ReplaceAll(items []model.EmergencyDirective) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.EmergencyDirective{}, items...)
	return r.persist()
}

type TaskReportRepository interface {
	GetAll() []model.TaskReport
	FindByID(id string) (*model.TaskReport, error)
	GetByDirectiveID(directiveID string) []model.TaskReport
	Create(t model.TaskReport) error
	Update(t model.TaskReport) error
	ReplaceAll(items []model.TaskReport) error
}

type taskReportRepository struct {
	store *store.Store
	mu    sync.RWMutex
	items []model.TaskReport
}

func NewTaskReportRepository(st *store.Store) TaskReportRepository {
	items := []model.TaskReport{}
	if err := st.Load("taskReports", &items); err != nil {
		items = []model.TaskReport{}
		st.Save("taskReports", items)
	}
	return &taskReportRepository{store: st, items: items}
}

func (r *taskReportRepository) persist() error {
	return r.store.Save("taskReports", r.items)
}

func (r *taskReportRepository) GetAll() []model.TaskReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.TaskReport{}, r.items...)
}

func (r *taskReportRepository) FindByID(id string) (*model.TaskReport, error) {
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

func (r *taskReportRepository) GetByDirectiveID(directiveID string) []model.TaskReport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []model.TaskReport
	for i := range r.items {
		if r.items[i].DirectiveID == directiveID {
			list = append(list, r.items[i])
		}
	}
	return list
}

// Create menolak id ganda; satu pasangan (member, directive) satu record.
func (r *taskReportRepository) Create(t model.TaskReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == t.ID {
			return ErrDuplicateID
		}
	}
	r.items = append(r.items, t)
	return r.persist()
}

func (r *taskReportRepository) Update(t model.TaskReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == t.ID {
			r.items[i] = t
			return r.persist()
		}
	}
	return ErrNotFound
}

func (r *taskReportRepository) ReplaceAll(items []model.TaskReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]model.TaskReport{}, items...)
	return r.persist()
}
