package routes

import (
	"go.uber.org/zap"

	"bpbd-portal-backend/internal/database"
	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/store"
	"bpbd-portal-backend/internal/usecase"
)

// Deps memegang satu instance tiap repository dan usecase. Repository memuat
// koleksinya ke memori saat dibuat, jadi harus dibagi-pakai antar route, tidak
// dibuat ulang per domain.
type Deps struct {
	Members        repository.MemberRepository
	News           repository.NewsRepository
	Complaints     repository.ComplaintRepository
	Directives     repository.DirectiveRepository
	TaskReports    repository.TaskReportRepository
	Roles          repository.RoleRepository
	Sections       repository.SectionRepository
	Sppds          repository.SPPDRepository
	SppdReports    repository.SPPDReportRepository
	Jabatans       repository.JabatanRepository
	Finance        repository.FinanceRepository
	Reimbursements repository.ReimbursementRepository

	ComplaintUC     *usecase.ComplaintUsecase
	DirectiveUC     *usecase.DirectiveUsecase
	SPPDUC          *usecase.SPPDUsecase
	FinanceUC       *usecase.FinanceUsecase
	ReimbursementUC *usecase.ReimbursementUsecase
	MasterDataUC    *usecase.MasterDataUsecase

	Log *zap.Logger
}

// NewDeps memuat semua koleksi dari data dir. Koleksi yang belum ada diisi
// dataset default.
func NewDeps(st *store.Store, log *zap.Logger) *Deps {
	d := &Deps{Log: log}

	d.Members = repository.NewMemberRepository(st, database.DefaultMembers())
	d.News = repository.NewNewsRepository(st, database.DefaultNews())
	d.Complaints = repository.NewComplaintRepository(st, database.DefaultComplaints())
	d.Directives = repository.NewDirectiveRepository(st, database.DefaultDirectives())
	d.TaskReports = repository.NewTaskReportRepository(st)
	d.Roles = repository.NewRoleRepository(st, database.DefaultRoles())
	d.Sections = repository.NewSectionRepository(st, database.DefaultSections())
	d.Sppds = repository.NewSPPDRepository(st, database.DefaultSppds())
	d.SppdReports = repository.NewSPPDReportRepository(st, database.DefaultSppdReports())
	d.Jabatans = repository.NewJabatanRepository(st, database.DefaultJabatans())
	d.Finance = repository.NewFinanceRepository(st, database.DefaultTransactions())
	d.Reimbursements = repository.NewReimbursementRepository(st, database.DefaultReimbursements())

	d.ComplaintUC = usecase.NewComplaintUsecase(d.Complaints, d.Sections)
	d.DirectiveUC = usecase.NewDirectiveUsecase(d.Directives, d.TaskReports, d.Members)
	d.SPPDUC = usecase.NewSPPDUsecase(d.Sppds, d.SppdReports)
	d.FinanceUC = usecase.NewFinanceUsecase(d.Finance, d.Sppds, log)
	d.ReimbursementUC = usecase.NewReimbursementUsecase(d.Reimbursements, d.FinanceUC)
	d.MasterDataUC = usecase.NewMasterDataUsecase(d.Roles, d.Sections, d.Jabatans, d.Members)

	return d
}
