package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
)

// ExportHandler melayani backup dan restore seluruh koleksi dalam satu
// dokumen JSON. Restore menimpa semua data yang ada.
type ExportHandler struct {
	members        repository.MemberRepository
	news           repository.NewsRepository
	complaints     repository.ComplaintRepository
	directives     repository.DirectiveRepository
	taskReports    repository.TaskReportRepository
	roles          repository.RoleRepository
	sections       repository.SectionRepository
	sppds          repository.SPPDRepository
	sppdReports    repository.SPPDReportRepository
	jabatans       repository.JabatanRepository
	finance        repository.FinanceRepository
	reimbursements repository.ReimbursementRepository
}

type ExportDeps struct {
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
}

func NewExportHandler(d ExportDeps) *ExportHandler {
	return &ExportHandler{
		members:        d.Members,
		news:           d.News,
		complaints:     d.Complaints,
		directives:     d.Directives,
		taskReports:    d.TaskReports,
		roles:          d.Roles,
		sections:       d.Sections,
		sppds:          d.Sppds,
		sppdReports:    d.SppdReports,
		jabatans:       d.Jabatans,
		finance:        d.Finance,
		reimbursements: d.Reimbursements,
	}
}

func (h *ExportHandler) snapshot() model.BackupData {
	return model.BackupData{
		Members:               h.members.GetAll(),
		News:                  h.news.GetAll(),
		Complaints:            h.complaints.GetAll(),
		Directives:            h.directives.GetAll(),
		TaskReports:           h.taskReports.GetAll(),
		Roles:                 h.roles.GetAll(),
		Sections:              h.sections.GetAll(),
		Sppds:                 h.sppds.GetAll(),
		SppdReports:           h.sppdReports.GetAll(),
		Jabatans:              h.jabatans.GetAll(),
		FinancialTransactions: h.finance.GetAll(),
		ReimbursementRequests: h.reimbursements.GetAll(),
	}
}

// Export mengunduh snapshot seluruh koleksi sebagai satu file JSON.
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	filename := fmt.Sprintf("bnpb_backup_data_%s.json", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.JSON(h.snapshot())
}

// Import menimpa SELURUH koleksi dengan isi dokumen backup. Koleksi yang
// tidak ada di dokumen ikut dikosongkan, sama seperti restore file lama.
func (h *ExportHandler) Import(c *fiber.Ctx) error {
	var backup model.BackupData
	if err := c.BodyParser(&backup); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File backup tidak valid"})
	}
	if backup.Members == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File backup tidak berisi data anggota"})
	}

	steps := []struct {
		entity string
		apply  func() error
	}{
		{"members", func() error { return h.members.ReplaceAll(backup.Members) }},
		{"news", func() error { return h.news.ReplaceAll(backup.News) }},
		{"complaints", func() error { return h.complaints.ReplaceAll(backup.Complaints) }},
		{"directives", func() error { return h.directives.ReplaceAll(backup.Directives) }},
		{"taskReports", func() error { return h.taskReports.ReplaceAll(backup.TaskReports) }},
		{"roles", func() error { return h.roles.ReplaceAll(backup.Roles) }},
		{"sections", func() error { return h.sections.ReplaceAll(backup.Sections) }},
		{"sppds", func() error { return h.sppds.ReplaceAll(backup.Sppds) }},
		{"sppdReports", func() error { return h.sppdReports.ReplaceAll(backup.SppdReports) }},
		{"jabatans", func() error { return h.jabatans.ReplaceAll(backup.Jabatans) }},
		{"financialTransactions", func() error { return h.finance.ReplaceAll(backup.FinancialTransactions) }},
		{"reimbursementRequests", func() error { return h.reimbursements.ReplaceAll(backup.ReimbursementRequests) }},
	}
	for _, s := range steps {
		if err := s.apply(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("Gagal memulihkan koleksi %s", s.entity),
			})
		}
	}

	return c.JSON(fiber.Map{"message": "Data berhasil dipulihkan dari backup"})
}
