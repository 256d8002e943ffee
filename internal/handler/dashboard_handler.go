package handler

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/usecase"
)

type DashboardHandler struct {
	members    repository.MemberRepository
	complaints repository.ComplaintRepository
	directives repository.DirectiveRepository
	sppds      repository.SPPDRepository
	finance    *usecase.FinanceUsecase
	directive  *usecase.DirectiveUsecase
}

func NewDashboardHandler(
	members repository.MemberRepository,
	complaints repository.ComplaintRepository,
	directives repository.DirectiveRepository,
	sppds repository.SPPDRepository,
	finance *usecase.FinanceUsecase,
	directive *usecase.DirectiveUsecase,
) *DashboardHandler {
	return &DashboardHandler{
		members:    members,
		complaints: complaints,
		directives: directives,
		sppds:      sppds,
		finance:    finance,
		directive:  directive,
	}
}

// GetStats mengembalikan statistik dasbor: jumlah anggota aktif, pengaduan
// per status, SPPD yang menunggu persetujuan, progres tiap perintah, dan
// ringkasan keuangan.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	anggotaAktif := 0
	for _, m := range h.members.GetAll() {
		if m.Status == model.StatusAktif {
			anggotaAktif++
		}
	}

	pengaduanPerStatus := map[string]int{}
	for _, comp := range h.complaints.GetAll() {
		pengaduanPerStatus[comp.Status]++
	}

	sppdMenunggu := 0
	for _, s := range h.sppds.GetAll() {
		if s.Status == model.SppdMenungguPersetujuan {
			sppdMenunggu++
		}
	}

	progres := []model.DirectiveProgress{}
	for _, d := range h.directives.GetAll() {
		p, err := h.directive.Progress(d.ID)
		if err != nil {
			continue
		}
		progres = append(progres, *p)
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data": fiber.Map{
			"anggotaAktif":       anggotaAktif,
			"pengaduanPerStatus": pengaduanPerStatus,
			"sppdMenunggu":       sppdMenunggu,
			"progresPerintah":    progres,
			"keuangan":           h.finance.Summary(),
		},
	})
}
