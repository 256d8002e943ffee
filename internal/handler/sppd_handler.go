package handler

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/usecase"
)

type SPPDHandler struct {
	uc      *usecase.SPPDUsecase
	sppds   repository.SPPDRepository
	reports repository.SPPDReportRepository
}

func NewSPPDHandler(uc *usecase.SPPDUsecase, sppds repository.SPPDRepository, reports repository.SPPDReportRepository) *SPPDHandler {
	return &SPPDHandler{uc: uc, sppds: sppds, reports: reports}
}

func (h *SPPDHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar SPPD",
		"data":    h.sppds.GetAll(),
	})
}

func (h *SPPDHandler) GetByID(c *fiber.Ctx) error {
	s, err := h.sppds.FindByID(c.Params("id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil SPPD",
		"data":    s,
	})
}

type SPPDRequest struct {
	NomorSurat       string   `json:"nomorSurat" validate:"required"`
	DasarHukum       string   `json:"dasarHukum"`
	Untuk            string   `json:"untuk"`
	Tujuan           string   `json:"tujuan"`
	TanggalBerangkat string   `json:"tanggalBerangkat"`
	TanggalKembali   string   `json:"tanggalKembali"`
	PenerimaTugasIds []string `json:"penerimaTugasIds" validate:"required,min=1"`
	AnggaranTotal    *float64 `json:"anggaranTotal"`
}

func (r SPPDRequest) toInput() usecase.SPPDInput {
	return usecase.SPPDInput{
		NomorSurat:       r.NomorSurat,
		DasarHukum:       r.DasarHukum,
		Untuk:            r.Untuk,
		Tujuan:           r.Tujuan,
		TanggalBerangkat: r.TanggalBerangkat,
		TanggalKembali:   r.TanggalKembali,
		PenerimaTugasIds: r.PenerimaTugasIds,
		AnggaranTotal:    r.AnggaranTotal,
	}
}

// Create: Sekretaris membuat SPPD baru, masuk antrean persetujuan Pimpinan.
func (h *SPPDHandler) Create(c *fiber.Ctx) error {
	var req SPPDRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nomor surat dan penerima tugas wajib diisi"})
	}

	pembuatID, _ := c.Locals("user_id").(string)
	result, err := h.uc.Create(req.toInput(), pembuatID)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "SPPD berhasil dibuat dan menunggu persetujuan",
		"data":    result,
	})
}

func (h *SPPDHandler) Update(c *fiber.Ctx) error {
	var req SPPDRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nomor surat dan penerima tugas wajib diisi"})
	}

	result, err := h.uc.Update(c.Params("id"), req.toInput())
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "SPPD berhasil diperbarui",
		"data":    result,
	})
}

// Setujui: aksi Pimpinan.
func (h *SPPDHandler) Setujui(c *fiber.Ctx) error {
	penyetujuID, _ := c.Locals("user_id").(string)
	result, err := h.uc.Setujui(c.Params("id"), penyetujuID)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "SPPD disetujui",
		"data":    result,
	})
}

type TolakRequest struct {
	CatatanPenolakan string `json:"catatanPenolakan" validate:"required"`
}

// Tolak: aksi Pimpinan, catatan penolakan wajib.
func (h *SPPDHandler) Tolak(c *fiber.Ctx) error {
	var req TolakRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Catatan penolakan wajib diisi"})
	}

	penyetujuID, _ := c.Locals("user_id").(string)
	result, err := h.uc.Tolak(c.Params("id"), penyetujuID, req.CatatanPenolakan)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "SPPD ditolak",
		"data":    result,
	})
}

type SPPDReportRequest struct {
	HasilKegiatan string `json:"hasilKegiatan" validate:"required"`
	Kendala       string `json:"kendala"`
	Saran         string `json:"saran"`
	LampiranUrl   string `json:"lampiranUrl"`
	LampiranName  string `json:"lampiranName"`
}

// SubmitReport: penerima tugas yang login mengirim laporan perjalanan.
func (h *SPPDHandler) SubmitReport(c *fiber.Ctx) error {
	var req SPPDReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Hasil kegiatan wajib diisi"})
	}

	memberID, _ := c.Locals("user_id").(string)
	result, err := h.uc.SubmitReport(c.Params("id"), memberID, usecase.SPPDReportInput{
		HasilKegiatan: req.HasilKegiatan,
		Kendala:       req.Kendala,
		Saran:         req.Saran,
		LampiranUrl:   req.LampiranUrl,
		LampiranName:  req.LampiranName,
	})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Laporan perjalanan berhasil dikirim",
		"data":    result,
	})
}

// GetReports mengembalikan laporan perjalanan sebuah SPPD.
func (h *SPPDHandler) GetReports(c *fiber.Ctx) error {
	if _, err := h.sppds.FindByID(c.Params("id")); err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil laporan perjalanan",
		"data":    h.reports.GetBySppdID(c.Params("id")),
	})
}

// Selesaikan: Pimpinan menandai laporan sudah direviu.
func (h *SPPDHandler) Selesaikan(c *fiber.Ctx) error {
	result, err := h.uc.Selesaikan(c.Params("id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "SPPD diselesaikan",
		"data":    result,
	})
}

// Arsipkan: Sekretaris mengarsipkan SPPD yang sudah selesai.
func (h *SPPDHandler) Arsipkan(c *fiber.Ctx) error {
	result, err := h.uc.Arsipkan(c.Params("id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "SPPD diarsipkan",
		"data":    result,
	})
}
