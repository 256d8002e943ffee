package handler

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/usecase"
)

type ComplaintHandler struct {
	uc      *usecase.ComplaintUsecase
	repo    repository.ComplaintRepository
	members repository.MemberRepository
}

func NewComplaintHandler(uc *usecase.ComplaintUsecase, repo repository.ComplaintRepository, members repository.MemberRepository) *ComplaintHandler {
	return &ComplaintHandler{uc: uc, repo: repo, members: members}
}

type ComplaintRequest struct {
	NamaPelapor    string `json:"namaPelapor" validate:"required"`
	Telepon        string `json:"telepon"`
	Email          string `json:"email"`
	JenisLaporan   string `json:"jenisLaporan"`
	LokasiKejadian string `json:"lokasiKejadian"`
	Content        string `json:"content" validate:"required"`
}

// Create dipanggil dari form publik, tanpa autentikasi.
func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	var req ComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama pelapor dan isi laporan wajib diisi"})
	}

	result, err := h.uc.Create(usecase.ComplaintInput{
		NamaPelapor:    req.NamaPelapor,
		Telepon:        req.Telepon,
		Email:          req.Email,
		JenisLaporan:   req.JenisLaporan,
		LokasiKejadian: req.LokasiKejadian,
		Content:        req.Content,
	})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Laporan Anda berhasil dikirim dan akan segera diproses",
		"data":    result,
	})
}

func (h *ComplaintHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar pengaduan",
		"data":    h.repo.GetAll(),
	})
}

func (h *ComplaintHandler) GetByID(c *fiber.Ctx) error {
	result, err := h.repo.FindByID(c.Params("id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil pengaduan",
		"data":    result,
	})
}

// TeruskanKeSekretaris: Operator meneruskan pengaduan Baru.
func (h *ComplaintHandler) TeruskanKeSekretaris(c *fiber.Ctx) error {
	result, err := h.uc.TeruskanKeSekretaris(c.Params("id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Pengaduan diteruskan ke Sekretaris",
		"data":    result,
	})
}

// TeruskanKePimpinan: Sekretaris meneruskan untuk disposisi.
func (h *ComplaintHandler) TeruskanKePimpinan(c *fiber.Ctx) error {
	result, err := h.uc.TeruskanKePimpinan(c.Params("id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Pengaduan diteruskan ke Pimpinan",
		"data":    result,
	})
}

type DisposisiRequest struct {
	SeksiID string `json:"seksiId" validate:"required"`
	Catatan string `json:"catatan"`
}

// Disposisi: Pimpinan menunjuk seksi penanggung jawab.
func (h *ComplaintHandler) Disposisi(c *fiber.Ctx) error {
	var req DisposisiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "seksiId wajib diisi"})
	}

	result, err := h.uc.Disposisi(c.Params("id"), req.SeksiID, req.Catatan)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Pengaduan didisposisikan ke seksi",
		"data":    result,
	})
}

// Kerjakan: Kepala Seksi dari seksi yang dituju mulai mengerjakan.
func (h *ComplaintHandler) Kerjakan(c *fiber.Ctx) error {
	actor, err := h.actorMember(c)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	result, err := h.uc.Kerjakan(c.Params("id"), *actor)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Pengaduan mulai dikerjakan",
		"data":    result,
	})
}

type LaporanSelesaiRequest struct {
	Notes          string `json:"notes" validate:"required"`
	AttachmentUrl  string `json:"attachmentUrl"`
	AttachmentName string `json:"attachmentName"`
}

// LaporanSelesai: Kepala Seksi melampirkan laporan penyelesaian.
func (h *ComplaintHandler) LaporanSelesai(c *fiber.Ctx) error {
	var req LaporanSelesaiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Catatan laporan wajib diisi"})
	}

	actor, err := h.actorMember(c)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	result, err := h.uc.LaporanSelesai(c.Params("id"), *actor, req.Notes, req.AttachmentUrl, req.AttachmentName)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Laporan penyelesaian dikirim ke Pimpinan",
		"data":    result,
	})
}

// Tutup: Pimpinan menutup pengaduan yang laporannya sudah selesai.
func (h *ComplaintHandler) Tutup(c *fiber.Ctx) error {
	result, err := h.uc.Tutup(c.Params("id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Pengaduan ditutup",
		"data":    result,
	})
}

// actorMember mengambil data lengkap anggota yang login. Cek seksi butuh
// field Seksi terkini, bukan snapshot dari claim token.
func (h *ComplaintHandler) actorMember(c *fiber.Ctx) (*model.Member, error) {
	userID, _ := c.Locals("user_id").(string)
	return h.members.FindByID(userID)
}
