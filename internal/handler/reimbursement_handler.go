package handler

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/usecase"
)

type ReimbursementHandler struct {
	uc       *usecase.ReimbursementUsecase
	requests repository.ReimbursementRepository
	members  repository.MemberRepository
}

func NewReimbursementHandler(uc *usecase.ReimbursementUsecase, requests repository.ReimbursementRepository, members repository.MemberRepository) *ReimbursementHandler {
	return &ReimbursementHandler{uc: uc, requests: requests, members: members}
}

func (h *ReimbursementHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar reimbursement",
		"data":    h.requests.GetAll(),
	})
}

type ReimbursementRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ProofUrl    string  `json:"proofUrl" validate:"required"`
	ProofName   string  `json:"proofName"`
}

// Create: pengajuan atas nama anggota yang login; bukti wajib dilampirkan.
func (h *ReimbursementHandler) Create(c *fiber.Ctx) error {
	var req ReimbursementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nominal dan bukti pengeluaran wajib diisi"})
	}

	userID, _ := c.Locals("user_id").(string)
	requester, err := h.members.FindByID(userID)
	if err != nil {
		return writeUsecaseError(c, err)
	}

	result, err := h.uc.Create(usecase.ReimbursementInput{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		ProofUrl:    req.ProofUrl,
		ProofName:   req.ProofName,
	}, *requester)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pengajuan reimbursement berhasil dikirim",
		"data":    result,
	})
}

// Setujui: aksi Pimpinan.
func (h *ReimbursementHandler) Setujui(c *fiber.Ctx) error {
	approverID, _ := c.Locals("user_id").(string)
	result, err := h.uc.Setujui(c.Params("id"), approverID)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Pengajuan reimbursement disetujui",
		"data":    result,
	})
}

type ReimburseTolakRequest struct {
	Catatan string `json:"catatan" validate:"required"`
}

// Tolak: aksi Pimpinan, catatan penolakan wajib.
func (h *ReimbursementHandler) Tolak(c *fiber.Ctx) error {
	var req ReimburseTolakRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Catatan penolakan wajib diisi"})
	}

	result, err := h.uc.Tolak(c.Params("id"), req.Catatan)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Pengajuan reimbursement ditolak",
		"data":    result,
	})
}

// Bayar: Bendahara membayar pengajuan yang sudah disetujui. Pembayaran
// otomatis mencatat pengeluaran di buku kas.
func (h *ReimbursementHandler) Bayar(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	bendahara, err := h.members.FindByID(userID)
	if err != nil {
		return writeUsecaseError(c, err)
	}

	result, err := h.uc.Bayar(c.Params("id"), *bendahara)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Reimbursement dibayar dan tercatat di buku kas",
		"data":    result,
	})
}
