package handler

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/usecase"
)

type FinanceHandler struct {
	uc *usecase.FinanceUsecase
}

func NewFinanceHandler(uc *usecase.FinanceUsecase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

func (h *FinanceHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil buku kas",
		"data":    h.uc.GetAll(),
	})
}

func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil ringkasan keuangan",
		"data":    h.uc.Summary(),
	})
}

type TransactionRequest struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	Description    string  `json:"description" validate:"required"`
	Category       string  `json:"category"`
	Type           string  `json:"type" validate:"required,oneof=Pemasukan Pengeluaran"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	AttachmentUrl  string  `json:"attachmentUrl"`
	AttachmentName string  `json:"attachmentName"`
}

// Save meng-upsert transaksi kas. Deskripsi yang menyebut nomor surat SPPD
// otomatis tercatat sebagai realisasi biaya SPPD tersebut.
func (h *FinanceHandler) Save(c *fiber.Ctx) error {
	var req TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Deskripsi, tipe, dan nominal transaksi wajib diisi"})
	}

	result, err := h.uc.SaveTransaction(model.FinancialTransaction{
		ID:             req.ID,
		Date:           req.Date,
		Description:    req.Description,
		Category:       req.Category,
		Type:           req.Type,
		Amount:         req.Amount,
		AttachmentUrl:  req.AttachmentUrl,
		AttachmentName: req.AttachmentName,
	})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Transaksi berhasil disimpan",
		"data":    result,
	})
}

func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteTransaction(c.Params("id")); err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transaksi berhasil dihapus"})
}
