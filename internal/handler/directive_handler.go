package handler

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/usecase"
)

type DirectiveHandler struct {
	uc          *usecase.DirectiveUsecase
	directives  repository.DirectiveRepository
	taskReports repository.TaskReportRepository
}

func NewDirectiveHandler(uc *usecase.DirectiveUsecase, directives repository.DirectiveRepository, taskReports repository.TaskReportRepository) *DirectiveHandler {
	return &DirectiveHandler{uc: uc, directives: directives, taskReports: taskReports}
}

func (h *DirectiveHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar perintah",
		"data":    h.directives.GetAll(),
	})
}

func (h *DirectiveHandler) GetByID(c *fiber.Ctx) error {
	d, err := h.directives.FindByID(c.Params("id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil perintah",
		"data":    d,
	})
}

type DirectiveRequest struct {
	ID             string   `json:"id"`
	Title          string   `json:"title" validate:"required"`
	Urgency        string   `json:"urgency"`
	Status         string   `json:"status"`
	Description    string   `json:"description"`
	AssignedToAll  bool     `json:"assignedToAll"`
	AssignedTo     []string `json:"assignedTo"`
	AttachmentUrl  string   `json:"attachmentUrl"`
	AttachmentName string   `json:"attachmentName"`
}

// Save meng-upsert perintah. assignedToAll=true berarti perintah ditujukan
// ke seluruh anggota; selain itu daftar id di assignedTo yang dipakai.
func (h *DirectiveHandler) Save(c *fiber.Ctx) error {
	var req DirectiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Judul perintah wajib diisi"})
	}

	assigned := model.AssignMembers(req.AssignedTo)
	if req.AssignedToAll {
		assigned = model.AssignAll()
	}
	actorID, _ := c.Locals("user_id").(string)

	result, err := h.uc.Save(model.EmergencyDirective{
		ID:             req.ID,
		Title:          req.Title,
		Urgency:        req.Urgency,
		Status:         req.Status,
		Description:    req.Description,
		AssignedTo:     assigned,
		AttachmentUrl:  req.AttachmentUrl,
		AttachmentName: req.AttachmentName,
	}, actorID)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Perintah berhasil disimpan",
		"data":    result,
	})
}

func (h *DirectiveHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Perintah berhasil dihapus"})
}

// Acknowledge menandai perintah sudah dilihat oleh anggota yang login.
func (h *DirectiveHandler) Acknowledge(c *fiber.Ctx) error {
	memberID, _ := c.Locals("user_id").(string)
	result, err := h.uc.Acknowledge(memberID, c.Params("id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Perintah ditandai sudah dilihat",
		"data":    result,
	})
}

type TaskReportRequest struct {
	ReportText     string `json:"reportText" validate:"required"`
	ReportImageUrl string `json:"reportImageUrl"`
}

// Report mengirim (atau menimpa) laporan tugas anggota yang login.
func (h *DirectiveHandler) Report(c *fiber.Ctx) error {
	var req TaskReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Isi laporan wajib diisi"})
	}

	memberID, _ := c.Locals("user_id").(string)
	result, err := h.uc.Report(memberID, c.Params("id"), req.ReportText, req.ReportImageUrl)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Laporan tugas berhasil dikirim",
		"data":    result,
	})
}

// Reports mengembalikan seluruh laporan tugas sebuah perintah.
func (h *DirectiveHandler) Reports(c *fiber.Ctx) error {
	if _, err := h.directives.FindByID(c.Params("id")); err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil laporan tugas",
		"data":    h.taskReports.GetByDirectiveID(c.Params("id")),
	})
}

// Progress mengembalikan agregasi dilihat/dilaporkan sebuah perintah.
func (h *DirectiveHandler) Progress(c *fiber.Ctx) error {
	result, err := h.uc.Progress(c.Params("id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil progres perintah",
		"data":    result,
	})
}
