package handler

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/usecase"
)

type MasterDataHandler struct {
	uc       *usecase.MasterDataUsecase
	roles    repository.RoleRepository
	sections repository.SectionRepository
	jabatans repository.JabatanRepository
}

func NewMasterDataHandler(uc *usecase.MasterDataUsecase, roles repository.RoleRepository, sections repository.SectionRepository, jabatans repository.JabatanRepository) *MasterDataHandler {
	return &MasterDataHandler{uc: uc, roles: roles, sections: sections, jabatans: jabatans}
}

type DefinitionRequest struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
}

func (h *MasterDataHandler) GetRoles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar role",
		"data":    h.roles.GetAll(),
	})
}

func (h *MasterDataHandler) SaveRole(c *fiber.Ctx) error {
	var req DefinitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama role wajib diisi"})
	}

	result, err := h.uc.SaveRole(model.RoleDefinition{ID: req.ID, Name: req.Name})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Role berhasil disimpan",
		"data":    result,
	})
}

func (h *MasterDataHandler) DeleteRole(c *fiber.Ctx) error {
	if err := h.uc.DeleteRole(c.Params("id")); err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Role berhasil dihapus"})
}

func (h *MasterDataHandler) GetSections(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar seksi",
		"data":    h.sections.GetAll(),
	})
}

func (h *MasterDataHandler) SaveSection(c *fiber.Ctx) error {
	var req DefinitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama seksi wajib diisi"})
	}

	result, err := h.uc.SaveSection(model.SectionDefinition{ID: req.ID, Name: req.Name})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Seksi berhasil disimpan",
		"data":    result,
	})
}

func (h *MasterDataHandler) DeleteSection(c *fiber.Ctx) error {
	if err := h.uc.DeleteSection(c.Params("id")); err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Seksi berhasil dihapus"})
}

func (h *MasterDataHandler) GetJabatans(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar jabatan",
		"data":    h.jabatans.GetAll(),
	})
}

func (h *MasterDataHandler) SaveJabatan(c *fiber.Ctx) error {
	var req DefinitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama jabatan wajib diisi"})
	}

	result, err := h.uc.SaveJabatan(model.JabatanDefinition{ID: req.ID, Name: req.Name})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Jabatan berhasil disimpan",
		"data":    result,
	})
}

func (h *MasterDataHandler) DeleteJabatan(c *fiber.Ctx) error {
	if err := h.uc.DeleteJabatan(c.Params("id")); err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Jabatan berhasil dihapus"})
}
