package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bpbd-portal-backend/internal/database"
	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
)

type MemberHandler struct {
	members repository.MemberRepository
}

func NewMemberHandler(members repository.MemberRepository) *MemberHandler {
	return &MemberHandler{members: members}
}

func (h *MemberHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar anggota",
		"data":    h.members.GetAll(),
	})
}

func (h *MemberHandler) GetByID(c *fiber.Ctx) error {
	member, err := h.members.FindByID(c.Params("id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data anggota",
		"data":    member,
	})
}

// PublicProfile melayani tautan profil publik (hasil scan QR kartu anggota).
// Tanpa autentikasi. Kalau id tidak ada di data aktif, dicoba ke dataset
// default supaya kartu lama yang dicetak dari data awal tetap resolve.
func (h *MemberHandler) PublicProfile(c *fiber.Ctx) error {
	id := c.Params("id")
	if member, err := h.members.FindByID(id); err == nil {
		return c.JSON(fiber.Map{
			"message": "Berhasil mengambil profil",
			"data":    member,
		})
	}
	for _, m := range database.DefaultMembers() {
		if m.ID == id {
			return c.JSON(fiber.Map{
				"message": "Berhasil mengambil profil",
				"data":    m,
			})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Anggota tidak ditemukan"})
}

type MemberRequest struct {
	ID               string `json:"id"`
	NamaLengkap      string `json:"namaLengkap" validate:"required"`
	NomorID          string `json:"nomorId"`
	TanggalLahir     string `json:"tanggalLahir"`
	JenisKelamin     string `json:"jenisKelamin"`
	Alamat           string `json:"alamat"`
	Telepon          string `json:"telepon"`
	Email            string `json:"email" validate:"required,email"`
	Jabatan          string `json:"jabatan"`
	TanggalBergabung string `json:"tanggalBergabung"`
	Status           string `json:"status"`
	Bio              string `json:"bio"`
	FotoUrl          string `json:"fotoUrl"`
	Role             string `json:"role"`
	Seksi            string `json:"seksi"`
}

// Save meng-upsert anggota: tanpa id berarti tambah baru.
func (h *MemberHandler) Save(c *fiber.Ctx) error {
	var req MemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama lengkap dan email wajib diisi"})
	}

	m := model.Member{
		ID:               req.ID,
		NamaLengkap:      req.NamaLengkap,
		NomorID:          req.NomorID,
		TanggalLahir:     req.TanggalLahir,
		JenisKelamin:     req.JenisKelamin,
		Alamat:           req.Alamat,
		Telepon:          req.Telepon,
		Email:            req.Email,
		Jabatan:          req.Jabatan,
		TanggalBergabung: req.TanggalBergabung,
		Status:           req.Status,
		Bio:              req.Bio,
		FotoUrl:          req.FotoUrl,
		Role:             req.Role,
		Seksi:            req.Seksi,
	}
	if m.ID == "" {
		m.ID = "mem-" + uuid.NewString()
		if m.Status == "" {
			m.Status = model.StatusAktif
		}
		if m.Role == "" {
			m.Role = model.RoleAnggota
		}
	}

	if err := h.members.Save(m); err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Data anggota berhasil disimpan",
		"data":    m,
	})
}

func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	if err := h.members.Delete(c.Params("id")); err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Anggota berhasil dihapus"})
}

type AssignmentRequest struct {
	Role    string `json:"role" validate:"required"`
	Seksi   string `json:"seksi"`
	Jabatan string `json:"jabatan"`
}

// UpdateAssignment mengganti role/seksi/jabatan tanpa menyentuh data diri.
func (h *MemberHandler) UpdateAssignment(c *fiber.Ctx) error {
	var req AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role wajib diisi"})
	}

	if err := h.members.UpdateAssignment(c.Params("id"), req.Role, req.Seksi, req.Jabatan); err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Penugasan anggota berhasil diperbarui"})
}
