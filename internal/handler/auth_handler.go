package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"bpbd-portal-backend/config"
	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
)

type AuthHandler struct {
	members repository.MemberRepository
}

func NewAuthHandler(members repository.MemberRepository) *AuthHandler {
	return &AuthHandler{members: members}
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Login tanpa password: identitas cukup dengan email anggota terdaftar.
// Portal ini internal, akses jaringan dibatasi di level infrastruktur.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email wajib diisi dengan format yang benar"})
	}

	member, err := h.members.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Email tidak ditemukan atau salah."})
	}

	token, err := buildToken(member, "")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Selamat datang, %s!", member.NamaLengkap),
		"data": fiber.Map{
			"token": token,
			"user":  member,
		},
	})
}

// GetProfile mengembalikan data anggota yang sedang login (atau yang sedang
// diperankan saat mode simulasi).
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	member, err := h.members.FindByID(userID)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	resp := fiber.Map{
		"message": "Berhasil mengambil profil",
		"data":    member,
	}
	if realID, ok := c.Locals("real_user_id").(string); ok {
		resp["simulated_by"] = realID
	}
	return c.JSON(resp)
}

type SimulationRequest struct {
	MemberID string `json:"memberId" validate:"required"`
}

// StartSimulation menerbitkan token atas nama anggota lain, dengan identitas
// asli dibawa di claim real_user_id. Hanya Admin dan Pimpinan (lewat gating
// route) yang boleh memulai simulasi.
func (h *AuthHandler) StartSimulation(c *fiber.Ctx) error {
	var req SimulationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "memberId wajib diisi"})
	}

	target, err := h.members.FindByID(req.MemberID)
	if err != nil {
		return writeUsecaseError(c, err)
	}

	// Identitas asli: kalau sudah dalam simulasi, pakai real_user_id lama
	// agar simulasi berantai tetap menunjuk ke user sebenarnya.
	realID, _ := c.Locals("user_id").(string)
	if prev, ok := c.Locals("real_user_id").(string); ok {
		realID = prev
	}

	token, err := buildToken(target, realID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Simulasi sebagai %s dimulai", target.NamaLengkap),
		"data": fiber.Map{
			"token": token,
			"user":  target,
		},
	})
}

// EndSimulation mengembalikan token identitas asli.
func (h *AuthHandler) EndSimulation(c *fiber.Ctx) error {
	realID, ok := c.Locals("real_user_id").(string)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tidak sedang dalam mode simulasi"})
	}

	member, err := h.members.FindByID(realID)
	if err != nil {
		return writeUsecaseError(c, err)
	}

	token, err := buildToken(member, "")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": "Simulasi diakhiri",
		"data": fiber.Map{
			"token": token,
			"user":  member,
		},
	})
}

func buildToken(m *model.Member, realUserID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": m.ID,
		"nama":    m.NamaLengkap,
		"role":    m.Role,
		"seksi":   m.Seksi,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	}
	if realUserID != "" {
		claims["real_user_id"] = realUserID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
