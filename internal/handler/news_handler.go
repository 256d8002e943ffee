package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
)

type NewsHandler struct {
	news repository.NewsRepository
}

func NewNewsHandler(news repository.NewsRepository) *NewsHandler {
	return &NewsHandler{news: news}
}

func (h *NewsHandler) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar berita",
		"data":    h.news.GetAll(),
	})
}

func (h *NewsHandler) GetByID(c *fiber.Ctx) error {
	n, err := h.news.FindByID(c.Params("id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil berita",
		"data":    n,
	})
}

type NewsRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	ImageUrl string `json:"imageUrl"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

func (h *NewsHandler) Save(c *fiber.Ctx) error {
	var req NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Judul dan isi berita wajib diisi"})
	}

	n := model.News{
		ID:       req.ID,
		Title:    req.Title,
		Content:  req.Content,
		ImageUrl: req.ImageUrl,
		Category: req.Category,
		Date:     req.Date,
	}
	if n.ID == "" {
		n.ID = "news-" + uuid.NewString()
	} else if n.Date == "" {
		// Edit tanpa tanggal mempertahankan tanggal terbit lama
		if existing, err := h.news.FindByID(n.ID); err == nil {
			n.Date = existing.Date
		}
	}
	if n.Date == "" {
		n.Date = time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	}

	if err := h.news.Save(n); err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berita berhasil disimpan",
		"data":    n,
	})
}

func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	if err := h.news.Delete(c.Params("id")); err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berita berhasil dihapus"})
}
