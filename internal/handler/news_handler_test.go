package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/store"
)

func newNewsApp(t *testing.T) (*fiber.App, repository.NewsRepository) {
	t.Helper()
	st, err := store.Open(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	news := repository.NewNewsRepository(st, []model.News{
		{ID: "news-001", Title: "Sosialisasi", Content: "Isi lama", Category: "Edukasi", Date: "2024-11-02T08:00:00.000Z"},
	})
	hdl := NewNewsHandler(news)

	app := fiber.New()
	app.Post("/api/news", hdl.Save)
	app.Put("/api/news/:id", hdl.Save)
	return app, news
}

func TestNewsSaveBaruDapatIDDanTanggal(t *testing.T) {
	app, _ := newNewsApp(t)

	resp := postJSON(t, app, "/api/news", fiber.Map{"title": "Gladi Evakuasi", "content": "Isi"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	var body struct {
		Data model.News `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.ID == "" || body.Data.Date == "" {
		t.Errorf("berita baru tidak distempel: %+v", body.Data)
	}
}

func TestNewsEditTanpaTanggalTidakMenggeserTanggal(t *testing.T) {
	app, news := newNewsApp(t)

	resp := postJSON(t, app, "/api/news", fiber.Map{
		"id":      "news-001",
		"title":   "Sosialisasi (Revisi)",
		"content": "Isi baru",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}

	n, err := news.FindByID("news-001")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if n.Date != "2024-11-02T08:00:00.000Z" {
		t.Errorf("tanggal terbit bergeser saat edit: %s", n.Date)
	}
	if n.Title != "Sosialisasi (Revisi)" || n.Content != "Isi baru" {
		t.Errorf("isi edit tidak tersimpan: %+v", n)
	}
}
