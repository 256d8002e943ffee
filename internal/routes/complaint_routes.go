package routes

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/handler"
	"bpbd-portal-backend/internal/middleware"
	"bpbd-portal-backend/internal/model"
)

func SetupComplaintRoutes(app *fiber.App, deps *Deps) {
	hdl := handler.NewComplaintHandler(deps.ComplaintUC, deps.Complaints, deps.Members)

	// Form pengaduan publik, tanpa autentikasi
	app.Post("/api/public/complaints", hdl.Create)

	api := app.Group("/api/complaints", middleware.Auth)

	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)

	// Rantai penanganan: tiap transisi milik role tertentu, Admin bisa override
	api.Post("/:id/teruskan-sekretaris", middleware.Role(model.RoleOperator, model.RoleAdmin), hdl.TeruskanKeSekretaris)
	api.Post("/:id/teruskan-pimpinan", middleware.Role(model.RoleSekretaris, model.RoleAdmin), hdl.TeruskanKePimpinan)
	api.Post("/:id/disposisi", middleware.Role(model.RolePimpinan, model.RoleAdmin), hdl.Disposisi)
	api.Post("/:id/kerjakan", middleware.Role(model.RoleKepalaSeksi), hdl.Kerjakan)
	api.Post("/:id/laporan-selesai", middleware.Role(model.RoleKepalaSeksi), hdl.LaporanSelesai)
	api.Post("/:id/tutup", middleware.Role(model.RolePimpinan, model.RoleAdmin), hdl.Tutup)
}
