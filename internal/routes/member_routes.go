package routes

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/handler"
	"bpbd-portal-backend/internal/middleware"
	"bpbd-portal-backend/internal/model"
)

func SetupMemberRoutes(app *fiber.App, deps *Deps) {
	hdl := handler.NewMemberHandler(deps.Members)

	// Profil publik dari QR kartu anggota, tanpa autentikasi
	app.Get("/api/public/members/:id", hdl.PublicProfile)

	api := app.Group("/api/members", middleware.Auth)

	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)

	// Kelola data anggota: Admin dan Sekretaris
	api.Post("/", middleware.Role(model.RoleAdmin, model.RoleSekretaris), hdl.Save)
	api.Put("/:id", middleware.Role(model.RoleAdmin, model.RoleSekretaris), hdl.Save)
	api.Delete("/:id", middleware.Role(model.RoleAdmin), hdl.Delete)

	// Penugasan role/seksi/jabatan hanya oleh Admin
	api.Put("/:id/assignment", middleware.Role(model.RoleAdmin), hdl.UpdateAssignment)
}
