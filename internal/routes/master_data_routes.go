package routes

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/handler"
	"bpbd-portal-backend/internal/middleware"
	"bpbd-portal-backend/internal/model"
)

func SetupMasterDataRoutes(app *fiber.App, deps *Deps) {
	hdl := handler.NewMasterDataHandler(deps.MasterDataUC, deps.Roles, deps.Sections, deps.Jabatans)

	api := app.Group("/api/master-data", middleware.Auth)

	// Daftar definisi dibutuhkan form di seluruh portal
	api.Get("/roles", hdl.GetRoles)
	api.Get("/sections", hdl.GetSections)
	api.Get("/jabatans", hdl.GetJabatans)

	// Perubahan hanya oleh Admin
	admin := api.Group("/", middleware.Role(model.RoleAdmin))
	admin.Post("/roles", hdl.SaveRole)
	admin.Put("/roles/:id", hdl.SaveRole)
	admin.Delete("/roles/:id", hdl.DeleteRole)
	admin.Post("/sections", hdl.SaveSection)
	admin.Put("/sections/:id", hdl.SaveSection)
	admin.Delete("/sections/:id", hdl.DeleteSection)
	admin.Post("/jabatans", hdl.SaveJabatan)
	admin.Put("/jabatans/:id", hdl.SaveJabatan)
	admin.Delete("/jabatans/:id", hdl.DeleteJabatan)
}
