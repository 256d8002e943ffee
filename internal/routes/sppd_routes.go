package routes

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/handler"
	"bpbd-portal-backend/internal/middleware"
	"bpbd-portal-backend/internal/model"
)

func SetupSPPDRoutes(app *fiber.App, deps *Deps) {
	hdl := handler.NewSPPDHandler(deps.SPPDUC, deps.Sppds, deps.SppdReports)

	api := app.Group("/api/sppd", middleware.Auth)

	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Get("/:id/reports", hdl.GetReports)

	// Sekretaris menyusun surat
	api.Post("/", middleware.Role(model.RoleSekretaris, model.RoleAdmin), hdl.Create)
	api.Put("/:id", middleware.Role(model.RoleSekretaris, model.RoleAdmin), hdl.Update)
	api.Post("/:id/arsipkan", middleware.Role(model.RoleSekretaris, model.RoleAdmin), hdl.Arsipkan)

	// Pimpinan memutuskan
	api.Post("/:id/setujui", middleware.Role(model.RolePimpinan, model.RoleAdmin), hdl.Setujui)
	api.Post("/:id/tolak", middleware.Role(model.RolePimpinan, model.RoleAdmin), hdl.Tolak)
	api.Post("/:id/selesaikan", middleware.Role(model.RolePimpinan, model.RoleAdmin), hdl.Selesaikan)

	// Penerima tugas melapor setelah perjalanan
	api.Post("/:id/report", hdl.SubmitReport)
}
