package routes

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/handler"
	"bpbd-portal-backend/internal/middleware"
	"bpbd-portal-backend/internal/model"
)

func SetupDirectiveRoutes(app *fiber.App, deps *Deps) {
	hdl := handler.NewDirectiveHandler(deps.DirectiveUC, deps.Directives, deps.TaskReports)

	api := app.Group("/api/directives", middleware.Auth)

	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Get("/:id/reports", hdl.Reports)
	api.Get("/:id/progress", hdl.Progress)

	// Kelola perintah: Pimpinan dan Admin
	api.Post("/", middleware.Role(model.RolePimpinan, model.RoleAdmin), hdl.Save)
	api.Put("/:id", middleware.Role(model.RolePimpinan, model.RoleAdmin), hdl.Save)
	api.Delete("/:id", middleware.Role(model.RolePimpinan, model.RoleAdmin), hdl.Delete)

	// Penerima tugas menandai dilihat lalu melapor
	api.Post("/:id/acknowledge", hdl.Acknowledge)
	api.Post("/:id/report", hdl.Report)
}
