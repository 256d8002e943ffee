package routes

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/handler"
	"bpbd-portal-backend/internal/middleware"
	"bpbd-portal-backend/internal/model"
)

func SetupAdminRoutes(app *fiber.App, deps *Deps) {
	hdl := handler.NewExportHandler(handler.ExportDeps{
		Members:        deps.Members,
		News:           deps.News,
		Complaints:     deps.Complaints,
		Directives:     deps.Directives,
		TaskReports:    deps.TaskReports,
		Roles:          deps.Roles,
		Sections:       deps.Sections,
		Sppds:          deps.Sppds,
		SppdReports:    deps.SppdReports,
		Jabatans:       deps.Jabatans,
		Finance:        deps.Finance,
		Reimbursements: deps.Reimbursements,
	})

	api := app.Group("/api/admin", middleware.Auth, middleware.Role(model.RoleAdmin))

	api.Get("/export", hdl.Export)
	api.Post("/import", hdl.Import)
}
